//go:build js && wasm

package console

import "github.com/trickstertwo/xconsole/adapter/browser"

// DefaultConsole returns the browser's developer console.
func DefaultConsole() Console {
	return browser.New()
}
