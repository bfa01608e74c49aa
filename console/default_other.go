//go:build !(js && wasm)

package console

import (
	"os"

	"github.com/trickstertwo/xconsole/adapter/terminal"
)

// DefaultConsole returns a terminal console on stderr. Colour is enabled
// when stderr is a terminal.
func DefaultConsole() Console {
	return terminal.New(terminal.Options{Writer: os.Stderr})
}
