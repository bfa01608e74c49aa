// Package browser implements a console that forwards to the browser's
// developer console. It is only available when built for js/wasm.
package browser
