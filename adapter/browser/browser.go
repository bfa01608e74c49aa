//go:build js && wasm

package browser

import "syscall/js"

// Console forwards every call to the same-named method of the JavaScript
// console object. Messages are passed as the format string, so %c markers
// consume the style arguments that follow.
type Console struct {
	console js.Value
}

// New binds to globalThis.console.
func New() *Console {
	return NewFromValue(js.Global().Get("console"))
}

// NewFromValue binds to an arbitrary console-like JavaScript object.
func NewFromValue(v js.Value) *Console {
	return &Console{console: v}
}

// Styled is always true: browser consoles render CSS for %c markers.
func (c *Console) Styled() bool { return true }

func (c *Console) Log(msg string, styles ...string)   { c.call("log", msg, styles) }
func (c *Console) Debug(msg string, styles ...string) { c.call("debug", msg, styles) }
func (c *Console) Info(msg string, styles ...string)  { c.call("info", msg, styles) }
func (c *Console) Warn(msg string, styles ...string)  { c.call("warn", msg, styles) }
func (c *Console) Error(msg string, styles ...string) { c.call("error", msg, styles) }

func (c *Console) call(method, msg string, styles []string) {
	args := make([]any, 0, 1+len(styles))
	args = append(args, msg)
	for _, s := range styles {
		args = append(args, s)
	}
	c.console.Call(method, args...)
}
