package console

import "sync"

// call is one recorded console invocation.
type call struct {
	Method string
	Msg    string
	Styles []string
}

// recordingConsole records every call. It reports styled output when styled is set.
type recordingConsole struct {
	mu     sync.Mutex
	styled bool
	calls  []call
}

func (c *recordingConsole) record(method, msg string, styles []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var s []string
	if len(styles) > 0 {
		s = append(s, styles...)
	}
	c.calls = append(c.calls, call{Method: method, Msg: msg, Styles: s})
}

func (c *recordingConsole) Log(msg string, styles ...string)   { c.record("log", msg, styles) }
func (c *recordingConsole) Debug(msg string, styles ...string) { c.record("debug", msg, styles) }
func (c *recordingConsole) Info(msg string, styles ...string)  { c.record("info", msg, styles) }
func (c *recordingConsole) Warn(msg string, styles ...string)  { c.record("warn", msg, styles) }
func (c *recordingConsole) Error(msg string, styles ...string) { c.record("error", msg, styles) }

func (c *recordingConsole) Styled() bool { return c.styled }

func (c *recordingConsole) snapshot() []call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]call(nil), c.calls...)
}

// plainOnly hides Styled so the wrapped console does not satisfy StyledConsole.
type plainOnly struct {
	Console
}
