package zerolog

import "github.com/rs/zerolog"

// Console writes console calls to a zerolog.Logger. Log (the trace method)
// writes at zerolog's Trace level. Style arguments are ignored.
type Console struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Console {
	return &Console{l: l}
}

func (c *Console) Log(msg string, _ ...string)   { c.write(zerolog.TraceLevel, msg) }
func (c *Console) Debug(msg string, _ ...string) { c.write(zerolog.DebugLevel, msg) }
func (c *Console) Info(msg string, _ ...string)  { c.write(zerolog.InfoLevel, msg) }
func (c *Console) Warn(msg string, _ ...string)  { c.write(zerolog.WarnLevel, msg) }
func (c *Console) Error(msg string, _ ...string) { c.write(zerolog.ErrorLevel, msg) }

func (c *Console) write(lvl zerolog.Level, msg string) {
	// Fast path: drop early if below logger's level (no Event allocation).
	if lvl < c.l.GetLevel() {
		return
	}
	c.l.WithLevel(lvl).Msg(msg)
}
