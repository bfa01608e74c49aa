package slog

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level used for the console's trace method.
const LevelTrace = slog.Level(-8)

// Console writes console calls to a *slog.Logger. Style arguments are ignored.
type Console struct {
	l *slog.Logger
}

// New creates a console for l. A nil logger uses slog.Default().
func New(l *slog.Logger) *Console {
	if l == nil {
		l = slog.Default()
	}
	return &Console{l: l}
}

func (c *Console) Log(msg string, _ ...string)   { c.write(LevelTrace, msg) }
func (c *Console) Debug(msg string, _ ...string) { c.write(slog.LevelDebug, msg) }
func (c *Console) Info(msg string, _ ...string)  { c.write(slog.LevelInfo, msg) }
func (c *Console) Warn(msg string, _ ...string)  { c.write(slog.LevelWarn, msg) }
func (c *Console) Error(msg string, _ ...string) { c.write(slog.LevelError, msg) }

func (c *Console) write(lvl slog.Level, msg string) {
	// Use LogAttrs for minimal allocations
	c.l.LogAttrs(context.Background(), lvl, msg)
}
