package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Console writes console calls to a zap.Logger.
//
// zap has no trace level, so Log (the trace method) writes at Debug. Style
// arguments are ignored; the adapter only sends them to styled consoles.
type Console struct {
	l *zap.Logger
}

// New creates a console for the provided zap logger. A nil logger discards.
func New(l *zap.Logger) *Console {
	if l == nil {
		l = zap.NewNop()
	}
	return &Console{l: l}
}

func (c *Console) Log(msg string, _ ...string)   { c.write(zapcore.DebugLevel, msg) }
func (c *Console) Debug(msg string, _ ...string) { c.write(zapcore.DebugLevel, msg) }
func (c *Console) Info(msg string, _ ...string)  { c.write(zapcore.InfoLevel, msg) }
func (c *Console) Warn(msg string, _ ...string)  { c.write(zapcore.WarnLevel, msg) }
func (c *Console) Error(msg string, _ ...string) { c.write(zapcore.ErrorLevel, msg) }

// Sync flushes the underlying zap core.
func (c *Console) Sync() error { return c.l.Sync() }

func (c *Console) write(lvl zapcore.Level, msg string) {
	// Check avoids building the entry when the core filters the level.
	if ce := c.l.Check(lvl, msg); ce != nil {
		ce.Write()
	}
}
