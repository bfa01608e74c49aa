package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xconsole"
	"github.com/trickstertwo/xconsole/console"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog-backed console.
type Config struct {
	Writer         io.Writer            // default: os.Stderr
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level is always set to LevelTrace
}

// NewLogger builds the slog logger behind a Console. The handler accepts every
// level; filtering is the adapter's job.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	opts.Level = LevelTrace

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return slog.New(h)
}

// Use builds a slog-backed Console from cfg and installs it as the global
// xconsole sink.
func Use(cfg Config, logCfg console.Config) *Console {
	c := New(NewLogger(cfg))
	console.InitWith(xconsole.Global(), logCfg, c)
	return c
}
