package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xconsole"
	"github.com/trickstertwo/xconsole/console"
)

// Config is an explicit, code-first configuration for a zap-backed console.
type Config struct {
	Writer        io.Writer             // default: os.Stderr
	JSON          bool                  // JSON encoder instead of zap's console encoder
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	Caller        bool                  // include caller in logs
	CallerSkip    int                   // extra frames to skip when resolving caller
}

// NewLogger builds the zap logger behind a Console. The core accepts every
// level; filtering is the adapter's job.
func NewLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := cfg.EncoderConfig
	if encCfg.TimeKey == "" && encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "message",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1), // effectively off for normal levels
	}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}
	return zap.New(core, opts...)
}

// Use builds a zap-backed Console from cfg and installs it as the global
// xconsole sink through console.Init semantics.
func Use(cfg Config, logCfg console.Config) *Console {
	c := New(NewLogger(cfg))
	console.InitWith(xconsole.Global(), logCfg, c)
	return c
}
