package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xconsole"
	"github.com/trickstertwo/xconsole/console"
)

// Config is an explicit, code-first configuration for a zerolog-backed console.
type Config struct {
	Writer           io.Writer // default: os.Stderr
	Pretty           bool      // zerolog.ConsoleWriter instead of JSON
	PrettyTimeFormat string    // only used if Pretty; default time.RFC3339Nano
	NoColor          bool      // only used if Pretty
	Timestamp        bool      // add a timestamp taken from xclock
	Caller           bool      // include caller in logs
	CallerSkip       int       // frames to skip when resolving caller; default 5
}

// NewLogger builds the zerolog logger behind a Console. It logs every level;
// filtering is the adapter's job. Timestamps and caller frames are attached
// per logger, so zerolog's package-level TimestampFunc and
// CallerSkipFrameCount are left untouched and NewLogger may be called any
// number of times.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 5
	}

	if cfg.Pretty {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}
		if cfg.PrettyTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.PrettyTimeFormat
		}
		if !cfg.Caller {
			// Hide the caller column to avoid "<nil>".
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		w = cw
	}

	zl := zerolog.New(w).Level(zerolog.TraceLevel)

	if cfg.Timestamp {
		zl = zl.Hook(clockHook{})
	}
	if cfg.Caller {
		zl = zl.With().CallerWithSkipFrameCount(cfg.CallerSkip).Logger()
	}
	return zl
}

// clockHook stamps events with xclock.Now, so frozen or offset clocks apply.
type clockHook struct{}

func (clockHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Time(zerolog.TimestampFieldName, xclock.Now())
}

// Use builds a zerolog-backed Console from cfg and installs it as the global
// xconsole sink.
func Use(cfg Config, logCfg console.Config) *Console {
	c := New(NewLogger(cfg))
	console.InitWith(xconsole.Global(), logCfg, c)
	return c
}
