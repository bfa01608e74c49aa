package terminal

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/trickstertwo/xclock"
)

// ColorMode selects when ANSI colour is written.
type ColorMode uint8

const (
	ColorAuto   ColorMode = iota // colour when the writer is a terminal and NO_COLOR is unset
	ColorAlways                  // always colour
	ColorNever                   // never colour
)

const DefaultTimeFormat = "15:04:05.000"

// Options configures a terminal Console.
type Options struct {
	Writer     io.Writer // default: os.Stderr
	Color      ColorMode
	Timestamps bool   // prefix every line with xclock.Now()
	TimeFormat string // default: DefaultTimeFormat
}

// Console writes console calls as lines to a terminal. Styled messages carry
// CSS directives per %c marker; they are translated to ANSI attributes.
// Writes are serialized; Console is safe for concurrent use.
type Console struct {
	mu         sync.Mutex
	w          io.Writer
	color      bool
	timestamps bool
	timeFormat string

	colors sync.Map // CSS directive -> *color.Color
}

func New(opts Options) *Console {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}

	var useColor bool
	switch opts.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	default:
		useColor = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}

	return &Console{
		w:          w,
		color:      useColor,
		timestamps: opts.Timestamps,
		timeFormat: opts.TimeFormat,
	}
}

// Styled reports whether style markers are rendered as colour.
func (c *Console) Styled() bool { return c.color }

func (c *Console) Log(msg string, styles ...string)   { c.write(msg, styles) }
func (c *Console) Debug(msg string, styles ...string) { c.write(msg, styles) }
func (c *Console) Info(msg string, styles ...string)  { c.write(msg, styles) }
func (c *Console) Warn(msg string, styles ...string)  { c.write(msg, styles) }
func (c *Console) Error(msg string, styles ...string) { c.write(msg, styles) }

func (c *Console) write(msg string, styles []string) {
	var b strings.Builder
	b.Grow(len(msg) + 32)

	if c.timestamps {
		b.WriteString(xclock.Now().Format(c.timeFormat))
		b.WriteByte(' ')
	}

	// Only the first len(styles) markers are markers; a literal "%c" in the
	// message body beyond them is kept.
	parts := strings.SplitN(msg, "%c", len(styles)+1)
	b.WriteString(parts[0])
	for i, part := range parts[1:] {
		if !c.color {
			b.WriteString(part)
			continue
		}
		if col := c.colorFor(styles[i]); col != nil {
			b.WriteString(col.Sprint(part))
		} else {
			b.WriteString(part)
		}
	}
	b.WriteByte('\n')

	c.mu.Lock()
	_, _ = io.WriteString(c.w, b.String())
	c.mu.Unlock()
}

// colorFor returns nil for directives without any ANSI equivalent.
func (c *Console) colorFor(css string) *color.Color {
	if v, ok := c.colors.Load(css); ok {
		return v.(*color.Color)
	}
	var col *color.Color
	if attrs := cssAttributes(css); len(attrs) > 0 {
		col = color.New(attrs...)
		col.EnableColor()
	}
	v, _ := c.colors.LoadOrStore(css, col)
	return v.(*color.Color)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
