package console

import (
	"strings"

	"github.com/trickstertwo/xconsole"
)

const levelSlots = int(xconsole.LevelTrace) + 1

type outputFunc func(msg string, styles ...string)

// Adapter is the xconsole.Sink that filters records by Config and writes them
// to a Console. It is read-only after construction and safe for concurrent use
// as far as the Console is.
type Adapter struct {
	cfg    Config
	style  Style
	styled bool

	// Indexed by xconsole.Level; built once in NewAdapter.
	out    [levelSlots]outputFunc
	tags   [levelSlots]string
	styles [levelSlots]string
}

var _ xconsole.Sink = (*Adapter)(nil)

// NewAdapter builds an Adapter writing to con. Styled output is used when con
// implements StyledConsole and reports true.
func NewAdapter(cfg Config, con Console) *Adapter {
	a := &Adapter{
		cfg:   cfg,
		style: DefaultStyle(),
	}
	if sc, ok := con.(StyledConsole); ok {
		a.styled = sc.Styled()
	}

	a.out[xconsole.LevelTrace] = con.Log
	a.out[xconsole.LevelDebug] = con.Debug
	a.out[xconsole.LevelInfo] = con.Info
	a.out[xconsole.LevelWarn] = con.Warn
	a.out[xconsole.LevelError] = con.Error

	for l := xconsole.LevelError; l <= xconsole.LevelTrace; l++ {
		a.tags[l] = padLevel(l.String())
		a.styles[l] = a.style.ForLevel(l)
	}
	return a
}

// Config returns the adapter's configuration.
func (a *Adapter) Config() Config { return a.cfg }

// Styled reports whether records are written with style markers.
func (a *Adapter) Styled() bool { return a.styled }

// Enabled reports whether a record would be written. It never formats.
func (a *Adapter) Enabled(target string, level xconsole.Level) bool {
	if !level.Valid() || level > a.cfg.level {
		return false
	}
	if a.cfg.hasPrefix && !strings.HasPrefix(target, a.cfg.prefix) {
		return false
	}
	return true
}

// Log writes r to the console method named after its level.
func (a *Adapter) Log(r xconsole.Record) {
	if !a.Enabled(r.Target, r.Level) {
		return
	}
	out := a.out[r.Level]
	// A marker inside the target would shift the styles onto the wrong segments.
	if a.styled && !strings.Contains(r.Target, "%c") {
		out(a.styledMessage(r), a.styles[r.Level], a.style.Target, a.style.Args)
		return
	}
	out(a.plainMessage(r))
}

// Flush is a no-op; consoles are unbuffered.
func (a *Adapter) Flush() {}

// plainMessage renders "<LEVEL> <target>\n<args>".
func (a *Adapter) plainMessage(r xconsole.Record) string {
	tag := a.tags[r.Level]
	var b strings.Builder
	b.Grow(len(tag) + len(r.Target) + len(r.Args) + 2)
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(r.Target)
	b.WriteByte('\n')
	b.WriteString(r.Args)
	return b.String()
}

// styledMessage renders "%c<LEVEL>%c <target>%c\n<args>"; the markers take the
// level, target and args styles in that order.
func (a *Adapter) styledMessage(r xconsole.Record) string {
	tag := a.tags[r.Level]
	var b strings.Builder
	b.Grow(len(tag) + len(r.Target) + len(r.Args) + 8)
	b.WriteString("%c")
	b.WriteString(tag)
	b.WriteString("%c ")
	b.WriteString(r.Target)
	b.WriteString("%c\n")
	b.WriteString(r.Args)
	return b.String()
}

func padLevel(name string) string {
	const width = 5
	if len(name) >= width {
		return name
	}
	return name + strings.Repeat(" ", width-len(name))
}
