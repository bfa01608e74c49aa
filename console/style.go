package console

import "github.com/trickstertwo/xconsole"

// Style holds the CSS directives applied to the level tag, the target and the
// message body of a styled record.
type Style struct {
	Trace string
	Debug string
	Info  string
	Warn  string
	Error string

	Target string
	Args   string
}

const levelBase = "color: white; padding: 0 3px; background:"

// DefaultStyle returns the built-in palette.
func DefaultStyle() Style {
	return Style{
		Trace:  levelBase + " gray;",
		Debug:  levelBase + " green;",
		Info:   levelBase + " green;",
		Warn:   levelBase + " gold;",
		Error:  levelBase + " red;",
		Target: "font-weight: bold; color: inherit;",
		Args:   "background: inherit; color: inherit;",
	}
}

// ForLevel returns the level tag directive for l, or "" for levels outside
// Error..Trace.
func (s Style) ForLevel(l xconsole.Level) string {
	switch l {
	case xconsole.LevelTrace:
		return s.Trace
	case xconsole.LevelDebug:
		return s.Debug
	case xconsole.LevelInfo:
		return s.Info
	case xconsole.LevelWarn:
		return s.Warn
	case xconsole.LevelError:
		return s.Error
	default:
		return ""
	}
}
