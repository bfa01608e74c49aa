package terminal

import (
	"strings"

	"github.com/fatih/color"
)

var bgColors = map[string]color.Attribute{
	"black":     color.BgBlack,
	"red":       color.BgRed,
	"darkred":   color.BgRed,
	"green":     color.BgGreen,
	"darkgreen": color.BgGreen,
	"yellow":    color.BgYellow,
	"gold":      color.BgYellow,
	"orange":    color.BgHiYellow,
	"blue":      color.BgBlue,
	"darkblue":  color.BgBlue,
	"magenta":   color.BgMagenta,
	"purple":    color.BgMagenta,
	"cyan":      color.BgCyan,
	"white":     color.BgWhite,
	"gray":      color.BgHiBlack,
	"grey":      color.BgHiBlack,
}

var fgColors = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"darkred":   color.FgRed,
	"green":     color.FgGreen,
	"darkgreen": color.FgGreen,
	"yellow":    color.FgYellow,
	"gold":      color.FgYellow,
	"orange":    color.FgHiYellow,
	"blue":      color.FgBlue,
	"darkblue":  color.FgBlue,
	"magenta":   color.FgMagenta,
	"purple":    color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgHiWhite,
	"gray":      color.FgHiBlack,
	"grey":      color.FgHiBlack,
}

// cssAttributes translates the subset of CSS that console styles use into
// ANSI attributes. Unknown properties and values (inherit, padding, ...) are
// ignored.
func cssAttributes(css string) []color.Attribute {
	var attrs []color.Attribute
	for _, decl := range strings.Split(css, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.ToLower(strings.TrimSpace(val))

		switch prop {
		case "background", "background-color":
			if a, ok := bgColors[val]; ok {
				attrs = append(attrs, a)
			}
		case "color":
			if a, ok := fgColors[val]; ok {
				attrs = append(attrs, a)
			}
		case "font-weight":
			if val == "bold" || val == "bolder" {
				attrs = append(attrs, color.Bold)
			}
		case "font-style":
			if val == "italic" {
				attrs = append(attrs, color.Italic)
			}
		case "text-decoration":
			if strings.Contains(val, "underline") {
				attrs = append(attrs, color.Underline)
			}
		}
	}
	return attrs
}
