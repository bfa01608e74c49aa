// Package terminal implements a console that writes one line per call to a
// terminal, translating CSS style directives into ANSI colour.
package terminal
