// Package slog implements a console backed by the standard library's log/slog.
package slog
