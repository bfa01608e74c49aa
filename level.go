package xconsole

import (
	"fmt"
	"strings"
)

// Level is the severity of a record. Lower values are more severe:
// LevelError < LevelWarn < LevelInfo < LevelDebug < LevelTrace.
// LevelOff is only meaningful as a threshold and suppresses everything.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = [...]string{
	LevelOff:   "OFF",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// String returns the upper-case level name, or "LEVEL(n)" for unknown values.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("LEVEL(%d)", uint8(l))
}

// Valid reports whether l is one of LevelError..LevelTrace.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelOff, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
