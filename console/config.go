package console

import "github.com/trickstertwo/xconsole"

// Config specifies what gets logged. It is an immutable value.
type Config struct {
	level     xconsole.Level
	prefix    string
	hasPrefix bool
}

// NewConfig logs every target up to and including level.
func NewConfig(level xconsole.Level) Config {
	return Config{level: level}
}

// WithPrefix logs up to level, and only targets that start with prefix.
// Matching is a case-sensitive byte prefix; an empty prefix matches everything.
func WithPrefix(level xconsole.Level, prefix string) Config {
	return Config{level: level, prefix: prefix, hasPrefix: true}
}

// DefaultConfig logs every target at Debug and above.
func DefaultConfig() Config {
	return NewConfig(xconsole.LevelDebug)
}

func (c Config) Level() xconsole.Level { return c.level }

// Prefix returns the target prefix filter and whether one is set.
func (c Config) Prefix() (string, bool) { return c.prefix, c.hasPrefix }
