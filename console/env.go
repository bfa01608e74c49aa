package console

import (
	"os"

	"github.com/trickstertwo/xconsole"
)

// Env:
//
//	XCONSOLE_LEVEL:  off|error|warn|info|debug|trace (default debug)
//	XCONSOLE_PREFIX: target prefix filter; unset means all targets
const (
	EnvLevel  = "XCONSOLE_LEVEL"
	EnvPrefix = "XCONSOLE_PREFIX"
)

// ConfigFromEnv builds a Config from the XCONSOLE_* variables. An unset level
// yields DefaultConfig's level; an unparsable one is returned as an error
// together with the default.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	level := DefaultConfig().Level()
	var err error
	if s, ok := lookup(EnvLevel); ok && s != "" {
		var parsed xconsole.Level
		if parsed, err = xconsole.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	if prefix, ok := lookup(EnvPrefix); ok {
		return WithPrefix(level, prefix), err
	}
	return NewConfig(level), err
}
