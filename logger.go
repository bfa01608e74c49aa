package xconsole

// Logger is a lightweight handle that emits records for a fixed target.
// The zero value logs through the global Dispatcher with an empty target.
type Logger struct {
	d      *Dispatcher
	target string
}

func (l Logger) Target() string { return l.target }

// Enabled reports whether records at level would be emitted for this target.
func (l Logger) Enabled(level Level) bool { return l.dispatcher().Enabled(l.target, level) }

func (l Logger) Trace(args ...any) { l.dispatcher().Log(LevelTrace, l.target, args...) }
func (l Logger) Debug(args ...any) { l.dispatcher().Log(LevelDebug, l.target, args...) }
func (l Logger) Info(args ...any)  { l.dispatcher().Log(LevelInfo, l.target, args...) }
func (l Logger) Warn(args ...any)  { l.dispatcher().Log(LevelWarn, l.target, args...) }
func (l Logger) Error(args ...any) { l.dispatcher().Log(LevelError, l.target, args...) }

func (l Logger) Tracef(format string, args ...any) {
	l.dispatcher().Logf(LevelTrace, l.target, format, args...)
}

func (l Logger) Debugf(format string, args ...any) {
	l.dispatcher().Logf(LevelDebug, l.target, format, args...)
}

func (l Logger) Infof(format string, args ...any) {
	l.dispatcher().Logf(LevelInfo, l.target, format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.dispatcher().Logf(LevelWarn, l.target, format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.dispatcher().Logf(LevelError, l.target, format, args...)
}

func (l Logger) dispatcher() *Dispatcher {
	if l.d == nil {
		return global
	}
	return l.d
}
