package xconsole

// Facade helpers on the global Dispatcher. The target is the Go package path
// of the calling function.
// Usage: xconsole.Infof("listening on %d", port)

func Trace(args ...any) { emit(LevelTrace, args) }
func Debug(args ...any) { emit(LevelDebug, args) }
func Info(args ...any)  { emit(LevelInfo, args) }
func Warn(args ...any)  { emit(LevelWarn, args) }
func Error(args ...any) { emit(LevelError, args) }

func Tracef(format string, args ...any) { emitf(LevelTrace, format, args) }
func Debugf(format string, args ...any) { emitf(LevelDebug, format, args) }
func Infof(format string, args ...any)  { emitf(LevelInfo, format, args) }
func Warnf(format string, args ...any)  { emitf(LevelWarn, format, args) }
func Errorf(format string, args ...any) { emitf(LevelError, format, args) }

// emit and emitf must be called directly from the exported helpers so the
// caller depth stays fixed.
func emit(level Level, args []any) {
	if !global.passes(level) {
		return
	}
	global.Log(level, callerTarget(3), args...)
}

func emitf(level Level, format string, args []any) {
	if !global.passes(level) {
		return
	}
	global.Logf(level, callerTarget(3), format, args...)
}
