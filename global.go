package xconsole

// Facade: process-wide Dispatcher (Singleton).
var global = NewDispatcher()

// Global returns the process-wide Dispatcher used by the package-level helpers.
func Global() *Dispatcher { return global }

// SetGlobalSink installs s on the global Dispatcher. Only the first call
// succeeds; later calls return ErrAlreadyInitialized.
func SetGlobalSink(s Sink) error { return global.SetSink(s) }

// SetMaxLevel sets the max level of the global Dispatcher.
func SetMaxLevel(l Level) { global.SetMaxLevel(l) }

// MaxLevel reports the max level of the global Dispatcher.
func MaxLevel() Level { return global.MaxLevel() }

// For returns a Logger on the global Dispatcher bound to target.
func For(target string) Logger { return global.For(target) }

// Flush flushes the global sink, if one is installed.
func Flush() { global.Flush() }
