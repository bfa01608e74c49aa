package xconsole

// Record is a single log event handed to a Sink. Args is the fully formatted
// message body. Sinks must not retain a Record beyond the Log call.
type Record struct {
	Level  Level
	Target string
	Args   string
}

// Sink is the single handler installed on a Dispatcher (Strategy).
type Sink interface {
	// Enabled reports whether a record for target at level would be emitted.
	// It must not perform any formatting or I/O.
	Enabled(target string, level Level) bool
	Log(r Record)
	Flush()
}
