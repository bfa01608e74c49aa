package xconsole

import "errors"

var (
	// ErrAlreadyInitialized is returned when a sink is installed on a
	// Dispatcher that already has one.
	ErrAlreadyInitialized = errors.New("attempted to set a logger after the logging system was already initialized")

	// ErrInvalidLevel is wrapped by ParseLevel for unrecognized level names.
	ErrInvalidLevel = errors.New("xconsole: invalid level")

	// ErrNilSink is returned when a nil Sink is installed.
	ErrNilSink = errors.New("xconsole: nil sink")
)
