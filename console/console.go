package console

// Console is a host console with level-named output methods. Each method
// receives the message and, for styled output, one style directive per %c
// marker in the message.
type Console interface {
	Log(msg string, styles ...string)
	Debug(msg string, styles ...string)
	Info(msg string, styles ...string)
	Warn(msg string, styles ...string)
	Error(msg string, styles ...string)
}

// StyledConsole is an optional interface for consoles that render %c style
// markers. Consoles that do not implement it, or report false, receive the
// plain message with no style arguments.
type StyledConsole interface {
	Console
	Styled() bool
}
