package logger

import "fmt"

// std is the process-wide logger behind the package-level functions.
var std = newLogger()

// Init configures the process-wide logger. It may be called again later to
// change the threshold or reconnect under another facility.
func Init(config Config) error {
	return std.Configure(config)
}

// StandardLogger returns the process-wide logger.
func StandardLogger() *Logger {
	return std
}

// SetLevel replaces the process-wide threshold.
func SetLevel(level int) {
	std.SetLevel(level)
}

// Close closes the process-wide syslog connection.
// Call this function when your application shuts down.
func Close() error {
	return std.Close()
}

// --- Package-level logging, one function per level ---

// Internal logs a library-internal trace message.
func Internal(msg string) { std.emit(2, InternalLevel, msg) }

// Debug logs a debug message.
func Debug(msg string) { std.emit(2, DebugLevel, msg) }

// Info logs an informational message.
func Info(msg string) { std.emit(2, InfoLevel, msg) }

// Warn logs a warning.
func Warn(msg string) { std.emit(2, WarnLevel, msg) }

// Error logs an error. Errors are also written to stderr, and are the only
// messages that survive when syslog is unreachable.
func Error(msg string) { std.emit(2, ErrorLevel, msg) }

// Internalf logs a library-internal trace message formatted with fmt.Sprintf.
func Internalf(format string, v ...any) {
	std.emit(2, InternalLevel, fmt.Sprintf(format, v...))
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) {
	std.emit(2, DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	std.emit(2, InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a warning formatted with fmt.Sprintf.
func Warnf(format string, v ...any) {
	std.emit(2, WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error formatted with fmt.Sprintf.
func Errorf(format string, v ...any) {
	std.emit(2, ErrorLevel, fmt.Sprintf(format, v...))
}
