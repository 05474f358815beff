// Package logger provides a small leveled logger that writes to the system
// log, in the format used by OpenSRF services.
//
// # Line Format
//
// Every message is sent to syslog as
//
//	[TAG :pid:file.go:line] message
//
// where TAG is one of "INT ", "DEBG", "INFO", "WARN" or "ERR " and file is the
// base name of the source file that made the call.
//
// # Levels
//
// Levels are ordered from most urgent to most verbose:
//
//	0 ERROR, 1 WARN, 2 INFO, 3 DEBUG, 4 INTERNAL
//
// A message is dropped when its level is greater than the threshold. ERROR
// messages are also echoed to stderr. If syslog cannot be reached at all,
// ERROR messages go to stderr as "ERR message" and everything else is dropped.
//
// # Usage
//
// Initialize once at startup:
//
//	logger.Init(logger.Config{Level: 3, Facility: "local0"})
//	defer logger.Close()
//
// Log by level:
//
//	logger.Info("router started")
//	logger.Errorf("failed to connect: %v", err)
//
// With a Facility ("local0".."local6") the logger connects under that
// facility and installs a priority mask that widens with the threshold.
// Without one it connects lazily under LOG_USER on first use.
//
// Configuration may also come from OSRF_LOG_LEVEL, OSRF_LOG_FACILITY and
// OSRF_LOG_FILE (ConfigFromEnv) or a YAML/TOML file (LoadConfig).
//
// File logging is not implemented; Config.File only prints a warning.
package logger
