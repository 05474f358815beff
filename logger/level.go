package logger

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity. Lower values are more urgent; a message is
// emitted when its level is less than or equal to the configured threshold.
type Level int

const (
	// ErrorLevel is always emitted and is echoed to stderr.
	ErrorLevel Level = iota
	// WarnLevel enables warning logging.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// InternalLevel enables the most verbose, library-internal logging.
	InternalLevel
)

// DefaultLevel is the threshold in effect before Init is called.
const DefaultLevel = int(InternalLevel)

// AllLevels returns all supported levels, most urgent first.
func AllLevels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, InternalLevel}
}

// Tag returns the fixed-width label written into every log line.
func (l Level) Tag() string {
	switch l {
	case InternalLevel:
		return "INT "
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERR "
	default:
		return "DEBG"
	}
}

// Priority returns the syslog priority the level is sent at.
func (l Level) Priority() Priority {
	switch l {
	case InfoLevel:
		return LogInfo
	case WarnLevel:
		return LogWarning
	case ErrorLevel:
		return LogErr
	default:
		return LogDebug
	}
}

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case InternalLevel:
		return "INTERNAL"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel accepts a level name (case-insensitive) or its decimal ordinal.
// Ordinals are not range checked, the threshold is a plain integer.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG", "DEBG":
		return DebugLevel, nil
	case "INTERNAL", "INT":
		return InternalLevel, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("unknown log level %q", s)
	}
	return Level(n), nil
}

// Decode lets envconfig read a Level from a name or a number.
func (l *Level) Decode(value string) error {
	parsed, err := ParseLevel(value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalText supports YAML and TOML config files.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Decode(string(text))
}
