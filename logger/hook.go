package logger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook forwards logrus entries to a Logger, so applications already on
// logrus can reach syslog through the same threshold and line format.
//
//	log := logrus.New()
//	log.AddHook(logger.NewHook(logger.StandardLogger()))
type Hook struct {
	logger *Logger
}

// NewHook returns a Hook writing to l.
func NewHook(l *Logger) *Hook {
	return &Hook{logger: l}
}

// Levels implements logrus.Hook; every logrus level is forwarded.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. The call site comes from the entry when
// logrus.SetReportCaller is enabled and is "???":0 otherwise.
func (h *Hook) Fire(entry *logrus.Entry) error {
	file, line := "???", 0
	if entry.HasCaller() {
		file, line = entry.Caller.File, entry.Caller.Line
	}
	msg := entry.Message + encodeFields(entry.Data)
	h.logger.EmitAt(levelFromLogrus(entry.Level), file, line, msg)
	return nil
}

// encodeFields formats entry fields as " key=value" pairs sorted by key.
func encodeFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " " + strings.Join(parts, " ")
}

func levelFromLogrus(level logrus.Level) Level {
	switch level {
	case logrus.TraceLevel:
		return InternalLevel
	case logrus.DebugLevel:
		return DebugLevel
	case logrus.InfoLevel:
		return InfoLevel
	case logrus.WarnLevel:
		return WarnLevel
	default:
		return ErrorLevel
	}
}
