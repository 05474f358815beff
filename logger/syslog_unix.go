//go:build !windows && !plan9

package logger

import (
	"log/syslog"

	"github.com/pkg/errors"
)

type systemLog struct {
	w *syslog.Writer
}

func dialSystemLog(facility Facility, tag string) (Syslogger, error) {
	w, err := syslog.New(syslog.Priority(facility)|syslog.LOG_DEBUG, tag)
	if err != nil {
		return nil, errors.Wrapf(ErrSyslogUnavailable, "connect to syslog as %s: %v", tag, err)
	}
	return &systemLog{w: w}, nil
}

func (s *systemLog) WriteLevel(p Priority, msg string) error {
	switch p {
	case LogEmerg:
		return s.w.Emerg(msg)
	case LogAlert:
		return s.w.Alert(msg)
	case LogCrit:
		return s.w.Crit(msg)
	case LogErr:
		return s.w.Err(msg)
	case LogWarning:
		return s.w.Warning(msg)
	case LogNotice:
		return s.w.Notice(msg)
	case LogInfo:
		return s.w.Info(msg)
	default:
		return s.w.Debug(msg)
	}
}

func (s *systemLog) Close() error {
	return s.w.Close()
}
