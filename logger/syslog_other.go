//go:build windows || plan9

package logger

import "github.com/pkg/errors"

func dialSystemLog(_ Facility, tag string) (Syslogger, error) {
	return nil, errors.Wrapf(ErrSyslogUnavailable, "connect to syslog as %s", tag)
}
