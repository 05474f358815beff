package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrSyslogUnavailable is returned when no syslog daemon can be reached.
var ErrSyslogUnavailable = errors.New("syslog is not available")

//go:generate mockgen -source=syslog.go -package=logger -destination=mock_syslogger.go

// Syslogger is a connection to the system log.
type Syslogger interface {
	// WriteLevel sends msg at the given priority.
	WriteLevel(p Priority, msg string) error
	// Close releases the connection.
	Close() error
}

// Dependency injection points for testing outputs.
var (
	outStderr  io.Writer = os.Stderr
	dialSyslog           = dialSystemLog
)

// programName is the identity tag sent with every syslog message.
func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "srflog"
}
