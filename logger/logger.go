package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Config defines options for Init.
type Config struct {
	// Level is the severity threshold. Messages whose level is greater are
	// dropped. It is not range checked.
	// Default: 4 (everything) when read from the environment or a file.
	Level Level `envconfig:"LEVEL" default:"4" yaml:"level" toml:"level"`
	// Facility connects to syslog under this facility ("local0".."local6")
	// and installs a priority mask derived from Level.
	// Default: "" (connect lazily under LogUser on first use)
	Facility string `envconfig:"FACILITY" yaml:"facility" toml:"facility"`
	// File is accepted for compatibility; file logging is not implemented and
	// setting it without Facility only prints a warning.
	// Default: ""
	File string `envconfig:"FILE" yaml:"file" toml:"file"`
}

const fileLoggingWarning = "\n * file-based logging not implemented yet\n"

// Logger is a logging context: a threshold plus a syslog connection.
// It is safe for concurrent use.
type Logger struct {
	level atomic.Int64

	mu          sync.Mutex
	link        Syslogger
	mask        Mask
	unavailable bool

	pid    int
	tag    string
	stderr io.Writer
	dial   func(Facility, string) (Syslogger, error)
}

func newLogger() *Logger {
	l := &Logger{
		mask:   MaskUpTo(LogDebug),
		pid:    os.Getpid(),
		tag:    programName(),
		stderr: outStderr,
		dial:   dialSyslog,
	}
	l.level.Store(int64(DefaultLevel))
	return l
}

// New returns an independent Logger configured with cfg.
func New(cfg Config) (*Logger, error) {
	l := newLogger()
	if err := l.Configure(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// Configure applies cfg. With a facility it (re)connects to syslog and
// installs the facility's priority mask. Without one, a File only produces a
// warning on stderr. The threshold is replaced unless connecting fails.
func (l *Logger) Configure(cfg Config) error {
	if cfg.Facility != "" {
		facility, mask := ResolveFacility(cfg.Facility, int(cfg.Level))
		link, err := l.dial(facility, l.tag)
		if err != nil {
			return errors.Wrapf(err, "initialize syslog facility %q", cfg.Facility)
		}

		l.mu.Lock()
		if l.link != nil {
			_ = l.link.Close()
		}
		l.link = link
		l.mask = mask
		l.unavailable = false
		if mask.Allows(LogDebug) {
			_ = link.WriteLevel(LogDebug, "syslog initialized")
		}
		l.mu.Unlock()
	} else if cfg.File != "" {
		l.mu.Lock()
		fmt.Fprint(l.stderr, fileLoggingWarning)
		l.mu.Unlock()
	}

	l.SetLevel(int(cfg.Level))
	return nil
}

// SetLevel replaces the threshold.
func (l *Logger) SetLevel(level int) {
	l.level.Store(int64(level))
}

// Level returns the current threshold.
func (l *Logger) Level() int {
	return int(l.level.Load())
}

// Mask returns the priority mask applied to syslog writes.
func (l *Logger) Mask() Mask {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mask
}

// Close closes the syslog connection, if one is open. A later emit call
// reconnects under LogUser.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.link == nil {
		return nil
	}
	err := l.link.Close()
	l.link = nil
	l.mask = MaskUpTo(LogDebug)
	return err
}

// Emit logs msg at level, attributing it to the caller of Emit.
func (l *Logger) Emit(level Level, msg string) {
	l.emit(2, level, msg)
}

// EmitAt logs msg at level with an explicit call site.
func (l *Logger) EmitAt(level Level, file string, line int, msg string) {
	l.write(level, file, line, msg)
}

// emit resolves the call site skip frames above itself.
func (l *Logger) emit(skip int, level Level, msg string) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}
	l.write(level, file, line, msg)
}

func (l *Logger) write(level Level, file string, line int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	link := l.ensureLink()
	if link == nil {
		if level == ErrorLevel {
			io.WriteString(l.stderr, "ERR "+msg)
		}
		return
	}

	if int64(level) > l.level.Load() {
		return
	}

	out := formatLine(level, l.pid, file, line, msg)
	if p := level.Priority(); l.mask.Allows(p) {
		_ = link.WriteLevel(p, out)
	}
	if level == ErrorLevel {
		io.WriteString(l.stderr, out+"\n")
	}
}

// ensureLink returns the syslog connection, dialing the default facility on
// first use. A failed dial is remembered until the next Configure.
// Callers hold l.mu.
func (l *Logger) ensureLink() Syslogger {
	if l.link != nil || l.unavailable {
		return l.link
	}
	link, err := l.dial(LogUser, l.tag)
	if err != nil {
		l.unavailable = true
		return nil
	}
	l.link = link
	return link
}

func formatLine(level Level, pid int, file string, line int, msg string) string {
	return fmt.Sprintf("[%s:%d:%s:%d] %s", level.Tag(), pid, baseName(file), line, msg)
}

// baseName strips everything through the last '/'.
func baseName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// --- Method forms, one per level ---

// Internal logs a library-internal trace message.
func (l *Logger) Internal(msg string) { l.emit(2, InternalLevel, msg) }

// Debug logs a debug message.
func (l *Logger) Debug(msg string) { l.emit(2, DebugLevel, msg) }

// Info logs an informational message.
func (l *Logger) Info(msg string) { l.emit(2, InfoLevel, msg) }

// Warn logs a warning.
func (l *Logger) Warn(msg string) { l.emit(2, WarnLevel, msg) }

// Error logs an error. Errors are also written to stderr.
func (l *Logger) Error(msg string) { l.emit(2, ErrorLevel, msg) }

// Internalf logs a library-internal trace message formatted with fmt.Sprintf.
func (l *Logger) Internalf(format string, v ...any) {
	l.emit(2, InternalLevel, fmt.Sprintf(format, v...))
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	l.emit(2, DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	l.emit(2, InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	l.emit(2, WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	l.emit(2, ErrorLevel, fmt.Sprintf(format, v...))
}
