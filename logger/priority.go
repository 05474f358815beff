package logger

import "strings"

// Priority is a syslog severity as defined by RFC 5424.
type Priority int

const (
	LogEmerg Priority = iota
	LogAlert
	LogCrit
	LogErr
	LogWarning
	LogNotice
	LogInfo
	LogDebug
)

var priorityNames = [...]string{"EMERG", "ALERT", "CRIT", "ERR", "WARNING", "NOTICE", "INFO", "DEBUG"}

func (p Priority) String() string {
	if p < LogEmerg || p > LogDebug {
		return "UNKNOWN"
	}
	return priorityNames[p]
}

// Mask selects which syslog priorities are actually written, the way
// setlogmask(3) does for the C library.
type Mask int

// MaskOf returns the mask for a single priority.
func MaskOf(p Priority) Mask {
	return 1 << uint(p)
}

// MaskUpTo returns the mask for all priorities through p inclusive.
func MaskUpTo(p Priority) Mask {
	return (1 << (uint(p) + 1)) - 1
}

// Allows reports whether p is enabled in the mask.
func (m Mask) Allows(p Priority) bool {
	return m&MaskOf(p) != 0
}

// Priorities lists the enabled priorities, most urgent first.
func (m Mask) Priorities() []Priority {
	var out []Priority
	for p := LogEmerg; p <= LogDebug; p++ {
		if m.Allows(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m Mask) String() string {
	names := make([]string, 0, 8)
	for _, p := range m.Priorities() {
		names = append(names, p.String())
	}
	return strings.Join(names, "|")
}
