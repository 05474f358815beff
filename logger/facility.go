package logger

// Facility is a syslog facility code, already shifted into the bits the
// syslog protocol expects.
type Facility int

const (
	LogKern   Facility = 0 << 3
	LogUser   Facility = 1 << 3
	LogDaemon Facility = 3 << 3
	LogLocal0 Facility = 16 << 3
	LogLocal1 Facility = 17 << 3
	LogLocal2 Facility = 18 << 3
	LogLocal3 Facility = 19 << 3
	LogLocal4 Facility = 20 << 3
	LogLocal5 Facility = 21 << 3
	LogLocal6 Facility = 22 << 3
	LogLocal7 Facility = 23 << 3
)

// facilities maps configuration names to facility codes. local7 and the
// named system facilities are not mapped.
var facilities = map[string]Facility{
	"local0": LogLocal0,
	"local1": LogLocal1,
	"local2": LogLocal2,
	"local3": LogLocal3,
	"local4": LogLocal4,
	"local5": LogLocal5,
	"local6": LogLocal6,
}

// LookupFacility returns the facility for a configuration name.
func LookupFacility(name string) (Facility, bool) {
	f, ok := facilities[name]
	return f, ok
}

// ResolveFacility maps a facility name and threshold to the facility to
// connect with and the priority mask to install.
//
// Unknown names are not translated and the connection falls back to LogUser,
// the facility the C library picks when none is given.
//
// The mask always enables ERR and everything more urgent, and widens as the
// threshold grows:
//
//	level >= 1  WARNING
//	level >= 2  NOTICE
//	level >= 3  INFO
//	level >= 4  DEBUG
func ResolveFacility(name string, level int) (Facility, Mask) {
	facility, ok := LookupFacility(name)
	if !ok {
		facility = LogUser
	}

	mask := MaskUpTo(LogErr)
	if level >= 1 {
		mask |= MaskOf(LogWarning)
	}
	if level >= 2 {
		mask |= MaskOf(LogNotice)
	}
	if level >= 3 {
		mask |= MaskOf(LogInfo)
	}
	if level >= 4 {
		mask |= MaskOf(LogDebug)
	}
	return facility, mask
}
