package logger

import "testing"

func TestLevelTags(t *testing.T) {
	cases := map[Level]string{
		InternalLevel: "INT ",
		DebugLevel:    "DEBG",
		InfoLevel:     "INFO",
		WarnLevel:     "WARN",
		ErrorLevel:    "ERR ",
		Level(9):      "DEBG",
	}
	for level, want := range cases {
		got := level.Tag()
		if got != want {
			t.Errorf("%v.Tag() = %q, want %q", level, got, want)
		}
		if len(got) != 4 {
			t.Errorf("%v.Tag() = %q is not 4 characters", level, got)
		}
	}
}

func TestLevelPriorities(t *testing.T) {
	cases := map[Level]Priority{
		InternalLevel: LogDebug,
		DebugLevel:    LogDebug,
		InfoLevel:     LogInfo,
		WarnLevel:     LogWarning,
		ErrorLevel:    LogErr,
		Level(-3):     LogDebug,
	}
	for level, want := range cases {
		if got := level.Priority(); got != want {
			t.Errorf("%v.Priority() = %v, want %v", level, got, want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("levels must grow more verbose: %v", levels)
		}
	}
	if ErrorLevel != 0 || InternalLevel != 4 {
		t.Fatalf("ordinals changed: ERROR=%d INTERNAL=%d", ErrorLevel, InternalLevel)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"error":    ErrorLevel,
		"ERR":      ErrorLevel,
		"Warning":  WarnLevel,
		"warn":     WarnLevel,
		" info ":   InfoLevel,
		"debug":    DebugLevel,
		"internal": InternalLevel,
		"INT":      InternalLevel,
		"3":        DebugLevel,
		"7":        Level(7),
		"-1":       Level(-1),
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(\"loud\") should fail")
	}
}

func TestLevelString(t *testing.T) {
	if got := InternalLevel.String(); got != "INTERNAL" {
		t.Fatalf("InternalLevel.String() = %q", got)
	}
	if got := Level(12).String(); got != "LEVEL(12)" {
		t.Fatalf("Level(12).String() = %q", got)
	}
}
