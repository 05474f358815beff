package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileOption_WarnsAndCreatesNothing(t *testing.T) {
	h := newHarness(t)
	logPath := filepath.Join(t.TempDir(), "x.log")

	if err := Init(Config{Level: 3, File: logPath}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("not in a file")

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Fatalf("log file should not be created, stat err = %v", err)
	}
	if got := h.stderr.String(); !strings.Contains(got, "file-based logging not implemented") {
		t.Fatalf("expected file logging warning on stderr, got %q", got)
	}
	if got := StandardLogger().Level(); got != 3 {
		t.Fatalf("threshold = %d, want 3", got)
	}
	if len(h.dialed) != 1 || h.dialed[0] != LogUser {
		t.Fatalf("messages should still go to syslog under LogUser, dialed %v", h.dialed)
	}
}

func TestFileOption_IgnoredWithFacility(t *testing.T) {
	h := newHarness(t)
	logPath := filepath.Join(t.TempDir(), "x.log")

	if err := Init(Config{Level: 1, Facility: "local5", File: logPath}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if h.stderr.Len() != 0 {
		t.Fatalf("no warning expected when a facility is set, got %q", h.stderr.String())
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Fatalf("log file should not be created, stat err = %v", err)
	}
}

func TestFileOption_WarnsOnEveryInit(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 2; i++ {
		if err := Init(Config{Level: 4, File: "/tmp/x.log"}); err != nil {
			t.Fatalf("Init: %v", err)
		}
	}
	if got := strings.Count(h.stderr.String(), "file-based logging not implemented"); got != 2 {
		t.Fatalf("expected one warning per Init, got %d in %q", got, h.stderr.String())
	}
}
