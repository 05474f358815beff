package logger

import (
	"bytes"
	"sync"
	"testing"
)

type record struct {
	priority Priority
	msg      string
}

// fakeSyslog records every write instead of talking to a daemon.
type fakeSyslog struct {
	mu      sync.Mutex
	records []record
	closed  bool
}

func (f *fakeSyslog) WriteLevel(p Priority, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record{priority: p, msg: msg})
	return nil
}

func (f *fakeSyslog) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSyslog) Records() []record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]record(nil), f.records...)
}

// harness swaps the stderr and syslog injection points and gives the
// package-level functions a fresh logger for the duration of a test.
type harness struct {
	stderr  bytes.Buffer
	link    *fakeSyslog
	dialErr error
	dialed  []Facility
	tags    []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{link: &fakeSyslog{}}

	oldStderr, oldDial, oldStd := outStderr, dialSyslog, std
	t.Cleanup(func() { outStderr, dialSyslog, std = oldStderr, oldDial, oldStd })

	outStderr = &h.stderr
	dialSyslog = h.dial
	std = newLogger()
	return h
}

func (h *harness) dial(facility Facility, tag string) (Syslogger, error) {
	h.dialed = append(h.dialed, facility)
	h.tags = append(h.tags, tag)
	if h.dialErr != nil {
		return nil, h.dialErr
	}
	return h.link, nil
}
