// Package testutil provides test helpers shared across packages.
package testutil

import (
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Logs holds the records a logger wrote during a test.
type Logs struct {
	mu    sync.Mutex
	lines []string
}

// Contains reports whether any record contains every one of parts.
func (l *Logs) Contains(parts ...string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if containsAll(line, parts) {
			return true
		}
	}
	return false
}

func containsAll(line string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(line, p) {
			return false
		}
	}
	return true
}

// NewTestLogger returns a logger at level that writes each record to t.Log
// and keeps it in the returned Logs. Records only appear in test output on
// failure or with -v.
func NewTestLogger(t testing.TB, level slog.Level) (*slog.Logger, *Logs) {
	t.Helper()
	logs := &Logs{}
	handler := slog.NewTextHandler(testWriter{t: t, logs: logs}, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), logs
}

type testWriter struct {
	t    testing.TB
	logs *Logs
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	line := strings.TrimSuffix(string(p), "\n")
	w.logs.mu.Lock()
	w.logs.lines = append(w.logs.lines, line)
	w.logs.mu.Unlock()
	w.t.Log(line)
	return len(p), nil
}
