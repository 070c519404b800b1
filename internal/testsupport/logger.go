package testsupport

import (
	"log/slog"
	"strings"
	"testing"

	"fitframes/internal/logging"
)

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewLogger returns a debug-level console logger that writes through t.Log.
func NewLogger(t testing.TB) *slog.Logger {
	t.Helper()
	logger, err := logging.NewWithWriter(testWriter{t: t}, logging.Options{Format: "console", Level: "debug"})
	if err != nil {
		t.Fatalf("test logger: %v", err)
	}
	return logger
}
