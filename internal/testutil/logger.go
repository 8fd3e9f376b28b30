// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// CaptureLogger records log output for assertions.
type CaptureLogger struct {
	*slog.Logger
	buf *syncBuffer
}

// NewCaptureLogger returns a logger whose text output can be inspected with String.
func NewCaptureLogger(level slog.Level) *CaptureLogger {
	buf := &syncBuffer{}
	return &CaptureLogger{
		Logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})),
		buf:    buf,
	}
}

// String returns everything logged so far.
func (c *CaptureLogger) String() string {
	return c.buf.String()
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
