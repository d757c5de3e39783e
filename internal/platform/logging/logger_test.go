package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.With("component", "ownership").Warn("owner replaced", "player_id", int64(12), "error", errors.New("boom"))
	_ = logger.Sync()

	out := buf.String()
	for _, want := range []string{`"msg":"owner replaced"`, `"component":"ownership"`, `"player_id":12`, `"error":"boom"`, `"level":"WARN"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log line to contain %s, got %s", want, out)
		}
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})
	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Fatalf("expected info entry to be filtered, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		"warn":    LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"garbage": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want=%v", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("does not panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
