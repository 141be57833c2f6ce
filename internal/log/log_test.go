package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "hello", "workspace", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "workspace=test") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newJSONHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Warn(context.Background(), "slow upload", "bytes", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" || entry["msg"] != "slow upload" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in entry: %v", entry)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	for _, level := range []string{"debug", "INFO", " warn ", "error", ""} {
		if err := SetLevel(level); err != nil {
			t.Fatalf("SetLevel(%q) returned error: %v", level, err)
		}
	}
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel(error): %v", err)
	}
	if levelVar.Level() != slog.LevelError {
		t.Fatalf("expected error level, got %s", levelVar.Level())
	}
}

func TestSetFormat(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { ReplaceLogger(original) })

	if err := SetFormat("json"); err != nil {
		t.Fatalf("SetFormat(json): %v", err)
	}
	if _, ok := Logger().Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", Logger().Handler())
	}
	if err := SetFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
