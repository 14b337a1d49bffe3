package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gamax42/tautulli-to-senscritique/internal/logging"
)

func TestConsoleLoggerWritesLevelAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("invalid viewCount, treating as 0", "line", 3, "value", "abc")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " WARN ") {
		t.Fatalf("expected WARN label in %q", line)
	}
	if !strings.Contains(line, "invalid viewCount, treating as 0") {
		t.Fatalf("expected message in %q", line)
	}
	if !strings.Contains(line, "line=3") || !strings.Contains(line, "value=abc") {
		t.Fatalf("expected attrs in %q", line)
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	logger.Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestConsoleLoggerCarriesWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With("run_id", "abc-123").Info("starting")
	if !strings.Contains(buf.String(), "run_id=abc-123") {
		t.Fatalf("expected run_id attr, got %q", buf.String())
	}
}

func TestConsoleLoggerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("processing", "title", "The Matrix")
	if !strings.Contains(buf.String(), `title="The Matrix"`) {
		t.Fatalf("expected quoted title, got %q", buf.String())
	}
}

func TestJSONLoggerEmitsStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("row skipped", "line", 7)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "row skipped" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "debug" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["line"] != float64(7) {
		t.Fatalf("unexpected line attr: %v", payload["line"])
	}
}

func TestNewRejectsUnknownFormatAndLevel(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(logging.Options{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
