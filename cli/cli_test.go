package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogTo(t *testing.T) {
	var buf bytes.Buffer
	LogTo(&buf, "test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "==>") {
		t.Errorf("expected output to contain '==>', got: %s", output)
	}
}

func TestLogErrorTo(t *testing.T) {
	var buf bytes.Buffer
	LogErrorTo(&buf, "error")

	output := buf.String()
	if !strings.Contains(output, "error") {
		t.Errorf("expected output to contain 'error', got: %s", output)
	}
	if !strings.Contains(output, "✗") {
		t.Errorf("expected output to contain '✗', got: %s", output)
	}
}

func TestLogDimTo(t *testing.T) {
	var buf bytes.Buffer
	LogDimTo(&buf, "dimmed")

	output := buf.String()
	if !strings.Contains(output, "dimmed") {
		t.Errorf("expected output to contain 'dimmed', got: %s", output)
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	LogTo(&buf, "value: %d", 42)

	output := buf.String()
	if !strings.Contains(output, "value: 42") {
		t.Errorf("expected formatted output, got: %s", output)
	}
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, true)
	log.Debugf("path: %s", "/foo")
	log.Detailf("home: %s", "/home")

	output := buf.String()
	if !strings.Contains(output, "path: /foo") {
		t.Errorf("expected debug output, got: %s", output)
	}
	if !strings.Contains(output, "home: /home") {
		t.Errorf("expected detail output, got: %s", output)
	}
}

func TestLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Debugf("path: %s", "/foo")
	log.Detailf("home: %s", "/home")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}
