package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", WARN, &buf)
	l.Info("should be filtered out")
	if buf.Len() != 0 {
		t.Fatalf("Info was emitted below the WARN threshold: %q", buf.String())
	}
	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Fatalf("Warn at the configured level was not emitted")
	}
}

func TestOperationEventFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", INFO, &buf)
	l.OperationEvent("encaps", "ML-KEM-768", 3*time.Millisecond, "ok", Fields{"ciphertext_bytes": 1088})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Fields["operation"] != "encaps" {
		t.Errorf("fields[operation] = %v, want encaps", entry.Fields["operation"])
	}
	if entry.Fields["param_set"] != "ML-KEM-768" {
		t.Errorf("fields[param_set] = %v, want ML-KEM-768", entry.Fields["param_set"])
	}
	for _, secretKey := range []string{"ek", "dk", "shared_secret", "seed", "z"} {
		if _, present := entry.Fields[secretKey]; present {
			t.Errorf("log entry unexpectedly carries a field named %q", secretKey)
		}
	}
}

func TestEntryIsSingleJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", INFO, &buf)
	l.Info("hello")
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected exactly one newline-terminated JSON line, got %q", buf.String())
	}
}
