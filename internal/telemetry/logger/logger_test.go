package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("endpoint configured", "name", "Default", "path", "/")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "endpoint configured" {
		t.Errorf("msg = %v, want %q", entry["msg"], "endpoint configured")
	}
	if entry["name"] != "Default" {
		t.Errorf("name = %v, want Default", entry["name"])
	}
}

func TestNewTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf})

	log.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text output missing message: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info entry should be filtered at warn level: %s", buf.String())
	}
	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn entry should pass at warn level")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	SetLevel("debug")
	if GetLevel() != "debug" {
		t.Errorf("GetLevel() = %q, want debug", GetLevel())
	}
	log.Debug("now visible")
	if buf.Len() == 0 {
		t.Error("debug entry should pass after SetLevel(debug)")
	}

	SetLevel("info")
}

func TestRedactsCredentialAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("loaded endpoint", "user", "alice", "pass", "wonder")

	out := buf.String()
	if strings.Contains(out, "wonder") {
		t.Errorf("password leaked into log output: %s", out)
	}
	if !strings.Contains(out, redactedValue) {
		t.Errorf("redaction placeholder missing: %s", out)
	}
	// User names are not credentials.
	if !strings.Contains(out, "alice") {
		t.Errorf("user attribute should not be redacted: %s", out)
	}
}

func TestRedactsNestedGroups(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("endpoint",
		"endpoint", map[string]any{"name": "Default"},
		"credentials_pass", "hunter2",
	)

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("nested credential leaked: %s", buf.String())
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"pass", true},
		{"password", true},
		{"Pass", true},
		{"client_secret", true},
		{"token", true},
		{"user", false},
		{"path", false},
	}
	for _, tt := range tests {
		if got := IsSensitiveKey(tt.key); got != tt.want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
