// Package config defines the server configuration structure.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	configs := map[string]*ServerConfig{
		"anonymous": DefaultAnonymous(),
		"sample":    DefaultSample(),
		"secure": New(NewEndpoint("secure", "/secure", false, "alice", "wonder",
			SecurityPolicyBasic256Sha256, SecurityModeSignAndEncrypt)),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server.yaml")
			if err := cfg.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(loaded, cfg) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
			}
		})
	}
}

func TestSaveInvalidLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	prior := []byte("prior content\n")
	if err := os.WriteFile(path, prior, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultAnonymous()
	cfg.Endpoints = nil

	err := cfg.Save(path)
	if err == nil {
		t.Fatal("Save() of an invalid configuration should fail")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Save() error = %T, want *ValidationError", err)
	}
	if len(verr.Violations) == 0 {
		t.Error("ValidationError should carry the violations")
	}

	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(got) != string(prior) {
		t.Errorf("file content = %q, want prior content untouched", got)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	cfg := DefaultAnonymous()
	err := cfg.Save(filepath.Join(t.TempDir(), "missing-dir", "server.yaml"))
	if err == nil {
		t.Fatal("Save() to a nonexistent directory should fail")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("an I/O failure should not surface as a ValidationError")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() of a malformed document should fail")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %T, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should carry the parser cause")
	}
}

func TestLoadDoesNotValidate(t *testing.T) {
	// A syntactically valid document with illegal values must load; the
	// caller is responsible for validating before use.
	doc := `
application_name: corrupt
application_uri: urn:corrupt
product_uri: urn:corrupt
pki_dir: pki
discovery_service: false
tcp_config:
  host: 127.0.0.1
  port: 4840
  hello_timeout: 120
endpoints:
  - name: bad
    path: /
    security_policy: Basic9000
    security_mode: None
max_array_length: 0
max_string_length: 100
max_byte_string_length: 100
`
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want success for a parsable document", err)
	}
	if cfg.IsValid() {
		t.Error("loaded configuration should fail validation")
	}
	if got := cfg.Endpoints[0].SecurityPolicy; got != "Basic9000" {
		t.Errorf("SecurityPolicy = %q, want the raw value preserved", got)
	}
}

func TestLoadToleratesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	cfg := DefaultAnonymous()
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("future_field: whatever\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want unknown fields tolerated", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}
