// Package config defines the server configuration structure.
package config

import "testing"

func TestParseSecurityPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    SecurityPolicy
		wantErr bool
	}{
		{"None", SecurityPolicyNone, false},
		{"Basic128Rsa15", SecurityPolicyBasic128Rsa15, false},
		{"Basic256", SecurityPolicyBasic256, false},
		{"Basic256Sha256", SecurityPolicyBasic256Sha256, false},
		{"", "", true},
		{"none", "", true},
		{"Basic512", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSecurityPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSecurityPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSecurityPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSecurityMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SecurityMode
		wantErr bool
	}{
		{"None", SecurityModeNone, false},
		{"Sign", SecurityModeSign, false},
		{"SignAndEncrypt", SecurityModeSignAndEncrypt, false},
		{"", "", true},
		{"sign", "", true},
		{"Encrypt", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSecurityMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSecurityMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSecurityMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSecurityMemberSets(t *testing.T) {
	if SecurityPolicy("Aes256Sha256RsaPss").Valid() {
		t.Error("policies outside the configured suite set must not be valid")
	}
	if SecurityMode("SignAndEncrypt ").Valid() {
		t.Error("member matching must be exact")
	}
}
