// Package config defines the server configuration structure.
package config

import "fmt"

// SecurityPolicy identifies the cryptographic algorithm suite protecting
// sessions on an endpoint.
type SecurityPolicy string

// Security policies understood by the server.
const (
	SecurityPolicyNone           SecurityPolicy = "None"
	SecurityPolicyBasic128Rsa15  SecurityPolicy = "Basic128Rsa15"
	SecurityPolicyBasic256       SecurityPolicy = "Basic256"
	SecurityPolicyBasic256Sha256 SecurityPolicy = "Basic256Sha256"
)

// Valid reports whether the policy is one of the understood members.
func (p SecurityPolicy) Valid() bool {
	switch p {
	case SecurityPolicyNone, SecurityPolicyBasic128Rsa15, SecurityPolicyBasic256, SecurityPolicyBasic256Sha256:
		return true
	}
	return false
}

func (p SecurityPolicy) String() string { return string(p) }

// ParseSecurityPolicy converts a string from an external source into a
// SecurityPolicy, rejecting unknown members.
//
// Persisted documents are deliberately not routed through this function:
// Load keeps unknown policy strings so that validation, not parsing, reports
// them.
func ParseSecurityPolicy(s string) (SecurityPolicy, error) {
	p := SecurityPolicy(s)
	if !p.Valid() {
		return "", fmt.Errorf("config: unknown security policy %q", s)
	}
	return p, nil
}

// SecurityMode selects whether session messages are signed, signed and
// encrypted, or left unprotected.
type SecurityMode string

// Security modes understood by the server.
const (
	SecurityModeNone           SecurityMode = "None"
	SecurityModeSign           SecurityMode = "Sign"
	SecurityModeSignAndEncrypt SecurityMode = "SignAndEncrypt"
)

// Valid reports whether the mode is one of the understood members.
func (m SecurityMode) Valid() bool {
	switch m {
	case SecurityModeNone, SecurityModeSign, SecurityModeSignAndEncrypt:
		return true
	}
	return false
}

func (m SecurityMode) String() string { return string(m) }

// ParseSecurityMode converts a string from an external source into a
// SecurityMode, rejecting unknown members.
func ParseSecurityMode(s string) (SecurityMode, error) {
	m := SecurityMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("config: unknown security mode %q", s)
	}
	return m, nil
}
