// Package config defines the server configuration structure.
package config

import "fmt"

// Violation describes one invariant broken by a configuration entity.
type Violation struct {
	// Subject identifies the entity the violation applies to, e.g.
	// `endpoint "Default"` or "server".
	Subject string

	// Message says which invariant is broken.
	Message string
}

func (v Violation) String() string {
	return v.Subject + ": " + v.Message
}

// Validate checks every endpoint invariant and returns one violation per
// broken invariant, identified by the endpoint name. It does not stop at
// the first problem.
func (e Endpoint) Validate() []Violation {
	var violations []Violation
	add := func(msg string) {
		violations = append(violations, Violation{
			Subject: fmt.Sprintf("endpoint %q", e.Name),
			Message: msg,
		})
	}

	if (e.User == "") != (e.Pass == "") {
		add("user and pass must both be set or both be unset, not just one or the other")
	}
	if !e.SecurityPolicy.Valid() {
		add(fmt.Sprintf("security policy %q is not one of None, Basic128Rsa15, Basic256, Basic256Sha256", e.SecurityPolicy))
	}
	if !e.SecurityMode.Valid() {
		add(fmt.Sprintf("security mode %q is not one of None, Sign, SignAndEncrypt", e.SecurityMode))
	}
	if (e.SecurityPolicy == SecurityPolicyNone) != (e.SecurityMode == SecurityModeNone) {
		add("security policy and security mode must both be None or neither of them")
	}
	if e.SecurityPolicy == SecurityPolicyNone && e.SecurityMode == SecurityModeNone && !e.Anonymous {
		add("security policy and mode allow anonymous connections but anonymous is not set to true")
	}

	return violations
}

// IsValid reports whether the endpoint satisfies every invariant. Callers
// that need the reasons should call Validate.
func (e Endpoint) IsValid() bool {
	return len(e.Validate()) == 0
}

// Validate checks the whole configuration and returns every violation found:
// the endpoint collection must be non-empty, every endpoint must be
// individually valid, and the three decoding limits must be nonzero. All
// problems are collected in one pass.
func (c *ServerConfig) Validate() []Violation {
	var violations []Violation
	add := func(msg string) {
		violations = append(violations, Violation{Subject: "server", Message: msg})
	}

	if len(c.Endpoints) == 0 {
		add("no endpoints are defined")
	}
	for _, e := range c.Endpoints {
		violations = append(violations, e.Validate()...)
	}
	if c.MaxArrayLength == 0 {
		add("max array length must be nonzero")
	}
	if c.MaxStringLength == 0 {
		add("max string length must be nonzero")
	}
	if c.MaxByteStringLength == 0 {
		add("max byte string length must be nonzero")
	}

	return violations
}

// IsValid reports whether the configuration satisfies every invariant.
// The runtime must see IsValid return true before putting a configuration
// into service; Load does not check this on its own.
func (c *ServerConfig) IsValid() bool {
	return len(c.Validate()) == 0
}
