// Package config defines the server configuration structure.
package config

import "testing"

func TestDecodingOptions(t *testing.T) {
	cfg := DefaultAnonymous()
	cfg.MaxArrayLength = 10
	cfg.MaxStringLength = 20
	cfg.MaxByteStringLength = 30

	opts := cfg.DecodingOptions()
	if opts.MaxArrayLength != 10 || opts.MaxStringLength != 20 || opts.MaxByteStringLength != 30 {
		t.Errorf("DecodingOptions() = %+v, want the configured limits", opts)
	}
}
