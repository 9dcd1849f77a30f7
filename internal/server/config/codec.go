// Package config defines the server configuration structure.
package config

import "github.com/uacore/uacore-go/pkg/uabin"

// DecodingOptions returns the wire-codec allocation limits carried by the
// configuration. Validate the configuration first: zero limits reject every
// non-null value.
func (c *ServerConfig) DecodingOptions() uabin.DecodingOptions {
	return uabin.DecodingOptions{
		MaxArrayLength:      c.MaxArrayLength,
		MaxStringLength:     c.MaxStringLength,
		MaxByteStringLength: c.MaxByteStringLength,
	}
}
