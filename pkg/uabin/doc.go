// Package uabin decodes OPC UA binary-encoded Variant values.
//
// The package exposes a single decode entrypoint consumed by the session
// runtime. Its contract: given decoding options carrying the configured
// array, string and byte string limits, decoding of arbitrary, even
// adversarial, byte sequences terminates, never panics, and allocates no
// more than the limits allow. The result is always either a decoded value
// or a structured error.
//
//   - options.go: DecodingOptions, the allocation caps
//   - decoder.go: primitive little-endian readers
//   - variant.go: the Variant wire form and the Decode entrypoint
//   - errors.go: decode error sentinels
package uabin
