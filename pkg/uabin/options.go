package uabin

// Default decoding limits, matching the server configuration defaults.
const (
	DefaultMaxArrayLength      = 1000
	DefaultMaxStringLength     = 65535
	DefaultMaxByteStringLength = 65535
)

// DecodingOptions caps memory allocation while decoding. The limits are
// absolute: a zero limit rejects every non-null value of the limited kind,
// so build options from DefaultDecodingOptions or from a validated server
// configuration.
type DecodingOptions struct {
	// MaxArrayLength caps decoded array lengths in elements.
	MaxArrayLength uint32

	// MaxStringLength caps decoded string lengths in bytes.
	MaxStringLength uint32

	// MaxByteStringLength caps decoded byte string lengths in bytes.
	MaxByteStringLength uint32
}

// DefaultDecodingOptions returns the default decoding limits.
func DefaultDecodingOptions() DecodingOptions {
	return DecodingOptions{
		MaxArrayLength:      DefaultMaxArrayLength,
		MaxStringLength:     DefaultMaxStringLength,
		MaxByteStringLength: DefaultMaxByteStringLength,
	}
}
