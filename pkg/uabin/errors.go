package uabin

import "errors"

// Decode failures wrap exactly one of these sentinels, so callers can tell
// a truncated or malformed stream from one that merely exceeds the
// configured limits.
var (
	// ErrDecoding indicates the byte stream ended early or carried a
	// malformed value.
	ErrDecoding = errors.New("uabin: decoding error")

	// ErrLimitsExceeded indicates a length prefix beyond the configured
	// decoding limits.
	ErrLimitsExceeded = errors.New("uabin: decoding limits exceeded")

	// ErrUnsupportedType indicates an encoding byte naming a type this
	// decoder does not handle.
	ErrUnsupportedType = errors.New("uabin: unsupported variant type")
)
