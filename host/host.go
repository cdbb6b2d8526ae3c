// Package host defines the codec contract implemented by every host binding.
//
// A binding adapts one runtime's native capabilities (hex, UTF-8, SHA-1,
// secure randomness) to the Host interface. Bindings MUST agree byte-for-byte
// on well-formed input: EncodeHex, DecodeHex of lowercase even-length hex,
// BinaryToHex, HexToBinary of well-formed hex, the text codec and Digest.
// Behaviour on malformed hex is binding-defined and never an error.
//
// Bindings are selected once at composition time (see bytekit.New) and are
// never type-inspected by shared call sites.
package host

import (
	"context"
	"errors"
)

// DigestSize is the length of every Digest result (SHA-1).
const DigestSize = 20

// ErrUnsupported is returned when the host lacks a secure cryptographic or
// random primitive. It is never replaced by a degraded fallback.
var ErrUnsupported = errors.New("host: capability unsupported")

// Host is the codec contract.
// Implementations must be safe for concurrent use.
type Host interface {
	// Name identifies the binding in logs and errors.
	Name() string

	// EncodeHex returns the lowercase hex form of b; len(out) == 2*len(b).
	EncodeHex(b []byte) string
	// DecodeHex decodes floor(len(s)/2) pairs. A trailing odd character is
	// dropped. Malformed characters never produce an error.
	DecodeHex(s string) []byte

	// BinaryToHex hex-encodes a legacy binary string (one byte per code unit).
	BinaryToHex(s string) string
	// HexToBinary rebuilds a legacy binary string, one byte per hex pair.
	HexToBinary(hex string) string

	// TextToBytes returns the UTF-8 encoding of s in a fresh slice.
	TextToBytes(s string) []byte
	// BytesToText decodes exactly b as UTF-8. Invalid sequences become U+FFFD.
	BytesToText(b []byte) string

	// Digest returns the SHA-1 of b (DigestSize bytes).
	// Returns an error wrapping ErrUnsupported when no digest primitive exists.
	Digest(ctx context.Context, b []byte) ([]byte, error)

	// FillRandom overwrites b with cryptographically secure random bytes.
	// Returns an error wrapping ErrUnsupported when no secure source exists.
	FillRandom(b []byte) error
}
