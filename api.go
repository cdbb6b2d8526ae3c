package bytekit

import (
	"context"

	"github.com/unkn0wn-root/bytekit/host"
)

// Kit is the codec surface handed to application code.
// It forwards to the Host chosen in Options and adds logging, hooks and
// OpError wrapping on the capability calls.
type Kit interface {
	HostName() string

	EncodeHex(b []byte) string
	DecodeHex(s string) []byte
	BinaryToHex(s string) string
	HexToBinary(hex string) string
	TextToBytes(s string) []byte
	BytesToText(b []byte) string

	// Digest returns the 20-byte SHA-1 of b.
	Digest(ctx context.Context, b []byte) ([]byte, error)
	// DigestAsync runs Digest on its own goroutine. The channel receives
	// exactly one result and is then closed. There is no cancellation:
	// once issued, the digest runs to completion.
	DigestAsync(ctx context.Context, b []byte) <-chan DigestResult

	// FillRandom overwrites b with secure random bytes and returns b.
	FillRandom(b []byte) ([]byte, error)
}

// DigestResult is the outcome of DigestAsync.
type DigestResult struct {
	Sum []byte
	Err error
}

// Options select the host binding and ambient plumbing.
// All fields are optional.
type Options struct {
	Host   host.Host // nil => native.New()
	Logger Logger    // nil => NopLogger
	Hooks  Hooks     // nil => NopHooks
}

func New(opts Options) Kit {
	return newKit(opts)
}

// Default returns a Kit over the native binding with logging disabled.
func Default() Kit {
	return newKit(Options{})
}
