// Package native is the host binding built directly on the Go runtime's
// primitives: encoding/hex, crypto/sha1 and crypto/rand.
//
// On malformed hex it follows native buffer semantics: decoding stops at the
// first pair containing a non-hex character and returns what was decoded so
// far. Uppercase digits are accepted.
package native

import (
	"context"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/unkn0wn-root/bytekit/host"
	"github.com/unkn0wn-root/bytekit/internal/conv"
)

// Host is the native binding. Safe for concurrent use.
type Host struct {
	random io.Reader
}

var _ host.Host = (*Host)(nil)

// New returns a Host reading randomness from crypto/rand.
func New() *Host { return &Host{random: rand.Reader} }

func (*Host) Name() string { return "native" }

func (*Host) EncodeHex(b []byte) string { return hex.EncodeToString(b) }

func (*Host) DecodeHex(s string) []byte {
	out := make([]byte, len(s)/2)
	// n counts the complete pairs before the first invalid one.
	n, _ := hex.Decode(out, conv.StringToBytes(s))
	return out[:n]
}

func (*Host) BinaryToHex(s string) string {
	return hex.EncodeToString(conv.StringToBytes(s))
}

func (h *Host) HexToBinary(s string) string {
	return conv.BytesToString(h.DecodeHex(s))
}

func (*Host) TextToBytes(s string) []byte { return []byte(s) }

func (*Host) BytesToText(b []byte) string { return conv.ValidText(b) }

func (*Host) Digest(_ context.Context, b []byte) ([]byte, error) {
	sum := sha1.Sum(b)
	return sum[:], nil
}

func (h *Host) FillRandom(b []byte) error {
	if _, err := io.ReadFull(h.random, b); err != nil {
		return fmt.Errorf("native: random fill: %w", err)
	}
	return nil
}
