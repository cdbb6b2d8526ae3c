// Package portable is the host binding that owns its codec logic and reaches
// the runtime only for cryptography.
//
// Hex conversions run over two process-wide lookup tables. Digest and random
// fill go through injectable capabilities; a nil capability makes the
// corresponding operation fail with host.ErrUnsupported instead of degrading.
//
// Malformed hex is not validated: DecodeHex maps every byte outside 0-9a-f
// (uppercase included) to the nibble 0. Callers needing strictness must
// validate first.
package portable

import (
	"context"
	"crypto/rand"
	"crypto/sha1"
	"fmt"
	"io"
	"strings"

	"github.com/unkn0wn-root/bytekit/host"
	"github.com/unkn0wn-root/bytekit/internal/conv"
)

// AlgorithmSHA1 is the only algorithm name passed to Subtle.
const AlgorithmSHA1 = "SHA-1"

// Subtle is the runtime's digest primitive.
type Subtle interface {
	Digest(ctx context.Context, algorithm string, data []byte) ([]byte, error)
}

// Config selects the runtime capabilities. Zero value = no crypto at all.
type Config struct {
	Subtle Subtle    // nil => Digest fails with host.ErrUnsupported
	Random io.Reader // nil => FillRandom fails with host.ErrUnsupported; must be a CSPRNG
}

// Host is the portable binding. It is stateless apart from its capabilities
// and safe for concurrent use.
type Host struct {
	subtle Subtle
	random io.Reader
}

var _ host.Host = (*Host)(nil)

// New returns a Host over the given capabilities. Missing capabilities are
// reported per call, not here.
func New(cfg Config) *Host {
	return &Host{subtle: cfg.Subtle, random: cfg.Random}
}

// Default wires the Go runtime's SHA-1 and crypto/rand as capabilities.
func Default() *Host {
	return New(Config{Subtle: StdSubtle{}, Random: rand.Reader})
}

func (*Host) Name() string { return "portable" }

func (*Host) EncodeHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		e := encodeLookup[v]
		out[i*2] = e[0]
		out[i*2+1] = e[1]
	}
	return conv.BytesToString(out)
}

func (*Host) DecodeHex(s string) []byte {
	n := len(s) >> 1
	out := make([]byte, n)
	for i, j := 0, 0; i < n; i, j = i+1, j+2 {
		out[i] = decodeLookup[s[j]]<<4 | decodeLookup[s[j+1]]
	}
	return out
}

func (*Host) BinaryToHex(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		sb.WriteByte(alphabet[c>>4&0xf])
		sb.WriteByte(alphabet[c&0xf])
	}
	return sb.String()
}

// HexToBinary reads hex two characters at a time, each pair parsed like a
// lenient integer parser: leading whitespace is skipped, a sign and a 0x
// prefix are accepted, leading valid digits (any case) count, anything else
// yields 0. An odd trailing character is parsed on its own. Negative values
// keep their low byte.
func (*Host) HexToBinary(hex string) string {
	var sb strings.Builder
	sb.Grow((len(hex) + 1) / 2)
	for i := 0; i < len(hex); i += 2 {
		sb.WriteByte(pairValue(hex[i:min(i+2, len(hex))]))
	}
	return sb.String()
}

func (*Host) TextToBytes(s string) []byte { return []byte(s) }

func (*Host) BytesToText(b []byte) string { return conv.ValidText(b) }

func (h *Host) Digest(ctx context.Context, b []byte) ([]byte, error) {
	if h.subtle == nil {
		return nil, fmt.Errorf("no web crypto support: %w", host.ErrUnsupported)
	}
	sum, err := h.subtle.Digest(ctx, AlgorithmSHA1, b)
	if err != nil {
		return nil, err
	}
	if len(sum) != host.DigestSize {
		return nil, fmt.Errorf("portable: digest returned %d bytes, want %d", len(sum), host.DigestSize)
	}
	return sum, nil
}

func (h *Host) FillRandom(b []byte) error {
	if h.random == nil {
		return fmt.Errorf("no secure random source: %w", host.ErrUnsupported)
	}
	if _, err := io.ReadFull(h.random, b); err != nil {
		return fmt.Errorf("portable: random fill: %w", err)
	}
	return nil
}

// StdSubtle is a Subtle backed by crypto/sha1.
type StdSubtle struct{}

func (StdSubtle) Digest(_ context.Context, algorithm string, data []byte) ([]byte, error) {
	if algorithm != AlgorithmSHA1 {
		return nil, fmt.Errorf("digest algorithm %q: %w", algorithm, host.ErrUnsupported)
	}
	sum := sha1.Sum(data)
	return sum[:], nil
}
