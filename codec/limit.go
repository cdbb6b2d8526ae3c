package codec

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned by LimitCodec.Decode for oversized payloads.
var ErrTooLarge = errors.New("codec: payload too large")

// LimitCodec wraps another codec to enforce a maximum payload size on both
// directions. If Max <= 0, size limiting is disabled.
//
// Typical use: keep oversized values out of a shared store, and refuse to
// decode oversized entries read back from it.
type LimitCodec[V any] struct {
	Inner Codec[V]
	Max   int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.Max > 0 && len(b) > c.Max {
		return nil, fmt.Errorf("encode %d > %d: %w", len(b), c.Max, ErrTooLarge)
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.Max > 0 && len(b) > c.Max {
		var zero V
		return zero, fmt.Errorf("decode %d > %d: %w", len(b), c.Max, ErrTooLarge)
	}
	return c.Inner.Decode(b)
}
