package bytekit

import (
	"context"

	"github.com/unkn0wn-root/bytekit/view"
)

// Sum digests any byte slice or string. Byte slices are hashed in place;
// strings are UTF-8 encoded first.
func Sum[T view.Source](ctx context.Context, k Kit, in T) ([]byte, error) {
	return k.Digest(ctx, view.Bytes(in))
}

// Fill overwrites the memory behind s with secure random bytes and returns s.
func Fill[S ~[]E, E view.Element](k Kit, s S) (S, error) {
	if _, err := k.FillRandom(view.Of(s)); err != nil {
		return nil, err
	}
	return s, nil
}

// Text decodes the bytes behind s as UTF-8.
func Text[S ~[]E, E view.Element](k Kit, s S) string {
	return k.BytesToText(view.Of(s))
}
