// Package bytekit is a small codec layer: bytes <-> hex, bytes <-> UTF-8 text,
// SHA-1 digests and cryptographically secure random fill, behind a single
// contract with interchangeable host bindings.
//
// Components:
//   - host.Host: the codec contract. Bindings: host/portable (lookup tables,
//     injectable crypto capabilities) and host/native (Go runtime primitives).
//   - Kit: a Host chosen at composition time plus logging, hooks and
//     operation errors.
//   - view: zero-copy normalization of byte-addressable inputs.
//   - store: content-addressed values keyed by the hex SHA-1 of their encoding.
//
// Usage:
//
//	kit := bytekit.New(bytekit.Options{Host: portable.Default()})
//	sum, err := bytekit.Sum(ctx, kit, "hello")
//	id := kit.EncodeHex(sum) // 40 lowercase hex chars
//
// Hex decoding does not validate: malformed input yields binding-defined
// bytes, never an error. Digest and FillRandom fail with ErrUnsupported when
// the host has no secure primitive; they never degrade to a weaker source.
package bytekit
