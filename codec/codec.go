// Package codec turns values into bytes for the content-addressed store.
//
// A value's store id is the SHA-1 of its encoding, so codecs used with the
// store should be deterministic: equal values must encode to equal bytes.
// JSON, Msgpack (sorted map keys), CBOR (core deterministic) and Protobuf
// (deterministic marshal) are configured that way here.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
