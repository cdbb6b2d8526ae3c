package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version  byte = 1
	kindBlob byte = 1

	// DigestLen is the size of the digest carried in every frame.
	DigestLen = 20

	hdrLen = 4 + 1 + 1 + DigestLen + 4
)

var (
	ErrCorrupt = errors.New("bytekit: corrupt entry")
	magic4     = [...]byte{'B', 'K', 'I', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Blob: magic(4) | ver(1) | kind(1=blob) | digest(20) | vlen(u32 be) | payload(vlen)
//
// EncodeBlob panics if digest is not DigestLen bytes.
func EncodeBlob(digest, payload []byte) []byte {
	if len(digest) != DigestLen {
		panic("bytekit: invalid digest length in blob")
	}
	out := make([]byte, hdrLen+len(payload))
	copy(out, magic4[:])
	out[4] = version
	out[5] = kindBlob
	copy(out[6:6+DigestLen], digest)
	binary.BigEndian.PutUint32(out[6+DigestLen:hdrLen], uint32(len(payload)))
	copy(out[hdrLen:], payload)
	return out
}

// DecodeBlob returns slices into b (zero-copy). Trailing bytes are corrupt.
func DecodeBlob(b []byte) (digest, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindBlob {
		return nil, nil, ErrCorrupt
	}
	off := 6
	digest = b[off : off+DigestLen]
	off += DigestLen

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen != len(b)-off {
		return nil, nil, ErrCorrupt
	}
	return digest, b[off : off+vlen], nil
}
