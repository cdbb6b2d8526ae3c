package codec

import "github.com/unkn0wn-root/bytekit/host"

// Bytes is an identity codec for []byte values.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String stores Go strings as their UTF-8 bytes through a host binding.
// The zero value uses plain conversions.
type String struct {
	Host host.Host
}

func (c String) Encode(s string) ([]byte, error) {
	if c.Host == nil {
		return []byte(s), nil
	}
	return c.Host.TextToBytes(s), nil
}

func (c String) Decode(b []byte) (string, error) {
	if c.Host == nil {
		return string(b), nil
	}
	return c.Host.BytesToText(b), nil
}

// Hex stores []byte values as lowercase hex text. Decoding does not
// validate; see host.Host.DecodeHex. Host must be set.
type Hex struct {
	Host host.Host
}

func (c Hex) Encode(b []byte) ([]byte, error) { return []byte(c.Host.EncodeHex(b)), nil }
func (c Hex) Decode(b []byte) ([]byte, error) { return c.Host.DecodeHex(string(b)), nil }
