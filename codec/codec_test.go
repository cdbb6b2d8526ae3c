package codec

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/bytekit/host/native"
	"github.com/unkn0wn-root/bytekit/host/portable"
)

type doc struct {
	Name string            `json:"name" msgpack:"name" cbor:"name"`
	Tags map[string]string `json:"tags" msgpack:"tags" cbor:"tags"`
	At   time.Time         `json:"at" msgpack:"at" cbor:"at"`
}

func sampleDoc() doc {
	tags := make(map[string]string)
	for i := 0; i < 32; i++ {
		tags[fmt.Sprintf("k%02d", i)] = fmt.Sprintf("v%d", i)
	}
	return doc{Name: "n", Tags: tags, At: time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC)}
}

// encodesStably encodes v repeatedly; map iteration order must not leak
// into the output.
func encodesStably[V any](t *testing.T, c Codec[V], v V) []byte {
	t.Helper()
	first, err := c.Encode(v)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		b, err := c.Encode(v)
		require.NoError(t, err)
		require.Equal(t, first, b, "encode %d differs", i)
	}
	return first
}

func TestJSON(t *testing.T) {
	c := JSON[doc]{}
	in := sampleDoc()
	b := encodesStably[doc](t, c, in)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Tags, out.Tags)
	assert.True(t, in.At.Equal(out.At))

	_, err = c.Decode([]byte("{"))
	require.Error(t, err)
}

func TestMsgpackSortsMapKeys(t *testing.T) {
	c := Msgpack[doc]{}
	in := sampleDoc()
	b := encodesStably[doc](t, c, in)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, in.Tags, out.Tags)
	assert.True(t, in.At.Equal(out.At))

	_, err = c.Decode([]byte{0xc1})
	require.Error(t, err)
}

func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR[doc](true)
	in := sampleDoc()
	b := encodesStably[doc](t, c, in)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, in.Tags, out.Tags)
	assert.True(t, in.At.Equal(out.At))
}

func TestCBORUnsortedRoundTrip(t *testing.T) {
	c, err := NewCBOR[map[string]int](false)
	require.NoError(t, err)
	b, err := c.Encode(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, out)
}

func TestProtobuf(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	in := wrapperspb.String("hello")
	b := encodesStably[*wrapperspb.StringValue](t, c, in)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.True(t, proto.Equal(in, out))
}

func TestBytesIsIdentity(t *testing.T) {
	in := []byte{1, 2, 3}
	b, err := Bytes{}.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, in, b)
	out, err := Bytes{}.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStringThroughHost(t *testing.T) {
	for _, c := range []String{{}, {Host: native.New()}, {Host: portable.Default()}} {
		b, err := c.Encode("héllo")
		require.NoError(t, err)
		assert.Equal(t, []byte("héllo"), b)
		s, err := c.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, "héllo", s)
	}
	s, err := String{Host: native.New()}.Decode([]byte{'a', 0xff})
	require.NoError(t, err)
	assert.Equal(t, "a\ufffd", s)
}

func TestHex(t *testing.T) {
	c := Hex{Host: portable.Default()}
	b, err := c.Encode([]byte{255, 0, 255})
	require.NoError(t, err)
	assert.Equal(t, "ff00ff", string(b))
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0, 255}, out)
}

func TestLimitCodec(t *testing.T) {
	c := LimitCodec[[]byte]{Inner: Bytes{}, Max: 4}

	_, err := c.Encode([]byte("12345"))
	require.True(t, errors.Is(err, ErrTooLarge))
	_, err = c.Decode([]byte("12345"))
	require.True(t, errors.Is(err, ErrTooLarge))

	b, err := c.Encode([]byte("1234"))
	require.NoError(t, err)
	out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), out)

	unlimited := LimitCodec[[]byte]{Inner: Bytes{}}
	_, err = unlimited.Encode(make([]byte, 1<<16))
	require.NoError(t, err)
}

func TestLimitCodecPassesInnerError(t *testing.T) {
	c := LimitCodec[doc]{Inner: JSON[doc]{}, Max: 1 << 10}
	_, err := c.Decode([]byte("not json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTooLarge))
}
