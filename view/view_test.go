package view

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type digest []byte

func TestBytesIsIdentityForByteSlices(t *testing.T) {
	b := []byte{1, 2, 3}
	out := Bytes(b)
	require.True(t, SameMemory(b, out))
	assert.Equal(t, cap(b), cap(out))

	d := digest{4, 5}
	require.True(t, SameMemory([]byte(d), Bytes(d)))
}

func TestBytesCopiesStrings(t *testing.T) {
	s := "abc"
	out := Bytes(s)
	require.Equal(t, []byte("abc"), out)
	out[0] = 'x'
	assert.Equal(t, "abc", s)
}

func TestOfAliasesWiderElements(t *testing.T) {
	u := []uint32{0x01020304, 0xa0b0c0d0}
	v := Of(u)
	require.Len(t, v, 8)
	assert.Equal(t, uint32(0x01020304), binary.NativeEndian.Uint32(v[:4]))

	binary.NativeEndian.PutUint32(v[4:], 7)
	assert.Equal(t, uint32(7), u[1])
}

func TestOfPreservesOffset(t *testing.T) {
	u := []uint16{1, 2, 3, 4}
	whole := Of(u)
	sub := Of(u[1:3])
	require.Len(t, sub, 4)
	assert.True(t, SameMemory(whole[2:6], sub))
}

func TestOfAliasesArrays(t *testing.T) {
	var arr [4]byte
	v := Of(arr[:])
	v[2] = 9
	assert.Equal(t, byte(9), arr[2])

	type sample int16
	samples := []sample{-1}
	assert.Equal(t, []byte{0xff, 0xff}, Of(samples))
}

func TestOfEmpty(t *testing.T) {
	assert.Nil(t, Of([]uint64(nil)))
	v := Of([]float32{})
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestWindowCapsCapacity(t *testing.T) {
	buf := []byte("hello world")
	w := Window(buf, 6, 5)
	assert.Equal(t, "world", string(w))
	assert.Equal(t, 5, cap(w))

	head := Window(buf, 0, 5)
	_ = append(head, '!')
	assert.Equal(t, "hello world", string(buf))

	head[0] = 'H'
	assert.Equal(t, "Hello world", string(buf))
}

func TestWindowOutOfRangePanics(t *testing.T) {
	buf := make([]byte, 4)
	assert.Panics(t, func() { Window(buf, 2, 3) })
	assert.Panics(t, func() { Window(buf, -1, 1) })
}

func TestSameMemory(t *testing.T) {
	b := []byte{1, 2, 3}
	assert.True(t, SameMemory(b, b))
	assert.False(t, SameMemory(b, b[:2]))
	assert.False(t, SameMemory(b, []byte{1, 2, 3}))
	assert.True(t, SameMemory(nil, []byte{}))
}
