// Package view normalizes byte-addressable values into []byte without copying.
//
//	view.Bytes(b)          // []byte: identity, same slice
//	view.Bytes(s)          // string: UTF-8 bytes, the only allocating path
//	view.Of(arr[:])        // fixed-size array: aliases the array
//	view.Of([]uint32{...}) // wider elements: aliases the same memory, len*4 bytes
//	view.Window(buf, 4, 8) // explicit (buffer, offset, length) view
//
// Which path runs is decided at compile time by the type constraints.
package view

import "unsafe"

// Source is anything normalizable by Bytes.
type Source interface {
	~[]byte | ~string
}

// Element is any fixed-width numeric element type a view can alias.
type Element interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 |
		~uint64 | ~int64 | ~float32 | ~float64
}

// Bytes returns in as []byte. Byte slices (including named byte-slice types)
// are returned without copying; strings are UTF-8 encoded into a new slice.
func Bytes[T Source](in T) []byte {
	return []byte(in)
}

// Of returns a []byte aliasing the memory of s: same backing array, same
// starting offset, len(s)*sizeof(E) bytes. Writes through the result are
// visible in s. Byte order of multi-byte elements is the machine's.
func Of[S ~[]E, E Element](s S) []byte {
	if s == nil {
		return nil
	}
	var zero E
	n := len(s) * int(unsafe.Sizeof(zero))
	if n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData([]E(s)))), n)
}

// Window returns the n-byte view of buf starting at off. The capacity is
// capped at n so appends never write past the window. It panics on
// out-of-range bounds like a slice expression.
func Window(buf []byte, off, n int) []byte {
	return buf[off : off+n : off+n]
}

// SameMemory reports whether a and b start at the same address with the
// same length.
func SameMemory(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
