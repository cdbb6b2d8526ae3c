// Package conv holds zero-copy []byte <-> string conversions.
package conv

import "unsafe"

// BytesToString returns a string sharing b's memory.
// b MUST NOT be modified afterwards.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes returns a read-only view of s's bytes.
// The result MUST NOT be modified.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
