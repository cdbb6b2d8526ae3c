package conv

import "unicode/utf8"

// ValidText decodes b as UTF-8. Each maximal ill-formed subsequence becomes
// one U+FFFD, the same replacement rule browsers and Node apply, so a run of
// three bad bytes yields three replacement characters while a truncated
// multi-byte sequence yields one.
func ValidText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]byte, 0, len(b)+8)
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			out = append(out, c)
			i++
			continue
		}
		n := validPrefix(b[i:])
		if n > 0 {
			out = append(out, b[i:i+n]...)
			i += n
			continue
		}
		out = utf8.AppendRune(out, utf8.RuneError)
		i += -n
	}
	return string(out)
}

// validPrefix inspects the sequence starting with a non-ASCII lead byte.
// It returns the sequence length when well-formed, otherwise the negated
// length of the maximal ill-formed subsequence (at least 1).
func validPrefix(b []byte) int {
	size, lo, hi := leadInfo(b[0])
	if size == 0 {
		return -1
	}
	for k := 1; k < size; k++ {
		if k >= len(b) {
			return -k
		}
		c := b[k]
		if k > 1 {
			lo, hi = 0x80, 0xbf
		}
		if c < lo || c > hi {
			return -k
		}
	}
	return size
}

// leadInfo returns the sequence size for a lead byte and the accepted range
// of the second byte. size 0 marks a byte that can never start a sequence.
func leadInfo(c byte) (size int, lo, hi byte) {
	switch {
	case c >= 0xc2 && c <= 0xdf:
		return 2, 0x80, 0xbf
	case c == 0xe0:
		return 3, 0xa0, 0xbf
	case c == 0xed:
		return 3, 0x80, 0x9f
	case c >= 0xe1 && c <= 0xef:
		return 3, 0x80, 0xbf
	case c == 0xf0:
		return 4, 0x90, 0xbf
	case c >= 0xf1 && c <= 0xf3:
		return 4, 0x80, 0xbf
	case c == 0xf4:
		return 4, 0x80, 0x8f
	}
	return 0, 0, 0
}
