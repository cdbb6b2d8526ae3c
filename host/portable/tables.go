package portable

const alphabet = "0123456789abcdef"

// Built once at package init and only read afterwards.
var (
	encodeLookup [256][2]byte
	decodeLookup [256]byte // non-hex bytes stay 0
)

func init() {
	for i := 0; i < 256; i++ {
		encodeLookup[i] = [2]byte{alphabet[i>>4&0xf], alphabet[i&0xf]}
	}
	for i := 0; i < 16; i++ {
		decodeLookup[alphabet[i]] = byte(i)
	}
}

// digit is the permissive base-16 digit parser used by the legacy codec.
// Unlike decodeLookup it accepts uppercase.
func digit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// isSpace reports the whitespace code units a lenient integer parser skips.
// 0xa0 is no-break space.
func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xa0:
		return true
	}
	return false
}

// pairValue parses one hex pair the lenient way, truncated to a byte.
func pairValue(p string) byte {
	i := 0
	for i < len(p) && isSpace(p[i]) {
		i++
	}
	neg := false
	if i < len(p) && (p[i] == '+' || p[i] == '-') {
		neg = p[i] == '-'
		i++
	}
	if i+1 < len(p) && p[i] == '0' && (p[i+1] == 'x' || p[i+1] == 'X') {
		i += 2
	}
	var v byte
	for ; i < len(p); i++ {
		d, ok := digit(p[i])
		if !ok {
			break
		}
		v = v<<4 | d
	}
	if neg {
		v = -v
	}
	return v
}
