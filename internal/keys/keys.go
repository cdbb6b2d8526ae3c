package keys

// DigestHexLen is the length of a hex-encoded SHA-1 digest.
const DigestHexLen = 40

// Blob returns the storage key of a content id within a namespace.
func Blob(ns, id string) string {
	return "blob:" + ns + ":" + id
}

// IsDigestHex reports whether id is exactly DigestHexLen lowercase hex chars.
func IsDigestHex(id string) bool {
	if len(id) != DigestHexLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
