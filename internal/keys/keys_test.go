package keys

import (
	"strings"
	"testing"
)

func TestBlobKey(t *testing.T) {
	if got := Blob("img", "ab"); got != "blob:img:ab" {
		t.Fatalf("got %q", got)
	}
}

func TestIsDigestHex(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"3a043594c187ec4b7c4adce40b173d018ad0c57a", true},
		{strings.Repeat("0", 40), true},
		{"3A043594C187EC4B7C4ADCE40B173D018AD0C57A", false},
		{"3a043594c187ec4b7c4adce40b173d018ad0c57", false},
		{"3a043594c187ec4b7c4adce40b173d018ad0c57ab", false},
		{"3a043594c187ec4b7c4adce40b173d018ad0c57g", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsDigestHex(tc.id); got != tc.want {
			t.Fatalf("IsDigestHex(%q)=%v want %v", tc.id, got, tc.want)
		}
	}
}
