package bytekit

import (
	"fmt"

	"github.com/unkn0wn-root/bytekit/host"
)

// ErrUnsupported is host.ErrUnsupported, re-exported for callers of Kit.
var ErrUnsupported = host.ErrUnsupported

// Operation names used in OpError and Hooks.
const (
	OpDigest     = "digest"
	OpFillRandom = "fill_random"
)

// OpError reports a failed capability call on a host binding.
type OpError struct {
	Op   string
	Host string
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bytekit: %s on %s host: unknown error", e.Op, e.Host)
	}
	return fmt.Sprintf("bytekit: %s on %s host: %v", e.Op, e.Host, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
