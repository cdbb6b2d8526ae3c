package bytekit

import (
	"context"

	"github.com/unkn0wn-root/bytekit/host"
	"github.com/unkn0wn-root/bytekit/host/native"
)

type kit struct {
	h     host.Host
	name  string
	log   Logger
	hooks Hooks
}

func newKit(opts Options) *kit {
	k := &kit{
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
	if opts.Host != nil {
		k.h = opts.Host
	} else {
		k.h = native.New()
	}
	k.name = k.h.Name()
	k.log.Debug("bytekit ready", Fields{"host": k.name})
	return k
}

func (k *kit) HostName() string { return k.name }

func (k *kit) EncodeHex(b []byte) string     { return k.h.EncodeHex(b) }
func (k *kit) DecodeHex(s string) []byte     { return k.h.DecodeHex(s) }
func (k *kit) BinaryToHex(s string) string   { return k.h.BinaryToHex(s) }
func (k *kit) HexToBinary(hex string) string { return k.h.HexToBinary(hex) }
func (k *kit) TextToBytes(s string) []byte   { return k.h.TextToBytes(s) }
func (k *kit) BytesToText(b []byte) string   { return k.h.BytesToText(b) }

func (k *kit) Digest(ctx context.Context, b []byte) ([]byte, error) {
	sum, err := k.h.Digest(ctx, b)
	if err != nil {
		return nil, k.fail(OpDigest, err)
	}
	return sum, nil
}

func (k *kit) DigestAsync(ctx context.Context, b []byte) <-chan DigestResult {
	out := make(chan DigestResult, 1)
	go func() {
		defer close(out)
		sum, err := k.Digest(ctx, b)
		out <- DigestResult{Sum: sum, Err: err}
	}()
	return out
}

func (k *kit) FillRandom(b []byte) ([]byte, error) {
	if err := k.h.FillRandom(b); err != nil {
		return nil, k.fail(OpFillRandom, err)
	}
	return b, nil
}

func (k *kit) fail(op string, err error) error {
	k.log.Warn("host capability failed", Fields{"host": k.name, "op": op, "err": err})
	k.hooks.CapabilityFailed(k.name, op, err)
	return &OpError{Op: op, Host: k.name, Err: err}
}
