package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/bytekit"
	c "github.com/unkn0wn-root/bytekit/codec"
	"github.com/unkn0wn-root/bytekit/internal/keys"
	"github.com/unkn0wn-root/bytekit/internal/wire"
	pr "github.com/unkn0wn-root/bytekit/provider"
)

const defaultTTL = 10 * time.Minute

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[V]
	kit            bytekit.Kit
	log            bytekit.Logger
	hooks          bytekit.Hooks
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}

	s := &store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
	}
	s.log = opts.Logger
	if s.log == nil {
		s.log = bytekit.NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = bytekit.NopHooks{}
	}
	s.defaultTTL = opts.DefaultTTL
	if s.defaultTTL == 0 {
		s.defaultTTL = defaultTTL
	}

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}

	if opts.Kit != nil {
		s.kit = opts.Kit
	} else {
		s.kit = bytekit.New(bytekit.Options{Logger: s.log, Hooks: s.hooks})
	}
	return s, nil
}

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) ID(ctx context.Context, value V) (string, error) {
	_, sum, err := s.encode(ctx, value)
	if err != nil {
		return "", err
	}
	return s.kit.EncodeHex(sum), nil
}

func (s *store[V]) Put(ctx context.Context, value V, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, sum, err := s.encode(ctx, value)
	if err != nil {
		return "", err
	}
	id := s.kit.EncodeHex(sum)
	k := keys.Blob(s.ns, id)
	frame := wire.EncodeBlob(sum, payload)
	ok, err := s.provider.Set(ctx, k, frame, s.computeSetCost(k, frame), ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		s.log.Debug("Put rejected by provider (pressure)", bytekit.Fields{"key": k})
		s.hooks.ProviderSetRejected(k)
	}
	return id, nil
}

func (s *store[V]) Get(ctx context.Context, id string) (V, bool, error) {
	var zero V
	if !keys.IsDigestHex(id) {
		return zero, false, ErrInvalidID
	}
	k := keys.Blob(s.ns, id)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	framed, payload, err := wire.DecodeBlob(raw)
	if err != nil {
		s.heal(ctx, k, "corrupt")
		return zero, false, nil
	}
	want := s.kit.DecodeHex(id)
	if !bytes.Equal(framed, want) {
		s.heal(ctx, k, "digest_mismatch")
		return zero, false, nil
	}
	sum, err := s.kit.Digest(ctx, payload)
	if err != nil {
		return zero, false, err
	}
	if !bytes.Equal(sum, want) {
		s.heal(ctx, k, "digest_mismatch")
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) GetMany(ctx context.Context, ids []string) (map[string]V, []string, error) {
	out := make(map[string]V, len(ids))
	var missing []string
	for _, id := range ids {
		v, ok, err := s.Get(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("store: get %q: %w", id, err)
		}
		if ok {
			out[id] = v
		} else {
			missing = append(missing, id)
		}
	}
	return out, missing, nil
}

func (s *store[V]) Delete(ctx context.Context, id string) error {
	if !keys.IsDigestHex(id) {
		return ErrInvalidID
	}
	return s.provider.Del(ctx, keys.Blob(s.ns, id))
}

func (s *store[V]) encode(ctx context.Context, value V) (payload, sum []byte, err error) {
	payload, err = s.codec.Encode(value)
	if err != nil {
		return nil, nil, err
	}
	sum, err = s.kit.Digest(ctx, payload)
	if err != nil {
		return nil, nil, err
	}
	return payload, sum, nil
}

func (s *store[V]) heal(ctx context.Context, storageKey, reason string) {
	_ = s.provider.Del(ctx, storageKey)
	s.log.Debug("self-healed entry", bytekit.Fields{"key": storageKey, "reason": reason})
	s.hooks.SelfHeal(storageKey, reason)
}
