// Package store keeps values addressed by the SHA-1 of their encoding.
//
// Keys:
//
//	blob:<ns>:<id>  - id is the 40-char lowercase hex digest of the encoded value
//
// Entries are framed with their digest and re-verified on every read. A frame
// that is corrupt, carries another digest, or no longer hashes to its id is
// deleted and reported as a miss (self-heal).
//
//	s, _ := store.New[Doc](store.Options[Doc]{Namespace: "docs", Provider: p, Codec: codec.JSON[Doc]{}})
//	id, _ := s.Put(ctx, doc, 0)
//	doc, ok, _ := s.Get(ctx, id)
package store

import (
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/bytekit"
	c "github.com/unkn0wn-root/bytekit/codec"
	pr "github.com/unkn0wn-root/bytekit/provider"
)

// ErrInvalidID is returned for ids that are not 40 lowercase hex characters.
var ErrInvalidID = errors.New("store: invalid content id")

type SetCostFunc func(key string, raw []byte) int64

// Store is a content-addressed value store.
type Store[V any] interface {
	// ID returns the content id value would be stored under, without storing it.
	ID(ctx context.Context, value V) (string, error)
	// Put stores value and returns its content id. A write the provider
	// rejects under pressure is not an error; the id is still returned.
	Put(ctx context.Context, value V, ttl time.Duration) (id string, err error)
	Get(ctx context.Context, id string) (v V, ok bool, err error)
	// GetMany returns hits by id; missing lists ids in request order.
	GetMany(ctx context.Context, ids []string) (values map[string]V, missing []string, err error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// Options tune the store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "docs", "avatars"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Kit            bytekit.Kit    // nil => bytekit.New over the native host with Logger/Hooks below
	Logger         bytekit.Logger // if nil, NopLogger is used
	Hooks          bytekit.Hooks  // if nil, NopHooks is used
	DefaultTTL     time.Duration  // 0 => 10m
	ComputeSetCost SetCostFunc    // default: frame length
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
