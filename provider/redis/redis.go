package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/bytekit/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// Redis shares blobs across processes.
//
// Keys under the blob keyspace name their bytes forever, so Set never
// overwrites: the first write wins and later writes of the same key only
// move its TTL. A stale or corrupt entry is replaced after the store deletes
// it on read.
type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return b, true, nil
}

// Set writes with SET NX. When the key already exists its TTL is refreshed
// instead: EXPIRE for ttl > 0, PERSIST for ttl <= 0.
func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	err := p.rdb.SetArgs(ctx, key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if errors.Is(err, goredis.Nil) {
		return true, p.touch(ctx, key, ttl)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) touch(ctx context.Context, key string, ttl time.Duration) error {
	if ttl == 0 {
		return p.rdb.Persist(ctx, key).Err()
	}
	return p.rdb.Expire(ctx, key, ttl).Err()
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Close releases the client only when this provider owns it. Repeated calls
// are no-ops.
func (p *Redis) Close(context.Context) error {
	if !p.closeClient {
		return nil
	}
	if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
