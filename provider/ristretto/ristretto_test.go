package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for zero config")
	}
}

func TestSyncWritesVisibleImmediately(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64, Metrics: true, SyncWrites: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	ok, err := p.Set(ctx, "blob:ns:x", []byte("frame"), 5, -1)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	b, ok, err := p.Get(ctx, "blob:ns:x")
	if err != nil || !ok || !bytes.Equal(b, []byte("frame")) {
		t.Fatalf("Get: %q ok=%v err=%v", b, ok, err)
	}
	if p.Metrics() == nil || p.Metrics().KeysAdded() == 0 {
		t.Fatalf("expected metrics to record the add")
	}

	if err := p.Del(ctx, "blob:ns:x"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "blob:ns:x"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestUnexpectedShapeIsDropped(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	p.c.Set("blob:ns:odd", 42, 1)
	p.c.Wait()
	if _, ok, err := p.Get(ctx, "blob:ns:odd"); ok || err != nil {
		t.Fatalf("Get of non-[]byte: ok=%v err=%v", ok, err)
	}
	if _, found := p.c.Get("blob:ns:odd"); found {
		t.Fatalf("expected entry to be dropped")
	}
}
