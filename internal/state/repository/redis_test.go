package repository_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/cache"
)

func newRedisRepo(t *testing.T) (*repository.RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisClient(&cache.Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return repository.NewRedisRepository(c), mr
}

func TestRedisRepository_GetMissingBucket(t *testing.T) {
	repo, _ := newRedisRepo(t)

	payload, err := repo.Get(context.Background(), "inventory-storage")
	if err != nil {
		t.Fatalf("redis.Nil must map to a missing bucket, got %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload, got %q", payload)
	}
}

func TestRedisRepository_PutOverwrites(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "order-storage", []byte(`{"orders":[]}`)); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := repo.Put(ctx, "order-storage", []byte(`{"orders":[{"id":"1"}]}`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	payload, err := repo.Get(ctx, "order-storage")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(payload) != `{"orders":[{"id":"1"}]}` {
		t.Errorf("unexpected payload %s", payload)
	}

	raw, err := mr.Get("clinic:state:order-storage")
	if err != nil || raw != string(payload) {
		t.Errorf("stored key = %q, %v", raw, err)
	}
	if ttl := mr.TTL("clinic:state:order-storage"); ttl != 0 {
		t.Errorf("state must not expire, ttl = %v", ttl)
	}
}

func TestRedisRepository_GetPropagatesErrors(t *testing.T) {
	repo, mr := newRedisRepo(t)
	mr.SetError("ERR server unavailable")

	if _, err := repo.Get(context.Background(), "user-storage"); err == nil {
		t.Fatal("expected error from a failing server")
	}
}
