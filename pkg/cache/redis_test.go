package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fekuna/omnipos-clinic-service/pkg/cache"
)

func newClient(t *testing.T) (*cache.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisClient(&cache.Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestNewRedisClient_PingFails(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := cache.NewRedisClient(&cache.Config{Addr: addr}); err == nil {
		t.Fatal("expected ping error for a stopped server")
	}
}

func TestAcquireLock_Contention(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	ok, err := c.AcquireLock(ctx, "lock:inventory", "owner-a", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first AcquireLock = %v, %v", ok, err)
	}
	ok, err = c.AcquireLock(ctx, "lock:inventory", "owner-b", time.Minute)
	if err != nil {
		t.Fatalf("second AcquireLock: %v", err)
	}
	if ok {
		t.Fatal("a held lock must not be acquired twice")
	}
	if v, _ := mr.Get("lock:inventory"); v != "owner-a" {
		t.Errorf("lock value = %q, want owner-a", v)
	}

	mr.FastForward(time.Minute + time.Second)
	ok, err = c.AcquireLock(ctx, "lock:inventory", "owner-b", time.Minute)
	if err != nil || !ok {
		t.Errorf("AcquireLock after expiry = %v, %v", ok, err)
	}
}

func TestReleaseLock_OnlyOwner(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	if ok, err := c.AcquireLock(ctx, "lock:inventory", "owner-a", time.Minute); err != nil || !ok {
		t.Fatalf("AcquireLock = %v, %v", ok, err)
	}

	if err := c.ReleaseLock(ctx, "lock:inventory", "owner-b"); err != nil {
		t.Fatalf("ReleaseLock(other): %v", err)
	}
	if !mr.Exists("lock:inventory") {
		t.Fatal("release with a foreign value deleted the lock")
	}

	if err := c.ReleaseLock(ctx, "lock:inventory", "owner-a"); err != nil {
		t.Fatalf("ReleaseLock(owner): %v", err)
	}
	if mr.Exists("lock:inventory") {
		t.Error("owner release left the lock in place")
	}

	if err := c.ReleaseLock(ctx, "lock:inventory", "owner-a"); err != nil {
		t.Errorf("releasing a free lock must be a no-op: %v", err)
	}
}
