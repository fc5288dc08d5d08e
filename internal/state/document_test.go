package state_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
)

type counter struct {
	Count int `json:"count"`
}

func TestDocument_LoadSeedsAndSaves(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	doc := state.NewDocument("counter", repo, counter{Count: 7})
	if err := doc.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.Dirty() {
		t.Fatal("fresh seed should be dirty")
	}
	if err := doc.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if doc.Dirty() {
		t.Error("document should be clean after save")
	}

	payload, _ := repo.Get(ctx, "counter")
	if string(payload) != `{"count":7}` {
		t.Errorf("persisted %s", payload)
	}

	reloaded := state.NewDocument("counter", repo, counter{})
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	reloaded.View(func(c *counter) {
		if c.Count != 7 {
			t.Errorf("reloaded count = %d", c.Count)
		}
	})
}

func TestDocument_FailedUpdateStaysClean(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	_ = repo.Put(ctx, "counter", []byte(`{"count":1}`))

	doc := state.NewDocument("counter", repo, counter{})
	if err := doc.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	boom := errors.New("boom")
	err := doc.Update(func(c *counter) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if doc.Dirty() {
		t.Error("failed update must not mark dirty")
	}

	_ = doc.Update(func(c *counter) error {
		c.Count++
		return nil
	})
	if !doc.Dirty() {
		t.Error("successful update must mark dirty")
	}
}

type failingRepo struct{ repository.MemoryRepository }

func (f *failingRepo) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestDocument_SaveErrorKeepsDirty(t *testing.T) {
	ctx := context.Background()
	doc := state.NewDocument[counter]("counter", &failingRepo{}, counter{})
	_ = doc.Update(func(c *counter) error {
		c.Count = 3
		return nil
	})

	if err := doc.Save(ctx); err == nil {
		t.Fatal("expected save error")
	}
	if !doc.Dirty() {
		t.Error("document should stay dirty after failed save")
	}
}

func TestAutosaver_FlushesOnShutdown(t *testing.T) {
	repo := repository.NewMemoryRepository()
	doc := state.NewDocument("counter", repo, counter{})
	_ = doc.Update(func(c *counter) error {
		c.Count = 42
		return nil
	})

	saver := state.NewAutosaver(time.Hour, nil, logger.NewNop(), doc)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		saver.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("autosaver did not stop")
	}

	payload, _ := repo.Get(context.Background(), "counter")
	if string(payload) != `{"count":42}` {
		t.Errorf("expected final flush, got %s", payload)
	}
}
