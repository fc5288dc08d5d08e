package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
)

func TestPreferences_DefaultsToLightMode(t *testing.T) {
	uc := NewPreferenceUseCase(repository.NewMemoryRepository(), logger.NewNop())
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if uc.GetPreferences(context.Background()).IsDarkMode {
		t.Error("dark mode should be off by default")
	}
}

func TestPreferences_ToggleAndSet(t *testing.T) {
	ctx := context.Background()
	uc := NewPreferenceUseCase(repository.NewMemoryRepository(), logger.NewNop())
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := uc.ToggleDarkMode(ctx)
	if err != nil || !p.IsDarkMode {
		t.Fatalf("ToggleDarkMode = %+v, %v; want dark mode on", p, err)
	}
	p, _ = uc.ToggleDarkMode(ctx)
	if p.IsDarkMode {
		t.Error("second toggle should switch dark mode off")
	}

	p, _ = uc.SetDarkMode(ctx, true)
	if !p.IsDarkMode {
		t.Error("SetDarkMode(true) did not enable dark mode")
	}
	p, _ = uc.SetDarkMode(ctx, true)
	if !p.IsDarkMode {
		t.Error("SetDarkMode(true) should be idempotent")
	}
	if !uc.Dirty() {
		t.Error("store should be dirty after updates")
	}
}

func TestPreferences_SurviveReload(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	uc := NewPreferenceUseCase(repo, logger.NewNop())
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := uc.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	if err := uc.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewPreferenceUseCase(repo, logger.NewNop())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reloaded.GetPreferences(ctx).IsDarkMode {
		t.Error("dark mode was not restored")
	}
}
