package preference

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
)

// UseCase holds the display preferences shared by all clients.
type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	GetPreferences(ctx context.Context) model.Preferences
	SetDarkMode(ctx context.Context, enabled bool) (model.Preferences, error)
	ToggleDarkMode(ctx context.Context) (model.Preferences, error)
}
