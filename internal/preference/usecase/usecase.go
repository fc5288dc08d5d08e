package usecase

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/preference"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"go.uber.org/zap"
)

type preferenceUseCase struct {
	doc    *state.Document[model.Preferences]
	logger logger.ZapLogger
}

func NewPreferenceUseCase(repo state.Repository, log logger.ZapLogger) preference.UseCase {
	return &preferenceUseCase{
		doc:    state.NewDocument(state.BucketTheme, repo, model.Preferences{}),
		logger: log,
	}
}

func (uc *preferenceUseCase) Name() string                   { return uc.doc.Name() }
func (uc *preferenceUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *preferenceUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }
func (uc *preferenceUseCase) Load(ctx context.Context) error { return uc.doc.Load(ctx) }

func (uc *preferenceUseCase) GetPreferences(ctx context.Context) model.Preferences {
	var p model.Preferences
	uc.doc.View(func(v *model.Preferences) { p = *v })
	return p
}

func (uc *preferenceUseCase) SetDarkMode(ctx context.Context, enabled bool) (model.Preferences, error) {
	return uc.update(func(p *model.Preferences) { p.IsDarkMode = enabled })
}

func (uc *preferenceUseCase) ToggleDarkMode(ctx context.Context) (model.Preferences, error) {
	return uc.update(func(p *model.Preferences) { p.IsDarkMode = !p.IsDarkMode })
}

func (uc *preferenceUseCase) update(fn func(p *model.Preferences)) (model.Preferences, error) {
	var out model.Preferences
	err := uc.doc.Update(func(p *model.Preferences) error {
		fn(p)
		out = *p
		return nil
	})
	if err != nil {
		return model.Preferences{}, err
	}
	uc.logger.Debug("preferences updated", zap.Bool("dark_mode", out.IsDarkMode))
	return out, nil
}
