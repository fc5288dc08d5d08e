package handler

import (
	"context"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/preference"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// PreferenceHandler needs no session; the theme is chosen before login.
type PreferenceHandler struct {
	clinicv1.UnimplementedPreferenceServiceServer
	uc     preference.UseCase
	logger logger.ZapLogger
}

func NewPreferenceHandler(uc preference.UseCase, log logger.ZapLogger) *PreferenceHandler {
	return &PreferenceHandler{uc: uc, logger: log}
}

func (h *PreferenceHandler) GetPreferences(ctx context.Context, _ *emptypb.Empty) (*clinicv1.Preferences, error) {
	return mapPreferences(h.uc.GetPreferences(ctx)), nil
}

func (h *PreferenceHandler) SetDarkMode(ctx context.Context, req *clinicv1.SetDarkModeRequest) (*clinicv1.Preferences, error) {
	p, err := h.uc.SetDarkMode(ctx, req.Enabled)
	if err != nil {
		h.logger.Error("failed to set dark mode", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return mapPreferences(p), nil
}

func (h *PreferenceHandler) ToggleDarkMode(ctx context.Context, _ *emptypb.Empty) (*clinicv1.Preferences, error) {
	p, err := h.uc.ToggleDarkMode(ctx)
	if err != nil {
		h.logger.Error("failed to toggle dark mode", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return mapPreferences(p), nil
}

func mapPreferences(p model.Preferences) *clinicv1.Preferences {
	return &clinicv1.Preferences{IsDarkMode: p.IsDarkMode}
}
