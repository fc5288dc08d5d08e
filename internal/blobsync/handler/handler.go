package handler

import (
	"context"
	"errors"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type SyncHandler struct {
	clinicv1.UnimplementedSyncServiceServer
	uc     blobsync.UseCase
	authUC auth.UseCase
	logger logger.ZapLogger
}

func NewSyncHandler(uc blobsync.UseCase, authUC auth.UseCase, log logger.ZapLogger) *SyncHandler {
	return &SyncHandler{uc: uc, authUC: authUC, logger: log}
}

func (h *SyncHandler) GetStatus(ctx context.Context, _ *emptypb.Empty) (*clinicv1.SyncStatus, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanConfigureSystem); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return mapStatus(h.uc.Status(ctx)), nil
}

// UpdateConfig applies the set fields; enabling comes last so a new
// interval is already in place when polling starts.
func (h *SyncHandler) UpdateConfig(ctx context.Context, req *clinicv1.UpdateSyncConfigRequest) (*clinicv1.SyncStatus, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanConfigureSystem); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	if req.ConnectionString != nil {
		if err := h.uc.SetConnectionString(ctx, *req.ConnectionString); err != nil {
			return nil, h.toStatus(ctx, err)
		}
	}
	if req.ContainerName != nil {
		if err := h.uc.SetContainerName(ctx, *req.ContainerName); err != nil {
			return nil, h.toStatus(ctx, err)
		}
	}
	if req.PollingInterval != nil {
		if err := h.uc.SetPollingInterval(ctx, int(*req.PollingInterval)); err != nil {
			return nil, h.toStatus(ctx, err)
		}
	}
	if req.IsEnabled != nil {
		if err := h.uc.SetEnabled(ctx, *req.IsEnabled); err != nil {
			return nil, h.toStatus(ctx, err)
		}
	}
	return mapStatus(h.uc.Status(ctx)), nil
}

func (h *SyncHandler) TestConnection(ctx context.Context, req *clinicv1.TestConnectionRequest) (*clinicv1.TestConnectionResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanConfigureSystem); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	err := h.uc.TestConnection(ctx, req.ConnectionString, req.ContainerName)
	switch {
	case err == nil:
		return &clinicv1.TestConnectionResponse{Success: true}, nil
	case errors.Is(err, blobsync.ErrConfigRequired):
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.TestConnectionResponse{
		Success: false,
		Message: i18n.Localize(auth.GetLanguage(ctx), "sync.connection_error", map[string]any{"Reason": err.Error()}),
	}, nil
}

// SyncNow returns the result of failed runs too; only a missing
// configuration is reported as an error.
func (h *SyncHandler) SyncNow(ctx context.Context, _ *emptypb.Empty) (*clinicv1.SyncResult, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanConfigureSystem); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	res, err := h.uc.SyncNow(ctx)
	if res == nil {
		return nil, h.toStatus(ctx, err)
	}
	if err != nil {
		h.logger.Warn("sync run failed", zap.Error(err))
	}
	return mapResult(res), nil
}

func (h *SyncHandler) ClearErrors(ctx context.Context, _ *emptypb.Empty) (*clinicv1.SyncStatus, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanConfigureSystem); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	h.uc.ClearErrors(ctx)
	return mapStatus(h.uc.Status(ctx)), nil
}

func (h *SyncHandler) toStatus(ctx context.Context, err error) error {
	if errors.Is(err, blobsync.ErrConfigRequired) {
		return auth.Status(ctx, codes.FailedPrecondition, err)
	}
	return auth.ToStatus(ctx, err)
}

func mapStatus(st model.SyncState) *clinicv1.SyncStatus {
	return &clinicv1.SyncStatus{
		ConnectionString: st.ConnectionString,
		ContainerName:    st.ContainerName,
		PollingInterval:  int32(st.PollingInterval),
		IsEnabled:        st.IsEnabled,
		LastSyncTime:     clinicv1.Timestamp(st.LastSyncTime),
		SyncStatus:       string(st.SyncStatus),
		SyncErrors:       st.SyncErrors,
	}
}

func mapResult(res *model.SyncResult) *clinicv1.SyncResult {
	files := make([]*clinicv1.ProcessedFile, len(res.Files))
	for i, f := range res.Files {
		files[i] = &clinicv1.ProcessedFile{
			Name:             f.Name,
			Type:             string(f.Type),
			LastModified:     timestamppb.New(f.LastModified),
			ProcessedAt:      timestamppb.New(f.ProcessedAt),
			RecordsProcessed: int32(f.RecordsProcessed),
			Errors:           f.Errors,
		}
	}
	return &clinicv1.SyncResult{
		StartTime:        timestamppb.New(res.StartTime),
		EndTime:          timestamppb.New(res.EndTime),
		FilesProcessed:   int32(res.FilesProcessed),
		RecordsProcessed: int32(res.RecordsProcessed),
		Files:            files,
		Errors:           res.Errors,
		Status:           string(res.Status),
	}
}
