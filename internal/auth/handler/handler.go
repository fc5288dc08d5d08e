package handler

import (
	"context"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/auth/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type AuthHandler struct {
	clinicv1.UnimplementedAuthServiceServer
	uc     auth.UseCase
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) Login(ctx context.Context, req *clinicv1.LoginRequest) (*clinicv1.SessionResponse, error) {
	session, err := h.uc.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		h.logger.Debug("login rejected", zap.String("identifier", req.Identifier), zap.Error(err))
		return nil, auth.ToStatus(ctx, err)
	}
	return MapSession(session), nil
}

func (h *AuthHandler) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	token := auth.GetSessionToken(ctx)
	if err := h.uc.Logout(ctx, token); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *AuthHandler) CurrentSession(ctx context.Context, _ *emptypb.Empty) (*clinicv1.SessionResponse, error) {
	session, err := auth.RequireSession(ctx, h.uc)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return MapSession(session), nil
}

func (h *AuthHandler) HasPermission(ctx context.Context, req *clinicv1.HasPermissionRequest) (*clinicv1.HasPermissionResponse, error) {
	permission, ok := model.ResolvePermission(req.Permission)
	if !ok {
		return &clinicv1.HasPermissionResponse{Allowed: false}, nil
	}
	allowed := h.uc.HasPermission(ctx, auth.GetSessionToken(ctx), permission)
	return &clinicv1.HasPermissionResponse{Allowed: allowed}, nil
}

func (h *AuthHandler) UpdateUserRole(ctx context.Context, req *clinicv1.UpdateUserRoleRequest) (*clinicv1.SessionResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.uc, model.CanManageRoles); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	session, err := h.uc.UpdateUserRole(ctx, auth.GetSessionToken(ctx), model.Role(req.Role))
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return MapSession(session), nil
}

func (h *AuthHandler) UpdateUserPermissions(ctx context.Context, req *clinicv1.UpdateUserPermissionsRequest) (*clinicv1.SessionResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.uc, model.CanManageRoles); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	permissions := make(map[model.Permission]bool, len(req.Permissions))
	for id, allowed := range req.Permissions {
		p, ok := model.ResolvePermission(id)
		if !ok {
			return nil, auth.Status(ctx, codes.InvalidArgument, auth.ErrUnknownPermission.With(map[string]any{"Permission": id}))
		}
		permissions[p] = allowed
	}

	session, err := h.uc.UpdateUserPermissions(ctx, auth.GetSessionToken(ctx), permissions)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return MapSession(session), nil
}

func (h *AuthHandler) UpdateUserProfile(ctx context.Context, req *clinicv1.UpdateUserProfileRequest) (*clinicv1.SessionResponse, error) {
	session, err := h.uc.UpdateUserProfile(ctx, auth.GetSessionToken(ctx), &dto.UpdateProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Phone:      req.Phone,
		Address:    req.Address,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return MapSession(session), nil
}

func MapUser(u *model.User) *clinicv1.User {
	return &clinicv1.User{
		Id:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       string(u.Role),
		IsActive:   u.IsActive,
		LastLogin:  clinicv1.Timestamp(u.LastLogin),
		CreatedAt:  timestamppb.New(u.CreatedAt),
		Phone:      u.Phone,
		Address:    u.Address,
		Avatar:     u.Avatar,
	}
}

func MapSession(s *model.Session) *clinicv1.SessionResponse {
	permissions := make(map[string]bool, len(s.User.Permissions))
	for p, allowed := range s.User.Permissions {
		permissions[string(p)] = allowed
	}
	return &clinicv1.SessionResponse{
		Token:           s.Token,
		IsAuthenticated: s.IsAuthenticated,
		User:            MapUser(&s.User.User),
		Permissions:     permissions,
	}
}
