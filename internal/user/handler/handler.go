package handler

import (
	"context"
	"errors"
	"strings"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	authHandler "github.com/fekuna/omnipos-clinic-service/internal/auth/handler"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/user"
	"github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
)

const minPasswordLength = 6

type UserHandler struct {
	clinicv1.UnimplementedUserServiceServer
	uc     user.UseCase
	authUC auth.UseCase
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, authUC auth.UseCase, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		authUC: authUC,
		logger: log,
	}
}

func (h *UserHandler) ListUsers(ctx context.Context, _ *emptypb.Empty) (*clinicv1.ListUsersResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	users := h.uc.ListUsers(ctx)
	out := make([]*clinicv1.User, len(users))
	for i := range users {
		out[i] = authHandler.MapUser(&users[i])
	}
	return &clinicv1.ListUsersResponse{Users: out}, nil
}

func (h *UserHandler) GetUser(ctx context.Context, req *clinicv1.GetUserRequest) (*clinicv1.UserResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	u, err := h.uc.GetUser(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.UserResponse{User: authHandler.MapUser(u)}, nil
}

func (h *UserHandler) CreateUser(ctx context.Context, req *clinicv1.CreateUserRequest) (*clinicv1.UserResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := validateProfile(req.Name, req.Email, req.Department, req.Role); err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}

	u, err := h.uc.AddUser(ctx, &dto.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       model.Role(req.Role),
		IsActive:   req.IsActive,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		Avatar:     req.Avatar,
	})
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.UserResponse{User: authHandler.MapUser(u)}, nil
}

func (h *UserHandler) UpdateUser(ctx context.Context, req *clinicv1.UpdateUserRequest) (*clinicv1.UserResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := validateProfile(req.Name, req.Email, req.Department, req.Role); err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}

	u, err := h.uc.UpdateUser(ctx, &dto.UpdateUserInput{
		ID:         req.Id,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
		Role:       model.Role(req.Role),
		IsActive:   req.IsActive,
		Phone:      req.Phone,
		Address:    req.Address,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.UserResponse{User: authHandler.MapUser(u)}, nil
}

func (h *UserHandler) DeleteUser(ctx context.Context, req *clinicv1.DeleteUserRequest) (*emptypb.Empty, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := h.uc.DeleteUser(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *UserHandler) ToggleUserStatus(ctx context.Context, req *clinicv1.ToggleUserStatusRequest) (*clinicv1.UserResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	u, err := h.uc.ToggleUserStatus(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.UserResponse{User: authHandler.MapUser(u)}, nil
}

func (h *UserHandler) SetPassword(ctx context.Context, req *clinicv1.SetPasswordRequest) (*emptypb.Empty, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanManageUsers); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}

	if err := h.uc.SetPassword(ctx, req.Id, req.Password); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *UserHandler) toStatus(ctx context.Context, err error) error {
	if errors.Is(err, user.ErrUserNotFound) {
		return auth.Status(ctx, codes.NotFound, err)
	}
	return auth.ToStatus(ctx, err)
}

func validateProfile(name, email, department, role string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return user.ErrNameRequired
	case !strings.Contains(email, "@"):
		return user.ErrEmailInvalid
	case strings.TrimSpace(department) == "":
		return user.ErrDepartmentRequired
	case !model.Role(role).Valid():
		return auth.ErrInvalidRole.With(map[string]any{"Role": role})
	}
	return nil
}

// validatePassword applies the create-form rules. An empty confirmation is
// not compared.
func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return user.ErrPasswordTooShort
	}
	if confirm != "" && confirm != password {
		return user.ErrPasswordMismatch
	}
	return nil
}
