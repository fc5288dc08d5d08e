package auth

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/auth/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

var (
	ErrUserNotFound      = i18n.NewError("auth.user_not_found")
	ErrInvalidPassword   = i18n.NewError("auth.invalid_password")
	ErrUserDeactivated   = i18n.NewError("auth.user_deactivated")
	ErrLoginFailed       = i18n.NewError("auth.login_failed")
	ErrNotAuthenticated  = i18n.NewError("auth.not_authenticated")
	ErrPermissionDenied  = i18n.NewError("auth.permission_denied")
	ErrInvalidRole       = i18n.NewError("auth.invalid_role")
	ErrUnknownPermission = i18n.NewError("auth.unknown_permission")
)

// UseCase owns authenticated sessions. Every session is addressed by its
// token.
type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	Login(ctx context.Context, identifier, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*model.Session, error)
	HasPermission(ctx context.Context, token string, permission model.Permission) bool

	UpdateUserRole(ctx context.Context, token string, role model.Role) (*model.Session, error)
	UpdateUserPermissions(ctx context.Context, token string, permissions map[model.Permission]bool) (*model.Session, error)
	UpdateUserProfile(ctx context.Context, token string, input *dto.UpdateProfileInput) (*model.Session, error)
}
