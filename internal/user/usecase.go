package user

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

var (
	ErrUserNotFound       = i18n.NewError("user.not_found")
	ErrNameRequired       = i18n.NewError("user.name_required")
	ErrEmailInvalid       = i18n.NewError("user.email_invalid")
	ErrDepartmentRequired = i18n.NewError("user.department_required")
	ErrPasswordTooShort   = i18n.NewError("user.password_too_short")
	ErrPasswordMismatch   = i18n.NewError("user.password_mismatch")
)

// UseCase is the user directory: staff accounts independent of any session.
type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	ListUsers(ctx context.Context) []model.User
	GetUser(ctx context.Context, id string) (*model.User, error)
	AddUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	ToggleUserStatus(ctx context.Context, id string) (*model.User, error)

	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	SetPassword(ctx context.Context, id, password string) error
	CheckPassword(user *model.User, password string) bool
}
