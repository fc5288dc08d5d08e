package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/auth/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/internal/user"
	userDto "github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 4

type Config struct {
	// DemoPassword is accepted for every active account. Empty disables it.
	DemoPassword string
	BcryptCost   int
}

type sessionStore struct {
	Sessions map[string]model.Session `json:"sessions"`
}

type authUseCase struct {
	doc          *state.Document[sessionStore]
	directory    user.UseCase
	demoPassword string
	accounts     []model.User
	metrics      *metrics.Metrics
	logger       logger.ZapLogger
	now          func() time.Time
}

func NewAuthUseCase(repo state.Repository, directory user.UseCase, cfg Config, m *metrics.Metrics, log logger.ZapLogger) (auth.UseCase, error) {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	var hash []byte
	if cfg.DemoPassword != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), cost)
		if err != nil {
			return nil, err
		}
	}

	accounts := make([]model.User, len(demoAccounts))
	for i, a := range demoAccounts {
		a.PasswordHash = string(hash)
		accounts[i] = a
	}

	return &authUseCase{
		doc:          state.NewDocument(state.BucketAuth, repo, sessionStore{Sessions: map[string]model.Session{}}),
		directory:    directory,
		demoPassword: cfg.DemoPassword,
		accounts:     accounts,
		metrics:      m,
		logger:       log,
		now:          time.Now,
	}, nil
}

func (uc *authUseCase) Name() string                   { return uc.doc.Name() }
func (uc *authUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *authUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }

func (uc *authUseCase) Load(ctx context.Context) error {
	if err := uc.doc.Load(ctx); err != nil {
		return err
	}
	var missing bool
	uc.doc.View(func(s *sessionStore) { missing = s.Sessions == nil })
	if !missing {
		return nil
	}
	return uc.doc.Update(func(s *sessionStore) error {
		s.Sessions = map[string]model.Session{}
		return nil
	})
}

// loginPool lists the demo accounts first, then every directory account
// that is not shadowed by one.
func (uc *authUseCase) loginPool(ctx context.Context) []model.User {
	pool := make([]model.User, 0, len(uc.accounts))
	pool = append(pool, uc.accounts...)
	seen := make(map[string]bool, len(uc.accounts))
	for _, a := range uc.accounts {
		seen[a.ID] = true
	}
	for _, u := range uc.directory.ListUsers(ctx) {
		if seen[u.ID] {
			continue
		}
		pool = append(pool, u)
	}
	return pool
}

func findAccount(pool []model.User, identifier string) *model.User {
	needle := strings.ToLower(identifier)
	for i := range pool {
		if strings.Contains(strings.ToLower(pool[i].Name), needle) ||
			strings.Contains(strings.ToLower(pool[i].Email), needle) {
			return &pool[i]
		}
	}
	return nil
}

func (uc *authUseCase) passwordMatches(u *model.User, password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	if uc.demoPassword != "" && password == uc.demoPassword {
		return true
	}
	return uc.directory.CheckPassword(u, password)
}

func (uc *authUseCase) Login(ctx context.Context, identifier, password string) (*model.Session, error) {
	account := findAccount(uc.loginPool(ctx), identifier)
	switch {
	case account == nil:
		uc.metrics.LoginAttempt("not_found")
		return nil, auth.ErrUserNotFound
	case !account.IsActive:
		uc.metrics.LoginAttempt("deactivated")
		return nil, auth.ErrUserDeactivated
	case !uc.passwordMatches(account, password):
		uc.metrics.LoginAttempt("invalid_password")
		return nil, auth.ErrInvalidPassword
	}

	now := uc.now()
	err := uc.directory.TouchLastLogin(ctx, account.ID, now)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Error("failed to stamp last login", zap.String("user_id", account.ID), zap.Error(err))
		uc.metrics.LoginAttempt("error")
		return nil, auth.ErrLoginFailed
	}

	sessionUser := *account
	sessionUser.LastLogin = &now
	sessionUser.PasswordHash = ""
	session := model.Session{
		Token: uuid.New().String(),
		User: model.SessionUser{
			User:        sessionUser,
			Permissions: map[model.Permission]bool{},
		},
		IsAuthenticated: true,
		CreatedAt:       now,
	}

	_ = uc.doc.Update(func(s *sessionStore) error {
		s.Sessions[session.Token] = session
		return nil
	})

	uc.metrics.LoginAttempt("success")
	uc.logger.Info("user logged in", zap.String("user_id", account.ID), zap.String("role", string(account.Role)))
	return &session, nil
}

func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	return uc.doc.Update(func(s *sessionStore) error {
		if _, ok := s.Sessions[token]; !ok {
			return auth.ErrNotAuthenticated
		}
		delete(s.Sessions, token)
		return nil
	})
}

func (uc *authUseCase) CurrentSession(ctx context.Context, token string) (*model.Session, error) {
	var (
		session model.Session
		ok      bool
	)
	uc.doc.View(func(s *sessionStore) {
		session, ok = s.Sessions[token]
	})
	if !ok {
		return nil, auth.ErrNotAuthenticated
	}
	if !uc.accountActive(ctx, session.User.ID) {
		uc.revoke(token, session.User.ID)
		return nil, auth.ErrNotAuthenticated
	}
	session.User.Permissions = clonePermissions(session.User.Permissions)
	return &session, nil
}

// accountActive reports whether the account behind a session may still
// sign in. Deleted and deactivated directory accounts may not.
func (uc *authUseCase) accountActive(ctx context.Context, userID string) bool {
	for _, a := range uc.accounts {
		if a.ID == userID {
			return a.IsActive
		}
	}

	u, err := uc.directory.GetUser(ctx, userID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return false
	case err != nil:
		uc.logger.Error("failed to look up session user", zap.String("user_id", userID), zap.Error(err))
		return true
	}
	return u.IsActive
}

func (uc *authUseCase) revoke(token, userID string) {
	_ = uc.doc.Update(func(s *sessionStore) error {
		delete(s.Sessions, token)
		return nil
	})
	uc.logger.Info("session revoked", zap.String("user_id", userID))
}

func (uc *authUseCase) HasPermission(ctx context.Context, token string, permission model.Permission) bool {
	session, err := uc.CurrentSession(ctx, token)
	if err != nil {
		return false
	}
	return session.HasPermission(permission)
}

func (uc *authUseCase) UpdateUserRole(ctx context.Context, token string, role model.Role) (*model.Session, error) {
	if !role.Valid() {
		return nil, auth.ErrInvalidRole.With(map[string]any{"Role": string(role)})
	}

	session, err := uc.updateSession(token, func(u *model.SessionUser) {
		u.Role = role
	})
	if err != nil {
		return nil, err
	}

	if err := uc.mirror(ctx, session.User.ID, func(in *userDto.UpdateUserInput) {
		in.Role = role
	}); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *authUseCase) UpdateUserPermissions(ctx context.Context, token string, permissions map[model.Permission]bool) (*model.Session, error) {
	return uc.updateSession(token, func(u *model.SessionUser) {
		u.Permissions = clonePermissions(permissions)
	})
}

func (uc *authUseCase) UpdateUserProfile(ctx context.Context, token string, input *dto.UpdateProfileInput) (*model.Session, error) {
	session, err := uc.updateSession(token, func(u *model.SessionUser) {
		setNonEmpty(&u.Name, input.Name)
		setNonEmpty(&u.Email, input.Email)
		setNonEmpty(&u.Department, input.Department)
		if input.Phone != nil {
			u.Phone = *input.Phone
		}
		if input.Address != nil {
			u.Address = *input.Address
		}
		if input.Avatar != nil {
			u.Avatar = *input.Avatar
		}
	})
	if err != nil {
		return nil, err
	}

	profile := session.User
	if err := uc.mirror(ctx, profile.ID, func(in *userDto.UpdateUserInput) {
		in.Name = profile.Name
		in.Email = profile.Email
		in.Department = profile.Department
		in.Phone = profile.Phone
		in.Address = profile.Address
		in.Avatar = profile.Avatar
	}); err != nil {
		return nil, err
	}
	return session, nil
}

// updateSession applies fn to the user of the session identified by token.
func (uc *authUseCase) updateSession(token string, fn func(u *model.SessionUser)) (*model.Session, error) {
	var updated model.Session
	err := uc.doc.Update(func(s *sessionStore) error {
		session, ok := s.Sessions[token]
		if !ok {
			return auth.ErrNotAuthenticated
		}
		session.User.Permissions = clonePermissions(session.User.Permissions)
		fn(&session.User)
		s.Sessions[token] = session
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated.User.Permissions = clonePermissions(updated.User.Permissions)
	return &updated, nil
}

// mirror copies session changes into the directory record, if there is one.
func (uc *authUseCase) mirror(ctx context.Context, userID string, fn func(in *userDto.UpdateUserInput)) error {
	existing, err := uc.directory.GetUser(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	in := &userDto.UpdateUserInput{
		ID:         existing.ID,
		Name:       existing.Name,
		Email:      existing.Email,
		Department: existing.Department,
		Role:       existing.Role,
		IsActive:   existing.IsActive,
		Phone:      existing.Phone,
		Address:    existing.Address,
		Avatar:     existing.Avatar,
	}
	fn(in)
	_, err = uc.directory.UpdateUser(ctx, in)
	return err
}

func setNonEmpty(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func clonePermissions(in map[model.Permission]bool) map[model.Permission]bool {
	out := make(map[model.Permission]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
