package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/auth/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/auth/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/internal/user"
	userDto "github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	userUC "github.com/fekuna/omnipos-clinic-service/internal/user/usecase"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	auth      auth.UseCase
	directory user.UseCase
	metrics   *metrics.Metrics
	repo      *repository.MemoryRepository
}

func setup(t *testing.T, demoPassword string) *fixture {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	directory, err := userUC.NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())
	if err != nil {
		t.Fatalf("NewUserUseCase failed: %v", err)
	}
	if err := directory.Load(ctx); err != nil {
		t.Fatalf("directory Load failed: %v", err)
	}

	m := metrics.New(prometheus.NewRegistry())
	uc, err := usecase.NewAuthUseCase(repo, directory, usecase.Config{
		DemoPassword: demoPassword,
		BcryptCost:   bcrypt.MinCost,
	}, m, logger.NewNop())
	if err != nil {
		t.Fatalf("NewAuthUseCase failed: %v", err)
	}
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("auth Load failed: %v", err)
	}
	return &fixture{auth: uc, directory: directory, metrics: m, repo: repo}
}

func TestLogin_DemoAccount(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, err := f.auth.Login(ctx, "Dr. Sarah Schmidt", "1234")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !session.IsAuthenticated || session.Token == "" {
		t.Errorf("unexpected session: %+v", session)
	}
	if session.User.ID != "1" || session.User.Role != model.RoleDoctor {
		t.Errorf("wrong user: %+v", session.User)
	}
	if session.User.LastLogin == nil {
		t.Error("lastLogin should be stamped")
	}
	if session.User.PasswordHash != "" {
		t.Error("session must not carry the password hash")
	}

	got := testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues("success"))
	if got != 1 {
		t.Errorf("success counter = %v", got)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, err := f.auth.Login(ctx, "Dr. Sarah Schmidt", "wrong")
	if !errors.Is(err, auth.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if session != nil {
		t.Error("failed login must not return a session")
	}
	if err.Error() != "Ungültiges Passwort" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		want       error
	}{
		{"unknown user", "niemand", "1234", auth.ErrUserNotFound},
		{"deactivated directory user", "michael.weber", "1234", auth.ErrUserDeactivated},
		{"password too short", "thomas", "123", auth.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, "1234")
			if _, err := f.auth.Login(context.Background(), tt.identifier, tt.password); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLogin_MatchesEmailCaseInsensitive(t *testing.T) {
	f := setup(t, "1234")
	session, err := f.auth.Login(context.Background(), "JULIA.BECKER@KLINIK.DE", "1234")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.User.ID != "4" {
		t.Errorf("expected Julia Becker, got %s", session.User.Name)
	}
}

func TestLogin_DirectoryPasswordAndLastLogin(t *testing.T) {
	f := setup(t, "")
	ctx := context.Background()

	added, err := f.directory.AddUser(ctx, &userDto.CreateUserInput{
		Name:       "Lena Fischer",
		Email:      "lena.fischer@klinik.de",
		Department: "Radiologie",
		Role:       model.RoleNurse,
		IsActive:   true,
		Password:   "geheim123",
	})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	if _, err := f.auth.Login(ctx, "Lena", "1234"); !errors.Is(err, auth.ErrInvalidPassword) {
		t.Errorf("demo password must be off, got %v", err)
	}

	if _, err := f.auth.Login(ctx, "Lena", "geheim123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	stored, _ := f.directory.GetUser(ctx, added.ID)
	if stored.LastLogin == nil {
		t.Error("directory lastLogin should be stamped")
	}
}

func TestLogout_AndCurrentSession(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "thomas", "1234")
	if _, err := f.auth.CurrentSession(ctx, session.Token); err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}

	if err := f.auth.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := f.auth.CurrentSession(ctx, session.Token); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	if f.auth.HasPermission(ctx, session.Token, model.CanViewInventory) {
		t.Error("no session means no permissions")
	}
}

func TestHasPermission_RoleTableAndOverrides(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "Thomas Müller", "1234")
	if !f.auth.HasPermission(ctx, session.Token, model.CanModifyInventory) {
		t.Error("nurse should modify inventory")
	}
	if f.auth.HasPermission(ctx, session.Token, model.CanManageUsers) {
		t.Error("nurse should not manage users")
	}

	_, err := f.auth.UpdateUserPermissions(ctx, session.Token, map[model.Permission]bool{
		model.CanManageUsers:     true,
		model.CanModifyInventory: false,
	})
	if err != nil {
		t.Fatalf("UpdateUserPermissions failed: %v", err)
	}
	if !f.auth.HasPermission(ctx, session.Token, model.CanManageUsers) {
		t.Error("override should grant canManageUsers")
	}
	if f.auth.HasPermission(ctx, session.Token, model.CanModifyInventory) {
		t.Error("override should revoke canModifyInventory")
	}
}

func TestUpdateUserRole_MirrorsToDirectory(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "Julia Becker", "1234")
	updated, err := f.auth.UpdateUserRole(ctx, session.Token, model.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUserRole failed: %v", err)
	}
	if updated.User.Role != model.RoleAdmin {
		t.Errorf("session role = %s", updated.User.Role)
	}
	stored, _ := f.directory.GetUser(ctx, "4")
	if stored.Role != model.RoleAdmin {
		t.Errorf("directory role = %s", stored.Role)
	}

	if _, err := f.auth.UpdateUserRole(ctx, session.Token, "janitor"); !errors.Is(err, auth.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUpdateUserProfile_MirrorsToDirectory(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "Anna Hoffmann", "1234")
	updated, err := f.auth.UpdateUserProfile(ctx, session.Token, &dto.UpdateProfileInput{
		Name:    ptr("Anna Hoffmann-Lang"),
		Phone:   ptr("+49 30 1234"),
		Address: ptr("Lagerweg 3, Berlin"),
	})
	if err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}
	if updated.User.Name != "Anna Hoffmann-Lang" || updated.User.Email != "anna.hoffmann@klinik.de" {
		t.Errorf("unexpected session user: %+v", updated.User)
	}

	stored, _ := f.directory.GetUser(ctx, "6")
	if stored.Name != "Anna Hoffmann-Lang" || stored.Phone != "+49 30 1234" {
		t.Errorf("directory not updated: %+v", stored)
	}
}

func TestUpdateUserProfile_KeepsUnsetFields(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "Anna Hoffmann", "1234")
	if _, err := f.auth.UpdateUserProfile(ctx, session.Token, &dto.UpdateProfileInput{
		Phone:   ptr("+49 30 1234"),
		Address: ptr("Lagerweg 3, Berlin"),
		Avatar:  ptr("anna.png"),
	}); err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}

	updated, err := f.auth.UpdateUserProfile(ctx, session.Token, &dto.UpdateProfileInput{
		Name: ptr("Anna Lang"),
	})
	if err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}
	u := updated.User
	if u.Name != "Anna Lang" || u.Phone != "+49 30 1234" || u.Address != "Lagerweg 3, Berlin" || u.Avatar != "anna.png" {
		t.Errorf("name-only update changed other fields: %+v", u)
	}

	cleared, err := f.auth.UpdateUserProfile(ctx, session.Token, &dto.UpdateProfileInput{
		Phone: ptr(""),
		Email: ptr(""),
	})
	if err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}
	if cleared.User.Phone != "" {
		t.Errorf("phone should be cleared, got %q", cleared.User.Phone)
	}
	if cleared.User.Email != "anna.hoffmann@klinik.de" {
		t.Errorf("empty email must be ignored, got %q", cleared.User.Email)
	}

	stored, _ := f.directory.GetUser(ctx, "6")
	if stored.Address != "Lagerweg 3, Berlin" || stored.Phone != "" {
		t.Errorf("directory out of sync: %+v", stored)
	}
}

func TestCurrentSession_RevokedForInactiveAccounts(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	julia, _ := f.auth.Login(ctx, "Julia Becker", "1234")
	anna, _ := f.auth.Login(ctx, "Anna Hoffmann", "1234")
	sarah, _ := f.auth.Login(ctx, "Sarah", "1234")

	if _, err := f.directory.ToggleUserStatus(ctx, "4"); err != nil {
		t.Fatalf("ToggleUserStatus failed: %v", err)
	}
	if err := f.directory.DeleteUser(ctx, "6"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := f.auth.CurrentSession(ctx, julia.Token); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("deactivated account kept its session: %v", err)
	}
	if f.auth.HasPermission(ctx, julia.Token, model.CanViewInventory) {
		t.Error("deactivated account kept its permissions")
	}
	if _, err := f.auth.CurrentSession(ctx, anna.Token); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("deleted account kept its session: %v", err)
	}

	// Re-activating does not bring the revoked session back.
	if _, err := f.directory.ToggleUserStatus(ctx, "4"); err != nil {
		t.Fatalf("ToggleUserStatus failed: %v", err)
	}
	if _, err := f.auth.CurrentSession(ctx, julia.Token); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("revoked session came back: %v", err)
	}

	if _, err := f.auth.CurrentSession(ctx, sarah.Token); err != nil {
		t.Errorf("demo account session should stay valid: %v", err)
	}
}

func TestSessionsSurviveReload(t *testing.T) {
	f := setup(t, "1234")
	ctx := context.Background()

	session, _ := f.auth.Login(ctx, "markus", "1234")
	if err := f.auth.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	directory, _ := userUC.NewUserUseCase(f.repo, bcrypt.MinCost, logger.NewNop())
	reloaded, err := usecase.NewAuthUseCase(f.repo, directory, usecase.Config{DemoPassword: "1234", BcryptCost: bcrypt.MinCost}, nil, logger.NewNop())
	if err != nil {
		t.Fatalf("NewAuthUseCase failed: %v", err)
	}
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reloaded.CurrentSession(ctx, session.Token)
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if got.User.Role != model.RoleAdmin {
		t.Errorf("role = %s", got.User.Role)
	}
}

func ptr(s string) *string { return &s }
