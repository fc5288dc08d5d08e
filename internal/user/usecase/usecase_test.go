package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/internal/user"
	"github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/user/usecase"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func setupUseCase(t *testing.T) (user.UseCase, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	uc, err := usecase.NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())
	if err != nil {
		t.Fatalf("NewUserUseCase failed: %v", err)
	}
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return uc, repo
}

func TestUserUseCase_Seed(t *testing.T) {
	uc, _ := setupUseCase(t)
	ctx := context.Background()

	users := uc.ListUsers(ctx)
	if len(users) != 7 {
		t.Fatalf("expected 7 demo users, got %d", len(users))
	}

	sarah, err := uc.GetUser(ctx, "1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if sarah.Name != "Dr. Sarah Schmidt" || sarah.Role != model.RoleDoctor {
		t.Errorf("unexpected seed user: %+v", sarah)
	}
	if !uc.CheckPassword(sarah, usecase.SeedPassword) {
		t.Error("seed password should match")
	}
	if uc.CheckPassword(sarah, "wrong") {
		t.Error("wrong password should not match")
	}

	klaus, _ := uc.GetUser(ctx, "7")
	if klaus.LastLogin != nil {
		t.Error("Klaus Wagner never logged in")
	}
	if klaus.IsActive {
		t.Error("Klaus Wagner should be inactive")
	}
}

func TestUserUseCase_AddUpdateDelete(t *testing.T) {
	uc, _ := setupUseCase(t)
	ctx := context.Background()

	added, err := uc.AddUser(ctx, &dto.CreateUserInput{
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
	if added.ID == "" || added.LastLogin != nil || added.CreatedAt.IsZero() {
		t.Errorf("unexpected new user: %+v", added)
	}
	if !uc.CheckPassword(added, "geheim123") {
		t.Error("password hash should match")
	}

	second, _ := uc.AddUser(ctx, &dto.CreateUserInput{Name: "Second", Email: "s@x.de", Department: "IT", Role: model.RoleAdmin})
	if second.ID == added.ID {
		t.Error("ids must be unique")
	}

	updated, err := uc.UpdateUser(ctx, &dto.UpdateUserInput{
		ID:         added.ID,
		Name:       "Lena Fischer-Braun",
		Email:      added.Email,
		Department: "Radiologie",
		Role:       model.RolePharmacist,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Name != "Lena Fischer-Braun" || updated.Role != model.RolePharmacist {
		t.Errorf("update not applied: %+v", updated)
	}
	if !uc.CheckPassword(updated, "geheim123") {
		t.Error("update must keep the password")
	}
	if !updated.CreatedAt.Equal(added.CreatedAt) {
		t.Error("update must keep createdAt")
	}

	if err := uc.DeleteUser(ctx, added.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := uc.GetUser(ctx, added.ID); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if len(uc.ListUsers(ctx)) != 8 {
		t.Errorf("expected 8 users after delete, got %d", len(uc.ListUsers(ctx)))
	}
}

func TestUserUseCase_UnknownID(t *testing.T) {
	uc, _ := setupUseCase(t)
	ctx := context.Background()

	if _, err := uc.UpdateUser(ctx, &dto.UpdateUserInput{ID: "nope"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("UpdateUser: expected ErrUserNotFound, got %v", err)
	}
	if err := uc.DeleteUser(ctx, "nope"); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("DeleteUser: expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.ToggleUserStatus(ctx, "nope"); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("ToggleUserStatus: expected ErrUserNotFound, got %v", err)
	}
	if err := uc.TouchLastLogin(ctx, "nope", time.Now()); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("TouchLastLogin: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUseCase_ToggleAndTouch(t *testing.T) {
	uc, _ := setupUseCase(t)
	ctx := context.Background()

	u, err := uc.ToggleUserStatus(ctx, "3")
	if err != nil {
		t.Fatalf("ToggleUserStatus failed: %v", err)
	}
	if !u.IsActive {
		t.Error("Dr. Michael Weber should be active after toggle")
	}

	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if err := uc.TouchLastLogin(ctx, "7", at); err != nil {
		t.Fatalf("TouchLastLogin failed: %v", err)
	}
	klaus, _ := uc.GetUser(ctx, "7")
	if klaus.LastLogin == nil || !klaus.LastLogin.Equal(at) {
		t.Errorf("lastLogin = %v", klaus.LastLogin)
	}

	if err := uc.SetPassword(ctx, "7", "neues-passwort"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	klaus, _ = uc.GetUser(ctx, "7")
	if !uc.CheckPassword(klaus, "neues-passwort") || uc.CheckPassword(klaus, usecase.SeedPassword) {
		t.Error("password was not replaced")
	}
}

func TestUserUseCase_PersistsThroughSave(t *testing.T) {
	uc, repo := setupUseCase(t)
	ctx := context.Background()

	if _, err := uc.ToggleUserStatus(ctx, "1"); err != nil {
		t.Fatalf("ToggleUserStatus failed: %v", err)
	}
	if !uc.Dirty() {
		t.Fatal("expected dirty directory")
	}
	if err := uc.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := usecase.NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())
	if err != nil {
		t.Fatalf("NewUserUseCase failed: %v", err)
	}
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	sarah, _ := reloaded.GetUser(ctx, "1")
	if sarah.IsActive {
		t.Error("toggle should survive a reload")
	}
}
