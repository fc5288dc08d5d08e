package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/internal/user"
	"github.com/fekuna/omnipos-clinic-service/internal/user/dto"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "1234"

type directory struct {
	Users []model.User `json:"users"`
}

type userUseCase struct {
	doc        *state.Document[directory]
	bcryptCost int
	logger     logger.ZapLogger
	now        func() time.Time
}

func NewUserUseCase(repo state.Repository, bcryptCost int, log logger.ZapLogger) (user.UseCase, error) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	uc := &userUseCase{
		bcryptCost: bcryptCost,
		logger:     log,
		now:        time.Now,
	}

	seed, err := uc.seedDirectory()
	if err != nil {
		return nil, err
	}
	uc.doc = state.NewDocument(state.BucketUser, repo, seed)
	return uc, nil
}

func (uc *userUseCase) seedDirectory() (directory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), uc.bcryptCost)
	if err != nil {
		return directory{}, err
	}
	now := uc.now()
	users := make([]model.User, 0, len(demoStaff))
	for _, s := range demoStaff {
		u := s.User
		u.PasswordHash = string(hash)
		if s.lastLoginAgo > 0 {
			t := now.Add(-s.lastLoginAgo)
			u.LastLogin = &t
		}
		users = append(users, u)
	}
	return directory{Users: users}, nil
}

func (uc *userUseCase) Name() string                   { return uc.doc.Name() }
func (uc *userUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *userUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }
func (uc *userUseCase) Load(ctx context.Context) error { return uc.doc.Load(ctx) }

func (uc *userUseCase) ListUsers(ctx context.Context) []model.User {
	var out []model.User
	uc.doc.View(func(d *directory) {
		out = make([]model.User, len(d.Users))
		copy(out, d.Users)
	})
	return out
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*model.User, error) {
	var found *model.User
	uc.doc.View(func(d *directory) {
		if i := indexOf(d.Users, id); i >= 0 {
			u := d.Users[i]
			found = &u
		}
	})
	if found == nil {
		return nil, user.ErrUserNotFound
	}
	return found, nil
}

func (uc *userUseCase) AddUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	hash, err := uc.hash(input.Password)
	if err != nil {
		return nil, err
	}

	u := model.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Department:   strings.TrimSpace(input.Department),
		Role:         input.Role,
		IsActive:     input.IsActive,
		CreatedAt:    uc.now(),
		Phone:        input.Phone,
		Address:      input.Address,
		Avatar:       input.Avatar,
		PasswordHash: hash,
	}

	_ = uc.doc.Update(func(d *directory) error {
		d.Users = append(d.Users, u)
		return nil
	})

	uc.logger.Info("user added", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return &u, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	var updated model.User
	err := uc.doc.Update(func(d *directory) error {
		i := indexOf(d.Users, input.ID)
		if i < 0 {
			return user.ErrUserNotFound
		}
		u := d.Users[i]
		u.Name = input.Name
		u.Email = input.Email
		u.Department = input.Department
		u.Role = input.Role
		u.IsActive = input.IsActive
		u.Phone = input.Phone
		u.Address = input.Address
		u.Avatar = input.Avatar
		d.Users[i] = u
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	err := uc.doc.Update(func(d *directory) error {
		i := indexOf(d.Users, id)
		if i < 0 {
			return user.ErrUserNotFound
		}
		d.Users = append(d.Users[:i:i], d.Users[i+1:]...)
		return nil
	})
	if err == nil {
		uc.logger.Info("user deleted", zap.String("user_id", id))
	}
	return err
}

func (uc *userUseCase) ToggleUserStatus(ctx context.Context, id string) (*model.User, error) {
	var updated model.User
	err := uc.doc.Update(func(d *directory) error {
		i := indexOf(d.Users, id)
		if i < 0 {
			return user.ErrUserNotFound
		}
		d.Users[i].IsActive = !d.Users[i].IsActive
		updated = d.Users[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *userUseCase) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return uc.doc.Update(func(d *directory) error {
		i := indexOf(d.Users, id)
		if i < 0 {
			return user.ErrUserNotFound
		}
		t := at
		d.Users[i].LastLogin = &t
		return nil
	})
}

func (uc *userUseCase) SetPassword(ctx context.Context, id, password string) error {
	hash, err := uc.hash(password)
	if err != nil {
		return err
	}
	return uc.doc.Update(func(d *directory) error {
		i := indexOf(d.Users, id)
		if i < 0 {
			return user.ErrUserNotFound
		}
		d.Users[i].PasswordHash = hash
		return nil
	})
}

// CheckPassword compares password with the stored hash. Users without a
// stored hash never match.
func (uc *userUseCase) CheckPassword(u *model.User, password string) bool {
	if u == nil || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (uc *userUseCase) hash(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func indexOf(users []model.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
