package dto

import "github.com/fekuna/omnipos-clinic-service/internal/model"

type CreateUserInput struct {
	Name       string
	Email      string
	Department string
	Role       model.Role
	IsActive   bool
	Password   string
	Phone      string
	Address    string
	Avatar     string
}

// UpdateUserInput replaces the editable fields of an existing user.
// Credentials, createdAt and lastLogin are kept.
type UpdateUserInput struct {
	ID         string
	Name       string
	Email      string
	Department string
	Role       model.Role
	IsActive   bool
	Phone      string
	Address    string
	Avatar     string
}
