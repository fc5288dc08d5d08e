package model

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RolePharmacist Role = "pharmacist"
	RoleLogistics  Role = "logistics"
)

var Roles = []Role{RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleLogistics}

func (r Role) Valid() bool {
	_, ok := RolePermissions[r]
	return ok
}

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Department   string     `json:"department"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	PasswordHash string     `json:"passwordHash,omitempty"`
}

// SessionUser is the authenticated view of a user: the directory record
// plus per-user permission overrides.
type SessionUser struct {
	User
	Permissions map[Permission]bool `json:"permissions"`
}

type Session struct {
	Token           string      `json:"token"`
	User            SessionUser `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// HasPermission answers a capability question for the session user.
func (s *Session) HasPermission(p Permission) bool {
	if s == nil || !s.IsAuthenticated {
		return false
	}
	return EffectivePermission(s.User.Role, s.User.Permissions, p)
}
