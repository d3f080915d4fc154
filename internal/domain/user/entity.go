package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	IsSuperAdmin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
)
