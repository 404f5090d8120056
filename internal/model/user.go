package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthProvider tags how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// UserStatus controls whether an account may log in.
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusDisabled UserStatus = "DISABLED"
)

// Default role names seeded by migrations.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserStore defines persistence operations for users.
// GetByEmail and GetByID return the user with roles loaded.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	List(ctx context.Context) ([]User, error)
}

// RoleStore defines persistence operations for roles.
type RoleStore interface {
	GetByName(ctx context.Context, name string) (Role, error)
}

// Role represents a named authorization grant.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// User represents a stored account. PasswordHash is empty for accounts
// provisioned through Google.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Provider     AuthProvider
	Status       UserStatus
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLocalUser builds an active password-backed account.
func NewLocalUser(email, name, passwordHash string) User {
	now := time.Now()
	return User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Provider:     ProviderLocal,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewGoogleUser builds an active account provisioned from a verified
// Google identity. No password hash is stored.
func NewGoogleUser(email, name string) User {
	now := time.Now()
	return User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Provider:  ProviderGoogle,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the account may authenticate.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// HasRole reports whether the user carries the named role.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames projects role names for embedding into access-token claims.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
