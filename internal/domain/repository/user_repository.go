// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"storepulse/internal/domain/entity"
	"storepulse/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is the sentinel returned when a user lookup finds no row.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows user listings. Empty fields are ignored. Name and Email
// are case-insensitive substring matches; Role is an exact match.
type UserFilter struct {
	Name  string
	Email string
	Role  entity.Role
}

// UserRepository is the contract for persisted user records.
type UserRepository interface {
	// Create persists a new user. Returns a conflict domain error when the
	// email unique constraint fires.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDWithStores retrieves a user together with the stores they own.
	FindByIDWithStores(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List returns users matching the filter in insertion order.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
