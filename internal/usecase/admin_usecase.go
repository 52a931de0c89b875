package usecase

import (
	"context"

	"storepulse/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats is the platform-wide counters for the admin dashboard.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// AddUserInput is the admin path for creating a user of any role.
// Same validation as signup minus the confirm-password rule.
type AddUserInput struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"required"`
}

// AddStoreInput creates a store owned by an existing STORE_OWNER user.
type AddStoreInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	OwnerID string `json:"ownerId" validate:"required"`
}

// ListUsersInput holds the optional admin listing filters.
type ListUsersInput struct {
	Name  string
	Email string
	Role  string
}

// ListStoresInput holds the optional admin listing filters.
type ListStoresInput struct {
	Name    string
	Email   string
	Address string
}

// StoreSummary is a store decorated with its aggregate rating.
type StoreSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	OwnerID       uuid.UUID `json:"ownerId"`
	AverageRating float64   `json:"averageRating"`
}

// AdminUsecase is the contract for admin-only operations.
type AdminUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	AddUser(ctx context.Context, input *AddUserInput) (*entity.User, error)
	AddStore(ctx context.Context, input *AddStoreInput) (*entity.Store, error)
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)
	ListStores(ctx context.Context, input *ListStoresInput) ([]*StoreSummary, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
