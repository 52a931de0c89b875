package repository

import (
	"context"

	"storepulse/internal/domain/entity"
	"storepulse/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is the sentinel returned when a store lookup finds no row.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows store listings with case-insensitive substring matches.
// Empty fields are ignored.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreWithRatings pairs a store with its full rating set so callers can
// derive aggregates without further queries.
type StoreWithRatings struct {
	Store   *entity.Store
	Ratings entity.Ratings
}

// StoreRepository is the contract for persisted store records.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by ID, or ErrStoreNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByOwnerID retrieves the store owned by ownerID, or ErrStoreNotFound.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// ListWithRatings returns stores matching the filter, each with its
	// ratings preloaded, in insertion order.
	ListWithRatings(ctx context.Context, filter StoreFilter) ([]*StoreWithRatings, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
