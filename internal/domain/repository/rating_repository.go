package repository

import (
	"context"

	"storepulse/internal/domain/entity"
	"storepulse/internal/errors"

	"github.com/google/uuid"
)

// ErrRatingNotFound is the sentinel returned when a rating lookup finds no row.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository is the contract for persisted rating records.
type RatingRepository interface {
	// Upsert atomically inserts the rating or, when a row for the same
	// (user, store) pair already exists, overwrites its value in place.
	// Implementations must rely on the composite unique constraint, never on
	// an application-level check-then-act.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// FindByUserAndStore retrieves the single rating for a (user, store)
	// pair, or ErrRatingNotFound.
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)

	// ListByUserID returns the caller's ratings with their stores preloaded.
	ListByUserID(ctx context.Context, userID uuid.UUID) (entity.Ratings, error)

	// ListByStoreID returns a store's ratings with their authors preloaded.
	ListByStoreID(ctx context.Context, storeID uuid.UUID) (entity.Ratings, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
