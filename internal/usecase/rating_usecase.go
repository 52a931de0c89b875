package usecase

import (
	"context"

	"storepulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRatingInput creates or overwrites the caller's rating for a store.
type SubmitRatingInput struct {
	StoreID string `json:"storeId" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
}

// SubmitRatingOutput reports the stored rating and whether it replaced an
// earlier submission.
type SubmitRatingOutput struct {
	Rating  *entity.Rating
	Updated bool
}

// BrowseStoresInput holds the normal-user store listing filters.
type BrowseStoresInput struct {
	Name    string
	Address string
}

// RatedStore is a store as seen by a normal user: overall average plus the
// caller's own submitted rating, if any.
type RatedStore struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	OverallRating       float64   `json:"overallRating"`
	UserSubmittedRating *int      `json:"userSubmittedRating"`
}

// RatingUsecase is the contract for normal-user rating operations.
type RatingUsecase interface {
	BrowseStores(ctx context.Context, userID uuid.UUID, input *BrowseStoresInput) ([]*RatedStore, error)
	SubmitRating(ctx context.Context, userID uuid.UUID, input *SubmitRatingInput) (*SubmitRatingOutput, error)
	MyRatings(ctx context.Context, userID uuid.UUID) (entity.Ratings, error)
}
