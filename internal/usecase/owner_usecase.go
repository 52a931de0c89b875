package usecase

import (
	"context"

	"storepulse/internal/domain/entity"

	"github.com/google/uuid"
)

// RaterEntry is one rating on the owner dashboard, joined with its author.
type RaterEntry struct {
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
}

// OwnerDashboard is the aggregate view of the owner's store.
type OwnerDashboard struct {
	StoreName     string       `json:"storeName"`
	AverageRating float64      `json:"averageRating"`
	TotalRatings  int          `json:"totalRatings"`
	UsersWhoRated []RaterEntry `json:"usersWhoRated"`
}

// OwnerUsecase is the contract for store-owner operations. Every operation
// resolves the store through the caller's ID; a storeless owner gets a
// not-found error.
type OwnerUsecase interface {
	MyStore(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
	MyStoreRatings(ctx context.Context, ownerID uuid.UUID) (entity.Ratings, error)
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error)
}
