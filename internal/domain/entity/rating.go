package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// MinRatingValue is the lowest accepted rating.
	MinRatingValue = 1
	// MaxRatingValue is the highest accepted rating.
	MaxRatingValue = 5
)

// Rating is one user's score for one store. The (UserID, StoreID) pair is
// unique: resubmission overwrites the existing value instead of adding a row.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	StoreID   uuid.UUID `json:"storeId"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Rater is populated only by queries that join the rating's author.
	Rater *User `json:"user,omitempty"`
	// Store is populated only by queries that join the rated store.
	Store *Store `json:"store,omitempty"`
}

// IsValidRatingValue reports whether v lies in the accepted [1,5] range.
func IsValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}

// Ratings is the set of ratings for a store.
type Ratings []*Rating

// Average returns the arithmetic mean of the ratings rounded to one decimal
// place, or 0 for the empty set. The result depends only on the multiset of
// values, not on submission order.
func (rs Ratings) Average() float64 {
	if len(rs) == 0 {
		return 0
	}

	sum := 0
	for _, r := range rs {
		sum += r.Value
	}

	return math.Round(float64(sum)/float64(len(rs))*10) / 10
}

// ByUser returns the single rating authored by userID, or nil if the user has
// not rated the store. Relies on the at-most-one-per-(user,store) invariant.
func (rs Ratings) ByUser(userID uuid.UUID) *Rating {
	for _, r := range rs {
		if r.UserID == userID {
			return r
		}
	}

	return nil
}
