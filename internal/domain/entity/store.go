package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a rateable storefront. OwnerID must reference a user whose role is
// STORE_OWNER at creation time; the link is not re-validated afterwards.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
