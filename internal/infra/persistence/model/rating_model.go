package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingModel is the persistence shape of a rating. The composite unique
// index on (user_id, store_id) is the guarantee behind the atomic upsert:
// concurrent resubmissions by the same user for the same store can never
// produce two rows.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	Value     int       `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName maps the model to its table.
func (RatingModel) TableName() string {
	return "ratings"
}

// BeforeCreate assigns the primary key when the caller has not.
func (m *RatingModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
