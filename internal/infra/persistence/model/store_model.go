package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel is the persistence shape of a store.
type StoreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null"`
	Address   string    `gorm:"size:400;not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *UserModel     `gorm:"foreignKey:OwnerID"`
	Ratings []*RatingModel `gorm:"foreignKey:StoreID"`
}

// TableName maps the model to its table.
func (StoreModel) TableName() string {
	return "stores"
}

// BeforeCreate assigns the primary key when the caller has not.
func (m *StoreModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
