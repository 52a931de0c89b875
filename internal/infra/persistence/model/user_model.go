// Package model contains the GORM persistence models. They mirror the domain
// entities but carry the database-specific tags and relations.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the persistence shape of a user account.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:60;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Address      string    `gorm:"size:400;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	OwnedStores []*StoreModel `gorm:"foreignKey:OwnerID"`
}

// TableName maps the model to its table.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key when the caller has not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
