package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthToken exists for schema parity with earlier deployments. The
// application authenticates with a shared Basic Auth credential and
// no route reads or writes this table.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (a *AuthToken) BeforeCreate(tx *gorm.DB) error {
	if a.Token == "" {
		a.Token = uuid.NewString()
	}
	return nil
}
