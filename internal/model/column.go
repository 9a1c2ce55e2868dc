package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Column struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Position     int       `gorm:"not null;index"`
	IsDoneColumn bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Cards holds the column's active cards when loaded by the board view.
	Cards []Card `gorm:"-"`
}

func (c *Column) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
