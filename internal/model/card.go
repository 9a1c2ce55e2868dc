package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is a unit of work on the board. A nil ColumnID means the card is unfiled.
// Position is only meaningful while the card is active; archived cards keep
// their last value but sit outside every ordering partition.
type Card struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ColumnID    *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"size:500;not null"`
	Description *string    `gorm:"type:text"`
	ImageURL    *string    `gorm:"size:2000"`
	DueDate     *time.Time
	Position    int  `gorm:"not null"`
	IsArchived  bool `gorm:"not null;index"`
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Column *Column `gorm:"foreignKey:ColumnID;constraint:OnDelete:SET NULL"`
	Tags   []Tag   `gorm:"-"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// InColumn reports whether the card belongs to the given partition.
func (c *Card) InColumn(columnID *uuid.UUID) bool {
	if c.ColumnID == nil || columnID == nil {
		return c.ColumnID == nil && columnID == nil
	}
	return *c.ColumnID == *columnID
}

// CardTag links a card to a tag. The pair is the primary key.
type CardTag struct {
	CardID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`

	Card *Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Tag  *Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (CardTag) TableName() string {
	return "card_tags"
}
