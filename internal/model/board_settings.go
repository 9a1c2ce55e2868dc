package model

import "time"

// BoardSettingsID is the fixed key of the single settings row. Concurrent
// first reads race on the same key instead of inserting duplicates.
const BoardSettingsID uint = 1

const (
	DefaultBoardTitle    = "Development Pipeline"
	DefaultBoardSubtitle = "Manage your team's current tasks and sprint progress."
)

type BoardSettings struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:500;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BoardSettings) TableName() string {
	return "board_settings"
}

// DefaultBoardSettings returns the row written on first access.
func DefaultBoardSettings() BoardSettings {
	return BoardSettings{
		ID:       BoardSettingsID,
		Title:    DefaultBoardTitle,
		Subtitle: DefaultBoardSubtitle,
	}
}
