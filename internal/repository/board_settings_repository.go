package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow/internal/model"
)

type BoardSettingsRepository struct {
	db *gorm.DB
}

func NewBoardSettingsRepository(db *gorm.DB) *BoardSettingsRepository {
	return &BoardSettingsRepository{db: db}
}

// Get returns the settings row, inserting the defaults on first access.
// Concurrent first reads both insert with the same key and the loser's insert
// is a no-op.
func (r *BoardSettingsRepository) Get(ctx context.Context) (*model.BoardSettings, error) {
	db := r.db.WithContext(ctx)

	var settings model.BoardSettings
	err := db.First(&settings, "id = ?", model.BoardSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := model.DefaultBoardSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return nil, err
	}
	if err := db.First(&settings, "id = ?", model.BoardSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *BoardSettingsRepository) Update(ctx context.Context, settings *model.BoardSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
