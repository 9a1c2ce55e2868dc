package service

import (
	"context"
	"fmt"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type UpdateBoardSettingsInput struct {
	Title    *string
	Subtitle *string
}

// GetBoardSettings returns the board's title and subtitle, creating the
// defaults on first use.
func (s *BoardService) GetBoardSettings(ctx context.Context) (*model.BoardSettings, error) {
	settings, err := s.store.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get board settings: %w", err)
	}
	return settings, nil
}

func (s *BoardService) UpdateBoardSettings(ctx context.Context, in UpdateBoardSettingsInput) (*model.BoardSettings, error) {
	var settings *model.BoardSettings
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		settings, err = tx.Settings.Get(ctx)
		if err != nil {
			return err
		}
		if in.Title != nil {
			settings.Title = *in.Title
		}
		if in.Subtitle != nil {
			settings.Subtitle = *in.Subtitle
		}
		return tx.Settings.Update(ctx, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("update board settings: %w", err)
	}
	return settings, nil
}
