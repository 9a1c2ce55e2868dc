package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type CreateTagInput struct {
	Name    string
	Color   string
	BgColor *string
	FgColor *string
}

func (s *BoardService) ListTags(ctx context.Context) ([]model.Tag, error) {
	tags, err := s.store.Tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// CreateTag adds a tag. Names are unique and compared case-sensitively.
func (s *BoardService) CreateTag(ctx context.Context, in CreateTagInput) (*model.Tag, error) {
	tag := &model.Tag{
		Name:    in.Name,
		Color:   in.Color,
		BgColor: in.BgColor,
		FgColor: in.FgColor,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		taken, err := tx.Tags.NameExists(ctx, in.Name)
		if err != nil {
			return fmt.Errorf("check tag name: %w", err)
		}
		if taken {
			return repository.ErrTagNameTaken
		}
		return tx.Tags.Create(ctx, tag)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag from every card and then deletes it.
func (s *BoardService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Tags.Delete(ctx, id)
	})
}
