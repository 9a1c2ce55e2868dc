package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
	"taskflow/internal/repository"
)

type CreateCardInput struct {
	Title       string
	Description *string
	ImageURL    *string
	DueDate     *time.Time
	TagIDs      []uuid.UUID
}

// UpdateCardInput changes only the fields that are set. A non-nil TagIDs
// replaces the card's whole tag set, so an empty slice clears it.
type UpdateCardInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	DueDate     *time.Time
	TagIDs      *[]uuid.UUID
}

type MoveCardInput struct {
	CardID         uuid.UUID
	TargetColumnID uuid.UUID
	Position       int
}

func (s *BoardService) GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		card, err = reloadCard(ctx, tx, id)
		return err
	})
	return card, err
}

// CreateCard appends a card to the end of a column.
func (s *BoardService) CreateCard(ctx context.Context, columnID uuid.UUID, in CreateCardInput) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Columns.GetByID(ctx, columnID); err != nil {
			return err
		}
		if err := tx.Tags.EnsureExist(ctx, in.TagIDs); err != nil {
			return err
		}

		position, err := ordering.AppendCard(ctx, tx, &columnID)
		if err != nil {
			return err
		}
		created := &model.Card{
			ColumnID:    &columnID,
			Title:       in.Title,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			DueDate:     in.DueDate,
			Position:    position,
		}
		if err := tx.Cards.Create(ctx, created); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		if len(in.TagIDs) > 0 {
			if err := tx.Cards.ReplaceTags(ctx, created.ID, in.TagIDs); err != nil {
				return fmt.Errorf("link tags: %w", err)
			}
		}

		card, err = reloadCard(ctx, tx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *BoardService) UpdateCard(ctx context.Context, id uuid.UUID, in UpdateCardInput) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.TagIDs != nil {
			if err := tx.Tags.EnsureExist(ctx, *in.TagIDs); err != nil {
				return err
			}
		}

		if in.Title != nil {
			current.Title = *in.Title
		}
		if in.Description != nil {
			current.Description = in.Description
		}
		if in.ImageURL != nil {
			current.ImageURL = in.ImageURL
		}
		if in.DueDate != nil {
			current.DueDate = in.DueDate
		}
		if err := tx.Cards.Update(ctx, current); err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		if in.TagIDs != nil {
			if err := tx.Cards.ReplaceTags(ctx, id, *in.TagIDs); err != nil {
				return fmt.Errorf("replace tags: %w", err)
			}
		}

		card, err = reloadCard(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a card for good. An active card's column closes the gap.
func (s *BoardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		card, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Cards.Delete(ctx, id); err != nil {
			return err
		}
		if card.IsArchived {
			return nil
		}
		return ordering.CompactPartition(ctx, tx, card.ColumnID)
	})
}

// MoveCard puts an active card at a position in a column, which may be the
// column it is already in.
func (s *BoardService) MoveCard(ctx context.Context, in MoveCardInput) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Cards.GetByID(ctx, in.CardID)
		if err != nil {
			return err
		}
		if current.IsArchived {
			return repository.ErrCardArchived
		}
		ok, err := tx.Columns.Exists(ctx, in.TargetColumnID)
		if err != nil {
			return fmt.Errorf("check column: %w", err)
		}
		if !ok {
			return repository.ErrColumnNotFound
		}

		if err := ordering.MoveCard(ctx, tx, current, in.TargetColumnID, in.Position); err != nil {
			return err
		}
		card, err = reloadCard(ctx, tx, in.CardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ArchiveCard takes a card off the board. Archiving an archived card is a no-op.
func (s *BoardService) ArchiveCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !current.IsArchived {
			if err := ordering.AssignOnArchive(ctx, tx, current, s.now()); err != nil {
				return err
			}
		}
		card, err = reloadCard(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// RestoreCard puts an archived card back at the end of its column, or of the
// first column when its own is gone. Restoring an active card is a no-op.
func (s *BoardService) RestoreCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.IsArchived {
			if err := ordering.AssignOnRestore(ctx, tx, current); err != nil {
				return err
			}
		}
		card, err = reloadCard(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}
