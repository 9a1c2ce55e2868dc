package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
	"taskflow/internal/repository"
)

type CreateColumnInput struct {
	Name         string
	IsDoneColumn bool
}

// UpdateColumnInput changes only the fields that are set.
type UpdateColumnInput struct {
	Name         *string
	IsDoneColumn *bool
}

// ListColumns returns the board: columns in order, each with its active cards.
func (s *BoardService) ListColumns(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		columns, err = loadBoard(ctx, tx)
		return err
	})
	return columns, err
}

// CreateColumn appends a new column to the right end of the board.
func (s *BoardService) CreateColumn(ctx context.Context, in CreateColumnInput) (*model.Column, error) {
	column := &model.Column{Name: in.Name, IsDoneColumn: in.IsDoneColumn}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		position, err := ordering.AppendColumn(ctx, tx)
		if err != nil {
			return err
		}
		column.Position = position
		if err := tx.Columns.Create(ctx, column); err != nil {
			return fmt.Errorf("create column: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return column, nil
}

func (s *BoardService) UpdateColumn(ctx context.Context, id uuid.UUID, in UpdateColumnInput) (*model.Column, error) {
	var column *model.Column
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		column, err = tx.Columns.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			column.Name = *in.Name
		}
		if in.IsDoneColumn != nil {
			column.IsDoneColumn = *in.IsDoneColumn
		}
		if err := tx.Columns.Update(ctx, column); err != nil {
			return fmt.Errorf("update column: %w", err)
		}

		cards, err := tx.Cards.ListActive(ctx, &id)
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		if err := attachTags(ctx, tx, cards); err != nil {
			return err
		}
		column.Cards = cards
		return nil
	})
	if err != nil {
		return nil, err
	}
	return column, nil
}

// DeleteColumn archives the column's active cards, detaches all of its cards
// and removes it. The remaining columns close the gap.
func (s *BoardService) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	var archived int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Columns.GetByID(ctx, id); err != nil {
			return err
		}

		var err error
		archived, err = tx.Cards.ArchiveColumn(ctx, id, s.now())
		if err != nil {
			return fmt.Errorf("archive cards: %w", err)
		}
		if err := tx.Cards.DetachColumn(ctx, id); err != nil {
			return fmt.Errorf("detach cards: %w", err)
		}
		if err := tx.Columns.Delete(ctx, id); err != nil {
			return err
		}
		return ordering.CompactColumnPositions(ctx, tx)
	})
	if err != nil {
		return err
	}
	s.log.Info("column deleted", "column_id", id, "archived_cards", archived)
	return nil
}

// ReorderColumns gives each listed column its index in ids and returns the
// board in the new order. Unknown ids are ignored.
func (s *BoardService) ReorderColumns(ctx context.Context, ids []uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ordering.ReorderColumns(ctx, tx, ids); err != nil {
			return err
		}
		var err error
		columns, err = loadBoard(ctx, tx)
		return err
	})
	return columns, err
}
