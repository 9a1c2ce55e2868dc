package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// Store is the part of the entity store the engine reads and writes. Callers
// pass an implementation bound to the transaction of the surrounding
// operation, so every engine call commits or rolls back with it.
type Store interface {
	ActiveCards(ctx context.Context, columnID *uuid.UUID) ([]model.Card, error)
	CountActiveCards(ctx context.Context, columnID *uuid.UUID) (int64, error)
	ShiftCards(ctx context.Context, columnID *uuid.UUID, from int, exclude uuid.UUID) error
	PlaceCard(ctx context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error
	SetCardPositions(ctx context.Context, changes []Assignment) error
	MarkArchived(ctx context.Context, cardID uuid.UUID, at time.Time) error
	MarkRestored(ctx context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error

	ListColumns(ctx context.Context) ([]model.Column, error)
	CountColumns(ctx context.Context) (int64, error)
	FirstColumn(ctx context.Context) (*model.Column, error)
	ColumnExists(ctx context.Context, id uuid.UUID) (bool, error)
	SetColumnPositions(ctx context.Context, changes []Assignment) error
}

// AppendCard returns the position a new card takes at the end of the partition.
func AppendCard(ctx context.Context, s Store, columnID *uuid.UUID) (int, error) {
	n, err := s.CountActiveCards(ctx, columnID)
	if err != nil {
		return 0, fmt.Errorf("count active cards: %w", err)
	}
	return int(n), nil
}

// AppendColumn returns the position a new column takes at the end of the board.
func AppendColumn(ctx context.Context, s Store) (int, error) {
	n, err := s.CountColumns(ctx)
	if err != nil {
		return 0, fmt.Errorf("count columns: %w", err)
	}
	return int(n), nil
}

// ReorderColumns gives every listed column its index in ids. Columns missing
// from ids keep whatever position they had.
func ReorderColumns(ctx context.Context, s Store, ids []uuid.UUID) error {
	if err := s.SetColumnPositions(ctx, Permutation(ids)); err != nil {
		return fmt.Errorf("set column positions: %w", err)
	}
	return nil
}

// CompactColumnPositions renumbers the board's columns 0..n-1.
func CompactColumnPositions(ctx context.Context, s Store) error {
	columns, err := s.ListColumns(ctx)
	if err != nil {
		return fmt.Errorf("list columns: %w", err)
	}
	if changes := CompactColumns(columns); len(changes) > 0 {
		if err := s.SetColumnPositions(ctx, changes); err != nil {
			return fmt.Errorf("set column positions: %w", err)
		}
	}
	return nil
}

// CompactPartition renumbers the active cards of one column 0..n-1.
func CompactPartition(ctx context.Context, s Store, columnID *uuid.UUID) error {
	return compact(ctx, s, columnID, uuid.Nil)
}

func compact(ctx context.Context, s Store, columnID *uuid.UUID, exclude uuid.UUID) error {
	cards, err := s.ActiveCards(ctx, columnID)
	if err != nil {
		return fmt.Errorf("load partition: %w", err)
	}
	if changes := Compact(cards, exclude); len(changes) > 0 {
		if err := s.SetCardPositions(ctx, changes); err != nil {
			return fmt.Errorf("set card positions: %w", err)
		}
	}
	return nil
}

// MoveCard places card at position in the target column.
//
// Cards at or after position in the target are pushed down one slot before
// the card is written, and the source column is compacted when the card left
// it. Within one column the slot the card vacates is closed first. position
// is not clamped: a value past the end is stored as given.
func MoveCard(ctx context.Context, s Store, card *model.Card, target uuid.UUID, position int) error {
	source := card.ColumnID
	dest := &target
	same := card.InColumn(dest)

	if same {
		if err := compact(ctx, s, dest, card.ID); err != nil {
			return err
		}
	}
	if err := s.ShiftCards(ctx, dest, position, card.ID); err != nil {
		return fmt.Errorf("shift target column: %w", err)
	}
	if err := s.PlaceCard(ctx, card.ID, dest, position); err != nil {
		return fmt.Errorf("place card: %w", err)
	}
	card.ColumnID = dest
	card.Position = position

	if !same {
		if err := CompactPartition(ctx, s, source); err != nil {
			return fmt.Errorf("compact source column: %w", err)
		}
	}
	return nil
}

// AssignOnArchive takes card out of its partition and closes the gap.
func AssignOnArchive(ctx context.Context, s Store, card *model.Card, at time.Time) error {
	if err := s.MarkArchived(ctx, card.ID, at); err != nil {
		return fmt.Errorf("mark archived: %w", err)
	}
	card.IsArchived = true
	card.ArchivedAt = &at

	if err := CompactPartition(ctx, s, card.ColumnID); err != nil {
		return fmt.Errorf("compact vacated column: %w", err)
	}
	return nil
}

// AssignOnRestore returns an archived card to the end of its column. When the
// column is gone the first column on the board is used, or no column at all
// if the board has none.
func AssignOnRestore(ctx context.Context, s Store, card *model.Card) error {
	columnID, err := restoreTarget(ctx, s, card.ColumnID)
	if err != nil {
		return err
	}

	position, err := AppendCard(ctx, s, columnID)
	if err != nil {
		return err
	}
	if err := s.MarkRestored(ctx, card.ID, columnID, position); err != nil {
		return fmt.Errorf("mark restored: %w", err)
	}

	card.ColumnID = columnID
	card.Position = position
	card.IsArchived = false
	card.ArchivedAt = nil
	return nil
}

func restoreTarget(ctx context.Context, s Store, columnID *uuid.UUID) (*uuid.UUID, error) {
	if columnID != nil {
		ok, err := s.ColumnExists(ctx, *columnID)
		if err != nil {
			return nil, fmt.Errorf("check column: %w", err)
		}
		if ok {
			return columnID, nil
		}
	}

	first, err := s.FirstColumn(ctx)
	if err != nil {
		return nil, fmt.Errorf("first column: %w", err)
	}
	if first == nil {
		return nil, nil
	}
	id := first.ID
	return &id, nil
}
