package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
)

// Store bundles the repositories that share one *gorm.DB, which is either the
// connection pool or a single transaction.
type Store struct {
	db *gorm.DB

	Columns  *ColumnRepository
	Cards    *CardRepository
	Tags     *TagRepository
	Settings *BoardSettingsRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Columns:  NewColumnRepository(db),
		Cards:    NewCardRepository(db),
		Tags:     NewTagRepository(db),
		Settings: NewBoardSettingsRepository(db),
	}
}

// Transaction runs fn with a Store bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var _ ordering.Store = (*Store)(nil)

func (s *Store) ActiveCards(ctx context.Context, columnID *uuid.UUID) ([]model.Card, error) {
	return s.Cards.ListActive(ctx, columnID)
}

func (s *Store) CountActiveCards(ctx context.Context, columnID *uuid.UUID) (int64, error) {
	return s.Cards.CountActive(ctx, columnID)
}

func (s *Store) ShiftCards(ctx context.Context, columnID *uuid.UUID, from int, exclude uuid.UUID) error {
	return s.Cards.ShiftDown(ctx, columnID, from, exclude)
}

func (s *Store) PlaceCard(ctx context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error {
	return s.Cards.Place(ctx, cardID, columnID, position)
}

func (s *Store) SetCardPositions(ctx context.Context, changes []ordering.Assignment) error {
	return s.Cards.SetPositions(ctx, changes)
}

func (s *Store) MarkArchived(ctx context.Context, cardID uuid.UUID, at time.Time) error {
	return s.Cards.MarkArchived(ctx, cardID, at)
}

func (s *Store) MarkRestored(ctx context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error {
	return s.Cards.MarkRestored(ctx, cardID, columnID, position)
}

func (s *Store) ListColumns(ctx context.Context) ([]model.Column, error) {
	return s.Columns.List(ctx)
}

func (s *Store) CountColumns(ctx context.Context) (int64, error) {
	return s.Columns.Count(ctx)
}

func (s *Store) FirstColumn(ctx context.Context) (*model.Column, error) {
	return s.Columns.First(ctx)
}

func (s *Store) ColumnExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.Columns.Exists(ctx, id)
}

func (s *Store) SetColumnPositions(ctx context.Context, changes []ordering.Assignment) error {
	return s.Columns.SetPositions(ctx, changes)
}

// Reset removes every card, tag and column. Board settings are kept.
func (s *Store) Reset(ctx context.Context) error {
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []any{&model.CardTag{}, &model.Card{}, &model.Tag{}, &model.Column{}} {
		if err := db.Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
