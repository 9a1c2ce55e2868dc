// Package service runs the board's use cases. Every mutating call executes in
// one database transaction and keeps card and column positions dense through
// the ordering engine.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type BoardService struct {
	store *repository.Store
	log   *slog.Logger
	now   func() time.Time
}

type Option func(*BoardService)

// WithClock replaces the clock used for archive timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BoardService) {
		s.now = now
	}
}

func NewBoardService(store *repository.Store, log *slog.Logger, opts ...Option) *BoardService {
	s := &BoardService{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports whether the database is reachable.
func (s *BoardService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// loadBoard returns every column in order with its active cards and their tags.
func loadBoard(ctx context.Context, tx *repository.Store) ([]model.Column, error) {
	columns, err := tx.Columns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}

	ids := make([]uuid.UUID, len(columns))
	for i, c := range columns {
		ids[i] = c.ID
	}
	cards, err := tx.Cards.ListActiveInColumns(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if err := attachTags(ctx, tx, cards); err != nil {
		return nil, err
	}

	byColumn := make(map[uuid.UUID][]model.Card, len(columns))
	for _, card := range cards {
		byColumn[*card.ColumnID] = append(byColumn[*card.ColumnID], card)
	}
	for i := range columns {
		columns[i].Cards = byColumn[columns[i].ID]
	}
	return columns, nil
}

func attachTags(ctx context.Context, tx *repository.Store, cards []model.Card) error {
	if len(cards) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	tags, err := tx.Tags.ForCards(ctx, ids)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	for i := range cards {
		cards[i].Tags = tags[cards[i].ID]
	}
	return nil
}

// reloadCard reads a card back after the engine has written it.
func reloadCard(ctx context.Context, tx *repository.Store, id uuid.UUID) (*model.Card, error) {
	card, err := tx.Cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cards := []model.Card{*card}
	if err := attachTags(ctx, tx, cards); err != nil {
		return nil, err
	}
	return &cards[0], nil
}
