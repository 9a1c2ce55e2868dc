package service

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
	"taskflow/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	SearchLimit     = 50
)

// ArchiveQuery selects archived cards. When RecentLimit is positive it
// replaces paging and the newest RecentLimit matches are returned.
type ArchiveQuery struct {
	Query       string
	Page        int
	PageSize    int
	RecentLimit int
}

type ArchivePage struct {
	Items    []model.Card
	Total    int64
	Page     int
	PageSize int
}

func (q ArchiveQuery) normalized() ArchiveQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.RecentLimit > MaxPageSize {
		q.RecentLimit = MaxPageSize
	}
	q.Query = strings.TrimSpace(q.Query)
	return q
}

// ListArchive returns archived cards, most recently archived first. Total
// counts every match regardless of the window.
func (s *BoardService) ListArchive(ctx context.Context, q ArchiveQuery) (*ArchivePage, error) {
	q = q.normalized()
	filter := repository.ArchiveFilter{
		Query:  q.Query,
		Offset: (q.Page - 1) * q.PageSize,
		Limit:  q.PageSize,
	}
	if q.RecentLimit > 0 {
		filter.Offset = 0
		filter.Limit = q.RecentLimit
	}

	page := &ArchivePage{Page: q.Page, PageSize: q.PageSize}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		page.Items, page.Total, err = tx.Cards.ListArchived(ctx, filter)
		if err != nil {
			return fmt.Errorf("list archive: %w", err)
		}
		return attachTags(ctx, tx, page.Items)
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// RestoreAll restores every archived card, oldest archived first, and returns
// them in that order.
func (s *BoardService) RestoreAll(ctx context.Context) ([]model.Card, error) {
	var restored []model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		cards, err := tx.Cards.ListArchivedOldestFirst(ctx)
		if err != nil {
			return fmt.Errorf("list archive: %w", err)
		}
		for i := range cards {
			if err := ordering.AssignOnRestore(ctx, tx, &cards[i]); err != nil {
				return fmt.Errorf("restore card %s: %w", cards[i].ID, err)
			}
		}
		if err := attachTags(ctx, tx, cards); err != nil {
			return err
		}
		restored = cards
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("archive restored", "cards", len(restored))
	return restored, nil
}

// ClearArchive deletes every archived card.
func (s *BoardService) ClearArchive(ctx context.Context) error {
	var deleted int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		deleted, err = tx.Cards.DeleteArchived(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear archive: %w", err)
	}
	s.log.Info("archive cleared", "cards", deleted)
	return nil
}

// Search returns active cards whose title contains q, ignoring case. A blank
// query matches nothing.
func (s *BoardService) Search(ctx context.Context, q string) ([]model.Card, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.Card{}, nil
	}

	var cards []model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		cards, err = tx.Cards.SearchActive(ctx, q, SearchLimit)
		if err != nil {
			return fmt.Errorf("search cards: %w", err)
		}
		return attachTags(ctx, tx, cards)
	})
	return cards, err
}
