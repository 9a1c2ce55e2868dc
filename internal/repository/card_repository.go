package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// ArchiveFilter selects a window of archived cards.
type ArchiveFilter struct {
	Query  string
	Offset int
	Limit  int
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// Update writes every field of an existing card
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card and its tag links
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("card_id = ?", id).Delete(&model.CardTag{}).Error; err != nil {
		return err
	}
	result := db.Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ListActive returns the active cards of one column in display order
func (r *CardRepository) ListActive(ctx context.Context, columnID *uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := whereColumn(r.db.WithContext(ctx).Where("is_archived = ?", false), columnID).
		Order("position").Order("created_at").
		Find(&cards).Error
	return cards, err
}

// ListActiveInColumns returns the active cards of the given columns in display order
func (r *CardRepository) ListActiveInColumns(ctx context.Context, columnIDs []uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	if len(columnIDs) == 0 {
		return cards, nil
	}
	err := r.db.WithContext(ctx).
		Where("is_archived = ? AND column_id IN ?", false, columnIDs).
		Order("position").Order("created_at").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) CountActive(ctx context.Context, columnID *uuid.UUID) (int64, error) {
	var n int64
	err := whereColumn(r.db.WithContext(ctx).Model(&model.Card{}).Where("is_archived = ?", false), columnID).
		Count(&n).Error
	return n, err
}

// ShiftDown makes room at position by pushing every active card at or after
// it one slot down. The card named by exclude is left alone.
func (r *CardRepository) ShiftDown(ctx context.Context, columnID *uuid.UUID, position int, exclude uuid.UUID) error {
	return whereColumn(r.db.WithContext(ctx).Model(&model.Card{}).Where("is_archived = ?", false), columnID).
		Where("position >= ? AND id <> ?", position, exclude).
		Update("position", gorm.Expr("position + 1")).Error
}

// Place sets the column and position of a card
func (r *CardRepository) Place(ctx context.Context, id uuid.UUID, columnID *uuid.UUID, position int) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).
		Updates(map[string]any{"column_id": columnID, "position": position}).Error
}

// SetPositions writes each assignment in turn
func (r *CardRepository) SetPositions(ctx context.Context, changes []ordering.Assignment) error {
	db := r.db.WithContext(ctx)
	for _, a := range changes {
		if err := db.Model(&model.Card{}).Where("id = ?", a.ID).
			Update("position", a.Position).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *CardRepository) MarkArchived(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).
		Updates(map[string]any{"is_archived": true, "archived_at": at}).Error
}

func (r *CardRepository) MarkRestored(ctx context.Context, id uuid.UUID, columnID *uuid.UUID, position int) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).
		Updates(map[string]any{
			"is_archived": false,
			"archived_at": nil,
			"column_id":   columnID,
			"position":    position,
		}).Error
}

// ArchiveColumn archives every active card of a column at once
func (r *CardRepository) ArchiveColumn(ctx context.Context, columnID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("column_id = ? AND is_archived = ?", columnID, false).
		Updates(map[string]any{"is_archived": true, "archived_at": at})
	return result.RowsAffected, result.Error
}

// DetachColumn clears the column reference of every card in a column
func (r *CardRepository) DetachColumn(ctx context.Context, columnID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).
		Where("column_id = ?", columnID).
		Update("column_id", nil).Error
}

// ListArchived returns one window of archived cards, most recently archived
// first, together with the total number of matches.
func (r *CardRepository) ListArchived(ctx context.Context, f ArchiveFilter) ([]model.Card, int64, error) {
	var total int64
	if err := whereTitleContains(r.db.WithContext(ctx).Model(&model.Card{}).Where("is_archived = ?", true), f.Query).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cards []model.Card
	err := whereTitleContains(r.db.WithContext(ctx).Where("is_archived = ?", true), f.Query).
		Order("archived_at DESC").Order("created_at DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

// ListArchivedOldestFirst returns every archived card, earliest archived first
func (r *CardRepository) ListArchivedOldestFirst(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("is_archived = ?", true).
		Order("archived_at").Order("created_at").
		Find(&cards).Error
	return cards, err
}

// DeleteArchived removes every archived card and its tag links
func (r *CardRepository) DeleteArchived(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)
	ids := db.Model(&model.Card{}).Select("id").Where("is_archived = ?", true)
	if err := db.Where("card_id IN (?)", ids).Delete(&model.CardTag{}).Error; err != nil {
		return 0, err
	}
	result := db.Where("is_archived = ?", true).Delete(&model.Card{})
	return result.RowsAffected, result.Error
}

// SearchActive returns active cards whose title contains needle, in position order
func (r *CardRepository) SearchActive(ctx context.Context, needle string, limit int) ([]model.Card, error) {
	var cards []model.Card
	err := whereTitleContains(r.db.WithContext(ctx).Where("is_archived = ?", false), needle).
		Order("position").Order("created_at").
		Limit(limit).
		Find(&cards).Error
	return cards, err
}

// ReplaceTags sets the tag links of a card to exactly tagIDs
func (r *CardRepository) ReplaceTags(ctx context.Context, cardID uuid.UUID, tagIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("card_id = ?", cardID).Delete(&model.CardTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]model.CardTag, 0, len(tagIDs))
	seen := make(map[uuid.UUID]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, model.CardTag{CardID: cardID, TagID: id})
	}
	return db.Create(&links).Error
}
