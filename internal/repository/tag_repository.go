package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/internal/model"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create adds a new tag. A name already in use yields ErrTagNameTaken.
func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrTagNameTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves a tag by its ID
func (r *TagRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var tag model.Tag
	result := r.db.WithContext(ctx).First(&tag, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, result.Error
	}
	return &tag, nil
}

// List returns every tag ordered by name
func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, err
}

// NameExists reports whether a tag with exactly this name exists
func (r *TagRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

// EnsureExist fails with ErrTagNotFound unless every id names a tag
func (r *TagRepository) EnsureExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(unique) {
		return ErrTagNotFound
	}
	return nil
}

// ForCards returns the tags linked to each card, ordered by name
func (r *TagRepository) ForCards(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]model.Tag, error) {
	out := make(map[uuid.UUID][]model.Tag, len(cardIDs))
	if len(cardIDs) == 0 {
		return out, nil
	}

	db := r.db.WithContext(ctx)
	var links []model.CardTag
	if err := db.Where("card_id IN ?", cardIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return out, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		tagIDs = append(tagIDs, l.TagID)
	}
	var tags []model.Tag
	if err := db.Where("id IN ?", tagIDs).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}

	byCard := make(map[uuid.UUID]map[uuid.UUID]bool, len(cardIDs))
	for _, l := range links {
		if byCard[l.CardID] == nil {
			byCard[l.CardID] = map[uuid.UUID]bool{}
		}
		byCard[l.CardID][l.TagID] = true
	}
	for _, id := range cardIDs {
		for _, tag := range tags {
			if byCard[id][tag.ID] {
				out[id] = append(out[id], tag)
			}
		}
	}
	return out, nil
}

// Delete removes a tag and every link to it
func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("tag_id = ?", id).Delete(&model.CardTag{}).Error; err != nil {
		return err
	}
	result := db.Delete(&model.Tag{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}
