package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

// List returns every column in display order.
func (r *ColumnRepository) List(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Order("position").Order("created_at").Find(&columns).Error
	return columns, err
}

// First returns the leftmost column, or nil when the board has none.
func (r *ColumnRepository) First(ctx context.Context) (*model.Column, error) {
	var columns []model.Column
	if err := r.db.WithContext(ctx).Order("position").Order("created_at").Limit(1).Find(&columns).Error; err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, nil
	}
	return &columns[0], nil
}

func (r *ColumnRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Column{}).Count(&n).Error
	return n, err
}

func (r *ColumnRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Column{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColumnNotFound
	}
	return nil
}

// SetPositions writes each assignment. Ids without a row are skipped.
func (r *ColumnRepository) SetPositions(ctx context.Context, changes []ordering.Assignment) error {
	db := r.db.WithContext(ctx)
	for _, a := range changes {
		if err := db.Model(&model.Column{}).Where("id = ?", a.ID).
			Update("position", a.Position).Error; err != nil {
			return err
		}
	}
	return nil
}
