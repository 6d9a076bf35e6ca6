package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
)

// OverrideFilter narrows override queries. Zero values match all.
type OverrideFilter struct {
	StaffID string
	Status  string
}

// OverrideRepository is the override data access interface.
type OverrideRepository interface {
	Create(ctx context.Context, override *model.Override) error
	GetByID(ctx context.Context, id string) (*model.Override, error)
	List(ctx context.Context, filter OverrideFilter, offset, limit int) ([]model.Override, int64, error)
	// Resolve moves a pending override to a terminal status. The update is
	// guarded on status = pending so only the first resolution wins; a
	// false return means the override was already resolved.
	Resolve(ctx context.Context, id, status string, resolvedAt time.Time) (bool, error)
}

type overrideRepo struct {
	db *gorm.DB
}

// NewOverrideRepo creates an OverrideRepository instance.
func NewOverrideRepo(db *gorm.DB) OverrideRepository {
	return &overrideRepo{db: db}
}

func (r *overrideRepo) Create(ctx context.Context, override *model.Override) error {
	return r.db.WithContext(ctx).Create(override).Error
}

func (r *overrideRepo) GetByID(ctx context.Context, id string) (*model.Override, error) {
	var override model.Override
	err := r.db.WithContext(ctx).
		Where("override_id = ?", id).
		First(&override).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *overrideRepo) List(ctx context.Context, filter OverrideFilter, offset, limit int) ([]model.Override, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Override{})
	if filter.StaffID != "" {
		query = query.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var overrides []model.Override
	err := query.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&overrides).Error
	return overrides, total, err
}

func (r *overrideRepo) Resolve(ctx context.Context, id, status string, resolvedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Override{}).
		Where("override_id = ? AND status = ?", id, model.OverrideStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
