package repository

import (
	"context"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	pkgerrors "venuecrew/backend/pkg/errors"
)

// AvailabilityRepository is the monthly availability data access interface.
type AvailabilityRepository interface {
	Create(ctx context.Context, record *model.AvailabilityRecord) error
	GetByStaffAndMonth(ctx context.Context, staffID, month string) (*model.AvailabilityRecord, error)
	ListByMonth(ctx context.Context, month string) ([]model.AvailabilityRecord, error)
	Update(ctx context.Context, record *model.AvailabilityRecord) error
}

type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo creates an AvailabilityRepository instance.
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(ctx context.Context, record *model.AvailabilityRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *availabilityRepo) GetByStaffAndMonth(ctx context.Context, staffID, month string) (*model.AvailabilityRecord, error) {
	var record model.AvailabilityRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND month = ?", staffID, month).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *availabilityRepo) ListByMonth(ctx context.Context, month string) ([]model.AvailabilityRecord, error) {
	var records []model.AvailabilityRecord
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Find(&records).Error
	return records, err
}

func (r *availabilityRepo) Update(ctx context.Context, record *model.AvailabilityRecord) error {
	oldVersion := record.Version
	result := r.db.WithContext(ctx).
		Model(record).
		Where("record_id = ? AND version = ?", record.RecordID, oldVersion).
		Updates(map[string]interface{}{
			"days":          record.Days,
			"submitted_at":  record.SubmittedAt,
			"locked_at":     record.LockedAt,
			"is_locked":     record.IsLocked,
			"unlocked_by":   record.UnlockedBy,
			"unlock_reason": record.UnlockReason,
			"unlocked_at":   record.UnlockedAt,
			"updated_by":    record.UpdatedBy,
			"version":       oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	record.Version = oldVersion + 1
	return nil
}
