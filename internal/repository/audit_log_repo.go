package repository

import (
	"context"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
)

// AuditLogRepository is the append-only audit trail interface.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	ListByShift(ctx context.Context, shiftID string) ([]model.AuditLog, error)
}

type auditLogRepo struct {
	db *gorm.DB
}

// NewAuditLogRepo creates an AuditLogRepository instance.
func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepo) ListByShift(ctx context.Context, shiftID string) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
