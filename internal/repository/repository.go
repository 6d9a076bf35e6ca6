package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data access interfaces.
type Repository struct {
	db *gorm.DB

	Venue        VenueRepository
	Staff        StaffRepository
	Availability AvailabilityRepository
	Shift        ShiftRepository
	Assignment   AssignmentRepository
	Override     OverrideRepository
	SystemConfig SystemConfigRepository
	AuditLog     AuditLogRepository
	Notification NotificationRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		Venue:        NewVenueRepo(db),
		Staff:        NewStaffRepo(db),
		Availability: NewAvailabilityRepo(db),
		Shift:        NewShiftRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Override:     NewOverrideRepo(db),
		SystemConfig: NewSystemConfigRepo(db),
		AuditLog:     NewAuditLogRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// Transaction runs fn inside a database transaction, handing it a
// Repository bound to the transaction. With no database attached (unit
// tests with mock repos) fn runs against the receiver directly.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
