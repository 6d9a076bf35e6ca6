package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
)

// AssignmentRepository is the shift assignment data access interface.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	ListByShift(ctx context.Context, shiftID string) ([]model.Assignment, error)
	// ListByStaffNear returns the staff member's assignments on shifts dated
	// within one day of date, with the shift rows attached for overlap math.
	ListByStaffNear(ctx context.Context, staffID string, date time.Time) ([]AssignmentWithShift, error)
	// CountByStaffInWindow counts a member's assignments on shifts dated in
	// [start, end]. Nil bounds mean unbounded (all-time equity window).
	CountByStaffInWindow(ctx context.Context, staffID string, start, end *time.Time) (int64, error)
	// SetTipAmounts overwrites tip_amount on every assignment of the shift.
	SetTipAmounts(ctx context.Context, shiftID string, amount decimal.Decimal) (int64, error)
	Delete(ctx context.Context, id string) error
}

// AssignmentWithShift pairs an assignment with its shift for time checks.
type AssignmentWithShift struct {
	Assignment model.Assignment
	Shift      model.Shift
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository instance.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) ListByShift(ctx context.Context, shiftID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByStaffNear(ctx context.Context, staffID string, date time.Time) ([]AssignmentWithShift, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Joins("JOIN shifts ON shifts.shift_id = assignments.shift_id").
		Where("assignments.staff_id = ?", staffID).
		Where("shifts.shift_date >= ? AND shifts.shift_date <= ?",
			date.AddDate(0, 0, -1), date.AddDate(0, 0, 1)).
		Where("shifts.deleted_at IS NULL").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	out := make([]AssignmentWithShift, 0, len(assignments))
	for _, a := range assignments {
		var shift model.Shift
		if err := r.db.WithContext(ctx).
			Where("shift_id = ?", a.ShiftID).
			First(&shift).Error; err != nil {
			return nil, err
		}
		out = append(out, AssignmentWithShift{Assignment: a, Shift: shift})
	}
	return out, nil
}

func (r *assignmentRepo) CountByStaffInWindow(ctx context.Context, staffID string, start, end *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Joins("JOIN shifts ON shifts.shift_id = assignments.shift_id").
		Where("assignments.staff_id = ?", staffID).
		Where("shifts.deleted_at IS NULL")
	if start != nil {
		query = query.Where("shifts.shift_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("shifts.shift_date <= ?", *end)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *assignmentRepo) SetTipAmounts(ctx context.Context, shiftID string, amount decimal.Decimal) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("shift_id = ?", shiftID).
		Update("tip_amount", amount)
	return result.RowsAffected, result.Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.Assignment{}).Error
}
