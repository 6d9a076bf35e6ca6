package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	pkgerrors "venuecrew/backend/pkg/errors"
)

// ShiftFilter narrows shift queries. Zero values match all.
type ShiftFilter struct {
	VenueID   string
	StartDate *time.Time
	EndDate   *time.Time
}

// ShiftRepository is the shift data access interface.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	List(ctx context.Context, filter ShiftFilter, offset, limit int) ([]model.Shift, int64, error)
	// ListInRange returns all shifts in [start, end] for the optional venue,
	// ordered by date then start time, without pagination. Batch
	// auto-scheduling walks this list sequentially.
	ListInRange(ctx context.Context, venueID string, start, end time.Time) ([]model.Shift, error)
	// ListByDateNear returns shifts dated within one day of date. Overnight
	// windows make same-date filtering insufficient for overlap checks.
	ListByDateNear(ctx context.Context, date time.Time) ([]model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates a ShiftRepository instance.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) List(ctx context.Context, filter ShiftFilter, offset, limit int) ([]model.Shift, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Shift{})
	if filter.VenueID != "" {
		query = query.Where("venue_id = ?", filter.VenueID)
	}
	if filter.StartDate != nil {
		query = query.Where("shift_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("shift_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shifts []model.Shift
	err := query.
		Order("shift_date ASC, start_time ASC").
		Offset(offset).Limit(limit).
		Find(&shifts).Error
	return shifts, total, err
}

func (r *shiftRepo) ListInRange(ctx context.Context, venueID string, start, end time.Time) ([]model.Shift, error) {
	query := r.db.WithContext(ctx).
		Where("shift_date >= ? AND shift_date <= ?", start, end)
	if venueID != "" {
		query = query.Where("venue_id = ?", venueID)
	}
	var shifts []model.Shift
	err := query.Order("shift_date ASC, start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListByDateNear(ctx context.Context, date time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("shift_date >= ? AND shift_date <= ?", date.AddDate(0, 0, -1), date.AddDate(0, 0, 1)).
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	oldVersion := shift.Version
	result := r.db.WithContext(ctx).
		Model(shift).
		Where("shift_id = ? AND version = ?", shift.ShiftID, oldVersion).
		Updates(map[string]interface{}{
			"start_time":          shift.StartTime,
			"end_time":            shift.EndTime,
			"bartenders_required": shift.BartendersRequired,
			"barbacks_required":   shift.BarbacksRequired,
			"leads_required":      shift.LeadsRequired,
			"event_name":          shift.EventName,
			"up_for_trade":        shift.UpForTrade,
			"trade_initiated_by":  shift.TradeInitiatedBy,
			"trade_initiated_at":  shift.TradeInitiatedAt,
			"trade_reason":        shift.TradeReason,
			"tips_published":      shift.TipsPublished,
			"updated_by":          shift.UpdatedBy,
			"version":             oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	shift.Version = oldVersion + 1
	return nil
}

func (r *shiftRepo) Delete(ctx context.Context, id, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("shift_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		Delete(&model.Shift{}).Error
}
