package repository

import (
	"context"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	pkgerrors "venuecrew/backend/pkg/errors"
)

// StaffFilter narrows staff directory queries. Zero values match all.
type StaffFilter struct {
	VenueID string
	Role    string
	Status  string
}

// StaffRepository is the staff directory data access interface.
type StaffRepository interface {
	Create(ctx context.Context, staff *model.StaffMember) error
	GetByID(ctx context.Context, id string) (*model.StaffMember, error)
	List(ctx context.Context, filter StaffFilter, offset, limit int) ([]model.StaffMember, int64, error)
	// ListActiveByRole returns active staff of the given base role with
	// affiliations preloaded, ordered by creation time for deterministic
	// ranking ties.
	ListActiveByRole(ctx context.Context, role string) ([]model.StaffMember, error)
	Update(ctx context.Context, staff *model.StaffMember) error
	Delete(ctx context.Context, id, deletedBy string) error
	// ReplaceAffiliations swaps a member's venue list for the given venues
	// in preference order.
	ReplaceAffiliations(ctx context.Context, staffID string, venueIDs []string) error
	ListAffiliations(ctx context.Context, staffID string) ([]model.VenueAffiliation, error)
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates a StaffRepository instance.
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.StaffMember) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.StaffMember, error) {
	var staff model.StaffMember
	err := r.db.WithContext(ctx).
		Preload("Affiliations").
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context, filter StaffFilter, offset, limit int) ([]model.StaffMember, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.StaffMember{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VenueID != "" {
		query = query.Where(
			"staff_id IN (?)",
			r.db.Model(&model.VenueAffiliation{}).Select("staff_id").Where("venue_id = ?", filter.VenueID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.StaffMember
	err := query.
		Preload("Affiliations").
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&members).Error
	return members, total, err
}

func (r *staffRepo) ListActiveByRole(ctx context.Context, role string) ([]model.StaffMember, error) {
	var members []model.StaffMember
	err := r.db.WithContext(ctx).
		Preload("Affiliations").
		Where("role = ? AND status = ?", role, model.StaffStatusActive).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *staffRepo) Update(ctx context.Context, staff *model.StaffMember) error {
	oldVersion := staff.Version
	result := r.db.WithContext(ctx).
		Model(staff).
		Where("staff_id = ? AND version = ?", staff.StaffID, oldVersion).
		Updates(map[string]interface{}{
			"name":              staff.Name,
			"email":             staff.Email,
			"is_lead":           staff.IsLead,
			"status":            staff.Status,
			"day_job_cutoff":    staff.DayJobCutoff,
			"cross_venue_grant": staff.CrossVenueGrant,
			"updated_by":        staff.UpdatedBy,
			"version":           oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	staff.Version = oldVersion + 1
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.StaffMember{}).
		Where("staff_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		Delete(&model.StaffMember{}).Error
}

func (r *staffRepo) ReplaceAffiliations(ctx context.Context, staffID string, venueIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).
			Delete(&model.VenueAffiliation{}).Error; err != nil {
			return err
		}
		if len(venueIDs) == 0 {
			return nil
		}
		affiliations := make([]model.VenueAffiliation, 0, len(venueIDs))
		for i, venueID := range venueIDs {
			affiliations = append(affiliations, model.VenueAffiliation{
				StaffID:  staffID,
				VenueID:  venueID,
				Position: i,
			})
		}
		return tx.Create(&affiliations).Error
	})
}

func (r *staffRepo) ListAffiliations(ctx context.Context, staffID string) ([]model.VenueAffiliation, error) {
	var affiliations []model.VenueAffiliation
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("position ASC").
		Find(&affiliations).Error
	return affiliations, err
}
