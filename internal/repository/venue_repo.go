package repository

import (
	"context"

	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	pkgerrors "venuecrew/backend/pkg/errors"
)

// VenueRepository is the venue data access interface.
type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) error
	GetByID(ctx context.Context, id string) (*model.Venue, error)
	List(ctx context.Context, offset, limit int) ([]model.Venue, int64, error)
	Update(ctx context.Context, venue *model.Venue) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type venueRepo struct {
	db *gorm.DB
}

// NewVenueRepo creates a VenueRepository instance.
func NewVenueRepo(db *gorm.DB) VenueRepository {
	return &venueRepo{db: db}
}

func (r *venueRepo) Create(ctx context.Context, venue *model.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepo) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	var venue model.Venue
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepo) List(ctx context.Context, offset, limit int) ([]model.Venue, int64, error) {
	var venues []model.Venue
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Venue{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&venues).Error
	return venues, total, err
}

func (r *venueRepo) Update(ctx context.Context, venue *model.Venue) error {
	oldVersion := venue.Version
	result := r.db.WithContext(ctx).
		Model(venue).
		Where("venue_id = ? AND version = ?", venue.VenueID, oldVersion).
		Updates(map[string]interface{}{
			"name":                      venue.Name,
			"is_networked":              venue.IsNetworked,
			"tip_pool_enabled":          venue.TipPoolEnabled,
			"availability_deadline_day": venue.AvailabilityDeadlineDay,
			"is_active":                 venue.IsActive,
			"updated_by":                venue.UpdatedBy,
			"version":                   oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	venue.Version = oldVersion + 1
	return nil
}

func (r *venueRepo) Delete(ctx context.Context, id, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Venue{}).
		Where("venue_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("venue_id = ?", id).
		Delete(&model.Venue{}).Error
}
