package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// VenueService manages venues.
type VenueService interface {
	Create(ctx context.Context, req *dto.CreateVenueRequest, actorID string) (*model.Venue, error)
	Get(ctx context.Context, id string) (*model.Venue, error)
	List(ctx context.Context, offset, limit int) ([]model.Venue, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateVenueRequest, actorID string) (*model.Venue, error)
	Delete(ctx context.Context, id, actorID string) error
}

type venueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVenueService creates a VenueService instance.
func NewVenueService(repo *repository.Repository, logger *zap.Logger) VenueService {
	return &venueService{repo: repo, logger: logger}
}

func (s *venueService) Create(ctx context.Context, req *dto.CreateVenueRequest, actorID string) (*model.Venue, error) {
	venue := &model.Venue{
		Name:                    req.Name,
		IsNetworked:             req.IsNetworked,
		TipPoolEnabled:          req.TipPoolEnabled,
		AvailabilityDeadlineDay: req.AvailabilityDeadlineDay,
		IsActive:                true,
	}
	if venue.AvailabilityDeadlineDay == 0 {
		venue.AvailabilityDeadlineDay = 25
	}
	venue.CreatedBy = actorID
	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.logger.Error("create venue failed", zap.Error(err))
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Get(ctx context.Context, id string) (*model.Venue, error) {
	venue, err := s.repo.Venue.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("load venue failed", zap.Error(err))
		return nil, err
	}
	return venue, nil
}

func (s *venueService) List(ctx context.Context, offset, limit int) ([]model.Venue, int64, error) {
	venues, total, err := s.repo.Venue.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("list venues failed", zap.Error(err))
		return nil, 0, err
	}
	return venues, total, nil
}

func (s *venueService) Update(ctx context.Context, id string, req *dto.UpdateVenueRequest, actorID string) (*model.Venue, error) {
	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.IsNetworked != nil {
		venue.IsNetworked = *req.IsNetworked
	}
	if req.TipPoolEnabled != nil {
		venue.TipPoolEnabled = *req.TipPoolEnabled
	}
	if req.AvailabilityDeadlineDay != nil {
		venue.AvailabilityDeadlineDay = *req.AvailabilityDeadlineDay
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}
	venue.UpdatedBy = actorID

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		s.logger.Error("update venue failed", zap.Error(err))
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Venue.Delete(ctx, id, actorID); err != nil {
		s.logger.Error("delete venue failed", zap.Error(err))
		return err
	}
	return nil
}
