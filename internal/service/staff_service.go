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

// ── staff directory business errors ──

var (
	ErrLeadMustBeBartender = errors.New("only bartenders can carry the lead flag")
	ErrInvalidCutoff       = errors.New("day job cutoff must be formatted HH:MM")
)

// StaffService manages the staff directory.
type StaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest, actorID string) (*model.StaffMember, error)
	Get(ctx context.Context, id string) (*model.StaffMember, error)
	List(ctx context.Context, query *dto.ListStaffQuery) ([]model.StaffMember, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, actorID string) (*model.StaffMember, error)
	Delete(ctx context.Context, id, actorID string) error
	// SetVenues replaces the member's venue affiliations in preference order.
	SetVenues(ctx context.Context, id string, venueIDs []string, actorID string) (*model.StaffMember, error)
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates a StaffService instance.
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest, actorID string) (*model.StaffMember, error) {
	if req.IsLead && req.Role != model.RoleBartender {
		return nil, ErrLeadMustBeBartender
	}
	if req.DayJobCutoff != "" {
		if _, err := model.ParseClock(req.DayJobCutoff); err != nil {
			return nil, ErrInvalidCutoff
		}
	}
	for _, venueID := range req.VenueIDs {
		if _, err := s.repo.Venue.GetByID(ctx, venueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVenueNotFound
			}
			s.logger.Error("load venue failed", zap.Error(err))
			return nil, err
		}
	}

	staff := &model.StaffMember{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		IsLead:          req.IsLead,
		Status:          model.StaffStatusActive,
		DayJobCutoff:    req.DayJobCutoff,
		CrossVenueGrant: req.CrossVenueGrant,
	}
	staff.CreatedBy = actorID
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("create staff member failed", zap.Error(err))
		return nil, err
	}

	if len(req.VenueIDs) > 0 {
		if err := s.repo.Staff.ReplaceAffiliations(ctx, staff.StaffID, req.VenueIDs); err != nil {
			s.logger.Error("set venue affiliations failed", zap.Error(err))
			return nil, err
		}
	}
	return s.Get(ctx, staff.StaffID)
}

func (s *staffService) Get(ctx context.Context, id string) (*model.StaffMember, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff member failed", zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (s *staffService) List(ctx context.Context, query *dto.ListStaffQuery) ([]model.StaffMember, int64, error) {
	filter := repository.StaffFilter{
		VenueID: query.VenueID,
		Role:    query.Role,
		Status:  query.Status,
	}
	members, total, err := s.repo.Staff.List(ctx, filter, query.GetOffset(), query.GetPageSize())
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, 0, err
	}
	return members, total, nil
}

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, actorID string) (*model.StaffMember, error) {
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.IsLead != nil {
		staff.IsLead = *req.IsLead
	}
	if req.Status != nil {
		staff.Status = *req.Status
	}
	if req.DayJobCutoff != nil {
		if *req.DayJobCutoff != "" {
			if _, err := model.ParseClock(*req.DayJobCutoff); err != nil {
				return nil, ErrInvalidCutoff
			}
		}
		staff.DayJobCutoff = *req.DayJobCutoff
	}
	if req.CrossVenueGrant != nil {
		staff.CrossVenueGrant = *req.CrossVenueGrant
	}
	if staff.IsLead && staff.Role != model.RoleBartender {
		return nil, ErrLeadMustBeBartender
	}
	staff.UpdatedBy = actorID

	if err := s.repo.Staff.Update(ctx, staff); err != nil {
		s.logger.Error("update staff member failed", zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Staff.Delete(ctx, id, actorID); err != nil {
		s.logger.Error("delete staff member failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *staffService) SetVenues(ctx context.Context, id string, venueIDs []string, actorID string) (*model.StaffMember, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	for _, venueID := range venueIDs {
		if _, err := s.repo.Venue.GetByID(ctx, venueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVenueNotFound
			}
			s.logger.Error("load venue failed", zap.Error(err))
			return nil, err
		}
	}
	if err := s.repo.Staff.ReplaceAffiliations(ctx, id, venueIDs); err != nil {
		s.logger.Error("set venue affiliations failed", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, id)
}
