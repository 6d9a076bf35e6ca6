package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// ── shift business errors ──

var (
	ErrInvalidShiftTime = errors.New("shift times must be formatted HH:MM")
	ErrShiftNotOnTrade  = errors.New("shift is not up for trade")
)

// ShiftService manages shifts.
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest, actorID string) (*model.Shift, error)
	Get(ctx context.Context, id string) (*model.Shift, error)
	List(ctx context.Context, query *dto.ListShiftsQuery) ([]model.Shift, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftRequest, actorID string) (*model.Shift, error)
	Delete(ctx context.Context, id, actorID string) error
	// PostTrade flags the shift as up for trade on behalf of an assigned
	// staff member; ClearTrade removes the flag.
	PostTrade(ctx context.Context, id, reason, actorID string) (*model.Shift, error)
	ClearTrade(ctx context.Context, id, actorID string) (*model.Shift, error)
}

type shiftService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewShiftService creates a ShiftService instance.
func NewShiftService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, notification: notification, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest, actorID string) (*model.Shift, error) {
	if _, err := model.ParseClock(req.StartTime); err != nil {
		return nil, ErrInvalidShiftTime
	}
	if _, err := model.ParseClock(req.EndTime); err != nil {
		return nil, ErrInvalidShiftTime
	}
	if _, err := s.repo.Venue.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("load venue failed", zap.Error(err))
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		return nil, err
	}

	shift := &model.Shift{
		VenueID:            req.VenueID,
		ShiftDate:          date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		BartendersRequired: req.BartendersRequired,
		BarbacksRequired:   req.BarbacksRequired,
		LeadsRequired:      req.LeadsRequired,
		EventName:          req.EventName,
	}
	shift.CreatedBy = actorID
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) Get(ctx context.Context, id string) (*model.Shift, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) List(ctx context.Context, query *dto.ListShiftsQuery) ([]model.Shift, int64, error) {
	filter := repository.ShiftFilter{VenueID: query.VenueID}
	if query.StartDate != "" {
		start, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, 0, err
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, 0, err
		}
		filter.EndDate = &end
	}

	shifts, total, err := s.repo.Shift.List(ctx, filter, query.GetOffset(), query.GetPageSize())
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, 0, err
	}
	return shifts, total, nil
}

func (s *shiftService) Update(ctx context.Context, id string, req *dto.UpdateShiftRequest, actorID string) (*model.Shift, error) {
	shift, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		if _, err := model.ParseClock(*req.StartTime); err != nil {
			return nil, ErrInvalidShiftTime
		}
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, err := model.ParseClock(*req.EndTime); err != nil {
			return nil, ErrInvalidShiftTime
		}
		shift.EndTime = *req.EndTime
	}
	if req.BartendersRequired != nil {
		shift.BartendersRequired = *req.BartendersRequired
	}
	if req.BarbacksRequired != nil {
		shift.BarbacksRequired = *req.BarbacksRequired
	}
	if req.LeadsRequired != nil {
		shift.LeadsRequired = *req.LeadsRequired
	}
	if req.EventName != nil {
		shift.EventName = *req.EventName
	}
	shift.UpdatedBy = actorID

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Shift.Delete(ctx, id, actorID); err != nil {
		s.logger.Error("delete shift failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *shiftService) PostTrade(ctx context.Context, id, reason, actorID string) (*model.Shift, error) {
	shift, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shift.UpForTrade = true
	shift.TradeInitiatedBy = actorID
	shift.TradeInitiatedAt = &now
	shift.TradeReason = reason
	shift.UpdatedBy = actorID
	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}

	// let everyone on the roster know a slot may open up
	assignments, err := s.repo.Assignment.ListByShift(ctx, id)
	if err == nil {
		for _, a := range assignments {
			if a.StaffID == actorID {
				continue
			}
			s.notification.Notify(ctx, a.StaffID, model.NotificationTradePosted,
				"A shift you are on has been posted for trade", id)
		}
	}
	return shift, nil
}

func (s *shiftService) ClearTrade(ctx context.Context, id, actorID string) (*model.Shift, error) {
	shift, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shift.UpForTrade {
		return nil, ErrShiftNotOnTrade
	}

	shift.UpForTrade = false
	shift.TradeInitiatedBy = ""
	shift.TradeInitiatedAt = nil
	shift.TradeReason = ""
	shift.UpdatedBy = actorID
	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}
	return shift, nil
}
