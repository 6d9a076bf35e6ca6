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

// ── availability business errors ──

var (
	ErrAvailabilityNotFound = errors.New("availability record not found")
	ErrAvailabilityLocked   = errors.New("availability for this month is locked")
	ErrInvalidMonth         = errors.New("month must be formatted YYYY-MM")
	ErrInvalidDay           = errors.New("day entries must map a valid day of month to available or unavailable")
)

// AvailabilityService manages monthly availability submissions. Records
// lock at the venue deadline; a manager can grant a one-shot unlock, and
// relocking clears the grant while keeping the original lock time.
type AvailabilityService interface {
	Submit(ctx context.Context, staffID string, req *dto.SubmitAvailabilityRequest) (*model.AvailabilityRecord, error)
	Get(ctx context.Context, staffID, month string) (*model.AvailabilityRecord, error)
	Lock(ctx context.Context, staffID, month, actorID string) (*model.AvailabilityRecord, error)
	Unlock(ctx context.Context, staffID, month, reason, actorID string) (*model.AvailabilityRecord, error)
	Relock(ctx context.Context, staffID, month, actorID string) (*model.AvailabilityRecord, error)
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService instance.
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func validateMonth(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return t, nil
}

func (s *availabilityService) Submit(ctx context.Context, staffID string, req *dto.SubmitAvailabilityRequest) (*model.AvailabilityRecord, error) {
	monthStart, err := validateMonth(req.Month)
	if err != nil {
		return nil, err
	}
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	days := model.DayMap{}
	for day, status := range req.Days {
		if day < 1 || day > daysInMonth {
			return nil, ErrInvalidDay
		}
		if status != model.DayAvailable && status != model.DayUnavailable {
			return nil, ErrInvalidDay
		}
		days[day] = status
	}

	now := time.Now()
	record, err := s.repo.Availability.GetByStaffAndMonth(ctx, staffID, req.Month)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("load availability failed", zap.Error(err))
			return nil, err
		}
		record = &model.AvailabilityRecord{
			StaffID:     staffID,
			Month:       req.Month,
			Days:        days,
			SubmittedAt: &now,
		}
		record.CreatedBy = staffID
		if err := s.repo.Availability.Create(ctx, record); err != nil {
			s.logger.Error("create availability failed", zap.Error(err))
			return nil, err
		}
		return record, nil
	}

	if !record.Editable() {
		return nil, ErrAvailabilityLocked
	}

	record.Days = days
	record.SubmittedAt = &now
	record.UpdatedBy = staffID
	if err := s.repo.Availability.Update(ctx, record); err != nil {
		s.logger.Error("update availability failed", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *availabilityService) Get(ctx context.Context, staffID, month string) (*model.AvailabilityRecord, error) {
	if _, err := validateMonth(month); err != nil {
		return nil, err
	}
	record, err := s.repo.Availability.GetByStaffAndMonth(ctx, staffID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("load availability failed", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *availabilityService) Lock(ctx context.Context, staffID, month, actorID string) (*model.AvailabilityRecord, error) {
	record, err := s.Get(ctx, staffID, month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.IsLocked = true
	if record.LockedAt == nil {
		record.LockedAt = &now
	}
	record.UpdatedBy = actorID
	if err := s.repo.Availability.Update(ctx, record); err != nil {
		s.logger.Error("update availability failed", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *availabilityService) Unlock(ctx context.Context, staffID, month, reason, actorID string) (*model.AvailabilityRecord, error) {
	record, err := s.Get(ctx, staffID, month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.UnlockedBy = actorID
	record.UnlockReason = reason
	record.UnlockedAt = &now
	record.UpdatedBy = actorID
	if err := s.repo.Availability.Update(ctx, record); err != nil {
		s.logger.Error("update availability failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		ActorID: actorID,
		Action:  model.AuditActionAvailabilityUnlock,
		StaffID: staffID,
		Detail:  reason,
	}); err != nil {
		s.logger.Error("write audit log failed", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *availabilityService) Relock(ctx context.Context, staffID, month, actorID string) (*model.AvailabilityRecord, error) {
	record, err := s.Get(ctx, staffID, month)
	if err != nil {
		return nil, err
	}

	// clear the grant; LockedAt stays as the original deadline for audit
	record.IsLocked = true
	record.UnlockedBy = ""
	record.UnlockReason = ""
	record.UnlockedAt = nil
	record.UpdatedBy = actorID
	if err := s.repo.Availability.Update(ctx, record); err != nil {
		s.logger.Error("update availability failed", zap.Error(err))
		return nil, err
	}
	return record, nil
}
