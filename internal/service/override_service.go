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

// ── override business errors ──

var (
	ErrOverrideNotFound = errors.New("override not found")
	ErrOverrideResolved = errors.New("override has already been resolved")
	ErrOverrideNotOwner = errors.New("only the staff member named in the override may resolve it")
)

// OverrideService runs the two-party override workflow: a manager requests
// the bypass, the affected staff member approves or declines it.
type OverrideService interface {
	Request(ctx context.Context, req *dto.RequestOverrideRequest, actorID string) (*model.Override, error)
	// Approve commits the recorded assignment and moves the override to
	// approved. The validator is not re-run: the staff member has accepted
	// the specific violation.
	Approve(ctx context.Context, overrideID, actorID string) (*model.Override, error)
	// Decline moves the override to declined. No assignment is created.
	Decline(ctx context.Context, overrideID, actorID string) (*model.Override, error)
	Get(ctx context.Context, overrideID string) (*model.Override, error)
	List(ctx context.Context, filter repository.OverrideFilter, offset, limit int) ([]model.Override, int64, error)
}

type overrideService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewOverrideService creates an OverrideService instance.
func NewOverrideService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) OverrideService {
	return &overrideService{repo: repo, notification: notification, logger: logger}
}

func (s *overrideService) Request(ctx context.Context, req *dto.RequestOverrideRequest, actorID string) (*model.Override, error) {
	if _, err := s.repo.Shift.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Staff.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff member failed", zap.Error(err))
		return nil, err
	}

	override := &model.Override{
		ShiftID:       req.ShiftID,
		StaffID:       req.UserID,
		RequestedBy:   actorID,
		ViolationType: req.ViolationType,
		Reason:        req.Reason,
		Role:          req.Role,
		IsLead:        req.IsLead,
		IsOnCall:      req.IsOnCall,
		Status:        model.OverrideStatusPending,
	}
	override.CreatedBy = actorID
	if err := s.repo.Override.Create(ctx, override); err != nil {
		s.logger.Error("create override failed", zap.Error(err))
		return nil, err
	}

	s.notification.Notify(ctx, req.UserID, model.NotificationOverrideRequested,
		"A manager has requested your approval for a conflicting shift assignment", override.OverrideID)

	return override, nil
}

func (s *overrideService) Approve(ctx context.Context, overrideID, actorID string) (*model.Override, error) {
	override, err := s.loadForResolution(ctx, overrideID, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// the status guard makes the first resolution win; a concurrent
		// duplicate sees zero rows and fails with StateConflict
		resolved, err := txRepo.Override.Resolve(ctx, overrideID, model.OverrideStatusApproved, now)
		if err != nil {
			s.logger.Error("resolve override failed", zap.Error(err))
			return err
		}
		if !resolved {
			return ErrOverrideResolved
		}

		existing, err := txRepo.Assignment.ListByShift(ctx, override.ShiftID)
		if err != nil {
			s.logger.Error("list shift assignments failed", zap.Error(err))
			return err
		}
		for _, a := range existing {
			if a.StaffID == override.StaffID {
				return ErrAlreadyAssigned
			}
		}

		assignment := &model.Assignment{
			ShiftID:  override.ShiftID,
			StaffID:  override.StaffID,
			Role:     override.Role,
			IsLead:   override.IsLead,
			IsOnCall: override.IsOnCall,
		}
		assignment.CreatedBy = actorID
		if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
			s.logger.Error("create assignment failed", zap.Error(err))
			return err
		}

		return txRepo.AuditLog.Create(ctx, &model.AuditLog{
			ActorID: actorID,
			Action:  model.AuditActionOverrideApproved,
			ShiftID: override.ShiftID,
			StaffID: override.StaffID,
			Detail:  override.ViolationType,
		})
	})
	if err != nil {
		return nil, err
	}

	override.Status = model.OverrideStatusApproved
	override.ResolvedAt = &now

	s.notification.Notify(ctx, override.RequestedBy, model.NotificationOverrideResolved,
		"Your override request was approved", override.OverrideID)

	return override, nil
}

func (s *overrideService) Decline(ctx context.Context, overrideID, actorID string) (*model.Override, error) {
	override, err := s.loadForResolution(ctx, overrideID, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		resolved, err := txRepo.Override.Resolve(ctx, overrideID, model.OverrideStatusDeclined, now)
		if err != nil {
			s.logger.Error("resolve override failed", zap.Error(err))
			return err
		}
		if !resolved {
			return ErrOverrideResolved
		}
		return txRepo.AuditLog.Create(ctx, &model.AuditLog{
			ActorID: actorID,
			Action:  model.AuditActionOverrideDeclined,
			ShiftID: override.ShiftID,
			StaffID: override.StaffID,
			Detail:  override.ViolationType,
		})
	})
	if err != nil {
		return nil, err
	}

	override.Status = model.OverrideStatusDeclined
	override.ResolvedAt = &now

	s.notification.Notify(ctx, override.RequestedBy, model.NotificationOverrideResolved,
		"Your override request was declined", override.OverrideID)

	return override, nil
}

// loadForResolution fetches the override and enforces that only the named
// staff member may act on it. Ownership is checked before status so an
// outsider probing a resolved override still gets an authorization error.
func (s *overrideService) loadForResolution(ctx context.Context, overrideID, actorID string) (*model.Override, error) {
	override, err := s.repo.Override.GetByID(ctx, overrideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("load override failed", zap.Error(err))
		return nil, err
	}
	if override.StaffID != actorID {
		return nil, ErrOverrideNotOwner
	}
	if override.IsResolved() {
		return nil, ErrOverrideResolved
	}
	return override, nil
}

func (s *overrideService) Get(ctx context.Context, overrideID string) (*model.Override, error) {
	override, err := s.repo.Override.GetByID(ctx, overrideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("load override failed", zap.Error(err))
		return nil, err
	}
	return override, nil
}

func (s *overrideService) List(ctx context.Context, filter repository.OverrideFilter, offset, limit int) ([]model.Override, int64, error) {
	overrides, total, err := s.repo.Override.List(ctx, filter, offset, limit)
	if err != nil {
		s.logger.Error("list overrides failed", zap.Error(err))
		return nil, 0, err
	}
	return overrides, total, nil
}
