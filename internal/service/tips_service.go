package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// ── tip distribution business errors ──

var (
	ErrNegativeTipAmount = errors.New("tip amount must not be negative")
	ErrTipPoolDisabled   = errors.New("tip pooling is not enabled at this venue")
	ErrNoAssignments     = errors.New("shift has no assignments to distribute tips to")
	ErrTipsPublished     = errors.New("tips for this shift have already been published")
)

// TipsService distributes an even tip share across a shift's roster.
type TipsService interface {
	// SetTips overwrites every assignment's tip share. Corrections are safe
	// to re-enter: amounts never accumulate.
	SetTips(ctx context.Context, shiftID string, perPersonAmount decimal.Decimal, actorID string) ([]model.Assignment, error)
	// Publish flips the shift's tip-publication flag and freezes amounts.
	Publish(ctx context.Context, shiftID, actorID string) (*model.Shift, error)
}

type tipsService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewTipsService creates a TipsService instance.
func NewTipsService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) TipsService {
	return &tipsService{repo: repo, notification: notification, logger: logger}
}

func (s *tipsService) SetTips(ctx context.Context, shiftID string, perPersonAmount decimal.Decimal, actorID string) ([]model.Assignment, error) {
	if perPersonAmount.IsNegative() {
		return nil, ErrNegativeTipAmount
	}

	var updated []model.Assignment
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		shift, err := txRepo.Shift.GetByID(ctx, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			s.logger.Error("load shift failed", zap.Error(err))
			return err
		}
		if shift.TipsPublished {
			return ErrTipsPublished
		}

		venue, err := txRepo.Venue.GetByID(ctx, shift.VenueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			s.logger.Error("load venue failed", zap.Error(err))
			return err
		}
		if !venue.TipPoolEnabled {
			return ErrTipPoolDisabled
		}

		count, err := txRepo.Assignment.SetTipAmounts(ctx, shiftID, perPersonAmount)
		if err != nil {
			s.logger.Error("set tip amounts failed", zap.Error(err))
			return err
		}
		if count == 0 {
			return ErrNoAssignments
		}

		updated, err = txRepo.Assignment.ListByShift(ctx, shiftID)
		if err != nil {
			s.logger.Error("list shift assignments failed", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tips distributed",
		zap.String("shift_id", shiftID),
		zap.String("per_person", perPersonAmount.StringFixed(2)),
		zap.Int("assignments", len(updated)))
	return updated, nil
}

func (s *tipsService) Publish(ctx context.Context, shiftID, actorID string) (*model.Shift, error) {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}
	if shift.TipsPublished {
		return nil, ErrTipsPublished
	}

	assignments, err := s.repo.Assignment.ListByShift(ctx, shiftID)
	if err != nil {
		s.logger.Error("list shift assignments failed", zap.Error(err))
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrNoAssignments
	}

	shift.TipsPublished = true
	shift.UpdatedBy = actorID
	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		ActorID: actorID,
		Action:  model.AuditActionTipsPublished,
		ShiftID: shiftID,
	}); err != nil {
		s.logger.Error("write audit log failed", zap.Error(err))
		return nil, err
	}

	for _, a := range assignments {
		s.notification.Notify(ctx, a.StaffID, model.NotificationTipsPublished,
			"Tips for your shift have been published", shiftID)
	}
	return shift, nil
}
