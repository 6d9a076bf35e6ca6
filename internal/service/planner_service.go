package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// PlannerService fills open shift slots from ranked candidates.
type PlannerService interface {
	// AutoAssign fills one shift. Candidates failing validation are skipped
	// silently; re-running on a fully staffed shift assigns zero.
	AutoAssign(ctx context.Context, shiftID, actorID string) (*dto.AutoAssignResult, error)
	// AutoSchedule runs AutoAssign across a date range, sequentially.
	// Shifts already fully staffed are skipped and not counted as processed.
	AutoSchedule(ctx context.Context, venueID string, start, end time.Time, actorID string) (*dto.AutoScheduleResult, error)
}

type plannerService struct {
	repo     *repository.Repository
	staffing config.StaffingConfig
	logger   *zap.Logger
}

// NewPlannerService creates a PlannerService instance.
func NewPlannerService(repo *repository.Repository, staffing config.StaffingConfig, logger *zap.Logger) PlannerService {
	return &plannerService{repo: repo, staffing: staffing, logger: logger}
}

// slotOrder fills leads first: a lead is a bartender sub-qualification and
// filling lead slots first avoids double-counting lead-capable bartenders.
var slotOrder = []string{model.SlotLead, model.SlotBartender, model.SlotBarback}

func (s *plannerService) AutoAssign(ctx context.Context, shiftID, actorID string) (*dto.AutoAssignResult, error) {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}

	var result *dto.AutoAssignResult
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		var txErr error
		result, txErr = s.fillShift(ctx, txRepo, shift, actorID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("auto-assign completed",
		zap.String("shift_id", shiftID),
		zap.Int("assigned", result.Assigned))
	return result, nil
}

func (s *plannerService) fillShift(ctx context.Context, txRepo *repository.Repository, shift *model.Shift, actorID string) (*dto.AutoAssignResult, error) {
	validator := NewValidationService(txRepo, s.staffing, s.logger)
	ranker := NewRankingService(txRepo, s.staffing, s.logger)

	assignments, err := txRepo.Assignment.ListByShift(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("list shift assignments failed", zap.Error(err))
		return nil, err
	}
	unmet := unmetCounts(shift, assignments)

	result := &dto.AutoAssignResult{}
	for _, slot := range slotOrder {
		if unmet[slot] <= 0 {
			continue
		}

		candidates, err := ranker.RankForShift(ctx, shift, slot)
		if err != nil {
			return nil, err
		}

		role := model.RoleBartender
		if slot == model.SlotBarback {
			role = model.RoleBarback
		}
		isLead := slot == model.SlotLead

		for i := range candidates {
			if unmet[slot] <= 0 {
				break
			}
			candidate := &candidates[i]

			violations, err := validator.Validate(ctx, Candidate{
				UserID:  candidate.StaffID,
				ShiftID: shift.ShiftID,
				Role:    role,
				IsLead:  isLead,
			})
			if err != nil {
				return nil, err
			}
			if len(violations) > 0 {
				// defined skip behavior, never an override
				continue
			}

			assignment := &model.Assignment{
				ShiftID: shift.ShiftID,
				StaffID: candidate.StaffID,
				Role:    role,
				IsLead:  isLead,
			}
			assignment.CreatedBy = actorID
			if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
				s.logger.Error("create assignment failed", zap.Error(err))
				return nil, err
			}

			unmet[slot]--
			result.Assigned++
			switch slot {
			case model.SlotLead:
				result.Summary.LeadsAssigned++
			case model.SlotBartender:
				result.Summary.BartendersAssigned++
			case model.SlotBarback:
				result.Summary.BarbacksAssigned++
			}
		}
	}
	return result, nil
}

func (s *plannerService) AutoSchedule(ctx context.Context, venueID string, start, end time.Time, actorID string) (*dto.AutoScheduleResult, error) {
	shifts, err := s.repo.Shift.ListInRange(ctx, venueID, start, end)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}

	result := &dto.AutoScheduleResult{}
	for i := range shifts {
		shift := &shifts[i]

		assignments, err := s.repo.Assignment.ListByShift(ctx, shift.ShiftID)
		if err != nil {
			s.logger.Error("list shift assignments failed", zap.Error(err))
			return nil, err
		}
		if fullyStaffed(shift, assignments) {
			continue
		}

		var shiftResult *dto.AutoAssignResult
		err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
			var txErr error
			shiftResult, txErr = s.fillShift(ctx, txRepo, shift, actorID)
			return txErr
		})
		if err != nil {
			return nil, err
		}

		result.Processed++
		result.Assigned += shiftResult.Assigned
	}

	s.logger.Info("auto-schedule completed",
		zap.String("venue_id", venueID),
		zap.Int("processed", result.Processed),
		zap.Int("assigned", result.Assigned))
	return result, nil
}
