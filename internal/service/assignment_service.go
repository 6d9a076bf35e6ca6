package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// ── assignment business errors ──

var (
	ErrAlreadyAssigned    = errors.New("staff member is already assigned to this shift")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrBypassForbidden    = errors.New("only general managers may bypass validation")
)

// AssignmentService handles manual shift assignment.
type AssignmentService interface {
	// Assign validates and commits one placement atomically. General
	// managers may bypass validation; the bypass is written to the audit
	// trail along with the violations it overrode.
	Assign(ctx context.Context, shiftID string, req *dto.AssignRequest, actorID, actorRole string) (*model.Assignment, error)
	ListByShift(ctx context.Context, shiftID string) ([]model.Assignment, error)
	Unassign(ctx context.Context, assignmentID, actorID string) error
}

type assignmentService struct {
	repo         *repository.Repository
	staffing     config.StaffingConfig
	notification NotificationService
	logger       *zap.Logger
}

// NewAssignmentService creates an AssignmentService instance.
func NewAssignmentService(repo *repository.Repository, staffing config.StaffingConfig, notification NotificationService, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, staffing: staffing, notification: notification, logger: logger}
}

func (s *assignmentService) Assign(ctx context.Context, shiftID string, req *dto.AssignRequest, actorID, actorRole string) (*model.Assignment, error) {
	if req.BypassValidation && actorRole != model.RoleGeneralManager {
		return nil, ErrBypassForbidden
	}

	var assignment *model.Assignment
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		existing, err := txRepo.Assignment.ListByShift(ctx, shiftID)
		if err != nil {
			s.logger.Error("list shift assignments failed", zap.Error(err))
			return err
		}
		for _, a := range existing {
			if a.StaffID == req.UserID {
				return ErrAlreadyAssigned
			}
		}

		// validate inside the transaction so two concurrent assigns cannot
		// both pass against a stale snapshot
		validator := NewValidationService(txRepo, s.staffing, s.logger)
		violations, err := validator.Validate(ctx, Candidate{
			UserID:  req.UserID,
			ShiftID: shiftID,
			Role:    req.Role,
			IsLead:  req.IsLead,
		})
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			if !req.BypassValidation {
				return &ValidationError{Violations: violations}
			}
			if err := s.logBypass(ctx, txRepo, shiftID, req.UserID, actorID, violations); err != nil {
				return err
			}
		}

		assignment = &model.Assignment{
			ShiftID:  shiftID,
			StaffID:  req.UserID,
			Role:     req.Role,
			IsLead:   req.IsLead,
			IsOnCall: req.IsOnCall,
		}
		assignment.CreatedBy = actorID
		if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
			s.logger.Error("create assignment failed", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notification.Notify(ctx, req.UserID, model.NotificationShiftAssigned,
		"You have been assigned to a shift", shiftID)

	return assignment, nil
}

// logBypass records who bypassed validation and which violations were
// overridden. No override record exists for a bypass, so the audit trail
// is the only trace.
func (s *assignmentService) logBypass(ctx context.Context, txRepo *repository.Repository, shiftID, staffID, actorID string, violations []dto.Violation) error {
	detail, err := json.Marshal(violations)
	if err != nil {
		return fmt.Errorf("encode violations: %w", err)
	}
	entry := &model.AuditLog{
		ActorID: actorID,
		Action:  model.AuditActionValidationBypass,
		ShiftID: shiftID,
		StaffID: staffID,
		Detail:  string(detail),
	}
	if err := txRepo.AuditLog.Create(ctx, entry); err != nil {
		s.logger.Error("write audit log failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *assignmentService) ListByShift(ctx context.Context, shiftID string) ([]model.Assignment, error) {
	if _, err := s.repo.Shift.GetByID(ctx, shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}
	assignments, err := s.repo.Assignment.ListByShift(ctx, shiftID)
	if err != nil {
		s.logger.Error("list shift assignments failed", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

func (s *assignmentService) Unassign(ctx context.Context, assignmentID, actorID string) error {
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("load assignment failed", zap.Error(err))
		return err
	}

	if err := s.repo.Assignment.Delete(ctx, assignmentID); err != nil {
		s.logger.Error("delete assignment failed", zap.Error(err))
		return err
	}

	s.logger.Info("assignment removed",
		zap.String("assignment_id", assignmentID),
		zap.String("actor_id", actorID))
	s.notification.Notify(ctx, assignment.StaffID, model.NotificationShiftUnassigned,
		"You have been removed from a shift", assignment.ShiftID)
	return nil
}
