package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// ── staffing engine business errors ──

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrStaffNotFound = errors.New("staff member not found")
	ErrVenueNotFound = errors.New("venue not found")
)

// ValidationError wraps the violations a candidate failed on. Callers can
// retry with different input, request an override, or bypass as a general
// manager.
type ValidationError struct {
	Violations []dto.Violation
}

func (e *ValidationError) Error() string {
	types := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		types = append(types, v.ViolationType)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(types, ", "))
}

// Candidate is one proposed (staff, shift, role) placement to validate.
type Candidate struct {
	UserID  string
	ShiftID string
	Role    string
	IsLead  bool
}

// ValidationService runs the scheduling-rule checks.
type ValidationService interface {
	// Validate returns every violation for the candidate, not just the
	// first. It never mutates state, so it is safe to call speculatively.
	Validate(ctx context.Context, candidate Candidate) ([]dto.Violation, error)
}

type validationService struct {
	repo     *repository.Repository
	staffing config.StaffingConfig
	logger   *zap.Logger
}

// NewValidationService creates a ValidationService instance.
func NewValidationService(repo *repository.Repository, staffing config.StaffingConfig, logger *zap.Logger) ValidationService {
	return &validationService{repo: repo, staffing: staffing, logger: logger}
}

func (s *validationService) Validate(ctx context.Context, candidate Candidate) ([]dto.Violation, error) {
	shift, err := s.repo.Shift.GetByID(ctx, candidate.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}

	staff, err := s.repo.Staff.GetByID(ctx, candidate.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff member failed", zap.Error(err))
		return nil, err
	}

	venue, err := s.repo.Venue.GetByID(ctx, shift.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("load venue failed", zap.Error(err))
		return nil, err
	}

	var violations []dto.Violation

	if v, err := s.checkDoubleBooking(ctx, staff, shift); err != nil {
		return nil, err
	} else if v != nil {
		violations = append(violations, *v)
	}

	if v, err := s.checkAvailability(ctx, staff, shift); err != nil {
		return nil, err
	} else if v != nil {
		violations = append(violations, *v)
	}

	if v := checkDayJob(staff, shift); v != nil {
		violations = append(violations, *v)
	}

	if v := checkVenueEligibility(staff, venue); v != nil {
		violations = append(violations, *v)
	}

	if v, err := s.checkRoleFit(ctx, staff, shift, candidate); err != nil {
		return nil, err
	} else if v != nil {
		violations = append(violations, *v)
	}

	if v := checkLeadEligibility(staff, candidate); v != nil {
		violations = append(violations, *v)
	}

	return violations, nil
}

func (s *validationService) checkDoubleBooking(ctx context.Context, staff *model.StaffMember, shift *model.Shift) (*dto.Violation, error) {
	existing, err := s.repo.Assignment.ListByStaffNear(ctx, staff.StaffID, shift.ShiftDate)
	if err != nil {
		s.logger.Error("list staff assignments failed", zap.Error(err))
		return nil, err
	}
	for _, e := range existing {
		if e.Shift.ShiftID == shift.ShiftID {
			continue
		}
		if shift.Overlaps(&e.Shift) {
			return &dto.Violation{
				Field: "shiftId",
				Message: fmt.Sprintf("%s is already assigned to an overlapping shift (%s %s-%s)",
					staff.Name, e.Shift.ShiftDate.Format("2006-01-02"), e.Shift.StartTime, e.Shift.EndTime),
				Suggestion:    "pick a different staff member or resolve the overlapping assignment first",
				ViolationType: dto.ViolationDoubleBooking,
			}, nil
		}
	}
	return nil, nil
}

func (s *validationService) checkAvailability(ctx context.Context, staff *model.StaffMember, shift *model.Shift) (*dto.Violation, error) {
	month := shift.ShiftDate.Format("2006-01")
	record, err := s.repo.Availability.GetByStaffAndMonth(ctx, staff.StaffID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if s.requireAvailability(ctx) {
				return &dto.Violation{
					Field:         "userId",
					Message:       fmt.Sprintf("%s has not submitted availability for %s", staff.Name, month),
					Suggestion:    "ask them to submit availability, or request an override",
					ViolationType: dto.ViolationAvailability,
				}, nil
			}
			return nil, nil
		}
		s.logger.Error("load availability failed", zap.Error(err))
		return nil, err
	}
	if record.Days.Status(shift.DayKey()) == model.DayUnavailable {
		return &dto.Violation{
			Field:         "userId",
			Message:       fmt.Sprintf("%s marked %s as unavailable", staff.Name, shift.ShiftDate.Format("2006-01-02")),
			Suggestion:    "pick someone who is available that day",
			ViolationType: dto.ViolationAvailability,
		}, nil
	}
	return nil, nil
}

// requireAvailability reads the system-config flag, falling back to the
// deployment default when the settings row is missing.
func (s *validationService) requireAvailability(ctx context.Context) bool {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		return s.staffing.RequireAvailability
	}
	return cfg.RequireAvailability
}

func checkDayJob(staff *model.StaffMember, shift *model.Shift) *dto.Violation {
	if staff.DayJobCutoff == "" {
		return nil
	}
	cutoff, err := model.ParseClock(staff.DayJobCutoff)
	if err != nil {
		return nil
	}
	start, _ := shift.Window()
	if start < cutoff {
		return &dto.Violation{
			Field: "shiftId",
			Message: fmt.Sprintf("shift starts at %s, before %s's day-job cutoff of %s",
				shift.StartTime, staff.Name, staff.DayJobCutoff),
			Suggestion:    "pick a later shift or someone without a day job",
			ViolationType: dto.ViolationDayJob,
		}
	}
	return nil
}

func checkVenueEligibility(staff *model.StaffMember, venue *model.Venue) *dto.Violation {
	for _, a := range staff.Affiliations {
		if a.VenueID == venue.VenueID {
			return nil
		}
	}
	if venue.IsNetworked && staff.CrossVenueGrant {
		return nil
	}
	return &dto.Violation{
		Field:         "userId",
		Message:       fmt.Sprintf("%s is not affiliated with %s", staff.Name, venue.Name),
		Suggestion:    "add the venue to their affiliations or grant cross-venue access",
		ViolationType: dto.ViolationVenueIneligible,
	}
}

func (s *validationService) checkRoleFit(ctx context.Context, staff *model.StaffMember, shift *model.Shift, candidate Candidate) (*dto.Violation, error) {
	if staff.IsWorker() && staff.Role != candidate.Role {
		return &dto.Violation{
			Field:         "role",
			Message:       fmt.Sprintf("%s is a %s, not a %s", staff.Name, staff.Role, candidate.Role),
			Suggestion:    fmt.Sprintf("assign as %s instead", strings.ToUpper(staff.Role)),
			ViolationType: dto.ViolationRoleMismatch,
		}, nil
	}

	assignments, err := s.repo.Assignment.ListByShift(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("list shift assignments failed", zap.Error(err))
		return nil, err
	}

	unmet := unmetCounts(shift, assignments)
	slot := slotKindFor(candidate.Role, candidate.IsLead)
	if unmet[slot] > 0 {
		return nil, nil
	}

	suggestion := "raise the shift's required counts"
	for _, open := range []string{model.SlotLead, model.SlotBartender, model.SlotBarback} {
		if unmet[open] > 0 {
			suggestion = fmt.Sprintf("assign as %s instead", open)
			break
		}
	}
	return &dto.Violation{
		Field:         "role",
		Message:       fmt.Sprintf("the shift has no unfilled %s slot", slot),
		Suggestion:    suggestion,
		ViolationType: dto.ViolationRoleMismatch,
	}, nil
}

func checkLeadEligibility(staff *model.StaffMember, candidate Candidate) *dto.Violation {
	if !candidate.IsLead {
		return nil
	}
	if candidate.Role == model.RoleBarback {
		return &dto.Violation{
			Field:         "isLead",
			Message:       "barbacks cannot lead a shift",
			Suggestion:    "assign as BARBACK without the lead flag",
			ViolationType: dto.ViolationLeadIneligible,
		}
	}
	if !staff.IsLead {
		return &dto.Violation{
			Field:         "isLead",
			Message:       fmt.Sprintf("%s is not flagged as a lead bartender", staff.Name),
			Suggestion:    "assign without the lead flag or pick a lead-qualified bartender",
			ViolationType: dto.ViolationLeadIneligible,
		}
	}
	return nil
}

// slotKindFor maps a requested role and lead flag onto a slot kind.
func slotKindFor(role string, isLead bool) string {
	if isLead {
		return model.SlotLead
	}
	if role == model.RoleBarback {
		return model.SlotBarback
	}
	return model.SlotBartender
}

// unmetCounts returns required minus assigned per slot kind. Leads count
// against the lead category only, so a lead never double-counts as a
// plain bartender.
func unmetCounts(shift *model.Shift, assignments []model.Assignment) map[string]int {
	assigned := map[string]int{}
	for _, a := range assignments {
		assigned[slotKindFor(a.Role, a.IsLead)]++
	}
	return map[string]int{
		model.SlotLead:      shift.LeadsRequired - assigned[model.SlotLead],
		model.SlotBartender: shift.BartendersRequired - assigned[model.SlotBartender],
		model.SlotBarback:   shift.BarbacksRequired - assigned[model.SlotBarback],
	}
}

// fullyStaffed reports whether every slot kind has met its required count.
func fullyStaffed(shift *model.Shift, assignments []model.Assignment) bool {
	for _, unmet := range unmetCounts(shift, assignments) {
		if unmet > 0 {
			return false
		}
	}
	return true
}
