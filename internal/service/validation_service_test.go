package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
)

func setupValidationService(repos *testStaffingRepos) ValidationService {
	return NewValidationService(repos.toRepository(), defaultStaffing(), zap.NewNop())
}

// seedCleanScenario builds a venue, an affiliated bartender and a shift
// with one open bartender slot. The candidate passes every check.
func seedCleanScenario(repos *testStaffingRepos) (*model.StaffMember, *model.Shift) {
	seedVenue(repos, "venue-1", false)
	staff := seedBartender(repos, "alice", "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	shift.BartendersRequired = 2
	return staff, shift
}

func TestValidateCleanCandidate(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	svc := setupValidationService(repos)

	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
	if len(repos.assignments.assignments) != 0 {
		t.Fatal("Validate must not create assignments")
	}
}

func TestValidateShiftNotFound(t *testing.T) {
	repos := newTestStaffingRepos()
	svc := setupValidationService(repos)

	_, err := svc.Validate(context.Background(), Candidate{UserID: "nobody", ShiftID: "missing"})
	if !errors.Is(err, ErrShiftNotFound) {
		t.Fatalf("expected ErrShiftNotFound, got %v", err)
	}
}

func TestValidateStaffNotFound(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	svc := setupValidationService(repos)

	_, err := svc.Validate(context.Background(), Candidate{UserID: "ghost", ShiftID: "shift-1"})
	if !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}

func TestValidateDoubleBooking(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)

	other := seedShift(repos, "shift-2", "venue-1", testDate, "20:00", "02:00")
	seedAssignment(repos, other.ShiftID, staff.StaffID, model.RoleBartender, false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationDoubleBooking) {
		t.Fatalf("expected double_booking violation, got %v", violations)
	}
}

func TestValidateDoubleBookingOvernightPreviousDay(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	shift.StartTime, shift.EndTime = "00:30", "06:00"

	// ends at 02:00 the next day, which is the candidate shift's date
	previous := seedShift(repos, "shift-prev", "venue-1", testDate.AddDate(0, 0, -1), "21:00", "02:00")
	seedAssignment(repos, previous.ShiftID, staff.StaffID, model.RoleBartender, false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationDoubleBooking) {
		t.Fatalf("expected double_booking across the midnight boundary, got %v", violations)
	}
}

func TestValidateAdjacentShiftsDoNotConflict(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)

	// back to back, sharing only the boundary minute's edge
	earlier := seedShift(repos, "shift-2", "venue-1", testDate, "12:00", "18:00")
	seedAssignment(repos, earlier.ShiftID, staff.StaffID, model.RoleBartender, false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if hasViolation(violations, dto.ViolationDoubleBooking) {
		t.Fatalf("adjacent shifts must not count as overlapping, got %v", violations)
	}
}

func TestValidateUnavailableDay(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	seedAvailability(repos, staff.StaffID, testMonth, model.DayMap{
		testDate.Day(): model.DayUnavailable,
	})

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationAvailability) {
		t.Fatalf("expected availability_conflict, got %v", violations)
	}
}

func TestValidateMissingAvailabilityOptionalByDefault(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	svc := setupValidationService(repos)

	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if hasViolation(violations, dto.ViolationAvailability) {
		t.Fatalf("missing record must pass when availability is optional, got %v", violations)
	}
}

func TestValidateMissingAvailabilityRequiredBySystemConfig(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	repos.systemConfig.cfg = &model.SystemConfig{
		EquityWindow:        model.EquityWindowMonth,
		RequireAvailability: true,
	}

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationAvailability) {
		t.Fatalf("expected availability_conflict for a missing record, got %v", violations)
	}
}

func TestValidateDayJobCutoff(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	staff.DayJobCutoff = "19:00"
	shift.StartTime = "17:00"

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationDayJob) {
		t.Fatalf("expected day_job_conflict for a 17:00 start against a 19:00 cutoff, got %v", violations)
	}
}

func TestValidateDayJobCutoffMetByLaterShift(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	staff.DayJobCutoff = "18:00"

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if hasViolation(violations, dto.ViolationDayJob) {
		t.Fatalf("a shift starting at the cutoff must pass, got %v", violations)
	}
}

func TestValidateVenueIneligible(t *testing.T) {
	repos := newTestStaffingRepos()
	_, shift := seedCleanScenario(repos)
	outsider := seedBartender(repos, "bob", "venue-other", false)
	seedVenue(repos, "venue-other", false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: outsider.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationVenueIneligible) {
		t.Fatalf("expected venue_ineligible, got %v", violations)
	}
}

func TestValidateCrossVenueGrantAtNetworkedVenue(t *testing.T) {
	repos := newTestStaffingRepos()
	venue := seedVenue(repos, "venue-net", true)
	shift := seedShift(repos, "shift-net", venue.VenueID, testDate, "18:00", "23:00")
	shift.BartendersRequired = 1

	visitor := seedBartender(repos, "carol", "venue-other", false)
	visitor.CrossVenueGrant = true
	seedVenue(repos, "venue-other", false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: visitor.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if hasViolation(violations, dto.ViolationVenueIneligible) {
		t.Fatalf("cross-venue grant at a networked venue must pass, got %v", violations)
	}
}

func TestValidateRoleMismatch(t *testing.T) {
	repos := newTestStaffingRepos()
	_, shift := seedCleanScenario(repos)
	barback := seedBarback(repos, "dave", "venue-1")

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: barback.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationRoleMismatch) {
		t.Fatalf("expected role_mismatch for a barback assigned as bartender, got %v", violations)
	}
	v := findViolation(violations, dto.ViolationRoleMismatch)
	if !strings.Contains(v.Suggestion, "BARBACK") {
		t.Fatalf("suggestion should point at the member's own role, got %q", v.Suggestion)
	}
}

func TestValidateNoOpenSlot(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	shift.BartendersRequired = 1
	shift.BarbacksRequired = 1
	filler := seedBartender(repos, "erin", "venue-1", false)
	seedAssignment(repos, shift.ShiftID, filler.StaffID, model.RoleBartender, false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	v := findViolation(violations, dto.ViolationRoleMismatch)
	if v == nil {
		t.Fatalf("expected role_mismatch for a filled bartender slot, got %v", violations)
	}
	if !strings.Contains(v.Suggestion, model.SlotBarback) {
		t.Fatalf("suggestion should name the open barback slot, got %q", v.Suggestion)
	}
}

func TestValidateLeadSlotNotConsumedByPlainBartender(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	shift.BartendersRequired = 1
	shift.LeadsRequired = 1

	lead := seedBartender(repos, "frank", "venue-1", true)
	seedAssignment(repos, shift.ShiftID, lead.StaffID, model.RoleBartender, true)

	// the lead fills the lead slot only; the plain bartender slot is open
	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if hasViolation(violations, dto.ViolationRoleMismatch) {
		t.Fatalf("lead assignment must not consume the bartender slot, got %v", violations)
	}
}

func TestValidateBarbackCannotLead(t *testing.T) {
	repos := newTestStaffingRepos()
	_, shift := seedCleanScenario(repos)
	shift.LeadsRequired = 1
	barback := seedBarback(repos, "gina", "venue-1")

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: barback.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBarback, IsLead: true,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationLeadIneligible) {
		t.Fatalf("expected lead_ineligible for a barback lead, got %v", violations)
	}
}

func TestValidateNonLeadBartenderCannotLead(t *testing.T) {
	repos := newTestStaffingRepos()
	staff, shift := seedCleanScenario(repos)
	shift.LeadsRequired = 1

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: staff.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender, IsLead: true,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !hasViolation(violations, dto.ViolationLeadIneligible) {
		t.Fatalf("expected lead_ineligible for a non-lead bartender, got %v", violations)
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	repos := newTestStaffingRepos()
	_, shift := seedCleanScenario(repos)

	// unaffiliated barback with a day job, proposed as shift lead
	outsider := seedBarback(repos, "henry", "venue-other")
	outsider.DayJobCutoff = "20:00"
	seedVenue(repos, "venue-other", false)

	svc := setupValidationService(repos)
	violations, err := svc.Validate(context.Background(), Candidate{
		UserID: outsider.StaffID, ShiftID: shift.ShiftID, Role: model.RoleBartender, IsLead: true,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	for _, want := range []string{
		dto.ViolationDayJob,
		dto.ViolationVenueIneligible,
		dto.ViolationRoleMismatch,
		dto.ViolationLeadIneligible,
	} {
		if !hasViolation(violations, want) {
			t.Errorf("expected %s in %v", want, violations)
		}
	}
}

func hasViolation(violations []dto.Violation, violationType string) bool {
	return findViolation(violations, violationType) != nil
}

func findViolation(violations []dto.Violation, violationType string) *dto.Violation {
	for i := range violations {
		if violations[i].ViolationType == violationType {
			return &violations[i]
		}
	}
	return nil
}
