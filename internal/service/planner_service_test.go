package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"venuecrew/backend/internal/model"
)

func setupPlannerService(repos *testStaffingRepos) PlannerService {
	return NewPlannerService(repos.toRepository(), defaultStaffing(), zap.NewNop())
}

func TestAutoAssignFillsWhatItCan(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	shift.BartendersRequired = 2
	shift.BarbacksRequired = 1

	// one clean bartender, one marked unavailable, one double-booked
	seedBartender(repos, "ready", "venue-1", false)
	seedBartender(repos, "away", "venue-1", false)
	seedAvailability(repos, "away", testMonth, model.DayMap{
		testDate.Day(): model.DayUnavailable,
	})
	seedBartender(repos, "clash", "venue-1", false)
	other := seedShift(repos, "shift-other", "venue-1", testDate, "20:00", "01:00")
	seedAssignment(repos, other.ShiftID, "clash", model.RoleBartender, false)

	seedBarback(repos, "bb", "venue-1")

	svc := setupPlannerService(repos)
	result, err := svc.AutoAssign(context.Background(), shift.ShiftID, "mgr-1")
	if err != nil {
		t.Fatalf("AutoAssign returned error: %v", err)
	}

	// two of three slots fill; the failing candidates are skipped silently
	if result.Assigned != 2 {
		t.Fatalf("expected 2 assigned, got %d", result.Assigned)
	}
	if result.Summary.BartendersAssigned != 1 || result.Summary.BarbacksAssigned != 1 || result.Summary.LeadsAssigned != 0 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}

	placed := map[string]bool{}
	for _, a := range repos.assignments.assignments {
		if a.ShiftID == shift.ShiftID {
			placed[a.StaffID] = true
		}
	}
	if !placed["ready"] || !placed["bb"] || placed["away"] || placed["clash"] {
		t.Fatalf("unexpected roster %v", placed)
	}
}

func TestAutoAssignIdempotent(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	shift.BartendersRequired = 1
	seedBartender(repos, "only", "venue-1", false)

	svc := setupPlannerService(repos)
	first, err := svc.AutoAssign(context.Background(), shift.ShiftID, "mgr-1")
	if err != nil {
		t.Fatalf("first AutoAssign returned error: %v", err)
	}
	if first.Assigned != 1 {
		t.Fatalf("expected 1 assigned on first run, got %d", first.Assigned)
	}

	second, err := svc.AutoAssign(context.Background(), shift.ShiftID, "mgr-1")
	if err != nil {
		t.Fatalf("second AutoAssign returned error: %v", err)
	}
	if second.Assigned != 0 {
		t.Fatalf("re-running on a staffed shift must assign nothing, got %d", second.Assigned)
	}
	if len(repos.assignments.assignments) != 1 {
		t.Fatalf("expected exactly 1 assignment, got %d", len(repos.assignments.assignments))
	}
}

func TestAutoAssignLeadsFirst(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	shift.LeadsRequired = 1
	shift.BartendersRequired = 1

	seedBartender(repos, "plain", "venue-1", false)
	seedBartender(repos, "lead", "venue-1", true)

	svc := setupPlannerService(repos)
	result, err := svc.AutoAssign(context.Background(), shift.ShiftID, "mgr-1")
	if err != nil {
		t.Fatalf("AutoAssign returned error: %v", err)
	}
	if result.Summary.LeadsAssigned != 1 || result.Summary.BartendersAssigned != 1 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}

	for _, a := range repos.assignments.assignments {
		switch a.StaffID {
		case "lead":
			if !a.IsLead {
				t.Fatal("lead-qualified member should hold the lead slot")
			}
		case "plain":
			if a.IsLead {
				t.Fatal("non-lead member must not hold the lead slot")
			}
		}
	}
}

func TestAutoAssignShiftNotFound(t *testing.T) {
	repos := newTestStaffingRepos()
	svc := setupPlannerService(repos)

	if _, err := svc.AutoAssign(context.Background(), "missing", "mgr-1"); err != ErrShiftNotFound {
		t.Fatalf("expected ErrShiftNotFound, got %v", err)
	}
}

func TestAutoScheduleSkipsFullyStaffed(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)

	full := seedShift(repos, "shift-full", "venue-1", testDate, "18:00", "23:00")
	full.BartendersRequired = 1
	staffed := seedBartender(repos, "staffed", "venue-1", false)
	seedAssignment(repos, full.ShiftID, staffed.StaffID, model.RoleBartender, false)

	open := seedShift(repos, "shift-open", "venue-1", testDate.AddDate(0, 0, 1), "18:00", "23:00")
	open.BartendersRequired = 1
	seedBartender(repos, "free", "venue-1", false)

	svc := setupPlannerService(repos)
	result, err := svc.AutoSchedule(context.Background(), "venue-1", testDate, testDate.AddDate(0, 0, 2), "mgr-1")
	if err != nil {
		t.Fatalf("AutoSchedule returned error: %v", err)
	}
	if result.Processed != 1 {
		t.Fatalf("fully staffed shifts are not counted as processed, got %d", result.Processed)
	}
	if result.Assigned != 1 {
		t.Fatalf("expected 1 assigned, got %d", result.Assigned)
	}
}

func TestAutoScheduleAggregatesAcrossShifts(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)

	for i, id := range []string{"night-1", "night-2"} {
		shift := seedShift(repos, id, "venue-1", testDate.AddDate(0, 0, i), "18:00", "23:00")
		shift.BartendersRequired = 1
	}
	seedBartender(repos, "worker", "venue-1", false)

	svc := setupPlannerService(repos)
	result, err := svc.AutoSchedule(context.Background(), "venue-1", testDate, testDate.AddDate(0, 0, 1), "mgr-1")
	if err != nil {
		t.Fatalf("AutoSchedule returned error: %v", err)
	}
	if result.Processed != 2 || result.Assigned != 2 {
		t.Fatalf("expected processed=2 assigned=2, got %+v", result)
	}
}
