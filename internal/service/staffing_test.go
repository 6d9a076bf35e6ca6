package service

import (
	"time"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// testStaffingRepos bundles the in-memory repos behind one aggregate so
// service tests can seed data and then hand the services a *Repository.
type testStaffingRepos struct {
	venues        *mockVenueRepo
	staff         *mockStaffRepo
	availability  *mockAvailabilityRepo
	shifts        *mockShiftRepo
	assignments   *mockAssignmentRepo
	overrides     *mockOverrideRepo
	systemConfig  *mockSystemConfigRepo
	auditLogs     *mockAuditLogRepo
	notifications *mockNotificationRepo
}

func newTestStaffingRepos() *testStaffingRepos {
	shifts := newMockShiftRepo()
	return &testStaffingRepos{
		venues:        newMockVenueRepo(),
		staff:         newMockStaffRepo(),
		availability:  newMockAvailabilityRepo(),
		shifts:        shifts,
		assignments:   newMockAssignmentRepo(shifts),
		overrides:     newMockOverrideRepo(),
		systemConfig:  newMockSystemConfigRepo(),
		auditLogs:     newMockAuditLogRepo(),
		notifications: newMockNotificationRepo(),
	}
}

func (r *testStaffingRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Venue:        r.venues,
		Staff:        r.staff,
		Availability: r.availability,
		Shift:        r.shifts,
		Assignment:   r.assignments,
		Override:     r.overrides,
		SystemConfig: r.systemConfig,
		AuditLog:     r.auditLogs,
		Notification: r.notifications,
	}
}

func defaultStaffing() config.StaffingConfig {
	return config.StaffingConfig{
		EquityWindow:        model.EquityWindowMonth,
		RequireAvailability: false,
	}
}

// ── seed helpers ──

func seedVenue(repos *testStaffingRepos, id string, networked bool) *model.Venue {
	venue := &model.Venue{
		VenueID:     id,
		Name:        "The " + id,
		IsNetworked: networked,
		IsActive:    true,
	}
	repos.venues.venues[id] = venue
	return venue
}

func seedBartender(repos *testStaffingRepos, id, venueID string, isLead bool) *model.StaffMember {
	staff := &model.StaffMember{
		StaffID: id,
		Name:    id,
		Email:   id + "@example.com",
		Role:    model.RoleBartender,
		IsLead:  isLead,
		Status:  model.StaffStatusActive,
	}
	if venueID != "" {
		staff.Affiliations = []model.VenueAffiliation{
			{StaffID: id, VenueID: venueID, Position: 0},
		}
	}
	repos.staff.members = append(repos.staff.members, staff)
	return staff
}

func seedBarback(repos *testStaffingRepos, id, venueID string) *model.StaffMember {
	staff := seedBartender(repos, id, venueID, false)
	staff.Role = model.RoleBarback
	return staff
}

func seedShift(repos *testStaffingRepos, id, venueID string, date time.Time, start, end string) *model.Shift {
	shift := &model.Shift{
		ShiftID:   id,
		VenueID:   venueID,
		ShiftDate: date,
		StartTime: start,
		EndTime:   end,
	}
	repos.shifts.shifts = append(repos.shifts.shifts, shift)
	return shift
}

func seedAssignment(repos *testStaffingRepos, shiftID, staffID, role string, isLead bool) *model.Assignment {
	assignment := &model.Assignment{
		AssignmentID: "asg-" + shiftID + "-" + staffID,
		ShiftID:      shiftID,
		StaffID:      staffID,
		Role:         role,
		IsLead:       isLead,
	}
	repos.assignments.assignments = append(repos.assignments.assignments, assignment)
	return assignment
}

func seedAvailability(repos *testStaffingRepos, staffID, month string, days model.DayMap) *model.AvailabilityRecord {
	record := &model.AvailabilityRecord{
		RecordID: "rec-" + staffID + "-" + month,
		StaffID:  staffID,
		Month:    month,
		Days:     days,
	}
	repos.availability.records[availabilityKey(staffID, month)] = record
	return record
}

// testDate is a fixed Saturday so day-of-week math in equity windows is
// deterministic.
var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

const testMonth = "2026-03"
