package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"venuecrew/backend/internal/model"
)

func setupExportService(repos *testStaffingRepos) ExportService {
	return NewExportService(repos.toRepository(), zap.NewNop())
}

func TestExportRosterNoShifts(t *testing.T) {
	repos := newTestStaffingRepos()
	svc := setupExportService(repos)

	_, _, err := svc.ExportRoster(context.Background(), "", testDate, testDate.AddDate(0, 0, 7))
	if !errors.Is(err, ErrExportNoShifts) {
		t.Fatalf("expected ErrExportNoShifts, got %v", err)
	}
}

func TestExportRosterWritesOneRowPerAssignment(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	seedBartender(repos, "alice", "venue-1", false)
	seedBarback(repos, "bob", "venue-1")
	seedAssignment(repos, shift.ShiftID, "alice", model.RoleBartender, false)
	seedAssignment(repos, shift.ShiftID, "bob", model.RoleBarback, false)

	svc := setupExportService(repos)
	buf, filename, err := svc.ExportRoster(context.Background(), "venue-1", testDate, testDate)
	if err != nil {
		t.Fatalf("ExportRoster returned error: %v", err)
	}
	if filename != "roster_20260314_20260314.xlsx" {
		t.Fatalf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("the output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Roster")
	if err != nil {
		t.Fatalf("reading the Roster sheet failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected a header plus 2 assignment rows, got %d", len(rows))
	}
	if rows[1][5] != "alice" || rows[2][5] != "bob" {
		t.Fatalf("unexpected staff column, got %v / %v", rows[1], rows[2])
	}
	// names resolve through the directory
	if rows[1][1] != "The venue-1" {
		t.Fatalf("expected the venue name in column 2, got %q", rows[1][1])
	}
}

func TestExportRosterHidesUnpublishedTips(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	seedBartender(repos, "alice", "venue-1", false)
	assignment := seedAssignment(repos, shift.ShiftID, "alice", model.RoleBartender, false)
	assignment.TipAmount = decimal.NewFromInt(25)
	svc := setupExportService(repos)

	buf, _, err := svc.ExportRoster(context.Background(), "venue-1", testDate, testDate)
	if err != nil {
		t.Fatalf("ExportRoster returned error: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("the output is not a readable workbook: %v", err)
	}
	defer f.Close()

	tip, err := f.GetCellValue("Roster", "J2")
	if err != nil {
		t.Fatalf("reading the tip cell failed: %v", err)
	}
	if tip != "" {
		t.Fatalf("tips stay hidden until published, got %q", tip)
	}
}
