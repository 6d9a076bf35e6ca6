package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
)

func setupShiftService(repos *testStaffingRepos) ShiftService {
	repo := repos.toRepository()
	notification := NewNotificationService(repo, zap.NewNop())
	return NewShiftService(repo, notification, zap.NewNop())
}

func TestCreateShift(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	svc := setupShiftService(repos)

	shift, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		VenueID:            "venue-1",
		ShiftDate:          "2026-03-14",
		StartTime:          "21:00",
		EndTime:            "03:00",
		BartendersRequired: 2,
		LeadsRequired:      1,
		EventName:          "Saturday club night",
	}, "mgr-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if shift.BartendersRequired != 2 || shift.LeadsRequired != 1 {
		t.Fatalf("unexpected shift %+v", shift)
	}
	start, end := shift.Window()
	if start != 1260 || end != 1620 {
		t.Fatalf("overnight window should normalize past midnight, got [%d, %d)", start, end)
	}
}

func TestCreateShiftInvalidTime(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	svc := setupShiftService(repos)

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		VenueID:   "venue-1",
		ShiftDate: "2026-03-14",
		StartTime: "25:00",
		EndTime:   "03:00",
	}, "mgr-1")
	if !errors.Is(err, ErrInvalidShiftTime) {
		t.Fatalf("expected ErrInvalidShiftTime, got %v", err)
	}
}

func TestCreateShiftUnknownVenue(t *testing.T) {
	repos := newTestStaffingRepos()
	svc := setupShiftService(repos)

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		VenueID:   "missing",
		ShiftDate: "2026-03-14",
		StartTime: "18:00",
		EndTime:   "23:00",
	}, "mgr-1")
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestPostTradeNotifiesRestOfRoster(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	seedBartender(repos, "poster", "venue-1", false)
	seedBartender(repos, "mate", "venue-1", false)
	seedAssignment(repos, shift.ShiftID, "poster", model.RoleBartender, false)
	seedAssignment(repos, shift.ShiftID, "mate", model.RoleBartender, false)

	svc := setupShiftService(repos)
	traded, err := svc.PostTrade(context.Background(), shift.ShiftID, "family emergency", "poster")
	if err != nil {
		t.Fatalf("PostTrade returned error: %v", err)
	}
	if !traded.UpForTrade || traded.TradeInitiatedBy != "poster" || traded.TradeInitiatedAt == nil {
		t.Fatalf("unexpected trade state %+v", traded)
	}

	// the poster is not notified about their own trade
	posterNotes, _, _ := repos.notifications.ListByRecipient(context.Background(), "poster", false, 0, 10)
	if len(posterNotes) != 0 {
		t.Fatalf("the poster must not be notified, got %v", posterNotes)
	}
	mateNotes, _, _ := repos.notifications.ListByRecipient(context.Background(), "mate", false, 0, 10)
	if len(mateNotes) != 1 || mateNotes[0].Type != model.NotificationTradePosted {
		t.Fatalf("expected a trade_posted notification, got %v", mateNotes)
	}
}

func TestClearTrade(t *testing.T) {
	repos := newTestStaffingRepos()
	seedVenue(repos, "venue-1", false)
	shift := seedShift(repos, "shift-1", "venue-1", testDate, "18:00", "23:00")
	svc := setupShiftService(repos)

	if _, err := svc.ClearTrade(context.Background(), shift.ShiftID, "mgr-1"); !errors.Is(err, ErrShiftNotOnTrade) {
		t.Fatalf("expected ErrShiftNotOnTrade, got %v", err)
	}

	if _, err := svc.PostTrade(context.Background(), shift.ShiftID, "", "poster"); err != nil {
		t.Fatalf("PostTrade returned error: %v", err)
	}
	cleared, err := svc.ClearTrade(context.Background(), shift.ShiftID, "mgr-1")
	if err != nil {
		t.Fatalf("ClearTrade returned error: %v", err)
	}
	if cleared.UpForTrade || cleared.TradeInitiatedBy != "" || cleared.TradeInitiatedAt != nil {
		t.Fatalf("trade fields must reset, got %+v", cleared)
	}
}
