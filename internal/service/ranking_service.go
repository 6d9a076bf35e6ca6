package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// RankingService orders eligible staff for an open slot.
type RankingService interface {
	// RankCandidates loads the shift and returns the ordered candidate list
	// for the slot kind.
	RankCandidates(ctx context.Context, shiftID, slot string) ([]dto.Candidate, error)
	// RankForShift ranks against an already-loaded shift. The planner calls
	// this once per slot kind.
	RankForShift(ctx context.Context, shift *model.Shift, slot string) ([]model.StaffMember, error)
}

type rankingService struct {
	repo     *repository.Repository
	staffing config.StaffingConfig
	logger   *zap.Logger
}

// NewRankingService creates a RankingService instance.
func NewRankingService(repo *repository.Repository, staffing config.StaffingConfig, logger *zap.Logger) RankingService {
	return &rankingService{repo: repo, staffing: staffing, logger: logger}
}

func (s *rankingService) RankCandidates(ctx context.Context, shiftID, slot string) ([]dto.Candidate, error) {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}

	ranked, err := s.RankForShift(ctx, shift, slot)
	if err != nil {
		return nil, err
	}

	month := shift.ShiftDate.Format("2006-01")
	out := make([]dto.Candidate, 0, len(ranked))
	for i := range ranked {
		m := &ranked[i]
		availability := "unknown"
		if record, err := s.repo.Availability.GetByStaffAndMonth(ctx, m.StaffID, month); err == nil {
			if record.Days.Status(shift.DayKey()) == model.DayAvailable {
				availability = model.DayAvailable
			}
		}
		out = append(out, dto.Candidate{
			StaffID:      m.StaffID,
			Name:         m.Name,
			Role:         m.Role,
			IsLead:       m.IsLead,
			Availability: availability,
		})
	}
	return out, nil
}

// rankEntry carries one candidate's precomputed sort keys.
type rankEntry struct {
	member    model.StaffMember
	isLead    bool
	available bool // explicit availability for the shift date
	equity    int64
	position  int
}

func (s *rankingService) RankForShift(ctx context.Context, shift *model.Shift, slot string) ([]model.StaffMember, error) {
	venue, err := s.repo.Venue.GetByID(ctx, shift.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("load venue failed", zap.Error(err))
		return nil, err
	}

	baseRole := model.RoleBartender
	if slot == model.SlotBarback {
		baseRole = model.RoleBarback
	}

	pool, err := s.repo.Staff.ListActiveByRole(ctx, baseRole)
	if err != nil {
		s.logger.Error("list staff pool failed", zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByShift(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("list shift assignments failed", zap.Error(err))
		return nil, err
	}
	onShift := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		onShift[a.StaffID] = true
	}

	start, end := s.equityBounds(ctx, shift.ShiftDate)
	month := shift.ShiftDate.Format("2006-01")
	day := shift.DayKey()

	entries := make([]rankEntry, 0, len(pool))
	for i := range pool {
		m := pool[i]
		if onShift[m.StaffID] {
			continue
		}
		position, eligible := venuePosition(&m, venue)
		if !eligible {
			continue
		}

		available := false
		record, err := s.repo.Availability.GetByStaffAndMonth(ctx, m.StaffID, month)
		if err == nil {
			switch record.Days.Status(day) {
			case model.DayUnavailable:
				// excluded outright, not ranked low
				continue
			case model.DayAvailable:
				available = true
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("load availability failed", zap.Error(err))
			return nil, err
		}

		equity, err := s.repo.Assignment.CountByStaffInWindow(ctx, m.StaffID, start, end)
		if err != nil {
			s.logger.Error("count assignments failed", zap.Error(err))
			return nil, err
		}

		entries = append(entries, rankEntry{
			member:    m,
			isLead:    m.IsLead,
			available: available,
			equity:    equity,
			position:  position,
		})
	}

	leadSlot := slot == model.SlotLead
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if leadSlot && a.isLead != b.isLead {
			return a.isLead
		}
		if a.available != b.available {
			return a.available
		}
		if a.equity != b.equity {
			return a.equity < b.equity
		}
		return a.position < b.position
	})

	ranked := make([]model.StaffMember, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, e.member)
	}
	return ranked, nil
}

// venuePosition returns the member's preference index for the venue and
// whether they may work there at all. Cross-venue grants at networked
// venues rank below every direct affiliation.
func venuePosition(m *model.StaffMember, venue *model.Venue) (int, bool) {
	for _, a := range m.Affiliations {
		if a.VenueID == venue.VenueID {
			return a.Position, true
		}
	}
	if venue.IsNetworked && m.CrossVenueGrant {
		return len(m.Affiliations) + 1, true
	}
	return 0, false
}

// equityBounds converts the configured equity window into date bounds
// around the shift date. Nil bounds mean all-time.
func (s *rankingService) equityBounds(ctx context.Context, date time.Time) (*time.Time, *time.Time) {
	window := s.staffing.EquityWindow
	if cfg, err := s.repo.SystemConfig.Get(ctx); err == nil {
		window = cfg.EquityWindow
	}

	switch window {
	case model.EquityWindowWeek:
		offset := (int(date.Weekday()) + 6) % 7 // Monday start
		start := date.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 6)
		return &start, &end
	case model.EquityWindowMonth:
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		end := start.AddDate(0, 1, -1)
		return &start, &end
	default:
		return nil, nil
	}
}
