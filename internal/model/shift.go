package model

import (
	"fmt"
	"time"
)

// Shift is one staffed time window at a venue. Times are "HH:MM" on
// ShiftDate's calendar day; an end at or before the start rolls into the
// next day (a 21:00-03:00 club night).
type Shift struct {
	ShiftID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	VenueID            string     `gorm:"type:uuid;not null" json:"venue_id"`
	ShiftDate          time.Time  `gorm:"type:date;not null" json:"shift_date"`
	StartTime          string     `gorm:"size:5;not null" json:"start_time"`
	EndTime            string     `gorm:"size:5;not null" json:"end_time"`
	BartendersRequired int        `gorm:"not null;default:0" json:"bartenders_required"`
	BarbacksRequired   int        `gorm:"not null;default:0" json:"barbacks_required"`
	LeadsRequired      int        `gorm:"not null;default:0" json:"leads_required"`
	EventName          string     `gorm:"size:200" json:"event_name,omitempty"`
	UpForTrade         bool       `gorm:"not null;default:false" json:"up_for_trade"`
	TradeInitiatedBy   string     `gorm:"type:uuid" json:"trade_initiated_by,omitempty"`
	TradeInitiatedAt   *time.Time `json:"trade_initiated_at,omitempty"`
	TradeReason        string     `gorm:"size:500" json:"trade_reason,omitempty"`
	TipsPublished      bool       `gorm:"not null;default:false" json:"tips_published"`
	VersionedModel
}

func (Shift) TableName() string { return "shifts" }

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return h*60 + m, nil
}

// clockWindow returns [start, end) in minutes since midnight of the shift
// date, with overnight ends normalized past 1440.
func clockWindow(start, end string) (int, int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if e <= s {
		e += minutesPerDay
	}
	return s, e, nil
}

// Window returns the shift's [start, end) in minutes since midnight of
// ShiftDate. Malformed times fall back to a zero-length window.
func (s *Shift) Window() (int, int) {
	start, end, err := clockWindow(s.StartTime, s.EndTime)
	if err != nil {
		return 0, 0
	}
	return start, end
}

// DayKey returns the day-of-month the shift starts on.
func (s *Shift) DayKey() int {
	return s.ShiftDate.Day()
}

// OverlapsClock reports whether the shift's window overlaps another
// same-date window given as "HH:MM" strings.
func (s *Shift) OverlapsClock(start, end string) bool {
	s1, e1 := s.Window()
	s2, e2, err := clockWindow(start, end)
	if err != nil {
		return false
	}
	return s1 < e2 && s2 < e1
}

// Overlaps reports whether two shifts overlap in time. Shifts on different
// dates can still overlap when the earlier one runs past midnight.
func (s *Shift) Overlaps(other *Shift) bool {
	offset := int(other.ShiftDate.Sub(s.ShiftDate).Hours() / 24)
	if offset < -1 || offset > 1 {
		return false
	}
	s1, e1 := s.Window()
	s2, e2 := other.Window()
	s2 += offset * minutesPerDay
	e2 += offset * minutesPerDay
	return s1 < e2 && s2 < e1
}
