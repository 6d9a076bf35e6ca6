package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// ── Mock VenueRepository ──

type mockVenueRepo struct {
	venues map[string]*model.Venue
}

func newMockVenueRepo() *mockVenueRepo {
	return &mockVenueRepo{venues: make(map[string]*model.Venue)}
}

func (m *mockVenueRepo) Create(_ context.Context, venue *model.Venue) error {
	if venue.VenueID == "" {
		venue.VenueID = "venue-" + venue.Name
	}
	m.venues[venue.VenueID] = venue
	return nil
}

func (m *mockVenueRepo) GetByID(_ context.Context, id string) (*model.Venue, error) {
	if v, ok := m.venues[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVenueRepo) List(_ context.Context, _, _ int) ([]model.Venue, int64, error) {
	var result []model.Venue
	for _, v := range m.venues {
		result = append(result, *v)
	}
	return result, int64(len(result)), nil
}

func (m *mockVenueRepo) Update(_ context.Context, venue *model.Venue) error {
	m.venues[venue.VenueID] = venue
	return nil
}

func (m *mockVenueRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.venues, id)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	members []*model.StaffMember // insertion order matters for ranking ties
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.StaffMember) error {
	if staff.StaffID == "" {
		staff.StaffID = "staff-" + staff.Name
	}
	m.members = append(m.members, staff)
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.StaffMember, error) {
	for _, s := range m.members {
		if s.StaffID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context, filter repository.StaffFilter, _, _ int) ([]model.StaffMember, int64, error) {
	var result []model.StaffMember
	for _, s := range m.members {
		if filter.Role != "" && s.Role != filter.Role {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (m *mockStaffRepo) ListActiveByRole(_ context.Context, role string) ([]model.StaffMember, error) {
	var result []model.StaffMember
	for _, s := range m.members {
		if s.Role == role && s.Status == model.StaffStatusActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.StaffMember) error {
	for i, s := range m.members {
		if s.StaffID == staff.StaffID {
			m.members[i] = staff
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) Delete(_ context.Context, id, _ string) error {
	for i, s := range m.members {
		if s.StaffID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStaffRepo) ReplaceAffiliations(_ context.Context, staffID string, venueIDs []string) error {
	for _, s := range m.members {
		if s.StaffID == staffID {
			s.Affiliations = nil
			for i, venueID := range venueIDs {
				s.Affiliations = append(s.Affiliations, model.VenueAffiliation{
					StaffID: staffID, VenueID: venueID, Position: i,
				})
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) ListAffiliations(_ context.Context, staffID string) ([]model.VenueAffiliation, error) {
	for _, s := range m.members {
		if s.StaffID == staffID {
			return s.Affiliations, nil
		}
	}
	return nil, nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	records map[string]*model.AvailabilityRecord // key staffID:month
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{records: make(map[string]*model.AvailabilityRecord)}
}

func availabilityKey(staffID, month string) string {
	return staffID + ":" + month
}

func (m *mockAvailabilityRepo) Create(_ context.Context, record *model.AvailabilityRecord) error {
	if record.RecordID == "" {
		record.RecordID = "rec-" + availabilityKey(record.StaffID, record.Month)
	}
	m.records[availabilityKey(record.StaffID, record.Month)] = record
	return nil
}

func (m *mockAvailabilityRepo) GetByStaffAndMonth(_ context.Context, staffID, month string) (*model.AvailabilityRecord, error) {
	if r, ok := m.records[availabilityKey(staffID, month)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) ListByMonth(_ context.Context, month string) ([]model.AvailabilityRecord, error) {
	var result []model.AvailabilityRecord
	for _, r := range m.records {
		if r.Month == month {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Update(_ context.Context, record *model.AvailabilityRecord) error {
	m.records[availabilityKey(record.StaffID, record.Month)] = record
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts []*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = fmt.Sprintf("shift-%d", len(m.shifts)+1)
	}
	m.shifts = append(m.shifts, shift)
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	for _, s := range m.shifts {
		if s.ShiftID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context, filter repository.ShiftFilter, _, _ int) ([]model.Shift, int64, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if filter.VenueID != "" && s.VenueID != filter.VenueID {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (m *mockShiftRepo) ListInRange(_ context.Context, venueID string, start, end time.Time) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if venueID != "" && s.VenueID != venueID {
			continue
		}
		if s.ShiftDate.Before(start) || s.ShiftDate.After(end) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShiftRepo) ListByDateNear(_ context.Context, date time.Time) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		diff := s.ShiftDate.Sub(date)
		if diff >= -24*time.Hour && diff <= 24*time.Hour {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	for i, s := range m.shifts {
		if s.ShiftID == shift.ShiftID {
			m.shifts[i] = shift
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) Delete(_ context.Context, id, _ string) error {
	for i, s := range m.shifts {
		if s.ShiftID == id {
			m.shifts = append(m.shifts[:i], m.shifts[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []*model.Assignment
	shifts      *mockShiftRepo // for the date join
	nextID      int
}

func newMockAssignmentRepo(shifts *mockShiftRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{shifts: shifts}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	for _, a := range m.assignments {
		if a.ShiftID == assignment.ShiftID && a.StaffID == assignment.StaffID {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	if assignment.AssignmentID == "" {
		m.nextID++
		assignment.AssignmentID = fmt.Sprintf("asg-%d", m.nextID)
	}
	m.assignments = append(m.assignments, assignment)
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	for _, a := range m.assignments {
		if a.AssignmentID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByShift(_ context.Context, shiftID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.ShiftID == shiftID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByStaffNear(ctx context.Context, staffID string, date time.Time) ([]repository.AssignmentWithShift, error) {
	var result []repository.AssignmentWithShift
	for _, a := range m.assignments {
		if a.StaffID != staffID {
			continue
		}
		shift, err := m.shifts.GetByID(ctx, a.ShiftID)
		if err != nil {
			continue
		}
		diff := shift.ShiftDate.Sub(date)
		if diff >= -24*time.Hour && diff <= 24*time.Hour {
			result = append(result, repository.AssignmentWithShift{Assignment: *a, Shift: *shift})
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) CountByStaffInWindow(ctx context.Context, staffID string, start, end *time.Time) (int64, error) {
	var count int64
	for _, a := range m.assignments {
		if a.StaffID != staffID {
			continue
		}
		shift, err := m.shifts.GetByID(ctx, a.ShiftID)
		if err != nil {
			continue
		}
		if start != nil && shift.ShiftDate.Before(*start) {
			continue
		}
		if end != nil && shift.ShiftDate.After(*end) {
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockAssignmentRepo) SetTipAmounts(_ context.Context, shiftID string, amount decimal.Decimal) (int64, error) {
	var count int64
	for _, a := range m.assignments {
		if a.ShiftID == shiftID {
			a.TipAmount = amount
			count++
		}
	}
	return count, nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	for i, a := range m.assignments {
		if a.AssignmentID == id {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock OverrideRepository ──

type mockOverrideRepo struct {
	overrides map[string]*model.Override
	nextID    int
}

func newMockOverrideRepo() *mockOverrideRepo {
	return &mockOverrideRepo{overrides: make(map[string]*model.Override)}
}

func (m *mockOverrideRepo) Create(_ context.Context, override *model.Override) error {
	if override.OverrideID == "" {
		m.nextID++
		override.OverrideID = fmt.Sprintf("ovr-%d", m.nextID)
	}
	m.overrides[override.OverrideID] = override
	return nil
}

func (m *mockOverrideRepo) GetByID(_ context.Context, id string) (*model.Override, error) {
	if o, ok := m.overrides[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOverrideRepo) List(_ context.Context, filter repository.OverrideFilter, _, _ int) ([]model.Override, int64, error) {
	var result []model.Override
	for _, o := range m.overrides {
		if filter.StaffID != "" && o.StaffID != filter.StaffID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		result = append(result, *o)
	}
	return result, int64(len(result)), nil
}

func (m *mockOverrideRepo) Resolve(_ context.Context, id, status string, resolvedAt time.Time) (bool, error) {
	o, ok := m.overrides[id]
	if !ok || o.Status != model.OverrideStatusPending {
		return false, nil
	}
	o.Status = status
	o.ResolvedAt = &resolvedAt
	return true, nil
}

// ── Mock SystemConfigRepository ──

type mockSystemConfigRepo struct {
	cfg *model.SystemConfig
}

func newMockSystemConfigRepo() *mockSystemConfigRepo {
	return &mockSystemConfigRepo{}
}

func (m *mockSystemConfigRepo) Get(_ context.Context) (*model.SystemConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cfg, nil
}

func (m *mockSystemConfigRepo) Update(_ context.Context, cfg *model.SystemConfig) error {
	m.cfg = cfg
	return nil
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	entries []*model.AuditLog
}

func newMockAuditLogRepo() *mockAuditLogRepo {
	return &mockAuditLogRepo{}
}

func (m *mockAuditLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditLogRepo) ListByShift(_ context.Context, shiftID string) ([]model.AuditLog, error) {
	var result []model.AuditLog
	for _, e := range m.entries {
		if e.ShiftID == shiftID {
			result = append(result, *e)
		}
	}
	return result, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []*model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(_ context.Context, recipientID string, unreadOnly bool, _, _ int) ([]model.Notification, int64, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, *n)
	}
	return result, int64(len(result)), nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, recipientID string) error {
	for _, n := range m.notifications {
		if n.NotificationID == id && n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}
