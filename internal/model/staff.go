package model

// Staff roles. Managers and general managers run venues; bartenders and
// barbacks work shifts. General managers bypass conflict validation.
const (
	RoleBartender      = "bartender"
	RoleBarback        = "barback"
	RoleManager        = "manager"
	RoleGeneralManager = "general_manager"
)

// Staff member statuses.
const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

// Slot kinds a shift can require. Leads are bartenders with the lead flag.
const (
	SlotLead      = "LEAD"
	SlotBartender = "BARTENDER"
	SlotBarback   = "BARBACK"
)

// StaffMember is a worker or manager in the group's staff pool.
// DayJobCutoff, when set, is the "HH:MM" time before which the member is
// still at their day job and cannot start a shift.
type StaffMember struct {
	StaffID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	Name            string `gorm:"size:100;not null" json:"name"`
	Email           string `gorm:"size:255;not null" json:"email"`
	Role            string `gorm:"size:20;not null" json:"role"`
	IsLead          bool   `gorm:"not null;default:false" json:"is_lead"`
	Status          string `gorm:"size:20;not null;default:active" json:"status"`
	DayJobCutoff    string `gorm:"size:5" json:"day_job_cutoff,omitempty"`
	CrossVenueGrant bool   `gorm:"not null;default:false" json:"cross_venue_grant"`
	VersionedModel

	Affiliations []VenueAffiliation `gorm:"foreignKey:StaffID" json:"affiliations,omitempty"`
}

func (StaffMember) TableName() string { return "staff_members" }

// IsWorker reports whether the member fills shift slots.
func (s *StaffMember) IsWorker() bool {
	return s.Role == RoleBartender || s.Role == RoleBarback
}

// CanFillSlot reports whether the member's role and lead flag satisfy a slot kind.
func (s *StaffMember) CanFillSlot(slot string) bool {
	switch slot {
	case SlotLead:
		return s.Role == RoleBartender && s.IsLead
	case SlotBartender:
		return s.Role == RoleBartender
	case SlotBarback:
		return s.Role == RoleBarback
	default:
		return false
	}
}

// VenueAffiliation links a staff member to a venue they may work at.
// Position orders a member's venues by preference, 0 being home venue.
type VenueAffiliation struct {
	AffiliationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"affiliation_id"`
	StaffID       string `gorm:"type:uuid;not null" json:"staff_id"`
	VenueID       string `gorm:"type:uuid;not null" json:"venue_id"`
	Position      int    `gorm:"not null;default:0" json:"position"`
	BaseModel
}

func (VenueAffiliation) TableName() string { return "venue_affiliations" }
