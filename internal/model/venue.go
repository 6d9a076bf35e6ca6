package model

// Venue is a single bar or club operated by the group.
// Networked venues share their staff pool with other networked venues.
type Venue struct {
	VenueID                 string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"venue_id"`
	Name                    string `gorm:"size:200;not null" json:"name"`
	IsNetworked             bool   `gorm:"not null;default:false" json:"is_networked"`
	TipPoolEnabled          bool   `gorm:"not null;default:false" json:"tip_pool_enabled"`
	AvailabilityDeadlineDay int    `gorm:"not null;default:25" json:"availability_deadline_day"`
	IsActive                bool   `gorm:"not null;default:true" json:"is_active"`
	VersionedModel
}

func (Venue) TableName() string { return "venues" }
