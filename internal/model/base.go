package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the audit columns shared by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	CreatedBy string    `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy string    `gorm:"type:uuid" json:"updated_by,omitempty"`
}

// SoftDeleteModel adds soft-delete columns on top of BaseModel.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"type:uuid" json:"-"`
}

// VersionedModel adds an optimistic-lock version on top of SoftDeleteModel.
// Updates must match on the version column and bump it.
type VersionedModel struct {
	SoftDeleteModel
	Version int `gorm:"default:1" json:"version"`
}
