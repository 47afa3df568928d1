package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/helpers/dbtime"
)

// Session: satu slot terjadwal milik Process atau Event.
// Slot unik per (owner, date, start, end) — batch scheduler mengandalkan ini
// untuk idempotensi.
type ActivitySessionModel struct {
	ActivitySessionId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_sessions_id" json:"activity_sessions_id"`

	// Index slot partial: baris soft-deleted tidak ikut dihitung, supaya slot
	// yang sama bisa dibuat ulang setelah session lama dihapus.
	ActivitySessionOwnerType string    `gorm:"not null;index:uq_activity_sessions_slot,unique,where:activity_sessions_deleted_at IS NULL;column:activity_sessions_owner_type" json:"activity_sessions_owner_type"`
	ActivitySessionOwnerId   uuid.UUID `gorm:"type:uuid;not null;index:uq_activity_sessions_slot,unique;column:activity_sessions_owner_id" json:"activity_sessions_owner_id"`

	ActivitySessionDate      time.Time  `gorm:"type:date;not null;index:uq_activity_sessions_slot,unique;column:activity_sessions_date" json:"activity_sessions_date"`
	ActivitySessionStartTime dbtime.Tod `gorm:"type:time;not null;index:uq_activity_sessions_slot,unique;column:activity_sessions_start_time" json:"activity_sessions_start_time"`
	ActivitySessionEndTime   dbtime.Tod `gorm:"type:time;not null;index:uq_activity_sessions_slot,unique;column:activity_sessions_end_time" json:"activity_sessions_end_time"`

	ActivitySessionStatus string `gorm:"not null;default:planned;column:activity_sessions_status" json:"activity_sessions_status"`

	ActivitySessionCreatedAt time.Time      `gorm:"column:activity_sessions_created_at;autoCreateTime" json:"activity_sessions_created_at"`
	ActivitySessionUpdatedAt *time.Time     `gorm:"column:activity_sessions_updated_at;autoUpdateTime" json:"activity_sessions_updated_at,omitempty"`
	ActivitySessionDeletedAt gorm.DeletedAt `gorm:"column:activity_sessions_deleted_at;index"          json:"activity_sessions_deleted_at,omitempty"`
}

func (ActivitySessionModel) TableName() string { return "activity_sessions" }
