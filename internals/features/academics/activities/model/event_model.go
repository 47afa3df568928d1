package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event: kegiatan top-level yang memiliki Session langsung (tanpa Process).
type AcademicEventModel struct {
	AcademicEventId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_events_id" json:"academic_events_id"`

	AcademicEventName        string  `gorm:"not null;column:academic_events_name"        json:"academic_events_name"`
	AcademicEventLocation    *string `gorm:"column:academic_events_location"             json:"academic_events_location,omitempty"`
	AcademicEventDescription *string `gorm:"column:academic_events_description"          json:"academic_events_description,omitempty"`

	AcademicEventStatus string `gorm:"not null;default:planned;column:academic_events_status" json:"academic_events_status"`

	AcademicEventPeriodId *uuid.UUID `gorm:"type:uuid;column:academic_events_period_id" json:"academic_events_period_id,omitempty"`

	AcademicEventCreatedAt time.Time      `gorm:"column:academic_events_created_at;autoCreateTime" json:"academic_events_created_at"`
	AcademicEventUpdatedAt *time.Time     `gorm:"column:academic_events_updated_at;autoUpdateTime" json:"academic_events_updated_at,omitempty"`
	AcademicEventDeletedAt gorm.DeletedAt `gorm:"column:academic_events_deleted_at;index"          json:"academic_events_deleted_at,omitempty"`
}

func (AcademicEventModel) TableName() string { return "academic_events" }
