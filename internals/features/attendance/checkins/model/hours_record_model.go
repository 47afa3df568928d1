package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	HoursRecordCounted = "counted"
	HoursRecordVoid    = "void"
)

// HoursRecord: artefak akunting dari satu attendance yang sudah validated.
// Satu-satu dengan attendance (unik by attendance_id): dibuat atau
// di-refresh, tidak pernah diduplikasi.
type HoursRecordModel struct {
	HoursRecordId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hours_records_id" json:"hours_records_id"`

	HoursRecordAttendanceId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:hours_records_attendance_id" json:"hours_records_attendance_id"`

	HoursRecordStudentRecordId uuid.UUID `gorm:"type:uuid;not null;index;column:hours_records_student_record_id" json:"hours_records_student_record_id"`

	HoursRecordOwnerType string    `gorm:"not null;column:hours_records_owner_type" json:"hours_records_owner_type"`
	HoursRecordOwnerId   uuid.UUID `gorm:"type:uuid;not null;column:hours_records_owner_id" json:"hours_records_owner_id"`

	HoursRecordPeriodId *uuid.UUID `gorm:"type:uuid;column:hours_records_period_id" json:"hours_records_period_id,omitempty"`

	HoursRecordDate    time.Time `gorm:"type:date;not null;column:hours_records_date" json:"hours_records_date"`
	HoursRecordMinutes int       `gorm:"not null;column:hours_records_minutes"        json:"hours_records_minutes"`

	HoursRecordStatus string `gorm:"not null;default:counted;column:hours_records_status" json:"hours_records_status"`

	HoursRecordCreatedAt time.Time  `gorm:"column:hours_records_created_at;autoCreateTime" json:"hours_records_created_at"`
	HoursRecordUpdatedAt *time.Time `gorm:"column:hours_records_updated_at;autoUpdateTime" json:"hours_records_updated_at,omitempty"`
}

func (HoursRecordModel) TableName() string { return "hours_records" }
