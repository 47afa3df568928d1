package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Method check-in.
const (
	MethodQR         = "qr"
	MethodManual     = "manual"
	MethodImported   = "imported"
	MethodAdjustment = "adjustment"
)

// Status attendance.
const (
	AttendancePending   = "pending"
	AttendanceValidated = "validated"
	AttendanceVoid      = "void"
)

// Attendance: satu check-in per (session, student_record) — unik, concurrent
// check-in diserap upsert + unique index, bukan lock aplikasi.
// pending → validated terjadi sekali per aksi validasi; re-validasi idempotent
// (timpa minutes/timestamp, tidak bikin record baru).
type AttendanceModel struct {
	AttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendances_id" json:"attendances_id"`

	AttendanceSessionId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_session_student;column:attendances_session_id" json:"attendances_session_id"`
	AttendanceStudentRecordId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_session_student;column:attendances_student_record_id" json:"attendances_student_record_id"`

	AttendanceParticipationId *uuid.UUID `gorm:"type:uuid;column:attendances_participation_id" json:"attendances_participation_id,omitempty"`
	AttendanceTokenId         *uuid.UUID `gorm:"type:uuid;column:attendances_token_id"         json:"attendances_token_id,omitempty"`

	AttendanceMethod string `gorm:"not null;column:attendances_method" json:"attendances_method"`

	AttendanceCheckInAt  *time.Time `gorm:"column:attendances_check_in_at"  json:"attendances_check_in_at,omitempty"`
	AttendanceCheckOutAt *time.Time `gorm:"column:attendances_check_out_at" json:"attendances_check_out_at,omitempty"`

	AttendanceStatus           string `gorm:"not null;default:pending;column:attendances_status" json:"attendances_status"`
	AttendanceMinutesValidated int    `gorm:"not null;default:0;column:attendances_minutes_validated" json:"attendances_minutes_validated"`

	AttendanceMeta datatypes.JSONMap `gorm:"column:attendances_meta" json:"attendances_meta,omitempty"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendances_created_at;autoCreateTime" json:"attendances_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendances_updated_at;autoUpdateTime" json:"attendances_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
