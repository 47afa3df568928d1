package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRecord: identitas enrolment tempat kehadiran & jam dicatat.
type StudentRecordModel struct {
	StudentRecordId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_records_id" json:"student_records_id"`

	StudentRecordUserId uuid.UUID `gorm:"type:uuid;not null;index;column:student_records_user_id" json:"student_records_user_id"`
	StudentRecordCode   string    `gorm:"uniqueIndex;not null;column:student_records_code"        json:"student_records_code"`

	StudentRecordPeriodId *uuid.UUID `gorm:"type:uuid;column:student_records_period_id" json:"student_records_period_id,omitempty"`

	StudentRecordActive bool `gorm:"not null;default:true;column:student_records_active" json:"student_records_active"`

	StudentRecordCreatedAt time.Time      `gorm:"column:student_records_created_at;autoCreateTime" json:"student_records_created_at"`
	StudentRecordUpdatedAt *time.Time     `gorm:"column:student_records_updated_at;autoUpdateTime" json:"student_records_updated_at,omitempty"`
	StudentRecordDeletedAt gorm.DeletedAt `gorm:"column:student_records_deleted_at;index"          json:"student_records_deleted_at,omitempty"`
}

func (StudentRecordModel) TableName() string { return "student_records" }
