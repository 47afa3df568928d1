package model

import (
	"time"

	"github.com/google/uuid"
)

// Periode akademik, dipakai untuk stamp hours record by date range.
type AcademicPeriodModel struct {
	AcademicPeriodId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_periods_id" json:"academic_periods_id"`

	AcademicPeriodName      string    `gorm:"not null;column:academic_periods_name"            json:"academic_periods_name"`
	AcademicPeriodStartDate time.Time `gorm:"type:date;not null;column:academic_periods_start_date" json:"academic_periods_start_date"`
	AcademicPeriodEndDate   time.Time `gorm:"type:date;not null;column:academic_periods_end_date"   json:"academic_periods_end_date"`

	AcademicPeriodCreatedAt time.Time `gorm:"column:academic_periods_created_at;autoCreateTime" json:"academic_periods_created_at"`
}

func (AcademicPeriodModel) TableName() string { return "academic_periods" }
