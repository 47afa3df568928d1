package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Process: tahap kerja bernama di dalam sebuah Project, agregator Session.
type AcademicProcessModel struct {
	AcademicProcessId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_processes_id" json:"academic_processes_id"`

	AcademicProcessProjectId uuid.UUID `gorm:"type:uuid;not null;index;column:academic_processes_project_id" json:"academic_processes_project_id"`

	AcademicProcessName     string `gorm:"not null;column:academic_processes_name"              json:"academic_processes_name"`
	AcademicProcessPosition int    `gorm:"not null;default:0;column:academic_processes_position" json:"academic_processes_position"`

	AcademicProcessStatus string `gorm:"not null;default:planned;column:academic_processes_status" json:"academic_processes_status"`

	AcademicProcessCreatedAt time.Time      `gorm:"column:academic_processes_created_at;autoCreateTime" json:"academic_processes_created_at"`
	AcademicProcessUpdatedAt *time.Time     `gorm:"column:academic_processes_updated_at;autoUpdateTime" json:"academic_processes_updated_at,omitempty"`
	AcademicProcessDeletedAt gorm.DeletedAt `gorm:"column:academic_processes_deleted_at;index"          json:"academic_processes_deleted_at,omitempty"`
}

func (AcademicProcessModel) TableName() string { return "academic_processes" }
