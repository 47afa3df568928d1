package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AcademicProjectModel struct {
	AcademicProjectId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_projects_id" json:"academic_projects_id"`

	AcademicProjectName        string  `gorm:"not null;column:academic_projects_name"                json:"academic_projects_name"`
	AcademicProjectSlug        string  `gorm:"uniqueIndex;not null;column:academic_projects_slug"    json:"academic_projects_slug"`
	AcademicProjectDescription *string `gorm:"column:academic_projects_description"                  json:"academic_projects_description,omitempty"`

	AcademicProjectTags pq.StringArray `gorm:"type:text[];column:academic_projects_tags" json:"academic_projects_tags,omitempty"`

	// Status selalu diturunkan dari agregat session milik process-processnya.
	// 'cancelled' sticky: sekali diset, recalculation tidak boleh menimpa.
	AcademicProjectStatus string `gorm:"not null;default:planned;column:academic_projects_status" json:"academic_projects_status"`

	AcademicProjectPeriodId *uuid.UUID `gorm:"type:uuid;column:academic_projects_period_id" json:"academic_projects_period_id,omitempty"`

	AcademicProjectCreatedAt time.Time      `gorm:"column:academic_projects_created_at;autoCreateTime" json:"academic_projects_created_at"`
	AcademicProjectUpdatedAt *time.Time     `gorm:"column:academic_projects_updated_at;autoUpdateTime" json:"academic_projects_updated_at,omitempty"`
	AcademicProjectDeletedAt gorm.DeletedAt `gorm:"column:academic_projects_deleted_at;index"          json:"academic_projects_deleted_at,omitempty"`
}

func (AcademicProjectModel) TableName() string { return "academic_projects" }
