package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:users_id" json:"users_id"`

	UserName  string `gorm:"not null;column:users_name"              json:"users_name"`
	UserEmail string `gorm:"uniqueIndex;not null;column:users_email" json:"users_email"`

	// bcrypt hash, tidak pernah keluar lewat JSON
	UserPassword string `gorm:"not null;column:users_password" json:"-"`

	UserRole string `gorm:"not null;default:student;column:users_role" json:"users_role"`

	UserActive bool `gorm:"not null;default:true;column:users_active" json:"users_active"`

	UserCreatedAt time.Time      `gorm:"column:users_created_at;autoCreateTime" json:"users_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:users_updated_at;autoUpdateTime" json:"users_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:users_deleted_at;index"          json:"users_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
