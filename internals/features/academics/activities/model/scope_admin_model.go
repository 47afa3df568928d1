package model

import (
	"time"

	"github.com/google/uuid"
)

// ScopeAdmin: user yang boleh mengelola sebuah owning scope (process/event).
// Dicek sebelum issue token, manual check-in, dan validasi kehadiran.
type ScopeAdminModel struct {
	ScopeAdminId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:scope_admins_id" json:"scope_admins_id"`

	ScopeAdminOwnerType string    `gorm:"not null;uniqueIndex:uq_scope_admins_owner_user;column:scope_admins_owner_type" json:"scope_admins_owner_type"`
	ScopeAdminOwnerId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scope_admins_owner_user;column:scope_admins_owner_id" json:"scope_admins_owner_id"`
	ScopeAdminUserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scope_admins_owner_user;column:scope_admins_user_id" json:"scope_admins_user_id"`

	ScopeAdminCreatedAt time.Time `gorm:"column:scope_admins_created_at;autoCreateTime" json:"scope_admins_created_at"`
}

func (ScopeAdminModel) TableName() string { return "scope_admins" }
