// file: internals/features/academics/activities/service/authz.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/activities/model"
	helper "kampusku_backend/internals/helpers"
)

// CanManageScope: apakah actor boleh mengelola owning scope ini.
// Admin/owner global selalu boleh; selain itu harus terdaftar di scope_admins.
// Dipanggil sebelum issue token, manual check-in, dan validasi kehadiran.
// Self check-in TIDAK lewat sini — siswa selalu boleh scan untuk dirinya.
func CanManageScope(db *gorm.DB, userID uuid.UUID, role string, ref model.OwnerRef) (bool, error) {
	for _, r := range constants.AdminAndAbove {
		if role == r {
			return true, nil
		}
	}

	var count int64
	if err := db.Model(&model.ScopeAdminModel{}).
		Where("scope_admins_owner_type = ? AND scope_admins_owner_id = ? AND scope_admins_user_id = ?",
			ref.Type, ref.ID, userID).
		Count(&count).Error; err != nil {
		return false, helper.ClassifyDBError(err, "Gagal membaca scope admin")
	}
	return count > 0, nil
}

// RequireScopeManager: versi yang langsung menghasilkan authorization error.
func RequireScopeManager(db *gorm.DB, userID uuid.UUID, role string, ref model.OwnerRef) error {
	ok, err := CanManageScope(db, userID, role, ref)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NewAppError(helper.ErrKindAuthorization, "Anda tidak berhak mengelola scope ini")
	}
	return nil
}
