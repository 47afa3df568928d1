// file: internals/features/academics/activities/controller/scope_admin_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/dto"
	activityModel "kampusku_backend/internals/features/academics/activities/model"
	activityService "kampusku_backend/internals/features/academics/activities/service"
	helper "kampusku_backend/internals/helpers"
)

type ScopeAdminController struct {
	DB *gorm.DB
}

func NewScopeAdminController(db *gorm.DB) *ScopeAdminController {
	return &ScopeAdminController{DB: db}
}

/* ===================== GRANT ===================== */
// POST /api/a/scope-admins
// Duplikat grant diserap unique index → idempotent.
func (ctrl *ScopeAdminController) GrantScopeAdmin(c *fiber.Ctx) error {
	var req dto.GrantScopeAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ref := activityModel.OwnerRef{Type: req.ScopeAdminOwnerType, ID: req.ScopeAdminOwnerId}
	m := activityModel.ScopeAdminModel{
		ScopeAdminOwnerType: ref.Type,
		ScopeAdminOwnerId:   ref.ID,
		ScopeAdminUserId:    req.ScopeAdminUserId,
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Scope harus ada sebelum di-grant
		if _, err := activityService.NewOwnerResolver(tx).Resolve(tx, ref); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return nil // sudah ter-grant, tidak apa-apa
			}
			return helper.ClassifyDBError(err, "Gagal menyimpan scope admin")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Scope admin berhasil ditambahkan", dto.FromScopeAdminModel(m))
}

/* ===================== REVOKE ===================== */
// DELETE /api/a/scope-admins?owner_type=&owner_id=&user_id=
func (ctrl *ScopeAdminController) RevokeScopeAdmin(c *fiber.Ctx) error {
	ownerType := c.Query("owner_type")
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "owner_id tidak valid")
	}
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	res := ctrl.DB.
		Where("scope_admins_owner_type = ? AND scope_admins_owner_id = ? AND scope_admins_user_id = ?",
			ownerType, ownerID, userID).
		Delete(&activityModel.ScopeAdminModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Scope admin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Scope admin dicabut", fiber.Map{
		"scope_admins_owner_type": ownerType,
		"scope_admins_owner_id":   ownerID,
		"scope_admins_user_id":    userID,
	})
}

/* ===================== LIST ===================== */
// GET /api/a/scope-admins?owner_type=&owner_id=
func (ctrl *ScopeAdminController) ListScopeAdmins(c *fiber.Ctx) error {
	ownerType := c.Query("owner_type")
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil || (ownerType != activityModel.OwnerTypeProcess && ownerType != activityModel.OwnerTypeEvent) {
		return helper.JsonError(c, fiber.StatusBadRequest, "owner_type/owner_id tidak valid")
	}

	var rows []activityModel.ScopeAdminModel
	if err := ctrl.DB.
		Where("scope_admins_owner_type = ? AND scope_admins_owner_id = ?", ownerType, ownerID).
		Order("scope_admins_created_at").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromScopeAdminModels(rows))
}
