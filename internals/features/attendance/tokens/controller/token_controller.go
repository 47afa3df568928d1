// file: internals/features/attendance/tokens/controller/token_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	activityService "kampusku_backend/internals/features/academics/activities/service"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/features/attendance/tokens/dto"
	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	"kampusku_backend/internals/features/attendance/tokens/service"
	helper "kampusku_backend/internals/helpers"
)

type CheckinTokenController struct {
	DB *gorm.DB
}

func NewCheckinTokenController(db *gorm.DB) *CheckinTokenController {
	return &CheckinTokenController{DB: db}
}

/* ===================== ISSUE ===================== */
// POST /api/a/checkin-tokens
func (ctrl *CheckinTokenController) IssueToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Geofence != nil {
		if err := v.Struct(req.Geofence); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var tok *tokenModel.CheckinTokenModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", req.CheckinTokenSessionId).Take(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Session tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}

		// Issue token hanya untuk pengelola scope
		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		if err := activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref); err != nil {
			return err
		}

		svc := service.NewTokenService(tx)
		var ierr error
		switch req.CheckinTokenKind {
		case tokenModel.TokenKindQR:
			var geo *service.GeofenceSpec
			if req.Geofence != nil {
				geo = &service.GeofenceSpec{
					Lat:     req.Geofence.Lat,
					Lng:     req.Geofence.Lng,
					RadiusM: req.Geofence.RadiusM,
				}
			}
			tok, ierr = svc.IssueQR(tx, &sess, userID, req.CheckinTokenMaxUses, geo)
		case tokenModel.TokenKindManual:
			tok, ierr = svc.IssueManual(tx, &sess, userID)
		}
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Token berhasil dibuat", dto.FromCheckinTokenModel(*tok))
}

/* ===================== DISABLE ===================== */
// POST /api/a/checkin-tokens/:id/disable
func (ctrl *CheckinTokenController) DisableToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	tokenID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var tok tokenModel.CheckinTokenModel
		if err := tx.Where("checkin_tokens_id = ?", tokenID).Take(&tok).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Token tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca token")
		}

		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", tok.CheckinTokenSessionId).Take(&sess).Error; err != nil {
			return helper.ClassifyDBError(err, "Gagal membaca session token")
		}
		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		if err := activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref); err != nil {
			return err
		}

		return service.NewTokenService(tx).Disable(tx, tokenID)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Token dinonaktifkan", fiber.Map{"checkin_tokens_id": tokenID})
}

/* ===================== LIST ===================== */
// GET /api/a/checkin-tokens?session_id=
func (ctrl *CheckinTokenController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Query("session_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	var tokens []tokenModel.CheckinTokenModel
	if err := ctrl.DB.
		Where("checkin_tokens_session_id = ?", sessionID).
		Order("checkin_tokens_created_at DESC").
		Find(&tokens).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromCheckinTokenModels(tokens))
}
