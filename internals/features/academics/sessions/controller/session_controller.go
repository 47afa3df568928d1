// file: internals/features/academics/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	activityService "kampusku_backend/internals/features/academics/activities/service"
	"kampusku_backend/internals/features/academics/sessions/dto"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/features/academics/sessions/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/dbtime"
)

type ActivitySessionController struct {
	DB *gorm.DB
}

func NewActivitySessionController(db *gorm.DB) *ActivitySessionController {
	return &ActivitySessionController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/activity-sessions
func (ctrl *ActivitySessionController) CreateActivitySession(c *fiber.Ctx) error {
	var req dto.CreateActivitySessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.ParseInLocation("2006-01-02", req.ActivitySessionDate, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak bisa diparse")
	}
	startTod, err := dbtime.Parse(req.ActivitySessionStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jam mulai tidak bisa diparse")
	}
	endTod, err := dbtime.Parse(req.ActivitySessionEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jam selesai tidak bisa diparse")
	}

	ref := activityModel.OwnerRef{Type: req.ActivitySessionOwnerType, ID: req.ActivitySessionOwnerId}
	now := time.Now()

	m := sessionModel.ActivitySessionModel{
		ActivitySessionOwnerType: ref.Type,
		ActivitySessionOwnerId:   ref.ID,
		ActivitySessionDate:      date,
		ActivitySessionStartTime: startTod,
		ActivitySessionEndTime:   endTod,
		ActivitySessionStatus:    service.StatusPlanned,
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Owner harus bisa ditelusuri dulu
		if _, err := activityService.NewOwnerResolver(tx).Resolve(tx, ref); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.WrapAppError(helper.ErrKindDuplicate, "Slot session sudah ada untuk owner/tanggal/jam ini", err)
			}
			return helper.ClassifyDBError(err, "Gagal membuat session")
		}
		// Mutasi session selalu men-trigger rekalkulasi owner (eksplisit,
		// bukan hook ORM).
		return service.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Session berhasil dibuat", dto.FromActivitySessionModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/activity-sessions/:id
func (ctrl *ActivitySessionController) UpdateActivitySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateActivitySessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ActivitySessionDate != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.ActivitySessionDate, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak bisa diparse")
		}
		updates["activity_sessions_date"] = date
	}
	if req.ActivitySessionStartTime != nil {
		tod, err := dbtime.Parse(*req.ActivitySessionStartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jam mulai tidak bisa diparse")
		}
		updates["activity_sessions_start_time"] = tod
	}
	if req.ActivitySessionEndTime != nil {
		tod, err := dbtime.Parse(*req.ActivitySessionEndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jam selesai tidak bisa diparse")
		}
		updates["activity_sessions_end_time"] = tod
	}
	if req.ActivitySessionStatus != nil {
		updates["activity_sessions_status"] = *req.ActivitySessionStatus
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ActivitySessionResponse{ActivitySessionId: sessionID})
	}

	now := time.Now()
	var updated sessionModel.ActivitySessionModel

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", sessionID).Take(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Session tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}

		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		owner, err := activityService.NewOwnerResolver(tx).Resolve(tx, ref)
		if err != nil {
			return err
		}
		// Edit manual hanya selama owner masih editable
		if owner.Status == service.StatusClosed || owner.Status == service.StatusCancelled {
			return helper.NewAppError(helper.ErrKindState, "Owner sudah ditutup/dibatalkan, session tidak bisa diubah")
		}

		if err := tx.Model(&sessionModel.ActivitySessionModel{}).
			Where("activity_sessions_id = ?", sessionID).
			Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.WrapAppError(helper.ErrKindDuplicate, "Slot session sudah ada untuk owner/tanggal/jam ini", err)
			}
			return helper.ClassifyDBError(err, "Gagal mengubah session")
		}
		if err := tx.Where("activity_sessions_id = ?", sessionID).Take(&updated).Error; err != nil {
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}
		return service.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Session berhasil diubah", dto.FromActivitySessionModel(updated))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/activity-sessions/:id
// Hanya boleh selama owner masih planned (tahap perencanaan, belum mulai).
func (ctrl *ActivitySessionController) DeleteActivitySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", sessionID).Take(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Session tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}

		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		owner, err := activityService.NewOwnerResolver(tx).Resolve(tx, ref)
		if err != nil {
			return err
		}
		if owner.Status != service.StatusPlanned {
			return helper.NewAppError(helper.ErrKindState, "Session hanya bisa dihapus selama owner masih planned")
		}

		if err := tx.Delete(&sess).Error; err != nil {
			return helper.ClassifyDBError(err, "Gagal menghapus session")
		}
		return service.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonDeleted(c, "Session berhasil dihapus", fiber.Map{"activity_sessions_id": sessionID})
}

/* ===================== GET / LIST ===================== */
// GET /api/a/activity-sessions/:id
func (ctrl *ActivitySessionController) GetActivitySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var sess sessionModel.ActivitySessionModel
	if err := ctrl.DB.Where("activity_sessions_id = ?", sessionID).Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromActivitySessionModel(sess))
}

// GET /api/a/activity-sessions?owner_type=&owner_id=&page=&per_page=
func (ctrl *ActivitySessionController) ListByOwner(c *fiber.Ctx) error {
	ownerType := c.Query("owner_type")
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil || (ownerType != activityModel.OwnerTypeProcess && ownerType != activityModel.OwnerTypeEvent) {
		return helper.JsonError(c, fiber.StatusBadRequest, "owner_type/owner_id tidak valid")
	}

	paging := helper.ResolvePaging(c, 25, 200)

	base := ctrl.DB.Model(&sessionModel.ActivitySessionModel{}).
		Where("activity_sessions_owner_type = ? AND activity_sessions_owner_id = ?", ownerType, ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var sessions []sessionModel.ActivitySessionModel
	if err := base.
		Order("activity_sessions_date, activity_sessions_start_time").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromActivitySessionModels(sessions),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== BATCH SCHEDULE ===================== */
// POST /api/a/activity-sessions/schedule
func (ctrl *ActivitySessionController) ScheduleActivitySessions(c *fiber.Ctx) error {
	var req dto.ScheduleSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ref := activityModel.OwnerRef{Type: req.ActivitySessionOwnerType, ID: req.ActivitySessionOwnerId}
	now := time.Now()

	var created []sessionModel.ActivitySessionModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := activityService.NewOwnerResolver(tx).Resolve(tx, ref); err != nil {
			return err
		}
		var err error
		created, err = service.NewScheduleService(tx).Materialize(tx, service.ScheduleRequest{
			Owner:      ref,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Dates:      req.Dates,
			RangeStart: req.RangeStart,
			RangeEnd:   req.RangeEnd,
			Weekdays:   req.Weekdays,
		})
		if err != nil {
			return err
		}
		return service.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Session batch berhasil dimaterialisasi", dto.FromActivitySessionModels(created))
}

/* ===================== RECALC ===================== */
// POST /api/a/activity-sessions/recalc
func (ctrl *ActivitySessionController) RecalcOwner(c *fiber.Ctx) error {
	var req dto.RecalcOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ref := activityModel.OwnerRef{Type: req.OwnerType, ID: req.OwnerId}
	if err := service.NewRecalcService(ctrl.DB).RecalcOwner(nil, ref, time.Now()); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Status owner dihitung ulang", fiber.Map{
		"owner_type": ref.Type,
		"owner_id":   ref.ID,
	})
}
