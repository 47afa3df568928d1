// file: internals/features/academics/activities/controller/event_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/dto"
	activityModel "kampusku_backend/internals/features/academics/activities/model"
	sessionService "kampusku_backend/internals/features/academics/sessions/service"
	helper "kampusku_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/academic-events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := activityModel.AcademicEventModel{
		AcademicEventName:        req.AcademicEventName,
		AcademicEventLocation:    req.AcademicEventLocation,
		AcademicEventDescription: req.AcademicEventDescription,
		AcademicEventStatus:      activityModel.StatusPlanned,
		AcademicEventPeriodId:    req.AcademicEventPeriodId,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Event berhasil dibuat", dto.FromEventModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/academic-events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AcademicEventName != nil {
		updates["academic_events_name"] = *req.AcademicEventName
	}
	if req.AcademicEventLocation != nil {
		updates["academic_events_location"] = *req.AcademicEventLocation
	}
	if req.AcademicEventDescription != nil {
		updates["academic_events_description"] = *req.AcademicEventDescription
	}
	if req.AcademicEventPeriodId != nil {
		updates["academic_events_period_id"] = *req.AcademicEventPeriodId
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"academic_events_id": eventID})
	}

	var m activityModel.AcademicEventModel
	if err := ctrl.DB.Where("academic_events_id = ?", eventID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Event berhasil diubah", dto.FromEventModel(m))
}

/* ===================== CANCEL ===================== */
// POST /api/a/academic-events/:id/cancel
func (ctrl *EventController) CancelEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&activityModel.AcademicEventModel{}).
			Where("academic_events_id = ?", eventID).
			Update("academic_events_status", activityModel.StatusCancelled)
		if res.Error != nil {
			return helper.ClassifyDBError(res.Error, "Gagal membatalkan event")
		}
		if res.RowsAffected == 0 {
			return helper.NewAppError(helper.ErrKindNotFound, "Event tidak ditemukan")
		}
		ref := activityModel.OwnerRef{Type: activityModel.OwnerTypeEvent, ID: eventID}
		return sessionService.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Event dibatalkan", fiber.Map{"academic_events_id": eventID})
}

/* ===================== GET / LIST / DELETE ===================== */
// GET /api/a/academic-events/:id
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m activityModel.AcademicEventModel
	if err := ctrl.DB.Where("academic_events_id = ?", eventID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromEventModel(m))
}

// GET /api/a/academic-events?status=&page=&per_page=
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&activityModel.AcademicEventModel{})
	if s := c.Query("status"); s != "" {
		q = q.Where("academic_events_status = ?", s)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []activityModel.AcademicEventModel
	if err := q.
		Order("academic_events_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromEventModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/academic-events/:id (soft delete)
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("academic_events_id = ?", eventID).
		Delete(&activityModel.AcademicEventModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"academic_events_id": eventID})
}
