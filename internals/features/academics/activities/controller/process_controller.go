// file: internals/features/academics/activities/controller/process_controller.go
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

type ProcessController struct {
	DB *gorm.DB
}

func NewProcessController(db *gorm.DB) *ProcessController {
	return &ProcessController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/academic-processes
func (ctrl *ProcessController) CreateProcess(c *fiber.Ctx) error {
	var req dto.CreateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Project induk wajib ada
	var project activityModel.AcademicProjectModel
	if err := ctrl.DB.Where("academic_projects_id = ?", req.AcademicProcessProjectId).Take(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project induk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := activityModel.AcademicProcessModel{
		AcademicProcessProjectId: req.AcademicProcessProjectId,
		AcademicProcessName:      req.AcademicProcessName,
		AcademicProcessPosition:  req.AcademicProcessPosition,
		AcademicProcessStatus:    activityModel.StatusPlanned,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Process berhasil dibuat", dto.FromProcessModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/academic-processes/:id
func (ctrl *ProcessController) UpdateProcess(c *fiber.Ctx) error {
	processID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AcademicProcessName != nil {
		updates["academic_processes_name"] = *req.AcademicProcessName
	}
	if req.AcademicProcessPosition != nil {
		updates["academic_processes_position"] = *req.AcademicProcessPosition
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"academic_processes_id": processID})
	}

	var m activityModel.AcademicProcessModel
	if err := ctrl.DB.Where("academic_processes_id = ?", processID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Process tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Process berhasil diubah", dto.FromProcessModel(m))
}

/* ===================== CANCEL ===================== */
// POST /api/a/academic-processes/:id/cancel
// Set cancelled (sticky), lalu hitung ulang project induk — status project
// turunan dari agregat processnya.
func (ctrl *ProcessController) CancelProcess(c *fiber.Ctx) error {
	processID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var m activityModel.AcademicProcessModel
		if err := tx.Where("academic_processes_id = ?", processID).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Process tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca process")
		}
		if err := tx.Model(&m).
			Update("academic_processes_status", activityModel.StatusCancelled).Error; err != nil {
			return helper.ClassifyDBError(err, "Gagal membatalkan process")
		}
		ref := activityModel.OwnerRef{Type: activityModel.OwnerTypeProcess, ID: processID}
		return sessionService.NewRecalcService(tx).RecalcOwner(tx, ref, now)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Process dibatalkan", fiber.Map{"academic_processes_id": processID})
}

/* ===================== GET / LIST / DELETE ===================== */
// GET /api/a/academic-processes/:id
func (ctrl *ProcessController) GetProcess(c *fiber.Ctx) error {
	processID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m activityModel.AcademicProcessModel
	if err := ctrl.DB.Where("academic_processes_id = ?", processID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Process tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromProcessModel(m))
}

// GET /api/a/academic-processes?project_id=
func (ctrl *ProcessController) ListByProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "project_id tidak valid")
	}

	var rows []activityModel.AcademicProcessModel
	if err := ctrl.DB.
		Where("academic_processes_project_id = ?", projectID).
		Order("academic_processes_position, academic_processes_created_at").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromProcessModels(rows))
}

// DELETE /api/a/academic-processes/:id (soft delete)
func (ctrl *ProcessController) DeleteProcess(c *fiber.Ctx) error {
	processID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("academic_processes_id = ?", processID).
		Delete(&activityModel.AcademicProcessModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Process tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Process berhasil dihapus", fiber.Map{"academic_processes_id": processID})
}
