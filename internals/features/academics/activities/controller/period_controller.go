// file: internals/features/academics/activities/controller/period_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/dto"
	activityModel "kampusku_backend/internals/features/academics/activities/model"
	helper "kampusku_backend/internals/helpers"
)

type PeriodController struct {
	DB *gorm.DB
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{DB: db}
}

// POST /api/a/academic-periods
func (ctrl *PeriodController) CreatePeriod(c *fiber.Ctx) error {
	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := time.ParseInLocation("2006-01-02", req.AcademicPeriodStartDate, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal mulai tidak bisa diparse")
	}
	end, err := time.ParseInLocation("2006-01-02", req.AcademicPeriodEndDate, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai tidak bisa diparse")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai sebelum tanggal mulai")
	}

	m := activityModel.AcademicPeriodModel{
		AcademicPeriodName:      req.AcademicPeriodName,
		AcademicPeriodStartDate: start,
		AcademicPeriodEndDate:   end,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Periode berhasil dibuat", dto.FromPeriodModel(m))
}

// GET /api/a/academic-periods
func (ctrl *PeriodController) ListPeriods(c *fiber.Ctx) error {
	var rows []activityModel.AcademicPeriodModel
	if err := ctrl.DB.
		Order("academic_periods_start_date DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromPeriodModels(rows))
}
