// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/students/dto"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	helper "kampusku_backend/internals/helpers"
)

type StudentRecordController struct {
	DB *gorm.DB
}

func NewStudentRecordController(db *gorm.DB) *StudentRecordController {
	return &StudentRecordController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/student-records
func (ctrl *StudentRecordController) CreateStudentRecord(c *fiber.Ctx) error {
	var req dto.CreateStudentRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := studentModel.StudentRecordModel{
		StudentRecordUserId:   req.StudentRecordUserId,
		StudentRecordCode:     req.StudentRecordCode,
		StudentRecordPeriodId: req.StudentRecordPeriodId,
		StudentRecordActive:   true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode student record sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Student record berhasil dibuat", dto.FromStudentRecordModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/student-records/:id
func (ctrl *StudentRecordController) UpdateStudentRecord(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateStudentRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.StudentRecordCode != nil {
		updates["student_records_code"] = *req.StudentRecordCode
	}
	if req.StudentRecordPeriodId != nil {
		updates["student_records_period_id"] = *req.StudentRecordPeriodId
	}
	if req.StudentRecordActive != nil {
		updates["student_records_active"] = *req.StudentRecordActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"student_records_id": recordID})
	}

	var m studentModel.StudentRecordModel
	if err := ctrl.DB.Where("student_records_id = ?", recordID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode student record sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Student record berhasil diubah", dto.FromStudentRecordModel(m))
}

/* ===================== GET / LIST / DELETE ===================== */
// GET /api/a/student-records/:id
func (ctrl *StudentRecordController) GetStudentRecord(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m studentModel.StudentRecordModel
	if err := ctrl.DB.Where("student_records_id = ?", recordID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromStudentRecordModel(m))
}

// GET /api/a/student-records?user_id=&active=&page=&per_page=
func (ctrl *StudentRecordController) ListStudentRecords(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&studentModel.StudentRecordModel{})
	if s := c.Query("user_id"); s != "" {
		userID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		q = q.Where("student_records_user_id = ?", userID)
	}
	if s := c.Query("active"); s != "" {
		q = q.Where("student_records_active = ?", s == "true")
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []studentModel.StudentRecordModel
	if err := q.
		Order("student_records_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromStudentRecordModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/student-records/:id (soft delete)
func (ctrl *StudentRecordController) DeleteStudentRecord(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("student_records_id = ?", recordID).
		Delete(&studentModel.StudentRecordModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Student record berhasil dihapus", fiber.Map{"student_records_id": recordID})
}
