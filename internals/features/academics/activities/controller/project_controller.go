// file: internals/features/academics/activities/controller/project_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/dto"
	activityModel "kampusku_backend/internals/features/academics/activities/model"
	helper "kampusku_backend/internals/helpers"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/academic-projects
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := activityModel.AcademicProjectModel{
		AcademicProjectName:        req.AcademicProjectName,
		AcademicProjectSlug:        req.AcademicProjectSlug,
		AcademicProjectDescription: req.AcademicProjectDescription,
		AcademicProjectTags:        pq.StringArray(req.AcademicProjectTags),
		AcademicProjectStatus:      activityModel.StatusPlanned,
		AcademicProjectPeriodId:    req.AcademicProjectPeriodId,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug project sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Project berhasil dibuat", dto.FromProjectModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/academic-projects/:id
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AcademicProjectName != nil {
		updates["academic_projects_name"] = *req.AcademicProjectName
	}
	if req.AcademicProjectDescription != nil {
		updates["academic_projects_description"] = *req.AcademicProjectDescription
	}
	if req.AcademicProjectTags != nil {
		updates["academic_projects_tags"] = pq.StringArray(req.AcademicProjectTags)
	}
	if req.AcademicProjectPeriodId != nil {
		updates["academic_projects_period_id"] = *req.AcademicProjectPeriodId
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"academic_projects_id": projectID})
	}

	var m activityModel.AcademicProjectModel
	if err := ctrl.DB.Where("academic_projects_id = ?", projectID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Project berhasil diubah", dto.FromProjectModel(m))
}

/* ===================== CANCEL ===================== */
// POST /api/a/academic-projects/:id/cancel
// Cancelled itu manual dan sticky: rekalkulasi tidak akan menimpanya lagi.
func (ctrl *ProjectController) CancelProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Model(&activityModel.AcademicProjectModel{}).
		Where("academic_projects_id = ?", projectID).
		Update("academic_projects_status", activityModel.StatusCancelled)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Project dibatalkan", fiber.Map{"academic_projects_id": projectID})
}

/* ===================== GET / LIST / DELETE ===================== */
// GET /api/a/academic-projects/:id
func (ctrl *ProjectController) GetProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m activityModel.AcademicProjectModel
	if err := ctrl.DB.Where("academic_projects_id = ?", projectID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromProjectModel(m))
}

// GET /api/a/academic-projects?status=&tag=&page=&per_page=
func (ctrl *ProjectController) ListProjects(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&activityModel.AcademicProjectModel{})
	if s := c.Query("status"); s != "" {
		q = q.Where("academic_projects_status = ?", s)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(academic_projects_tags)", tag)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []activityModel.AcademicProjectModel
	if err := q.
		Order("academic_projects_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromProjectModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/academic-projects/:id (soft delete)
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("academic_projects_id = ?", projectID).
		Delete(&activityModel.AcademicProjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Project berhasil dihapus", fiber.Map{"academic_projects_id": projectID})
}
