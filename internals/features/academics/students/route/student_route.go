package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	studentCtrl "kampusku_backend/internals/features/academics/students/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// StudentRecordRoutes: CRUD enrolment, khusus staff ke atas.
func StudentRecordRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentRecordController(db)

	g := r.Group("/student-records",
		authMw.OnlyRoles(constants.RoleErrorStaff("student record"), constants.StaffAndAbove...))

	g.Get("/", ctrl.ListStudentRecords)
	g.Post("/", ctrl.CreateStudentRecord)
	g.Get("/:id", ctrl.GetStudentRecord)
	g.Patch("/:id", ctrl.UpdateStudentRecord)
	g.Delete("/:id", ctrl.DeleteStudentRecord)
}
