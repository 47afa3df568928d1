package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	sessionCtrl "kampusku_backend/internals/features/academics/sessions/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// ActivitySessionRoutes: CRUD + batch schedule + recalc. Semua di grup staff.
func ActivitySessionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionCtrl.NewActivitySessionController(db)

	g := r.Group("/activity-sessions",
		authMw.OnlyRoles(constants.RoleErrorStaff("sesi kegiatan"), constants.StaffAndAbove...))

	g.Get("/", ctrl.ListByOwner)
	g.Post("/", ctrl.CreateActivitySession)
	g.Post("/schedule", ctrl.ScheduleActivitySessions)
	g.Post("/recalc", ctrl.RecalcOwner)
	g.Get("/:id", ctrl.GetActivitySession)
	g.Patch("/:id", ctrl.UpdateActivitySession)
	g.Delete("/:id", ctrl.DeleteActivitySession)
}
