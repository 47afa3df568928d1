package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	activityCtrl "kampusku_backend/internals/features/academics/activities/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// ActivityRoutes: project/process/event/period CRUD (staff) + scope admin
// grant/revoke (admin).
func ActivityRoutes(r fiber.Router, db *gorm.DB) {
	projectCtrl := activityCtrl.NewProjectController(db)
	processCtrl := activityCtrl.NewProcessController(db)
	eventCtrl := activityCtrl.NewEventController(db)
	periodCtrl := activityCtrl.NewPeriodController(db)
	scopeCtrl := activityCtrl.NewScopeAdminController(db)

	staffOnly := authMw.OnlyRoles(constants.RoleErrorStaff("kegiatan akademik"), constants.StaffAndAbove...)
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("scope admin"), constants.AdminAndAbove...)

	p := r.Group("/academic-projects", staffOnly)
	p.Get("/", projectCtrl.ListProjects)
	p.Post("/", projectCtrl.CreateProject)
	p.Get("/:id", projectCtrl.GetProject)
	p.Patch("/:id", projectCtrl.UpdateProject)
	p.Post("/:id/cancel", projectCtrl.CancelProject)
	p.Delete("/:id", projectCtrl.DeleteProject)

	pr := r.Group("/academic-processes", staffOnly)
	pr.Get("/", processCtrl.ListByProject)
	pr.Post("/", processCtrl.CreateProcess)
	pr.Get("/:id", processCtrl.GetProcess)
	pr.Patch("/:id", processCtrl.UpdateProcess)
	pr.Post("/:id/cancel", processCtrl.CancelProcess)
	pr.Delete("/:id", processCtrl.DeleteProcess)

	e := r.Group("/academic-events", staffOnly)
	e.Get("/", eventCtrl.ListEvents)
	e.Post("/", eventCtrl.CreateEvent)
	e.Get("/:id", eventCtrl.GetEvent)
	e.Patch("/:id", eventCtrl.UpdateEvent)
	e.Post("/:id/cancel", eventCtrl.CancelEvent)
	e.Delete("/:id", eventCtrl.DeleteEvent)

	pd := r.Group("/academic-periods", staffOnly)
	pd.Get("/", periodCtrl.ListPeriods)
	pd.Post("/", periodCtrl.CreatePeriod)

	sa := r.Group("/scope-admins", adminOnly)
	sa.Get("/", scopeCtrl.ListScopeAdmins)
	sa.Post("/", scopeCtrl.GrantScopeAdmin)
	sa.Delete("/", scopeCtrl.RevokeScopeAdmin)
}
