package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	tokenCtrl "kampusku_backend/internals/features/attendance/tokens/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func CheckinTokenRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tokenCtrl.NewCheckinTokenController(db)

	g := r.Group("/checkin-tokens",
		authMw.OnlyRoles(constants.RoleErrorStaff("token check-in"), constants.StaffAndAbove...))

	g.Get("/", ctrl.ListBySession)
	g.Post("/", ctrl.IssueToken)
	g.Post("/:id/disable", ctrl.DisableToken)
}
