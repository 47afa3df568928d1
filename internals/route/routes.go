// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "kampusku_backend/internals/features/academics/activities/route"
	sessionRoute "kampusku_backend/internals/features/academics/sessions/route"
	studentRoute "kampusku_backend/internals/features/academics/students/route"
	checkinRoute "kampusku_backend/internals/features/attendance/checkins/route"
	tokenRoute "kampusku_backend/internals/features/attendance/tokens/route"
	userRoute "kampusku_backend/internals/features/users/route"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	userRoute.AuthRoutes(api, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/a", authMw.AuthMiddleware())

	userRoute.UserRoutes(private, db)
	activityRoute.ActivityRoutes(private, db)
	sessionRoute.ActivitySessionRoutes(private, db)
	studentRoute.StudentRecordRoutes(private, db)
	tokenRoute.CheckinTokenRoutes(private, db)
	checkinRoute.AttendanceRoutes(private, db)
}
