package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	checkinCtrl "kampusku_backend/internals/features/attendance/checkins/controller"
	"kampusku_backend/internals/middlewares"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// AttendanceRoutes: check-in (semua user login), validasi/void/list (staff),
// hours ledger (staff). Check-in dikasih limiter sendiri.
func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := checkinCtrl.NewAttendanceController(db)

	g := r.Group("/attendances")

	// Check-in terbuka untuk semua user login (siswa scan QR sendiri)
	g.Post("/check-in", middlewares.CheckinRateLimiter(), ctrl.CheckIn)
	g.Get("/mine", ctrl.ListMine)

	// Sisanya khusus staff ke atas
	staff := g.Group("",
		authMw.OnlyRoles(constants.RoleErrorStaff("attendance"), constants.StaffAndAbove...))
	staff.Get("/", ctrl.ListBySession)
	staff.Post("/direct", ctrl.RecordDirect)
	staff.Post("/validate-session", ctrl.ValidateSession)
	staff.Post("/:id/validate", ctrl.ValidateAttendance)
	staff.Post("/:id/void", ctrl.VoidAttendance)

	h := r.Group("/hours-records",
		authMw.OnlyRoles(constants.RoleErrorStaff("hours ledger"), constants.StaffAndAbove...))
	h.Get("/", ctrl.ListHoursRecords)
}
