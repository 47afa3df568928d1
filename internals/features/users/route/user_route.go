package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "kampusku_backend/internals/features/users/controller"
	"kampusku_backend/internals/middlewares"
)

// AuthRoutes: register + login (publik, limiter ketat).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)

	g := r.Group("/auth")
	g.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// UserRoutes: endpoint user yang butuh login.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)

	g := r.Group("/users")
	g.Get("/me", ctrl.Me)
}
