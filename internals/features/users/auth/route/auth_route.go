package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/users/auth/controller"
	rateLimiter "hadirku_backend/internals/middlewares"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.LoginRateLimiter(), authController.Register)
}

// Base: group admin (sudah lewat AuthJWT)
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	r.Get("/me", authController.Me)
}
