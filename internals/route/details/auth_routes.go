package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "hadirku_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthAdminRoutes(r, db)
}
