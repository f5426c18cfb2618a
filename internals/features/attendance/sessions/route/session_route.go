package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/attendance/sessions/controller"
)

// Base: group admin (sudah lewat AuthJWT)
func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewSessionController(db)

	s := r.Group("/cards/:id/session")

	s.Get("/", sessionCtrl.GetSession)
	s.Post("/start", sessionCtrl.StartSession)
	s.Post("/stop", sessionCtrl.StopSession)
	s.Patch("/location", sessionCtrl.RefreshLocation)
	s.Post("/rotate-code", sessionCtrl.RotateCode)
}

// Base: group publik (tanpa token)
func SessionPublicRoutes(r fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewSessionController(db)

	r.Get("/cards/:id/session", sessionCtrl.GetPublicSession)
}
