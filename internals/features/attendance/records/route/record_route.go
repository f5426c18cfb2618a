package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/attendance/records/controller"
	rateLimiter "hadirku_backend/internals/middlewares"
)

// Base: group admin (sudah lewat AuthJWT)
func RecordAdminRoutes(r fiber.Router, db *gorm.DB) {
	logCtrl := controller.NewLogController(db)

	r.Get("/cards/:id/logs/:date", logCtrl.DailyLog)
	r.Get("/cards/:id/matrix", logCtrl.Matrix)
	r.Get("/cards/:id/export", logCtrl.Export)
	r.Get("/cards/:id/share", logCtrl.Share)
}

// Base: group publik (perangkat peserta, tanpa token admin)
func RecordPublicRoutes(r fiber.Router, db *gorm.DB) {
	checkinCtrl := controller.NewCheckinController(db)

	r.Post("/cards/:id/verify-code", rateLimiter.CheckinRateLimiter(), checkinCtrl.VerifyCode)
	r.Post("/cards/:id/checkin", rateLimiter.CheckinRateLimiter(), checkinCtrl.Checkin)
	r.Post("/cards/:id/checkout", rateLimiter.CheckinRateLimiter(), checkinCtrl.Checkout)
	r.Post("/cards/:id/signout", rateLimiter.CheckinRateLimiter(), checkinCtrl.Signout)
	r.Get("/cards/:id/me", checkinCtrl.Me)
}
