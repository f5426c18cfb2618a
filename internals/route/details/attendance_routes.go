package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cardRoute "hadirku_backend/internals/features/attendance/cards/route"
	recordRoute "hadirku_backend/internals/features/attendance/records/route"
	sessionRoute "hadirku_backend/internals/features/attendance/sessions/route"
)

// Semua endpoint admin (kartu, roster, sesi, ledger)
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	cardRoute.CardAdminRoutes(r, db)
	sessionRoute.SessionAdminRoutes(r, db)
	recordRoute.RecordAdminRoutes(r, db)
}

// Endpoint publik untuk perangkat peserta
func AttendancePublicRoutes(r fiber.Router, db *gorm.DB) {
	sessionRoute.SessionPublicRoutes(r, db)
	recordRoute.RecordPublicRoutes(r, db)
}
