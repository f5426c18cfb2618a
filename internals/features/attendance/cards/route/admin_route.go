package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/attendance/cards/controller"
)

// Base: group admin (sudah lewat AuthJWT)
func CardAdminRoutes(r fiber.Router, db *gorm.DB) {
	cardCtrl := controller.NewCardController(db)
	memberCtrl := controller.NewMemberController(db)

	cards := r.Group("/cards")

	cards.Post("/", cardCtrl.CreateCard)
	cards.Get("/", cardCtrl.ListCards)
	cards.Get("/:id", cardCtrl.GetCard)
	cards.Patch("/:id", cardCtrl.UpdateCard)
	cards.Delete("/:id", cardCtrl.DeleteCard)
	cards.Patch("/:id/settings/:name", cardCtrl.ToggleSetting)

	// roster
	cards.Post("/:id/members", memberCtrl.CreateMember)
	cards.Get("/:id/members", memberCtrl.ListMembers)
	cards.Patch("/:id/members/:memberId", memberCtrl.UpdateMember)
}
