package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/cards/dto"
	"hadirku_backend/internals/features/attendance/cards/model"
	recordModel "hadirku_backend/internals/features/attendance/records/model"
	sessionModel "hadirku_backend/internals/features/attendance/sessions/model"
	helper "hadirku_backend/internals/helpers"
)

type CardController struct {
	DB *gorm.DB
}

func NewCardController(db *gorm.DB) *CardController {
	return &CardController{DB: db}
}

// LoadOwnedCard mengambil kartu milik admin yang sedang login.
// 404 kalau tidak ada atau bukan miliknya (tidak membocorkan keberadaan kartu).
func LoadOwnedCard(db *gorm.DB, cardID, adminID uuid.UUID) (*model.AttendanceCardModel, error) {
	var card model.AttendanceCardModel
	err := db.
		Where("card_id = ? AND card_admin_id = ?", cardID, adminID).
		First(&card).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kartu tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &card, nil
}

func parseCardID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Card ID tidak valid")
	}
	return id, nil
}

/* ===================== CREATE ===================== */
// POST /api/a/cards
func (ctrl *CardController) CreateCard(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	card := model.AttendanceCardModel{
		CardAdminID: adminID,
		CardName:    strings.TrimSpace(req.CardName),
	}
	if err := ctrl.DB.Create(&card).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kartu")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kartu dibuat", dto.NewCardResponse(card))
}

/* ===================== LIST & DETAIL ===================== */
// GET /api/a/cards
func (ctrl *CardController) ListCards(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var cards []model.AttendanceCardModel
	if err := ctrl.DB.
		Where("card_admin_id = ?", adminID).
		Order("card_created_at DESC").
		Find(&cards).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kartu")
	}

	out := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, dto.NewCardResponse(card))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/cards/:id
func (ctrl *CardController) GetCard(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	card, err := LoadOwnedCard(ctrl.DB, cardID, adminID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.NewCardResponse(*card))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/cards/:id — ganti nama kartu
func (ctrl *CardController) UpdateCard(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	card, err := LoadOwnedCard(ctrl.DB, cardID, adminID)
	if err != nil {
		return err
	}

	var req dto.UpdateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.CardName == nil {
		return helper.Success(c, "Tidak ada perubahan", dto.NewCardResponse(*card))
	}

	name := strings.TrimSpace(*req.CardName)
	if err := ctrl.DB.Model(card).Update("card_name", name).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kartu")
	}
	card.CardName = name
	return helper.Success(c, "Kartu diperbarui", dto.NewCardResponse(*card))
}

/* ===================== DELETE (CASCADE) ===================== */
// DELETE /api/a/cards/:id
// Ikut terhapus: roster, seluruh record, log harian, dan sesi berjalan.
func (ctrl *CardController) DeleteCard(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	card, err := LoadOwnedCard(ctrl.DB, cardID, adminID)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_card_id = ?", cardID).
			Delete(&recordModel.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("log_day_card_id = ?", cardID).
			Delete(&recordModel.CardLogDayModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_card_id = ?", cardID).
			Delete(&sessionModel.CardSessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_card_id = ?", cardID).
			Delete(&model.CardMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(card).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kartu")
	}

	return helper.Success(c, "Kartu dihapus", nil)
}

/* ===================== SETTINGS ===================== */
// PATCH /api/a/cards/:id/settings/:name
// Toggle murni flag boolean: signout_enabled | checkout_enabled.
func (ctrl *CardController) ToggleSetting(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	card, err := LoadOwnedCard(ctrl.DB, cardID, adminID)
	if err != nil {
		return err
	}

	var column string
	switch c.Params("name") {
	case "signout_enabled":
		column = "card_signout_enabled"
		card.CardSignoutEnabled = !card.CardSignoutEnabled
	case "checkout_enabled":
		column = "card_checkout_enabled"
		card.CardCheckoutEnabled = !card.CardCheckoutEnabled
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Setting tidak dikenal")
	}

	if err := ctrl.DB.Model(card).
		Update(column, gorm.Expr("NOT "+column)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah setting")
	}

	return helper.Success(c, "Setting diubah", dto.NewCardResponse(*card))
}
