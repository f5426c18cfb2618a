package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/cards/dto"
	"hadirku_backend/internals/features/attendance/cards/model"
	helper "hadirku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/cards/:id/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member := model.CardMemberModel{
		MemberCardID: cardID,
		MemberCode:   strings.TrimSpace(req.MemberCode),
		MemberName:   strings.TrimSpace(req.MemberName),
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "ID peserta sudah terdaftar di kartu ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah peserta")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Peserta ditambahkan", dto.NewMemberResponse(member))
}

/* ===================== LIST ===================== */
// GET /api/a/cards/:id/members
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	var members []model.CardMemberModel
	if err := ctrl.DB.
		Where("member_card_id = ?", cardID).
		Order("member_name ASC").
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	return helper.Success(c, "OK", dto.NewMemberResponses(members))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/cards/:id/members/:memberId
// Edit nama/ID peserta, atau kosongkan token perangkat (paksa login ulang).
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Member ID tidak valid")
	}
	if _, err := LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var member model.CardMemberModel
	if err := ctrl.DB.
		Where("member_id = ? AND member_card_id = ?", memberID, cardID).
		First(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Peserta tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if req.MemberCode != nil {
		updates["member_code"] = strings.TrimSpace(*req.MemberCode)
	}
	if req.MemberName != nil {
		updates["member_name"] = strings.TrimSpace(*req.MemberName)
	}
	// token harus benar-benar dihapus (NULL), bukan di-set string kosong:
	// ada/tidaknya token itulah yang menggerbangi auto-login peserta.
	if req.ClearSessionToken != nil && *req.ClearSessionToken {
		updates["member_session_token"] = gorm.Expr("NULL")
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.NewMemberResponse(member))
	}

	if err := ctrl.DB.Model(&member).Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "ID peserta sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui peserta")
	}

	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helper.Success(c, "Peserta diperbarui", dto.NewMemberResponse(member))
}
