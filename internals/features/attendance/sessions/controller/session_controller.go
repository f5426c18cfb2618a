package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cardController "hadirku_backend/internals/features/attendance/cards/controller"
	"hadirku_backend/internals/features/attendance/sessions/dto"
	"hadirku_backend/internals/features/attendance/sessions/service"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/geo"
)

type SessionController struct {
	DB      *gorm.DB
	Service *service.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Service: service.New(db)}
}

func parseCardID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Card ID tidak valid")
	}
	return id, nil
}

/* ===================== START ===================== */
// POST /api/a/cards/:id/session/start
// Wajib bawa koordinat host; tanpa itu sesi tidak dibuat sama sekali.
func (ctrl *SessionController) StartSession(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := ctrl.Service.Start(
		cardID,
		adminID,
		helper.GetAdminNameFromToken(c),
		geo.Location{Lat: *req.Lat, Lon: *req.Lon},
		*req.MaxDistanceM,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memulai sesi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi dimulai", dto.NewSessionResponse(*sess))
}

/* ===================== STOP ===================== */
// POST /api/a/cards/:id/session/stop — idempoten
func (ctrl *SessionController) StopSession(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	if err := ctrl.Service.Stop(cardID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghentikan sesi")
	}
	return helper.Success(c, "Sesi dihentikan", nil)
}

/* ===================== STATUS (HOST) ===================== */
// GET /api/a/cards/:id/session
func (ctrl *SessionController) GetSession(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	sess, err := ctrl.Service.Current(cardID)
	if errors.Is(err, service.ErrNoActiveSession) {
		return helper.Success(c, "Tidak ada sesi aktif", dto.PublicSessionResponse{SessionActive: false})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helper.Success(c, "OK", dto.NewSessionResponse(*sess))
}

/* ===================== REFRESH LOKASI HOST ===================== */
// PATCH /api/a/cards/:id/session/location
// Dipanggil periodik oleh perangkat host selama sesi aktif. Kalau perangkat
// gagal resolve lokasi, klien cukup skip interval ini — tidak ada yang ditulis.
func (ctrl *SessionController) RefreshLocation(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	var req dto.RefreshLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := ctrl.Service.RefreshHostLocation(cardID, adminID, geo.Location{Lat: *req.Lat, Lon: *req.Lon})
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		return fiber.NewError(fiber.StatusConflict, "Tidak ada sesi aktif")
	case errors.Is(err, service.ErrNotHost):
		return fiber.NewError(fiber.StatusForbidden, "Hanya host sesi yang boleh memperbarui lokasi")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
	}

	return helper.Success(c, "Lokasi host diperbarui", dto.NewSessionResponse(*sess))
}

/* ===================== ROTASI KODE ===================== */
// POST /api/a/cards/:id/session/rotate-code
// Klien host memanggil saat countdown habis. Balapan antar tab aman:
// update bersyarat, siapa pun menang hasilnya kode valid yang sama jenisnya.
func (ctrl *SessionController) RotateCode(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID); err != nil {
		return err
	}

	sess, err := ctrl.Service.RotateCodeIfExpired(cardID, adminID)
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		return fiber.NewError(fiber.StatusConflict, "Tidak ada sesi aktif")
	case errors.Is(err, service.ErrNotHost):
		return fiber.NewError(fiber.StatusForbidden, "Hanya host sesi yang boleh merotasi kode")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal merotasi kode")
	}

	return helper.Success(c, "OK", dto.NewSessionResponse(*sess))
}

/* ===================== STATUS (PESERTA) ===================== */
// GET /api/public/cards/:id/session — tanpa kode akses
func (ctrl *SessionController) GetPublicSession(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	sess, err := ctrl.Service.Current(cardID)
	if errors.Is(err, service.ErrNoActiveSession) {
		return helper.Success(c, "Tidak ada sesi aktif", dto.NewPublicSessionResponse(nil))
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helper.Success(c, "OK", dto.NewPublicSessionResponse(sess))
}
