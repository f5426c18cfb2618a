package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cardModel "hadirku_backend/internals/features/attendance/cards/model"
	"hadirku_backend/internals/features/attendance/records/dto"
	"hadirku_backend/internals/features/attendance/records/model"
	"hadirku_backend/internals/features/attendance/records/service"
	sessionService "hadirku_backend/internals/features/attendance/sessions/service"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/device"
	"hadirku_backend/internals/helpers/geo"
)

type CheckinController struct {
	DB       *gorm.DB
	Sessions *sessionService.SessionService
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{DB: db, Sessions: sessionService.New(db)}
}

func parseCardID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Card ID tidak valid")
	}
	return id, nil
}

func (ctrl *CheckinController) loadCard(cardID uuid.UUID) (*cardModel.AttendanceCardModel, error) {
	var card cardModel.AttendanceCardModel
	err := ctrl.DB.First(&card, "card_id = ?", cardID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kartu tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &card, nil
}

// resolveMember mencari peserta dari token perangkat atau user_code.
// Kalau identitas manual dan belum ada di roster, peserta dibuat + token baru.
func (ctrl *CheckinController) resolveMember(tx *gorm.DB, cardID uuid.UUID, token, userCode, userName *string) (*cardModel.CardMemberModel, *string, error) {
	if token != nil && *token != "" {
		var member cardModel.CardMemberModel
		err := tx.
			Where("member_card_id = ? AND member_session_token = ?", cardID, *token).
			First(&member).Error
		if err == gorm.ErrRecordNotFound {
			// token sudah dicabut admin → perangkat harus isi ulang identitas
			return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Token perangkat tidak berlaku, masukkan ulang identitas")
		}
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}
		return &member, nil, nil
	}

	code := strings.TrimSpace(*userCode)
	var member cardModel.CardMemberModel
	err := tx.
		Where("member_card_id = ? AND member_code = ?", cardID, code).
		First(&member).Error

	newToken := uuid.NewString()
	switch {
	case err == gorm.ErrRecordNotFound:
		member = cardModel.CardMemberModel{
			MemberCardID:       cardID,
			MemberCode:         code,
			MemberName:         strings.TrimSpace(*userName),
			MemberSessionToken: &newToken,
		}
		if err := tx.Create(&member).Error; err != nil {
			return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan peserta")
		}
		return &member, &newToken, nil
	case err != nil:
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	// peserta lama submit manual: terbitkan token perangkat baru
	if err := tx.Model(&member).
		Update("member_session_token", newToken).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	member.MemberSessionToken = &newToken
	return &member, &newToken, nil
}

/* ===================== CHECK-IN ===================== */
// POST /api/public/cards/:id/checkin
func (ctrl *CheckinController) Checkin(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := ctrl.loadCard(cardID); err != nil {
		return err
	}

	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.HasIdentity() {
		return fiber.NewError(fiber.StatusBadRequest, "Sertakan member_token atau user_code + user_name")
	}

	// 1-3) gerbang sesi + jarak, sebelum menyentuh roster
	sess, err := ctrl.Sessions.Current(cardID)
	if errors.Is(err, sessionService.ErrNoActiveSession) {
		return helper.Error(c, fiber.StatusNotFound, "Tidak ada sesi aktif")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	participant := geo.Location{Lat: *req.Lat, Lon: *req.Lon}
	dist, err := service.EvaluateCheckIn(sess, participant)
	if err != nil {
		var oor *service.OutOfRangeError
		if errors.As(err, &oor) {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Di luar jangkauan sesi", fiber.Map{
				"distance_m":     oor.DistanceM,
				"max_distance_m": oor.MaxDistanceM,
			})
		}
		return helper.Error(c, fiber.StatusNotFound, "Tidak ada sesi aktif")
	}

	deviceInfo := device.Classify(string(c.Request().Header.UserAgent()))
	now := time.Now().UTC()

	var (
		rec         model.AttendanceRecordModel
		issuedToken *string
		already     bool
		member      *cardModel.CardMemberModel
	)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		mbr, newToken, ferr := ctrl.resolveMember(tx, cardID, req.MemberToken, req.UserCode, req.UserName)
		if ferr != nil {
			return ferr
		}
		member = mbr
		issuedToken = newToken

		// idempoten: record open untuk sesi yang sama → echo, bukan duplikat
		var open model.AttendanceRecordModel
		qerr := tx.
			Where("record_member_id = ? AND record_session_id = ? AND record_checkout_at IS NULL",
				member.MemberID, sess.SessionID).
			First(&open).Error
		if qerr == nil {
			rec, already = service.ResolveCheckIn(&open, model.AttendanceRecordModel{})
			return nil
		}
		if qerr != gorm.ErrRecordNotFound {
			return qerr
		}

		rec, already = service.ResolveCheckIn(nil, model.AttendanceRecordModel{
			RecordCardID:        cardID,
			RecordSessionID:     sess.SessionID,
			RecordMemberID:      member.MemberID,
			RecordUserCode:      member.MemberCode,
			RecordUserName:      member.MemberName,
			RecordDate:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			RecordCheckinAt:     now,
			RecordCheckinLat:    participant.Lat,
			RecordCheckinLon:    participant.Lon,
			RecordCheckinDevice: deviceInfo.Map(),
		})
		if err := tx.Create(&rec).Error; err != nil {
			if service.IsDuplicateKey(err) {
				// kalah balapan dengan submit identik; transaksi di-abort,
				// record pemenang dibaca ulang di luar
				return service.ErrAlreadyCheckedIn
			}
			return err
		}

		day := model.CardLogDayModel{LogDayCardID: cardID, LogDayDate: rec.RecordDate}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&day).Error
	})
	if errors.Is(err, service.ErrAlreadyCheckedIn) {
		already = true
		issuedToken = nil
		if qerr := ctrl.DB.
			Where("record_member_id = ? AND record_session_id = ? AND record_checkout_at IS NULL",
				member.MemberID, sess.SessionID).
			First(&rec).Error; qerr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}
		err = nil
	}
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	msg := "Check-in berhasil"
	if already {
		msg = "Sudah check-in di sesi ini"
	}
	return helper.Success(c, msg, dto.CheckinResponse{
		Record:           dto.NewRecordResponse(rec),
		DistanceM:        dist,
		MemberToken:      issuedToken,
		AlreadyCheckedIn: already,
	})
}

/* ===================== CHECK-OUT ===================== */
// POST /api/public/cards/:id/checkout
// Jarak sengaja tidak divalidasi ulang — yang dicatat waktu pulang.
func (ctrl *CheckinController) Checkout(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	card, err := ctrl.loadCard(cardID)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if (req.MemberToken == nil || *req.MemberToken == "") && (req.UserCode == nil || *req.UserCode == "") {
		return fiber.NewError(fiber.StatusBadRequest, "Sertakan member_token atau user_code")
	}

	sess, err := ctrl.Sessions.Current(cardID)
	if errors.Is(err, sessionService.ErrNoActiveSession) {
		return helper.Error(c, fiber.StatusNotFound, "Tidak ada sesi aktif")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var member cardModel.CardMemberModel
	q := ctrl.DB.Where("member_card_id = ?", cardID)
	if req.MemberToken != nil && *req.MemberToken != "" {
		q = q.Where("member_session_token = ?", *req.MemberToken)
	} else {
		q = q.Where("member_code = ?", strings.TrimSpace(*req.UserCode))
	}
	if err := q.First(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Belum check-in di sesi ini")
	}

	var open model.AttendanceRecordModel
	err = ctrl.DB.
		Where("record_member_id = ? AND record_session_id = ? AND record_checkout_at IS NULL",
			member.MemberID, sess.SessionID).
		First(&open).Error
	openPtr := &open
	if err == gorm.ErrRecordNotFound {
		openPtr = nil
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	if err := service.EvaluateCheckOut(card.CardCheckoutEnabled, openPtr); err != nil {
		return helper.Error(c, fiber.StatusConflict, "Belum check-in di sesi ini")
	}

	deviceInfo := device.Classify(string(c.Request().Header.UserAgent()))
	now := time.Now().UTC()

	// update in-place baris yang sama; invariant satu record open terjaga
	closed := service.ApplyCheckOut(*openPtr, now, geo.Location{Lat: *req.Lat, Lon: *req.Lon}, deviceInfo.Map())
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("record_id = ?", closed.RecordID).
		Updates(map[string]interface{}{
			"record_checkout_at":     closed.RecordCheckoutAt,
			"record_checkout_lat":    closed.RecordCheckoutLat,
			"record_checkout_lon":    closed.RecordCheckoutLon,
			"record_checkout_device": closed.RecordCheckoutDevice,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-out")
	}

	return helper.Success(c, "Check-out berhasil", dto.NewRecordResponse(closed))
}

/* ===================== VERIFY CODE ===================== */
// POST /api/public/cards/:id/verify-code
// Layar peserta digerbangi kode 4 digit yang ditayangkan host. Pencarian
// SELALU di-scope ke kartu dari link share: dua sesi paralel boleh saja
// kebetulan memegang kode yang sama, kode kartu lain tidak boleh lolos di sini.
func (ctrl *CheckinController) VerifyCode(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	if _, err := ctrl.loadCard(cardID); err != nil {
		return err
	}

	var req dto.VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := ctrl.Sessions.Current(cardID)
	if err != nil && !errors.Is(err, sessionService.ErrNoActiveSession) {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if !sessionService.MatchesAccessCode(sess, req.Code, time.Now().UTC()) {
		return helper.Error(c, fiber.StatusUnauthorized, "Kode akses salah atau kadaluarsa")
	}

	return helper.Success(c, "OK", fiber.Map{
		"card_id": sess.SessionCardID,
	})
}

/* ===================== ME ===================== */
// GET /api/public/cards/:id/me?member_token=...
// "Apakah perangkat ini sedang checked-in di sesi berjalan?" + riwayat sendiri.
func (ctrl *CheckinController) Me(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	token := strings.TrimSpace(c.Query("member_token"))
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "member_token wajib diisi")
	}

	var member cardModel.CardMemberModel
	if err := ctrl.DB.
		Where("member_card_id = ? AND member_session_token = ?", cardID, token).
		First(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token perangkat tidak berlaku")
	}

	checkedIn := false
	var current *dto.RecordResponse
	if sess, err := ctrl.Sessions.Current(cardID); err == nil {
		var open model.AttendanceRecordModel
		if err := ctrl.DB.
			Where("record_member_id = ? AND record_session_id = ? AND record_checkout_at IS NULL",
				member.MemberID, sess.SessionID).
			First(&open).Error; err == nil {
			checkedIn = true
			resp := dto.NewRecordResponse(open)
			current = &resp
		}
	}

	p := helper.ResolvePaging(c, 10, 100)
	var history []model.AttendanceRecordModel
	var total int64
	ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("record_member_id = ?", member.MemberID).
		Count(&total)
	if err := ctrl.DB.
		Where("record_member_id = ?", member.MemberID).
		Order("record_checkin_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&history).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"member":         fiber.Map{"member_code": member.MemberCode, "member_name": member.MemberName},
		"checked_in":     checkedIn,
		"current_record": current,
		"history":        dto.NewRecordResponses(history),
		"pagination":     helper.BuildPagination(p, total, len(history)),
	})
}

/* ===================== SIGN-OUT ===================== */
// POST /api/public/cards/:id/signout
// Peserta melepas token perangkatnya sendiri; hanya jika kartu mengizinkan.
func (ctrl *CheckinController) Signout(c *fiber.Ctx) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	card, err := ctrl.loadCard(cardID)
	if err != nil {
		return err
	}
	if !card.CardSignoutEnabled {
		return helper.Error(c, fiber.StatusForbidden, "Sign-out dinonaktifkan untuk kartu ini")
	}

	var req struct {
		MemberToken string `json:"member_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&cardModel.CardMemberModel{}).
		Where("member_card_id = ? AND member_session_token = ?", cardID, req.MemberToken).
		Update("member_session_token", gorm.Expr("NULL"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "Token perangkat tidak berlaku")
	}
	return helper.Success(c, "Sign-out berhasil", nil)
}
