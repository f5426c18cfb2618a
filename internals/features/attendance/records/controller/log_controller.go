package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	cardController "hadirku_backend/internals/features/attendance/cards/controller"
	cardModel "hadirku_backend/internals/features/attendance/cards/model"
	"hadirku_backend/internals/features/attendance/records/dto"
	"hadirku_backend/internals/features/attendance/records/model"
	"hadirku_backend/internals/features/attendance/records/service"
	helper "hadirku_backend/internals/helpers"
)

type LogController struct {
	DB *gorm.DB
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{DB: db}
}

/* ===================== LOG HARIAN ===================== */
// GET /api/a/cards/:id/logs/:date
// Terurut checkin terbaru dulu, default 10 per halaman.
func (ctrl *LogController) DailyLog(c *fiber.Ctx) error {
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

	date, err := service.ParseDate(c.Params("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	p := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("record_card_id = ? AND record_date = ?", cardID, date).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("record_card_id = ? AND record_date = ?", cardID, date).
		Order("record_checkin_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log")
	}

	return helper.Success(c, "OK", fiber.Map{
		"date":       service.FormatDate(date),
		"records":    dto.NewRecordResponses(records),
		"pagination": helper.BuildPagination(p, total, len(records)),
	})
}

func (ctrl *LogController) loadMatrix(cardID uuid.UUID) (service.Matrix, error) {
	var members []cardModel.CardMemberModel
	if err := ctrl.DB.
		Where("member_card_id = ?", cardID).
		Find(&members).Error; err != nil {
		return service.Matrix{}, err
	}

	var days []model.CardLogDayModel
	if err := ctrl.DB.
		Where("log_day_card_id = ?", cardID).
		Find(&days).Error; err != nil {
		return service.Matrix{}, err
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("record_card_id = ?", cardID).
		Find(&records).Error; err != nil {
		return service.Matrix{}, err
	}

	return service.BuildMatrix(members, days, records), nil
}

/* ===================== MATRIKS ===================== */
// GET /api/a/cards/:id/matrix
func (ctrl *LogController) Matrix(c *fiber.Ctx) error {
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

	matrix, err := ctrl.loadMatrix(cardID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun matriks")
	}
	return helper.Success(c, "OK", matrix)
}

/* ===================== EXPORT XLSX ===================== */
// GET /api/a/cards/:id/export
func (ctrl *LogController) Export(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}
	card, err := cardController.LoadOwnedCard(ctrl.DB, cardID, adminID)
	if err != nil {
		return err
	}

	matrix, err := ctrl.loadMatrix(cardID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun matriks")
	}

	f := excelize.NewFile()
	sheet := "Kehadiran"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// header: Nama | ID | tanggal...
	f.SetCellValue(sheet, "A1", "Nama")
	f.SetCellValue(sheet, "B1", "ID")
	for i, d := range matrix.Dates {
		cell, _ := excelize.CoordinatesToCellName(3+i, 1)
		f.SetCellValue(sheet, cell, d)
	}

	for r, u := range matrix.Users {
		row := r + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), u.MemberName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), u.MemberCode)
		for i, d := range matrix.Dates {
			cell, _ := excelize.CoordinatesToCellName(3+i, row)
			if u.Presence[d] {
				f.SetCellValue(sheet, cell, "O")
			} else {
				f.SetCellValue(sheet, cell, "X")
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 14)

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s_%s.xlsx\"",
		card.CardName, time.Now().Format("20060102")))

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis file")
	}
	return nil
}

/* ===================== SHARE (LINK + QR) ===================== */
// GET /api/a/cards/:id/share          -> link peserta
// GET /api/a/cards/:id/share?qr=true  -> PNG QR dari link itu
func (ctrl *LogController) Share(c *fiber.Ctx) error {
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

	url := fmt.Sprintf("%s/attend/%s", configs.AppBaseURL, cardID)

	if c.QueryBool("qr") {
		png, err := qrcode.Encode(url, qrcode.Medium, 512)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat QR")
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}

	return helper.Success(c, "OK", fiber.Map{"share_url": url})
}
