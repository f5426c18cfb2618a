package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	cardModel "hadirku_backend/internals/features/attendance/cards/model"
	recordModel "hadirku_backend/internals/features/attendance/records/model"
	sessionModel "hadirku_backend/internals/features/attendance/sessions/model"
	authModel "hadirku_backend/internals/features/users/auth/model"
)

// AutoMigrate menjalankan migrasi skema semua model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authModel.AdminModel{},
		&cardModel.AttendanceCardModel{},
		&cardModel.CardMemberModel{},
		&sessionModel.CardSessionModel{},
		&recordModel.AttendanceRecordModel{},
		&recordModel.CardLogDayModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Partial unique index: maksimal satu record open (checkout NULL) per
	// (member, session). Pagar terakhir di bawah pre-check transaksi check-in.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_records_open_per_session
		ON attendance_records (record_member_id, record_session_id)
		WHERE record_checkout_at IS NULL
	`).Error; err != nil {
		return fmt.Errorf("create open-record index: %w", err)
	}

	log.Println("✅ Migrasi skema selesai.")
	return nil
}
