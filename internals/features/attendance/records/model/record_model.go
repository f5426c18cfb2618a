package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceRecordModel adalah satu kehadiran: check-in wajib, check-out
// opsional (update in-place di baris yang sama, bukan baris baru).
// Invariant: maksimal satu baris open (checkout NULL) per (member, session).
type AttendanceRecordModel struct {
	RecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:record_id" json:"record_id"`

	RecordCardID    uuid.UUID `gorm:"type:uuid;not null;index:idx_records_card_date;column:record_card_id" json:"record_card_id"`
	RecordSessionID uuid.UUID `gorm:"type:uuid;not null;index;column:record_session_id"                    json:"record_session_id"`
	RecordMemberID  uuid.UUID `gorm:"type:uuid;not null;index;column:record_member_id"                     json:"record_member_id"`

	// Snapshot identitas peserta saat check-in (roster bisa diedit admin)
	RecordUserCode string `gorm:"not null;column:record_user_code" json:"record_user_code"`
	RecordUserName string `gorm:"not null;column:record_user_name" json:"record_user_name"`

	RecordDate time.Time `gorm:"type:date;not null;index:idx_records_card_date;column:record_date" json:"record_date"`

	RecordCheckinAt     time.Time         `gorm:"type:timestamptz;not null;column:record_checkin_at" json:"record_checkin_at"`
	RecordCheckinLat    float64           `gorm:"not null;column:record_checkin_lat"                 json:"record_checkin_lat"`
	RecordCheckinLon    float64           `gorm:"not null;column:record_checkin_lon"                 json:"record_checkin_lon"`
	RecordCheckinDevice datatypes.JSONMap `gorm:"column:record_checkin_device"                       json:"record_checkin_device,omitempty"`

	RecordCheckoutAt     *time.Time        `gorm:"type:timestamptz;column:record_checkout_at" json:"record_checkout_at,omitempty"`
	RecordCheckoutLat    *float64          `gorm:"column:record_checkout_lat"                 json:"record_checkout_lat,omitempty"`
	RecordCheckoutLon    *float64          `gorm:"column:record_checkout_lon"                 json:"record_checkout_lon,omitempty"`
	RecordCheckoutDevice datatypes.JSONMap `gorm:"column:record_checkout_device"              json:"record_checkout_device,omitempty"`

	RecordCreatedAt time.Time `gorm:"column:record_created_at;autoCreateTime" json:"record_created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

// CardLogDayModel menandai tanggal yang punya aktivitas untuk satu kartu.
// Dibuat saat sesi dimulai (walau belum ada yang check-in) dan saat record
// pertama hari itu masuk, supaya hari "kosong" tetap muncul di matriks.
type CardLogDayModel struct {
	LogDayCardID uuid.UUID `gorm:"type:uuid;primaryKey;column:log_day_card_id" json:"log_day_card_id"`
	LogDayDate   time.Time `gorm:"type:date;primaryKey;column:log_day_date"    json:"log_day_date"`
}

func (CardLogDayModel) TableName() string { return "card_log_days" }
