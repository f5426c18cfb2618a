package model

import (
	"time"

	"github.com/google/uuid"
)

// CardSessionModel adalah geofence yang sedang berjalan untuk satu kartu.
// Unique index di session_card_id menjamin maksimal satu sesi per kartu;
// session_id (uuid) dipakai AttendanceRecord sebagai kunci korelasi, terpisah
// dari created_at yang hanya untuk tampilan.
type CardSessionModel struct {
	SessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`

	SessionCardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:session_card_id" json:"session_card_id"`
	SessionActive bool      `gorm:"not null;default:true;column:session_active"            json:"session_active"`

	SessionHostID   uuid.UUID `gorm:"type:uuid;not null;column:session_host_id" json:"session_host_id"`
	SessionHostName string    `gorm:"not null;column:session_host_name"         json:"session_host_name"`

	SessionLat          float64 `gorm:"not null;column:session_lat"            json:"session_lat"`
	SessionLon          float64 `gorm:"not null;column:session_lon"            json:"session_lon"`
	SessionMaxDistanceM float64 `gorm:"not null;column:session_max_distance_m" json:"session_max_distance_m"`

	// Kode akses 4 digit + kadaluarsanya. Dirotasi host selagi sesi aktif.
	SessionCode          string    `gorm:"type:varchar(4);not null;column:session_code"      json:"session_code"`
	SessionCodeExpiresAt time.Time `gorm:"not null;column:session_code_expires_at"           json:"session_code_expires_at"`

	SessionCreatedAt time.Time  `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt *time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at,omitempty"`
}

func (CardSessionModel) TableName() string { return "card_sessions" }
