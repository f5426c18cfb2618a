package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceCardModel struct {
	CardID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:card_id" json:"card_id"`

	CardAdminID uuid.UUID `gorm:"type:uuid;not null;index;column:card_admin_id" json:"card_admin_id"`
	CardName    string    `gorm:"not null;column:card_name"                     json:"card_name"`

	// Pengaturan boolean per kartu
	CardSignoutEnabled  bool `gorm:"not null;default:false;column:card_signout_enabled"  json:"card_signout_enabled"`
	CardCheckoutEnabled bool `gorm:"not null;default:false;column:card_checkout_enabled" json:"card_checkout_enabled"`

	CardCreatedAt time.Time      `gorm:"column:card_created_at;autoCreateTime" json:"card_created_at"`
	CardUpdatedAt *time.Time     `gorm:"column:card_updated_at;autoUpdateTime" json:"card_updated_at,omitempty"`
	CardDeletedAt gorm.DeletedAt `gorm:"column:card_deleted_at;index"          json:"card_deleted_at,omitempty"`
}

func (AttendanceCardModel) TableName() string { return "attendance_cards" }
