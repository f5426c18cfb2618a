package model

import (
	"time"

	"github.com/google/uuid"
)

// CardMemberModel adalah satu peserta yang dikenal oleh kartu.
// member_code adalah identitas yang diketik peserta (NIM/NIP), unik per kartu
// tapi tidak unik lintas kartu.
type CardMemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	MemberCardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_card_members_card_code;column:member_card_id" json:"member_card_id"`
	MemberCode   string    `gorm:"not null;uniqueIndex:uq_card_members_card_code;column:member_code"              json:"member_code"`
	MemberName   string    `gorm:"not null;column:member_name"                                                    json:"member_name"`

	// Token perangkat untuk auto-login peserta. NULL = peserta harus isi
	// ulang nama/ID (admin bisa mengosongkan lewat PATCH member).
	MemberSessionToken *string `gorm:"column:member_session_token" json:"-"`

	MemberJoinedAt time.Time `gorm:"column:member_joined_at;autoCreateTime" json:"member_joined_at"`
}

func (CardMemberModel) TableName() string { return "card_members" }
