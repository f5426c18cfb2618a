package dto

import (
	"time"

	"github.com/google/uuid"

	m "hadirku_backend/internals/features/attendance/cards/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateCardRequest struct {
	CardName string `json:"card_name" validate:"required,min=2,max=120"`
}

type UpdateCardRequest struct {
	CardName *string `json:"card_name" validate:"omitempty,min=2,max=120"`
}

type CreateMemberRequest struct {
	MemberCode string `json:"member_code" validate:"required,min=1,max=64"`
	MemberName string `json:"member_name" validate:"required,min=1,max=100"`
}

// Update roster oleh admin. ClearSessionToken=true mengosongkan token
// perangkat peserta (paksa isi ulang identitas di perangkatnya).
type UpdateMemberRequest struct {
	MemberCode        *string `json:"member_code"         validate:"omitempty,min=1,max=64"`
	MemberName        *string `json:"member_name"         validate:"omitempty,min=1,max=100"`
	ClearSessionToken *bool   `json:"clear_session_token" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type CardResponse struct {
	CardID              uuid.UUID `json:"card_id"`
	CardAdminID         uuid.UUID `json:"card_admin_id"`
	CardName            string    `json:"card_name"`
	CardSignoutEnabled  bool      `json:"card_signout_enabled"`
	CardCheckoutEnabled bool      `json:"card_checkout_enabled"`
	CardCreatedAt       time.Time `json:"card_created_at"`
}

type MemberResponse struct {
	MemberID       uuid.UUID `json:"member_id"`
	MemberCardID   uuid.UUID `json:"member_card_id"`
	MemberCode     string    `json:"member_code"`
	MemberName     string    `json:"member_name"`
	MemberJoinedAt time.Time `json:"member_joined_at"`
	HasDeviceToken bool      `json:"has_device_token"`
}

func NewCardResponse(mdl m.AttendanceCardModel) CardResponse {
	return CardResponse{
		CardID:              mdl.CardID,
		CardAdminID:         mdl.CardAdminID,
		CardName:            mdl.CardName,
		CardSignoutEnabled:  mdl.CardSignoutEnabled,
		CardCheckoutEnabled: mdl.CardCheckoutEnabled,
		CardCreatedAt:       mdl.CardCreatedAt,
	}
}

func NewMemberResponse(mdl m.CardMemberModel) MemberResponse {
	return MemberResponse{
		MemberID:       mdl.MemberID,
		MemberCardID:   mdl.MemberCardID,
		MemberCode:     mdl.MemberCode,
		MemberName:     mdl.MemberName,
		MemberJoinedAt: mdl.MemberJoinedAt,
		HasDeviceToken: mdl.MemberSessionToken != nil,
	}
}

func NewMemberResponses(list []m.CardMemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for _, mbr := range list {
		out = append(out, NewMemberResponse(mbr))
	}
	return out
}
