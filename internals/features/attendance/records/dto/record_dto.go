package dto

import (
	"time"

	"github.com/google/uuid"

	m "hadirku_backend/internals/features/attendance/records/model"
)

/* =========================================================
 * REQUESTS (publik, dari perangkat peserta)
 * ========================================================= */

// Check-in: identitas peserta lewat member_token (perangkat yang sudah
// pernah daftar) ATAU pasangan user_code+user_name. Lat/Lon pointer supaya
// klien tanpa lokasi tertolak validasi, bukan dianggap (0,0).
type CheckinRequest struct {
	MemberToken *string `json:"member_token" validate:"omitempty,uuid4"`
	UserCode    *string `json:"user_code"    validate:"omitempty,min=1,max=64"`
	UserName    *string `json:"user_name"    validate:"omitempty,min=1,max=100"`

	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// HasIdentity: token, atau code+name lengkap.
func (r CheckinRequest) HasIdentity() bool {
	if r.MemberToken != nil && *r.MemberToken != "" {
		return true
	}
	return r.UserCode != nil && *r.UserCode != "" && r.UserName != nil && *r.UserName != ""
}

type CheckoutRequest struct {
	MemberToken *string `json:"member_token" validate:"omitempty,uuid4"`
	UserCode    *string `json:"user_code"    validate:"omitempty,min=1,max=64"`

	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type RecordResponse struct {
	RecordID        uuid.UUID `json:"record_id"`
	RecordSessionID uuid.UUID `json:"record_session_id"`
	RecordUserCode  string    `json:"record_user_code"`
	RecordUserName  string    `json:"record_user_name"`
	RecordDate      string    `json:"record_date"`

	RecordCheckinAt     time.Time              `json:"record_checkin_at"`
	RecordCheckinLat    float64                `json:"record_checkin_lat"`
	RecordCheckinLon    float64                `json:"record_checkin_lon"`
	RecordCheckinDevice map[string]interface{} `json:"record_checkin_device,omitempty"`

	RecordCheckoutAt  *time.Time `json:"record_checkout_at,omitempty"`
	RecordCheckoutLat *float64   `json:"record_checkout_lat,omitempty"`
	RecordCheckoutLon *float64   `json:"record_checkout_lon,omitempty"`
}

// CheckinResponse menyertakan jarak terhitung (untuk tampilan), token
// perangkat baru kalau peserta baru terdaftar, dan flag idempoten kalau
// submit ulang menemukan record open yang sama.
type CheckinResponse struct {
	Record           RecordResponse `json:"record"`
	DistanceM        float64        `json:"distance_m"`
	MemberToken      *string        `json:"member_token,omitempty"`
	AlreadyCheckedIn bool           `json:"already_checked_in"`
}

func NewRecordResponse(mdl m.AttendanceRecordModel) RecordResponse {
	return RecordResponse{
		RecordID:            mdl.RecordID,
		RecordSessionID:     mdl.RecordSessionID,
		RecordUserCode:      mdl.RecordUserCode,
		RecordUserName:      mdl.RecordUserName,
		RecordDate:          mdl.RecordDate.Format("2006-01-02"),
		RecordCheckinAt:     mdl.RecordCheckinAt,
		RecordCheckinLat:    mdl.RecordCheckinLat,
		RecordCheckinLon:    mdl.RecordCheckinLon,
		RecordCheckinDevice: mdl.RecordCheckinDevice,
		RecordCheckoutAt:    mdl.RecordCheckoutAt,
		RecordCheckoutLat:   mdl.RecordCheckoutLat,
		RecordCheckoutLon:   mdl.RecordCheckoutLon,
	}
}

func NewRecordResponses(list []m.AttendanceRecordModel) []RecordResponse {
	out := make([]RecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewRecordResponse(r))
	}
	return out
}
