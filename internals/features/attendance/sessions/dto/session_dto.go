package dto

import (
	"time"

	"github.com/google/uuid"

	m "hadirku_backend/internals/features/attendance/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Start sesi. Lat/Lon pointer supaya nilai 0 tetap terdeteksi "terisi":
// klien yang gagal resolve lokasi harus ditolak, bukan diam-diam pakai 0.
type StartSessionRequest struct {
	Lat          *float64 `json:"lat"            validate:"required,min=-90,max=90"`
	Lon          *float64 `json:"lon"            validate:"required,min=-180,max=180"`
	MaxDistanceM *float64 `json:"max_distance_m" validate:"required,gt=0,max=100000"`
}

type RefreshLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// SessionResponse tampilan host: termasuk kode akses + kadaluarsanya.
type SessionResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	SessionCardID uuid.UUID `json:"session_card_id"`
	SessionActive bool      `json:"session_active"`

	SessionHostID   uuid.UUID `json:"session_host_id"`
	SessionHostName string    `json:"session_host_name"`

	SessionLat          float64 `json:"session_lat"`
	SessionLon          float64 `json:"session_lon"`
	SessionMaxDistanceM float64 `json:"session_max_distance_m"`

	SessionCode          string    `json:"session_code"`
	SessionCodeExpiresAt time.Time `json:"session_code_expires_at"`

	SessionCreatedAt time.Time `json:"session_created_at"`
}

// PublicSessionResponse tampilan peserta: TANPA kode akses.
type PublicSessionResponse struct {
	SessionActive   bool   `json:"session_active"`
	SessionHostName string `json:"session_host_name,omitempty"`

	SessionLat          float64 `json:"session_lat,omitempty"`
	SessionLon          float64 `json:"session_lon,omitempty"`
	SessionMaxDistanceM float64 `json:"session_max_distance_m,omitempty"`

	SessionCreatedAt *time.Time `json:"session_created_at,omitempty"`
}

func NewSessionResponse(mdl m.CardSessionModel) SessionResponse {
	return SessionResponse{
		SessionID:            mdl.SessionID,
		SessionCardID:        mdl.SessionCardID,
		SessionActive:        mdl.SessionActive,
		SessionHostID:        mdl.SessionHostID,
		SessionHostName:      mdl.SessionHostName,
		SessionLat:           mdl.SessionLat,
		SessionLon:           mdl.SessionLon,
		SessionMaxDistanceM:  mdl.SessionMaxDistanceM,
		SessionCode:          mdl.SessionCode,
		SessionCodeExpiresAt: mdl.SessionCodeExpiresAt,
		SessionCreatedAt:     mdl.SessionCreatedAt,
	}
}

func NewPublicSessionResponse(mdl *m.CardSessionModel) PublicSessionResponse {
	if mdl == nil {
		return PublicSessionResponse{SessionActive: false}
	}
	created := mdl.SessionCreatedAt
	return PublicSessionResponse{
		SessionActive:       mdl.SessionActive,
		SessionHostName:     mdl.SessionHostName,
		SessionLat:          mdl.SessionLat,
		SessionLon:          mdl.SessionLon,
		SessionMaxDistanceM: mdl.SessionMaxDistanceM,
		SessionCreatedAt:    &created,
	}
}
