package dto

import (
	"time"

	"github.com/google/uuid"

	m "hadirku_backend/internals/features/users/auth/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterRequest struct {
	AdminName     string `json:"admin_name"     validate:"required,min=2,max=100"`
	AdminEmail    string `json:"admin_email"    validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	AdminEmail    string `json:"admin_email"    validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AdminResponse struct {
	AdminID        uuid.UUID `json:"admin_id"`
	AdminName      string    `json:"admin_name"`
	AdminEmail     string    `json:"admin_email"`
	AdminCreatedAt time.Time `json:"admin_created_at"`
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Admin       AdminResponse `json:"admin"`
}

func NewAdminResponse(mdl m.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:        mdl.AdminID,
		AdminName:      mdl.AdminName,
		AdminEmail:     mdl.AdminEmail,
		AdminCreatedAt: mdl.AdminCreatedAt,
	}
}
