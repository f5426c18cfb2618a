package controller

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/features/users/auth/dto"
	"hadirku_backend/internals/features/users/auth/model"
	helper "hadirku_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	pwd := string(hashed)
	admin := model.AdminModel{
		AdminName:     strings.TrimSpace(req.AdminName),
		AdminEmail:    strings.ToLower(strings.TrimSpace(req.AdminEmail)),
		AdminPassword: &pwd,
	}

	if err := ctrl.DB.Create(&admin).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", dto.NewAdminResponse(admin))
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.
		Where("admin_email = ?", strings.ToLower(strings.TrimSpace(req.AdminEmail))).
		First(&admin).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	if admin.AdminPassword == nil ||
		bcrypt.CompareHashAndPassword([]byte(*admin.AdminPassword), []byte(req.AdminPassword)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ctrl.issueToken(c, admin)
}

/* ===================== LOGIN GOOGLE ===================== */
// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if configs.GoogleClientID == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Login Google tidak dikonfigurasi")
	}

	// Verifikasi token Google
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var admin model.AdminModel
	err = ctrl.DB.Where("admin_google_id = ?", googleID).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		// Akun belum ada -> buat baru tanpa password
		admin = model.AdminModel{
			AdminName:     name,
			AdminEmail:    strings.ToLower(email),
			AdminGoogleID: &googleID,
		}
		if err := ctrl.DB.Create(&admin).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	return ctrl.issueToken(c, admin)
}

/* ===================== ME ===================== */
// GET /api/a/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	return helper.Success(c, "OK", dto.NewAdminResponse(admin))
}

func (ctrl *AuthController) issueToken(c *fiber.Ctx, admin model.AdminModel) error {
	now := time.Now().UTC()
	exp := now.Add(accessTTLDefault)

	claims := jwt.MapClaims{
		"sub":   admin.AdminID.String(),
		"name":  admin.AdminName,
		"email": admin.AdminEmail,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		Admin:       dto.NewAdminResponse(admin),
	})
}
