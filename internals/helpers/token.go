package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil admin_id dari c.Locals("admin_id") (diisi middleware AuthJWT).
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetAdminIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("admin_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Admin belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Admin belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Admin belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Admin ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Admin ID pada token tidak valid")
	}
}

// Nama admin untuk ditempel sebagai host_name saat mulai sesi.
func GetAdminNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("admin_name").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
