// internals/helpers/auth/token_claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (di-set oleh AuthJWT middleware)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocUserRole = "user_role" // owner|admin|teacher|student
	LocSchoolID = "school_id" // string UUID (tenant aktif dari token)
)

func localUUID(c *fiber.Ctx, key, errMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, errMsg)
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, errMsg)
	}
	return id, nil
}

// GetUserIDFromToken mengambil user_id dari locals hasil AuthJWT
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "Unauthorized - user_id tidak ditemukan di token")
}

// GetSchoolIDFromToken mengambil tenant (school_id) aktif dari locals.
// Semua query data wajib discope dengan ID ini.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocSchoolID, "Unauthorized - school_id tidak ditemukan di token")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}
