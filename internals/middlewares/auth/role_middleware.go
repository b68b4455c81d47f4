// internals/middlewares/auth/role_middleware.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireRoles menolak request kalau role user tidak ada di daftar allowed.
// Dipasang SETELAH AuthJWT (butuh locals user_role).
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ditemukan di token")
		}
		if _, ok := allowSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("❌ Role '%s' tidak boleh mengakses fitur %s.", role, feature))
		}
		return c.Next()
	}
}
