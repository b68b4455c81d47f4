package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppRoute "sekolahku_backend/internals/features/school/finance/spp/route"
)

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	sppRoute.SppUserRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	sppRoute.SppAdminRoutes(r, db)
}

// Webhook Midtrans dipasang di bawah /api/auth supaya lolos tanpa JWT.
func FinanceWebhookRoutes(app *fiber.App, db *gorm.DB) {
	sppRoute.SppWebhookRoutes(app.Group("/api/auth"), db)
}
