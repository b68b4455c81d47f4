package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importRoute "sekolahku_backend/internals/features/school/imports/route"
)

func ImportAdminRoutes(r fiber.Router, db *gorm.DB) {
	importRoute.ImportAdminRoutes(r, db)
}
