package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
)

func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.MeRoutes(r, db)
	schoolRoute.SchoolUserRoutes(r, db)
}

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolAdminRoutes(r, db)
	userRoute.UserAdminRoutes(r, db)
}

func SchoolOwnerRoutes(r fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolOwnerRoutes(r, db)
}
