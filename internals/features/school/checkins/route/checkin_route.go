package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	checkinController "sekolahku_backend/internals/features/school/checkins/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// CheckinUserRoutes: check-in/out harian guru dengan geofence.
func CheckinUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &checkinController.CheckinController{DB: db}

	r := router.Group("/checkins",
		authMiddleware.RequireRoles("check-in", constants.TeacherAndAbove...))
	r.Post("/", ctrl.CheckIn)
	r.Post("/out", ctrl.CheckOut)
	r.Get("/", ctrl.History)
}
