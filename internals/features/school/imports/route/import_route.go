package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importController "sekolahku_backend/internals/features/school/imports/controller"
)

// ImportAdminRoutes: semua endpoint import hanya untuk admin/owner.
func ImportAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &importController.ImportController{DB: db}

	r := router.Group("/imports")
	r.Post("/schedules", ctrl.ImportSchedules)
	r.Post("/classes", ctrl.ImportClasses)
	r.Post("/users", ctrl.ImportUsers)
	r.Get("/logs", ctrl.ListImportLogs)
}
