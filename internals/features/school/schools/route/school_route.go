package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "sekolahku_backend/internals/features/school/schools/controller"
)

// SchoolOwnerRoutes: kelola tenant (buat/hapus sekolah).
func SchoolOwnerRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &schoolController.SchoolController{DB: db}

	r := router.Group("/schools")
	r.Get("/", ctrl.ListSchools)
	r.Post("/", ctrl.CreateSchool)
	r.Delete("/:id", ctrl.DeleteSchool)
}

// SchoolAdminRoutes: admin memperbarui profil sekolahnya sendiri.
func SchoolAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &schoolController.SchoolController{DB: db}

	r := router.Group("/schools")
	r.Put("/", ctrl.UpdateSchool)
}

// SchoolUserRoutes: semua user bisa lihat profil sekolahnya.
func SchoolUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &schoolController.SchoolController{DB: db}

	r := router.Group("/schools")
	r.Get("/me", ctrl.GetMySchool)
}
