package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	materialController "sekolahku_backend/internals/features/school/materials/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// MaterialUserRoutes: guru unggah materi; semua user bisa membaca.
func MaterialUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &materialController.MaterialController{DB: db}

	r := router.Group("/materials")
	r.Get("/", ctrl.ListMaterials)

	guru := authMiddleware.RequireRoles("materi", constants.TeacherAndAbove...)
	r.Post("/", guru, ctrl.CreateMaterial)
	r.Delete("/:id", guru, ctrl.DeleteMaterial)
}
