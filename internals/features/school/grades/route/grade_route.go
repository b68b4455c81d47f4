package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeController "sekolahku_backend/internals/features/school/grades/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// GradeUserRoutes: guru input/koreksi nilai; semua user (termasuk siswa,
// dibatasi miliknya sendiri di controller) bisa melihat.
func GradeUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &gradeController.GradeController{DB: db}

	r := router.Group("/grades")
	r.Get("/", ctrl.ListGrades)
	r.Get("/recap", ctrl.Recap)

	guru := authMiddleware.RequireRoles("nilai", constants.TeacherAndAbove...)
	r.Post("/", guru, ctrl.CreateGrades)
	r.Put("/:id", guru, ctrl.UpdateGrade)
	r.Delete("/:id", guru, ctrl.DeleteGrade)
}
