package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AttendanceUserRoutes: guru mengisi & melihat; siswa hanya melihat rekap.
func AttendanceUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &attendanceController.AttendanceController{DB: db}

	r := router.Group("/attendances")
	r.Post("/bulk",
		authMiddleware.RequireRoles("absensi", constants.TeacherAndAbove...),
		ctrl.SaveBulk)
	r.Get("/", ctrl.ListByClassAndDate)
	r.Get("/recap", ctrl.Recap)
}
