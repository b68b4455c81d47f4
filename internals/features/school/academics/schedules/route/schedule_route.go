package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "sekolahku_backend/internals/features/school/academics/schedules/controller"
)

// ScheduleAdminRoutes: kelola jadwal (admin/owner).
func ScheduleAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &scheduleController.ScheduleController{DB: db}

	r := router.Group("/schedules")
	r.Get("/", ctrl.ListSchedules)
	r.Get("/export", ctrl.ExportSchedules)
	r.Post("/", ctrl.CreateSchedule)
	r.Delete("/:id", ctrl.DeleteSchedule)
}

// ScheduleUserRoutes: baca jadwal untuk guru/siswa.
func ScheduleUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &scheduleController.ScheduleController{DB: db}

	r := router.Group("/schedules")
	r.Get("/", ctrl.ListSchedules)
}
