package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	checkinRoute "sekolahku_backend/internals/features/school/checkins/route"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceUserRoutes(r, db)
	checkinRoute.CheckinUserRoutes(r, db)
}
