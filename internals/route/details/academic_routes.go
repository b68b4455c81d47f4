package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "sekolahku_backend/internals/features/school/academics/classes/route"
	scheduleRoute "sekolahku_backend/internals/features/school/academics/schedules/route"
	subjectRoute "sekolahku_backend/internals/features/school/academics/subjects/route"
	gradeRoute "sekolahku_backend/internals/features/school/grades/route"
	materialRoute "sekolahku_backend/internals/features/school/materials/route"
)

func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassUserRoutes(r, db)
	subjectRoute.SubjectUserRoutes(r, db)
	scheduleRoute.ScheduleUserRoutes(r, db)
	gradeRoute.GradeUserRoutes(r, db)
	materialRoute.MaterialUserRoutes(r, db)
}

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	scheduleRoute.ScheduleAdminRoutes(r, db)
}
