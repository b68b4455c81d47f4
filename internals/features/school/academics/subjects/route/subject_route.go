// internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/academics/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectController.SubjectController{DB: db}

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.ListSubjects)        // GET    /api/a/subjects
	subjects.Post("/", ctl.CreateSubject)      // POST   /api/a/subjects
	subjects.Put("/:id", ctl.UpdateSubject)    // PUT    /api/a/subjects/:id
	subjects.Delete("/:id", ctl.DeleteSubject) // DELETE /api/a/subjects/:id (soft delete)

	// penugasan guru per mapel
	ts := r.Group("/teacher-subjects")
	ts.Post("/", ctl.LinkTeacher)     // POST   /api/a/teacher-subjects
	ts.Delete("/", ctl.UnlinkTeacher) // DELETE /api/a/teacher-subjects
}

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectController.SubjectController{DB: db}
	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.ListSubjects) // GET /api/u/subjects
}
