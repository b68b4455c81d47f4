// internals/features/school/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/academics/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classController.ClassController{DB: db}
	classes := r.Group("/classes")
	classes.Get("/", ctl.ListClasses)         // GET    /api/a/classes
	classes.Get("/export", ctl.ExportClasses) // GET   /api/a/classes/export
	classes.Post("/", ctl.CreateClass)        // POST   /api/a/classes
	classes.Put("/:id", ctl.UpdateClass)      // PUT    /api/a/classes/:id
	classes.Delete("/:id", ctl.DeleteClass)   // DELETE /api/a/classes/:id (soft delete)
}

func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classController.ClassController{DB: db}
	classes := r.Group("/classes")
	classes.Get("/", ctl.ListClasses) // GET /api/u/classes
}
