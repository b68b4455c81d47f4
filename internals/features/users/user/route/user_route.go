// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/user/controller"
)

/*
Admin routes: kelola user dalam satu sekolah.
Mount contoh: UserAdminRoutes(app.Group("/api/a"), db)
*/
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.UserController{DB: db}
	users := r.Group("/users")
	users.Get("/", ctl.ListUsers)        // GET    /api/a/users
	users.Get("/:id", ctl.GetUser)       // GET    /api/a/users/:id
	users.Post("/", ctl.CreateUser)      // POST   /api/a/users
	users.Put("/:id", ctl.UpdateUser)    // PUT    /api/a/users/:id
	users.Delete("/:id", ctl.DeleteUser) // DELETE /api/a/users/:id (soft delete)
}
