// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
	auth.Post("/logout", ctl.Logout)
}

// MeRoutes butuh AuthJWT, dimount ke group /api/u
func MeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}
	r.Get("/me", ctl.Me)
}
