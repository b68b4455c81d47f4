package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authService "sekolahku_backend/internals/features/users/auth/service"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	jwtGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		BlacklistChecker:    authService.IsAccessTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	// ===================== USER (login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", jwtGuard)

	// ===================== ADMIN (per sekolah) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		jwtGuard,
		authMiddleware.RequireRoles("admin area", constants.AdminAndAbove...),
	)

	// ===================== OWNER (global) =====================
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		jwtGuard,
		authMiddleware.RequireRoles("owner area", constants.OwnerOnly...),
	)

	// ===================== MOUNT =====================
	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(user, db)
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.SchoolOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicUserRoutes(user, db)
	routeDetails.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance & Checkin routes...")
	routeDetails.AttendanceUserRoutes(user, db)

	log.Println("[INFO] Mounting Import routes...")
	routeDetails.ImportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceUserRoutes(user, db)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.FinanceWebhookRoutes(app, db)
}
