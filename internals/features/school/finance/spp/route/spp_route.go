package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppController "sekolahku_backend/internals/features/school/finance/spp/controller"
)

// SppAdminRoutes: admin menerbitkan & memantau tagihan.
func SppAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &sppController.SppController{DB: db}

	r := router.Group("/spp")
	r.Post("/bills", ctrl.CreateBills)
	r.Get("/bills", ctrl.ListBills)
}

// SppUserRoutes: siswa melihat & membayar tagihannya.
func SppUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &sppController.SppController{DB: db}

	r := router.Group("/spp")
	r.Get("/bills", ctrl.MyBills)
	r.Post("/bills/:id/pay", ctrl.PayBill)
}

// SppWebhookRoutes: endpoint notifikasi Midtrans, tanpa JWT.
func SppWebhookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := &sppController.SppController{DB: db}

	router.Post("/spp/webhook", ctrl.Webhook)
}
