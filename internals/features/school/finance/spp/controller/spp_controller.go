package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	sppDTO "sekolahku_backend/internals/features/school/finance/spp/dto"
	sppModel "sekolahku_backend/internals/features/school/finance/spp/model"
	sppService "sekolahku_backend/internals/features/school/finance/spp/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SppController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	ADMIN: terbitkan tagihan bulanan untuk semua siswa aktif
	POST /api/a/spp/bills
	Siswa yang sudah punya tagihan bulan itu dilewati (idempoten).
	=========================================================
*/
func (h *SppController) CreateBills(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req sppDTO.CreateSppBillsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month harus format YYYY-MM")
	}

	var students []userModel.UserModel
	if err := h.DB.
		Where("user_school_id = ? AND user_role = ? AND user_is_active = true", schoolID, constants.RoleStudent).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}

	created := 0
	for _, s := range students {
		var count int64
		if err := h.DB.Model(&sppModel.SppBillModel{}).
			Where("spp_bill_school_id = ? AND spp_bill_student_id = ? AND spp_bill_month = ?",
				schoolID, s.UserID, req.Month).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek tagihan")
		}
		if count > 0 {
			continue
		}

		bill := sppModel.SppBillModel{
			SppBillSchoolID:  schoolID,
			SppBillStudentID: s.UserID,
			SppBillMonth:     req.Month,
			SppBillAmount:    req.Amount,
			SppBillStatus:    "pending",
			SppBillOrderID:   fmt.Sprintf("SPP-%s-%s", req.Month, uuid.New().String()[:8]),
		}
		if err := h.DB.Create(&bill).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tagihan")
		}
		created++
	}

	return helper.JsonCreated(c, "Tagihan SPP diterbitkan", fiber.Map{
		"month":   req.Month,
		"created": created,
	})
}

/*
=========================================================

	ADMIN: daftar tagihan
	GET /api/a/spp/bills?month=&status=
	=========================================================
*/
func (h *SppController) ListBills(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc")

	tx := h.DB.Model(&sppModel.SppBillModel{}).
		Where("spp_bill_school_id = ?", schoolID)
	if v := c.Query("month"); v != "" {
		tx = tx.Where("spp_bill_month = ?", v)
	}
	if v := c.Query("status"); v != "" {
		tx = tx.Where("spp_bill_status = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []sppModel.SppBillModel
	if err := tx.
		Order(p.SafeOrderClause(map[string]string{
			"month":      "spp_bill_month",
			"created_at": "spp_bill_created_at",
		}, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.JsonList(c, sppDTO.FromSppBillModels(rows), helper.BuildMeta(total, p))
}

/* =========================================================
   SISWA: tagihan saya + bayar
   ========================================================= */

// GET /api/u/spp/bills
func (h *SppController) MyBills(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []sppModel.SppBillModel
	if err := h.DB.
		Where("spp_bill_school_id = ? AND spp_bill_student_id = ?", schoolID, userID).
		Order("spp_bill_month DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.Success(c, "Tagihan SPP kamu", sppDTO.FromSppBillModels(rows))
}

// POST /api/u/spp/bills/:id/pay → Snap token untuk dibuka di mobile app
func (h *SppController) PayBill(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var bill sppModel.SppBillModel
	err = h.DB.
		Where("spp_bill_id = ? AND spp_bill_school_id = ? AND spp_bill_student_id = ?", id, schoolID, userID).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if bill.SppBillStatus == "paid" {
		return fiber.NewError(fiber.StatusConflict, "Tagihan ini sudah dibayar")
	}

	var student userModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	token, redirectURL, err := sppService.GenerateSnapToken(bill, student.UserName, student.UserEmail)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	bill.SppBillSnapToken = &token
	if err := h.DB.Save(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.Success(c, "Silakan lanjutkan pembayaran", sppDTO.PaySppResponse{
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/*
=========================================================

	WEBHOOK Midtrans (public, tanpa JWT)
	POST /api/auth/spp/webhook
	=========================================================
*/
func (h *SppController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := sppService.HandleSppStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "OK", nil)
}
