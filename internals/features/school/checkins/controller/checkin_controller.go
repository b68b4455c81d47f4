package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinDTO "sekolahku_backend/internals/features/school/checkins/dto"
	checkinModel "sekolahku_backend/internals/features/school/checkins/model"
	checkinService "sekolahku_backend/internals/features/school/checkins/service"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CheckinController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	CHECK-IN
	POST /api/u/checkins
	Ditolak kalau posisi di luar radius geofence sekolah; jarak
	dilaporkan supaya guru tahu seberapa jauh.
	=========================================================
*/
func (h *CheckinController) CheckIn(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req checkinDTO.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school schoolModel.SchoolModel
	if err := h.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}
	if school.SchoolLat == nil || school.SchoolLng == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Koordinat sekolah belum diatur; hubungi admin")
	}

	ok, distance := checkinService.WithinRadius(
		req.Lat, req.Lng, *school.SchoolLat, *school.SchoolLng, school.SchoolCheckinRadiusM)
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Kamu berada %.0f m dari sekolah (maksimal %.0f m); check-in ditolak", distance, school.SchoolCheckinRadiusM))
	}

	today := checkinService.LocalDay(time.Now(), checkinService.SchoolLocation())

	var existing checkinModel.CheckinModel
	err = h.DB.
		Where("checkin_school_id = ? AND checkin_user_id = ? AND checkin_date = ?", schoolID, userID, today).
		First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Kamu sudah check-in hari ini")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek data check-in")
	}

	mm := checkinModel.CheckinModel{
		CheckinSchoolID:  schoolID,
		CheckinUserID:    userID,
		CheckinDate:      today,
		CheckinInAt:      time.Now(),
		CheckinInLat:     req.Lat,
		CheckinInLng:     req.Lng,
		CheckinDistanceM: distance,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	return helper.JsonCreated(c, "Check-in berhasil", checkinDTO.FromCheckinModel(mm))
}

/*
=========================================================

	CHECK-OUT
	POST /api/u/checkins/out
	Mengisi kolom out pada baris check-in hari ini; tidak ada
	validasi geofence untuk pulang.
	=========================================================
*/
func (h *CheckinController) CheckOut(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req checkinDTO.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	today := checkinService.LocalDay(time.Now(), checkinService.SchoolLocation())

	var mm checkinModel.CheckinModel
	err = h.DB.
		Where("checkin_school_id = ? AND checkin_user_id = ? AND checkin_date = ?", schoolID, userID, today).
		First(&mm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Belum ada check-in hari ini")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek data check-in")
	}
	if mm.CheckinOutAt != nil {
		return fiber.NewError(fiber.StatusConflict, "Kamu sudah check-out hari ini")
	}

	now := time.Now()
	mm.CheckinOutAt = &now
	mm.CheckinOutLat = &req.Lat
	mm.CheckinOutLng = &req.Lng
	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-out")
	}

	return helper.JsonUpdated(c, "Check-out berhasil", checkinDTO.FromCheckinModel(mm))
}

/*
=========================================================

	RIWAYAT
	GET /api/u/checkins?from=&to=
	=========================================================
*/
func (h *CheckinController) History(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tx := h.DB.
		Where("checkin_school_id = ? AND checkin_user_id = ?", schoolID, userID)

	if v := c.Query("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from wajib format YYYY-MM-DD")
		}
		tx = tx.Where("checkin_date >= ?", from)
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to wajib format YYYY-MM-DD")
		}
		tx = tx.Where("checkin_date <= ?", to)
	}

	var rows []checkinModel.CheckinModel
	if err := tx.Order("checkin_date DESC").Limit(62).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat check-in")
	}

	return helper.Success(c, "Riwayat check-in", checkinDTO.FromCheckinModels(rows))
}
