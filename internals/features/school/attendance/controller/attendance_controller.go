package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	BULK SAVE
	POST /api/u/attendances/bulk
	Satu kelas satu tanggal sekali submit; submit ulang menimpa
	status yang sudah ada (upsert per siswa per tanggal).
	=========================================================
*/
func (h *AttendanceController) SaveBulk(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	markerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal harus format YYYY-MM-DD")
	}

	saved := 0
	for _, item := range req.Items {
		var existing attendanceModel.AttendanceModel
		err := h.DB.
			Where("attendance_school_id = ? AND attendance_student_id = ? AND attendance_date = ?",
				schoolID, item.StudentID, date).
			First(&existing).Error

		switch {
		case err == nil:
			existing.AttendanceStatus = item.Status
			existing.AttendanceNote = item.Note
			existing.AttendanceMarkedBy = markerID
			if err := h.DB.Save(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			mm := attendanceModel.AttendanceModel{
				AttendanceSchoolID:  schoolID,
				AttendanceClassID:   req.ClassID,
				AttendanceStudentID: item.StudentID,
				AttendanceDate:      date,
				AttendanceStatus:    item.Status,
				AttendanceNote:      item.Note,
				AttendanceMarkedBy:  markerID,
			}
			if err := h.DB.Create(&mm).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
			}
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek absensi")
		}
		saved++
	}

	return helper.Success(c, "Absensi berhasil disimpan", fiber.Map{
		"class_id": req.ClassID,
		"date":     req.Date,
		"saved":    saved,
	})
}

/*
=========================================================

	LIST PER KELAS PER TANGGAL
	GET /api/u/attendances?class_id=&date=
	=========================================================
*/
func (h *AttendanceController) ListByClassAndDate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi dan valid")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date wajib format YYYY-MM-DD")
	}

	var rows []attendanceModel.AttendanceModel
	if err := h.DB.
		Where("attendance_school_id = ? AND attendance_class_id = ? AND attendance_date = ?",
			schoolID, classID, date).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helper.Success(c, "Data absensi", attendanceDTO.FromAttendanceModels(rows))
}

/*
=========================================================

	REKAP
	GET /api/u/attendances/recap?class_id=&from=&to=
	Hitung H/S/I/A per siswa dalam rentang tanggal.
	=========================================================
*/
func (h *AttendanceController) Recap(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi dan valid")
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from wajib format YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to wajib format YYYY-MM-DD")
	}

	var rows []attendanceDTO.AttendanceRecapRow
	if err := h.DB.
		Table("attendances").
		Select(`users.user_id AS student_id,
			users.user_name AS student_name,
			COUNT(*) FILTER (WHERE attendance_status = 'H') AS hadir,
			COUNT(*) FILTER (WHERE attendance_status = 'S') AS sakit,
			COUNT(*) FILTER (WHERE attendance_status = 'I') AS izin,
			COUNT(*) FILTER (WHERE attendance_status = 'A') AS alpa`).
		Joins("JOIN users ON users.user_id = attendances.attendance_student_id").
		Where("attendance_school_id = ? AND attendance_class_id = ? AND attendance_date BETWEEN ? AND ? AND attendance_deleted_at IS NULL",
			schoolID, classID, from, to).
		Group("users.user_id, users.user_name").
		Order("users.user_name").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat rekap absensi")
	}

	return helper.Success(c, "Rekap absensi", rows)
}
