package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	scheduleDTO "sekolahku_backend/internals/features/school/academics/schedules/dto"
	scheduleModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	importer "sekolahku_backend/internals/features/school/imports/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	LIST
	GET /api/a/schedules?class_id=&teacher_id=&day=&page=&per_page=
	=========================================================
*/
func (h *ScheduleController) ListSchedules(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "day", "asc")

	tx := h.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_school_id = ?", schoolID)

	if v := c.Query("class_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("schedule_class_id = ?", id)
	}
	if v := c.Query("teacher_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("schedule_teacher_id = ?", id)
	}
	if v := c.Query("day"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 0 || day > 6 {
			return fiber.NewError(fiber.StatusBadRequest, "day harus 0-6")
		}
		tx = tx.Where("schedule_day_of_week = ?", day)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	orderBy := p.SafeOrderClause(map[string]string{
		"day":        "schedule_day_of_week",
		"start_time": "schedule_start_time",
		"created_at": "schedule_created_at",
	}, "day")

	var rows []scheduleModel.ScheduleModel
	if err := tx.
		Order(orderBy).Order("schedule_start_time ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, scheduleDTO.FromScheduleModels(rows), helper.BuildMeta(total, p))
}

/*
=========================================================

	CREATE / UPSERT
	POST /api/a/schedules
	Natural key (school, class, day, start) → slot sama di-update,
	sama persis seperti perilaku import jadwal.
	=========================================================
*/
func (h *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := importer.NormalizeClock(req.StartTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := importer.NormalizeClock(req.EndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing scheduleModel.ScheduleModel
	err = h.DB.
		Where("schedule_school_id = ? AND schedule_class_id = ? AND schedule_day_of_week = ? AND schedule_start_time = ?",
			schoolID, req.ClassID, req.DayOfWeek, start).
		First(&existing).Error

	switch {
	case err == nil:
		existing.ScheduleTeacherID = req.TeacherID
		existing.ScheduleSubject = req.Subject
		existing.ScheduleEndTime = end
		if err := h.DB.Save(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
		}
		return helper.JsonUpdated(c, "Jadwal slot ini sudah ada, diperbarui", scheduleDTO.FromScheduleModel(existing))

	case errors.Is(err, gorm.ErrRecordNotFound):
		mm := scheduleModel.ScheduleModel{
			ScheduleSchoolID:  schoolID,
			ScheduleClassID:   req.ClassID,
			ScheduleTeacherID: req.TeacherID,
			ScheduleSubject:   req.Subject,
			ScheduleDayOfWeek: req.DayOfWeek,
			ScheduleStartTime: start,
			ScheduleEndTime:   end,
		}
		if err := h.DB.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jadwal")
		}
		return helper.JsonCreated(c, "Jadwal berhasil dibuat", scheduleDTO.FromScheduleModel(mm))

	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek jadwal")
	}
}

/*
=========================================================

	DELETE (soft delete)
	DELETE /api/a/schedules/:id
	=========================================================
*/
func (h *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.
		Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).
		Delete(&scheduleModel.ScheduleModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"schedule_id": id})
}

/*
=========================================================

	EXPORT XLSX
	GET /api/a/schedules/export
	Header kolom sama dengan template import, jadi hasil export
	bisa diedit lalu diimport lagi.
	=========================================================
*/
func (h *ScheduleController) ExportSchedules(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	type row struct {
		ClassName string `gorm:"column:class_name"`
		Subject   string `gorm:"column:schedule_subject"`
		Email     string `gorm:"column:user_email"`
		DayOfWeek int    `gorm:"column:schedule_day_of_week"`
		StartTime string `gorm:"column:schedule_start_time"`
		EndTime   string `gorm:"column:schedule_end_time"`
	}
	var rows []row
	if err := h.DB.
		Table("schedules").
		Select("classes.class_name, schedules.schedule_subject, users.user_email, schedules.schedule_day_of_week, schedules.schedule_start_time, schedules.schedule_end_time").
		Joins("JOIN classes ON classes.class_id = schedules.schedule_class_id").
		Joins("JOIN users ON users.user_id = schedules.schedule_teacher_id").
		Where("schedules.schedule_school_id = ? AND schedules.schedule_deleted_at IS NULL", schoolID).
		Order("classes.class_name, schedules.schedule_day_of_week, schedules.schedule_start_time").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Kelas", "Mapel", "Email Guru", "Hari", "Jam Mulai", "Jam Selesai"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, hdr)
	}

	dayNames := []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	for i, r := range rows {
		values := []any{r.ClassName, r.Subject, r.Email, dayNames[r.DayOfWeek], r.StartTime, r.EndTime}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file excel")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="jadwal-%s.xlsx"`, schoolID))
	return c.SendStream(buf)
}
