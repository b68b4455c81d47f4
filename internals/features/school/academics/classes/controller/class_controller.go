package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	classDTO "sekolahku_backend/internals/features/school/academics/classes/dto"
	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	LIST
	GET /api/a/classes?q=&is_active=&page=&per_page=
	=========================================================
*/
func (h *ClassController) ListClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc")

	tx := h.DB.Model(&classModel.ClassModel{}).
		Where("class_school_id = ?", schoolID)

	if v := c.Query("is_active"); v != "" {
		tx = tx.Where("class_is_active = ?", v == "true" || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(class_name) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	orderBy := p.SafeOrderClause(map[string]string{
		"name":       "class_name",
		"level":      "class_level",
		"created_at": "class_created_at",
	}, "name")

	var rows []classModel.ClassModel
	if err := tx.Order(orderBy).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, classDTO.FromClassModels(rows), helper.BuildMeta(total, p))
}

/*
=========================================================

	CREATE
	POST /api/a/classes
	=========================================================
*/
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// nama kelas unik per sekolah (case-insensitive)
	var cnt int64
	if err := h.DB.Model(&classModel.ClassModel{}).
		Where("class_school_id = ? AND LOWER(class_name) = ?", schoolID, strings.ToLower(req.Name)).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek nama kelas")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai")
	}

	mm := classModel.ClassModel{
		ClassSchoolID:          schoolID,
		ClassName:              req.Name,
		ClassLevel:             req.Level,
		ClassHomeroomTeacherID: req.HomeroomTeacherID,
		ClassIsActive:          true,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", classDTO.FromClassModel(mm))
}

/*
=========================================================

	UPDATE
	PUT /api/a/classes/:id
	=========================================================
*/
func (h *ClassController) UpdateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm classModel.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&mm)
	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", classDTO.FromClassModel(mm))
}

/*
=========================================================

	DELETE (soft delete)
	DELETE /api/a/classes/:id
	=========================================================
*/
func (h *ClassController) DeleteClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Delete(&classModel.ClassModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

/*
=========================================================

	EXPORT XLSX
	GET /api/a/classes/export
	Header kolom sama dengan template import kelas.
	=========================================================
*/
func (h *ClassController) ExportClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []classModel.ClassModel
	if err := h.DB.
		Where("class_school_id = ?", schoolID).
		Order("class_name").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Kelas", "Tingkat"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, hdr)
	}

	for i, r := range rows {
		level := ""
		if r.ClassLevel != nil {
			level = *r.ClassLevel
		}
		values := []any{r.ClassName, level}
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
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kelas-%s.xlsx"`, schoolID))
	return c.SendStream(buf)
}
