package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "sekolahku_backend/internals/features/school/academics/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	LIST
	GET /api/a/subjects?q=&is_active=&page=&per_page=
	=========================================================
*/
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc")

	tx := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if v := c.Query("is_active"); v != "" {
		tx = tx.Where("subject_is_active = ?", v == "true" || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(subject_code) LIKE ? OR LOWER(subject_name) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	orderBy := p.SafeOrderClause(map[string]string{
		"code":       "subject_code",
		"name":       "subject_name",
		"created_at": "subject_created_at",
	}, "name")

	var rows []subjectModel.SubjectModel
	if err := tx.Order(orderBy).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, subjectDTO.FromSubjectModels(rows), helper.BuildMeta(total, p))
}

/*
=========================================================

	CREATE
	POST /api/a/subjects
	=========================================================
*/
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// nama/kode unik per sekolah (case-insensitive)
	var cnt int64
	if err := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ? AND (LOWER(subject_name) = ? OR LOWER(subject_code) = ?)",
			schoolID, strings.ToLower(req.Name), strings.ToLower(req.Code)).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek mapel")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nama/kode mapel sudah dipakai")
	}

	mm := subjectModel.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectCode:     req.Code,
		SubjectName:     req.Name,
		SubjectDesc:     req.Desc,
		SubjectIsActive: true,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat mapel")
	}

	return helper.JsonCreated(c, "Mapel berhasil dibuat", subjectDTO.FromSubjectModel(mm))
}

/*
=========================================================

	UPDATE
	PUT /api/a/subjects/:id
	=========================================================
*/
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm subjectModel.SubjectModel
	if err := h.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&mm)
	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", subjectDTO.FromSubjectModel(mm))
}

/*
=========================================================

	DELETE (soft delete)
	DELETE /api/a/subjects/:id
	=========================================================
*/
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Mapel tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}

/*
=========================================================

	LINK GURU ↔ MAPEL (idempoten)
	POST   /api/a/teacher-subjects
	DELETE /api/a/teacher-subjects
	=========================================================
*/
func (h *SubjectController) LinkTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.LinkTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// idempoten: kalau link sudah ada, jangan dobel
	var cnt int64
	if err := h.DB.Model(&subjectModel.TeacherSubjectModel{}).
		Where("teacher_subject_school_id = ? AND teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ?",
			schoolID, req.TeacherID, req.SubjectID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek link")
	}
	if cnt > 0 {
		return helper.JsonOK(c, "Guru sudah terhubung dengan mapel ini", nil)
	}

	link := subjectModel.TeacherSubjectModel{
		TeacherSubjectSchoolID:  schoolID,
		TeacherSubjectTeacherID: req.TeacherID,
		TeacherSubjectSubjectID: req.SubjectID,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat link guru-mapel")
	}

	return helper.JsonCreated(c, "Guru berhasil dihubungkan dengan mapel", link)
}

func (h *SubjectController) UnlinkTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.LinkTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.
		Where("teacher_subject_school_id = ? AND teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ?",
			schoolID, req.TeacherID, req.SubjectID).
		Delete(&subjectModel.TeacherSubjectModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus link")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Link guru-mapel tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Link guru-mapel berhasil dihapus", nil)
}
