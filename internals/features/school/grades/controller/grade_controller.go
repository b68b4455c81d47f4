package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeDTO "sekolahku_backend/internals/features/school/grades/dto"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	CREATE (bulk per penilaian)
	POST /api/u/grades
	Satu request = satu penilaian (mapel+jenis+judul) untuk banyak siswa.
	=========================================================
*/
func (h *GradeController) CreateGrades(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req gradeDTO.CreateGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := make([]gradeModel.GradeModel, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, gradeModel.GradeModel{
			GradeSchoolID:  schoolID,
			GradeClassID:   req.ClassID,
			GradeStudentID: item.StudentID,
			GradeTeacherID: teacherID,
			GradeSubject:   req.Subject,
			GradeKind:      req.Kind,
			GradeTitle:     req.Title,
			GradeScore:     item.Score,
		})
	}
	if err := h.DB.Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	return helper.JsonCreated(c, "Nilai berhasil disimpan", fiber.Map{
		"class_id": req.ClassID,
		"subject":  req.Subject,
		"saved":    len(rows),
	})
}

/*
=========================================================

	LIST
	GET /api/u/grades?class_id=&subject=&student_id=
	Siswa hanya bisa melihat nilainya sendiri.
	=========================================================
*/
func (h *GradeController) ListGrades(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	tx := h.DB.Model(&gradeModel.GradeModel{}).
		Where("grade_school_id = ?", schoolID)

	if v := c.Query("class_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("grade_class_id = ?", id)
	}
	if v := c.Query("subject"); v != "" {
		tx = tx.Where("LOWER(grade_subject) = LOWER(?)", v)
	}
	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("grade_student_id = ?", id)
	}

	if helperAuth.GetRoleFromToken(c) == constants.RoleStudent {
		userID, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		tx = tx.Where("grade_student_id = ?", userID)
	}

	var rows []gradeModel.GradeModel
	if err := tx.Order("grade_created_at DESC").Limit(500).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	return helper.Success(c, "Data nilai", gradeDTO.FromGradeModels(rows))
}

/* =========================================================
   UPDATE / DELETE satu nilai
   ========================================================= */

// PUT /api/u/grades/:id
func (h *GradeController) UpdateGrade(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req gradeDTO.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm gradeModel.GradeModel
	if err := h.DB.Where("grade_id = ? AND grade_school_id = ?", id, schoolID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	mm.GradeScore = req.Score
	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}

	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", gradeDTO.FromGradeModel(mm))
}

// DELETE /api/u/grades/:id
func (h *GradeController) DeleteGrade(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.
		Where("grade_id = ? AND grade_school_id = ?", id, schoolID).
		Delete(&gradeModel.GradeModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"grade_id": id})
}

/*
=========================================================

	REKAP
	GET /api/u/grades/recap?class_id=&subject=
	Rata-rata per siswa per jenis penilaian, bobot total 30/30/40.
	=========================================================
*/
func (h *GradeController) Recap(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi dan valid")
	}
	subject := c.Query("subject")
	if subject == "" {
		return fiber.NewError(fiber.StatusBadRequest, "subject wajib diisi")
	}

	var rows []gradeDTO.GradeRecapRow
	if err := h.DB.
		Table("grades").
		Select(`users.user_id AS student_id,
			users.user_name AS student_name,
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'tugas'), 0) AS avg_tugas,
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'uts'), 0) AS avg_uts,
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'uas'), 0) AS avg_uas,
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'tugas'), 0) * 0.3 +
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'uts'), 0) * 0.3 +
			COALESCE(AVG(grade_score) FILTER (WHERE grade_kind = 'uas'), 0) * 0.4 AS avg_total`).
		Joins("JOIN users ON users.user_id = grades.grade_student_id").
		Where("grade_school_id = ? AND grade_class_id = ? AND LOWER(grade_subject) = LOWER(?) AND grade_deleted_at IS NULL",
			schoolID, classID, subject).
		Group("users.user_id, users.user_name").
		Order("users.user_name").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat rekap nilai")
	}

	return helper.Success(c, "Rekap nilai", rows)
}
