package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolDTO "sekolahku_backend/internals/features/school/schools/dto"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================================================
   OWNER: kelola tenant
   ========================================================= */

// POST /api/o/schools
func (h *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug := helper.Slugify(req.SchoolName, 120)
	var count int64
	if err := h.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_slug = ?", slug).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek slug sekolah")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nama sekolah sudah terdaftar")
	}

	mm := schoolModel.SchoolModel{
		SchoolName:    req.SchoolName,
		SchoolSlug:    slug,
		SchoolAddress: req.SchoolAddress,
		SchoolPhone:   req.SchoolPhone,
		SchoolLat:     req.SchoolLat,
		SchoolLng:     req.SchoolLng,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat", schoolDTO.FromSchoolModel(mm))
}

// GET /api/o/schools
func (h *SchoolController) ListSchools(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc")

	tx := h.DB.Model(&schoolModel.SchoolModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []schoolModel.SchoolModel
	if err := tx.
		Order(p.SafeOrderClause(map[string]string{
			"name":       "school_name",
			"created_at": "school_created_at",
		}, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helper.JsonList(c, schoolDTO.FromSchoolModels(rows), helper.BuildMeta(total, p))
}

// DELETE /api/o/schools/:id
func (h *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Where("school_id = ?", id).Delete(&schoolModel.SchoolModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Sekolah berhasil dihapus", fiber.Map{"school_id": id})
}

/* =========================================================
   ADMIN: profil sekolah sendiri
   ========================================================= */

// PUT /api/a/schools
func (h *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm schoolModel.SchoolModel
	if err := h.DB.Where("school_id = ?", schoolID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	if req.SchoolName != nil {
		mm.SchoolName = *req.SchoolName
	}
	if req.SchoolAddress != nil {
		mm.SchoolAddress = req.SchoolAddress
	}
	if req.SchoolPhone != nil {
		mm.SchoolPhone = req.SchoolPhone
	}
	if req.SchoolLat != nil {
		mm.SchoolLat = req.SchoolLat
	}
	if req.SchoolLng != nil {
		mm.SchoolLng = req.SchoolLng
	}
	if req.SchoolCheckinRadiusM != nil {
		mm.SchoolCheckinRadiusM = *req.SchoolCheckinRadiusM
	}

	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui sekolah")
	}

	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", schoolDTO.FromSchoolModel(mm))
}

/* =========================================================
   USER: lihat sekolah sendiri
   ========================================================= */

// GET /api/u/schools/me
func (h *SchoolController) GetMySchool(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var mm schoolModel.SchoolModel
	if err := h.DB.Where("school_id = ?", schoolID).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helper.Success(c, "Data sekolah", schoolDTO.FromSchoolModel(mm))
}
