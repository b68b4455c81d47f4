package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	materialDTO "sekolahku_backend/internals/features/school/materials/dto"
	materialModel "sekolahku_backend/internals/features/school/materials/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type MaterialController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	CREATE
	POST /api/u/materials (multipart, gambar opsional di "image")
	=========================================================
*/
func (h *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req materialDTO.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := materialModel.MaterialModel{
		MaterialSchoolID:  schoolID,
		MaterialClassID:   req.ClassID,
		MaterialTeacherID: teacherID,
		MaterialSubject:   req.Subject,
		MaterialTitle:     req.Title,
		MaterialContent:   req.Content,
		MaterialTags:      splitTags(req.Tags),
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.UploadImageToSupabase("materials", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Upload gambar gagal: "+err.Error())
		}
		mm.MaterialImageURL = &url
	}

	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", materialDTO.FromMaterialModel(mm))
}

/*
=========================================================

	LIST
	GET /api/u/materials?class_id=&subject=&tag=
	=========================================================
*/
func (h *MaterialController) ListMaterials(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc")

	tx := h.DB.Model(&materialModel.MaterialModel{}).
		Where("material_school_id = ?", schoolID)

	if v := c.Query("class_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("material_class_id = ?", id)
	}
	if v := c.Query("subject"); v != "" {
		tx = tx.Where("LOWER(material_subject) = LOWER(?)", v)
	}
	if v := c.Query("tag"); v != "" {
		tx = tx.Where("? = ANY(material_tags)", strings.ToLower(v))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []materialModel.MaterialModel
	if err := tx.
		Order(p.SafeOrderClause(map[string]string{
			"title":      "material_title",
			"created_at": "material_created_at",
		}, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.JsonList(c, materialDTO.FromMaterialModels(rows), helper.BuildMeta(total, p))
}

/*
=========================================================

	DELETE
	DELETE /api/u/materials/:id
	Gambar di storage ikut dibersihkan; gagal hapus file hanya
	dicatat, record tetap terhapus.
	=========================================================
*/
func (h *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm materialModel.MaterialModel
	if err := h.DB.Where("material_id = ? AND material_school_id = ?", id, schoolID).First(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}

	if err := h.DB.Delete(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus materi")
	}

	if mm.MaterialImageURL != nil {
		if path := helper.ExtractSupabaseStoragePath(*mm.MaterialImageURL); path != "" {
			if err := helper.DeleteFromSupabase("image", path); err != nil {
				log.Printf("[WARNING] gagal menghapus gambar materi %s: %v", id, err)
			}
		}
	}

	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"material_id": id})
}

// splitTags: "aljabar, latihan,BAB-1" → ["aljabar","latihan","bab-1"]
func splitTags(raw string) pq.StringArray {
	if strings.TrimSpace(raw) == "" {
		return pq.StringArray{}
	}
	parts := strings.Split(raw, ",")
	out := make(pq.StringArray, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
