package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	LIST
	GET /api/a/users?q=&role=&is_active=&page=&per_page=
	=========================================================
*/
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc")

	tx := h.DB.Model(&userModel.UserModel{}).
		Where("user_school_id = ?", schoolID)

	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		tx = tx.Where("user_role = ?", role)
	}
	if v := c.Query("is_active"); v != "" {
		tx = tx.Where("user_is_active = ?", v == "true" || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	orderBy := p.SafeOrderClause(map[string]string{
		"name":       "user_name",
		"email":      "user_email",
		"created_at": "user_created_at",
	}, "created_at")

	var rows []userModel.UserModel
	if err := tx.Order(orderBy).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, userDTO.FromUserModels(rows), helper.BuildMeta(total, p))
}

/*
=========================================================

	DETAIL
	GET /api/a/users/:id
	=========================================================
*/
func (h *UserController) GetUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm userModel.UserModel
	if err := h.DB.
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "OK", userDTO.FromUserModel(mm))
}

/*
=========================================================

	CREATE
	POST /api/a/users
	=========================================================
*/
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email unik per sekolah
	var cnt int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_school_id = ? AND LOWER(user_email) = ?", schoolID, req.Email).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar di sekolah ini")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	mm := userModel.UserModel{
		UserSchoolID: schoolID,
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserPhone:    req.Phone,
		UserNISN:     req.NISN,
		UserIsActive: true,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", userDTO.FromUserModel(mm))
}

/*
=========================================================

	UPDATE
	PUT /api/a/users/:id
	=========================================================
*/
func (h *UserController) UpdateUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm userModel.UserModel
	if err := h.DB.
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&mm)
	if err := h.DB.Save(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", userDTO.FromUserModel(mm))
}

/*
=========================================================

	DELETE (soft delete)
	DELETE /api/a/users/:id
	=========================================================
*/
func (h *UserController) DeleteUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}
