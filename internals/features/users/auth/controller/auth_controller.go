package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	REGISTER (self-service, role selalu student)
	POST /api/auth/register
	=========================================================
*/
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_school_id = ? AND LOWER(user_email) = ?", req.SchoolID, req.Email).
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
		UserSchoolID: req.SchoolID,
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hash),
		UserRole:     constants.RoleStudent,
		UserIsActive: true,
	}
	if err := h.DB.Create(&mm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromUserModel(mm))
}

/*
=========================================================

	LOGIN
	POST /api/auth/login
	=========================================================
*/
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.
		Where("user_school_id = ? AND LOWER(user_email) = ?", req.SchoolID, req.Email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !u.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return h.issueTokens(c, u)
}

/*
=========================================================

	LOGIN GOOGLE (id_token dari mobile client)
	POST /api/auth/login-google
	=========================================================
*/
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := authService.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	// akun harus sudah ada (admin yang mendaftarkan) — login Google tidak auto-create
	var u userModel.UserModel
	if err := h.DB.
		Where("user_school_id = ? AND LOWER(user_email) = ?", req.SchoolID, profile.Email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Akun Google belum terdaftar di sekolah ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !u.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return h.issueTokens(c, u)
}

/*
=========================================================

	REFRESH (rotate)
	POST /api/auth/refresh-token
	=========================================================
*/
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		// fallback body untuk mobile client
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := authService.ParseRefreshToken(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}

	known, err := authService.RefreshTokenKnown(h.DB, raw)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if !known {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !u.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan pasangan baru
	if err := authService.RevokeRefreshToken(h.DB, raw); err != nil {
		log.Printf("[refresh] revoke old token failed: %v", err)
	}

	return h.issueTokens(c, u)
}

/*
=========================================================

	LOGOUT — blacklist access token + revoke refresh
	POST /api/auth/logout
	=========================================================
*/
func (h *AuthController) Logout(c *fiber.Ctx) error {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw := strings.TrimSpace(authz[7:])
		if err := authService.BlacklistAccessToken(h.DB, raw); err != nil {
			log.Printf("[logout] blacklist failed: %v", err)
		}
	}
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if err := authService.RevokeRefreshToken(h.DB, refresh); err != nil {
			log.Printf("[logout] revoke refresh failed: %v", err)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/*
=========================================================

	ME
	GET /api/u/me
	=========================================================
*/
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", userDTO.FromUserModel(u))
}

// issueTokens menerbitkan access+refresh, simpan hash refresh, set cookie.
func (h *AuthController) issueTokens(c *fiber.Ctx, u userModel.UserModel) error {
	access, err := authService.GenerateAccessToken(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.GenerateRefreshToken(u.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	ua := c.Get(fiber.HeaderUserAgent)
	ip := c.IP()
	if err := authService.StoreRefreshToken(h.DB, u.UserID, refresh, &ua, &ip); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		MaxAge:   int(authService.RefreshTokenTTL.Seconds()),
	})

	return helper.JsonOK(c, "Login berhasil", authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         u.UserRole,
		SchoolID:     u.UserSchoolID.String(),
	})
}
