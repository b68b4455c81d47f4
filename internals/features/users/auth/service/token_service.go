// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateAccessToken membangun JWT access dengan claims tenant-aware:
// id, role, school_id — semua handler membaca tenant dari sini.
func GenerateAccessToken(u userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"role":      u.UserRole,
		"school_id": u.UserSchoolID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", fmt.Errorf("JWT_REFRESH_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memvalidasi refresh JWT dan mengembalikan user id (sub).
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}
	return id, nil
}

// hash refresh token sebelum disimpan (tidak pernah plaintext di DB)
func HashRefreshToken(raw string) []byte {
	sum := sha256.Sum256([]byte(raw + configs.JWTRefreshSecret))
	return sum[:]
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, raw string, userAgent, ip *string) error {
	rt := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: time.Now().UTC().Add(RefreshTokenTTL),
		UserAgent: userAgent,
		IP:        ip,
	}
	return db.Create(&rt).Error
}

// RevokeRefreshToken menghapus token lama saat rotate / logout.
func RevokeRefreshToken(db *gorm.DB, raw string) error {
	return db.
		Where("token_hash = ?", HashRefreshToken(raw)).
		Delete(&authModel.RefreshToken{}).Error
}

func RefreshTokenKnown(db *gorm.DB, raw string) (bool, error) {
	var cnt int64
	err := db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", HashRefreshToken(raw)).
		Count(&cnt).Error
	return cnt > 0, err
}

// BlacklistAccessToken memasukkan access token ke blacklist sampai exp-nya lewat.
func BlacklistAccessToken(db *gorm.DB, raw string) error {
	bl := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().UTC().Add(AccessTokenTTL),
	}
	return db.Create(&bl).Error
}

func IsAccessTokenBlacklisted(db *gorm.DB) func(string) (bool, error) {
	return func(raw string) (bool, error) {
		var cnt int64
		err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ? AND deleted_at IS NULL", raw).
			Count(&cnt).Error
		return cnt > 0, err
	}
}
