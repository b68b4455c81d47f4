package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   CREATE (admin menambah user di sekolahnya)
   ========================================================= */

type CreateUserRequest struct {
	Name     string  `json:"user_name" validate:"required,min=2,max=100"`
	Email    string  `json:"user_email" validate:"required,email,max=120"`
	Password string  `json:"user_password" validate:"required,min=8,max=72"`
	Role     string  `json:"user_role" validate:"required,oneof=admin teacher student"`
	Phone    *string `json:"user_phone" validate:"omitempty,max=30"`
	NISN     *string `json:"user_nisn" validate:"omitempty,max=20"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateUserRequest struct {
	Name     *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"user_phone" validate:"omitempty,max=30"`
	NISN     *string `json:"user_nisn" validate:"omitempty,max=20"`
	Role     *string `json:"user_role" validate:"omitempty,oneof=admin teacher student"`
	IsActive *bool   `json:"user_is_active"`
}

func (r UpdateUserRequest) Apply(mm *m.UserModel) {
	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		mm.UserName = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		mm.UserPhone = r.Phone
	}
	if r.NISN != nil {
		mm.UserNISN = r.NISN
	}
	if r.Role != nil {
		mm.UserRole = strings.ToLower(strings.TrimSpace(*r.Role))
	}
	if r.IsActive != nil {
		mm.UserIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	SchoolID  uuid.UUID `json:"user_school_id"`
	Name      string    `json:"user_name"`
	Email     string    `json:"user_email"`
	Role      string    `json:"user_role"`
	Phone     *string   `json:"user_phone,omitempty"`
	NISN      *string   `json:"user_nisn,omitempty"`
	IsActive  bool      `json:"user_is_active"`
	CreatedAt time.Time `json:"user_created_at"`
}

func FromUserModel(mm m.UserModel) UserResponse {
	return UserResponse{
		UserID:    mm.UserID,
		SchoolID:  mm.UserSchoolID,
		Name:      mm.UserName,
		Email:     mm.UserEmail,
		Role:      mm.UserRole,
		Phone:     mm.UserPhone,
		NISN:      mm.UserNISN,
		IsActive:  mm.UserIsActive,
		CreatedAt: mm.UserCreatedAt,
	}
}

func FromUserModels(rows []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromUserModel(r))
	}
	return out
}
