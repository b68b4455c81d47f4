package dto

import (
	"strings"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"user_name" validate:"required,min=2,max=100"`
	Email    string    `json:"user_email" validate:"required,email,max=120"`
	Password string    `json:"user_password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Email    string    `json:"user_email" validate:"required,email"`
	Password string    `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type GoogleLoginRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	IDToken  string    `json:"id_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	SchoolID     string `json:"school_id"`
}
