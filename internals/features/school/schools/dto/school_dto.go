package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/schools/model"
)

type CreateSchoolRequest struct {
	SchoolName    string   `json:"school_name" validate:"required,min=3,max=120"`
	SchoolAddress *string  `json:"school_address" validate:"omitempty"`
	SchoolPhone   *string  `json:"school_phone" validate:"omitempty,max=30"`
	SchoolLat     *float64 `json:"school_lat" validate:"omitempty,latitude"`
	SchoolLng     *float64 `json:"school_lng" validate:"omitempty,longitude"`
}

type UpdateSchoolRequest struct {
	SchoolName           *string  `json:"school_name" validate:"omitempty,min=3,max=120"`
	SchoolAddress        *string  `json:"school_address" validate:"omitempty"`
	SchoolPhone          *string  `json:"school_phone" validate:"omitempty,max=30"`
	SchoolLat            *float64 `json:"school_lat" validate:"omitempty,latitude"`
	SchoolLng            *float64 `json:"school_lng" validate:"omitempty,longitude"`
	SchoolCheckinRadiusM *float64 `json:"school_checkin_radius_m" validate:"omitempty,gt=0,lte=5000"`
}

type SchoolResponse struct {
	SchoolID             uuid.UUID `json:"school_id"`
	SchoolName           string    `json:"school_name"`
	SchoolSlug           string    `json:"school_slug"`
	SchoolAddress        *string   `json:"school_address,omitempty"`
	SchoolPhone          *string   `json:"school_phone,omitempty"`
	SchoolLat            *float64  `json:"school_lat,omitempty"`
	SchoolLng            *float64  `json:"school_lng,omitempty"`
	SchoolCheckinRadiusM float64   `json:"school_checkin_radius_m"`
	SchoolIsActive       bool      `json:"school_is_active"`
}

func FromSchoolModel(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:             m.SchoolID,
		SchoolName:           m.SchoolName,
		SchoolSlug:           m.SchoolSlug,
		SchoolAddress:        m.SchoolAddress,
		SchoolPhone:          m.SchoolPhone,
		SchoolLat:            m.SchoolLat,
		SchoolLng:            m.SchoolLng,
		SchoolCheckinRadiusM: m.SchoolCheckinRadiusM,
		SchoolIsActive:       m.SchoolIsActive,
	}
}

func FromSchoolModels(models []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromSchoolModel(m))
	}
	return out
}
