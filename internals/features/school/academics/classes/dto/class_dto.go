package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/classes/model"
)

type CreateClassRequest struct {
	Name              string     `json:"class_name" validate:"required,min=1,max=100"`
	Level             *string    `json:"class_level" validate:"omitempty,max=30"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Level != nil {
		v := strings.TrimSpace(*r.Level)
		if v == "" {
			r.Level = nil
		} else {
			r.Level = &v
		}
	}
}

type UpdateClassRequest struct {
	Name              *string    `json:"class_name" validate:"omitempty,min=1,max=100"`
	Level             *string    `json:"class_level" validate:"omitempty,max=30"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
	IsActive          *bool      `json:"class_is_active"`
}

func (r UpdateClassRequest) Apply(mm *m.ClassModel) {
	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		mm.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.Level != nil {
		mm.ClassLevel = r.Level
	}
	if r.HomeroomTeacherID != nil {
		mm.ClassHomeroomTeacherID = r.HomeroomTeacherID
	}
	if r.IsActive != nil {
		mm.ClassIsActive = *r.IsActive
	}
}

type ClassResponse struct {
	ClassID           uuid.UUID  `json:"class_id"`
	SchoolID          uuid.UUID  `json:"class_school_id"`
	Name              string     `json:"class_name"`
	Level             *string    `json:"class_level,omitempty"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty"`
	IsActive          bool       `json:"class_is_active"`
	CreatedAt         time.Time  `json:"class_created_at"`
}

func FromClassModel(mm m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           mm.ClassID,
		SchoolID:          mm.ClassSchoolID,
		Name:              mm.ClassName,
		Level:             mm.ClassLevel,
		HomeroomTeacherID: mm.ClassHomeroomTeacherID,
		IsActive:          mm.ClassIsActive,
		CreatedAt:         mm.ClassCreatedAt,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromClassModel(r))
	}
	return out
}
