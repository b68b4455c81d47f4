package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Code string  `json:"subject_code" validate:"required,min=1,max=40"`
	Name string  `json:"subject_name" validate:"required,min=1,max=120"`
	Desc *string `json:"subject_desc"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		if v == "" {
			r.Desc = nil
		} else {
			r.Desc = &v
		}
	}
}

type UpdateSubjectRequest struct {
	Code     *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
	Name     *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	Desc     *string `json:"subject_desc"`
	IsActive *bool   `json:"subject_is_active"`
}

func (r UpdateSubjectRequest) Apply(mm *m.SubjectModel) {
	if r.Code != nil && strings.TrimSpace(*r.Code) != "" {
		mm.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		mm.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.Desc != nil {
		mm.SubjectDesc = r.Desc
	}
	if r.IsActive != nil {
		mm.SubjectIsActive = *r.IsActive
	}
}

type SubjectResponse struct {
	SubjectID uuid.UUID `json:"subject_id"`
	SchoolID  uuid.UUID `json:"subject_school_id"`
	Code      string    `json:"subject_code"`
	Name      string    `json:"subject_name"`
	Desc      *string   `json:"subject_desc,omitempty"`
	IsActive  bool      `json:"subject_is_active"`
	CreatedAt time.Time `json:"subject_created_at"`
}

func FromSubjectModel(mm m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID: mm.SubjectID,
		SchoolID:  mm.SubjectSchoolID,
		Code:      mm.SubjectCode,
		Name:      mm.SubjectName,
		Desc:      mm.SubjectDesc,
		IsActive:  mm.SubjectIsActive,
		CreatedAt: mm.SubjectCreatedAt,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSubjectModel(r))
	}
	return out
}

/* =========================================================
   TEACHER-SUBJECT LINK
   ========================================================= */

type LinkTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
}
