package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/materials/model"
)

// Dikirim sebagai multipart form; gambar opsional di field "image".
type CreateMaterialRequest struct {
	ClassID uuid.UUID `form:"class_id" validate:"required"`
	Subject string    `form:"subject" validate:"required,max=120"`
	Title   string    `form:"title" validate:"required,max=150"`
	Content *string   `form:"content" validate:"omitempty"`
	Tags    string    `form:"tags" validate:"omitempty"` // dipisah koma
}

type MaterialResponse struct {
	MaterialID uuid.UUID `json:"material_id"`
	ClassID    uuid.UUID `json:"class_id"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	Subject    string    `json:"subject"`
	Title      string    `json:"title"`
	Content    *string   `json:"content,omitempty"`
	Tags       []string  `json:"tags"`
	ImageURL   *string   `json:"image_url,omitempty"`
}

func FromMaterialModel(m model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID: m.MaterialID,
		ClassID:    m.MaterialClassID,
		TeacherID:  m.MaterialTeacherID,
		Subject:    m.MaterialSubject,
		Title:      m.MaterialTitle,
		Content:    m.MaterialContent,
		Tags:       m.MaterialTags,
		ImageURL:   m.MaterialImageURL,
	}
}

func FromMaterialModels(models []model.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromMaterialModel(m))
	}
	return out
}
