package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/grades/model"
)

type CreateGradeItem struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Score     float64   `json:"score" validate:"min=0,max=100"`
}

type CreateGradesRequest struct {
	ClassID uuid.UUID         `json:"class_id" validate:"required"`
	Subject string            `json:"subject" validate:"required,max=120"`
	Kind    string            `json:"kind" validate:"required,oneof=tugas uts uas"`
	Title   string            `json:"title" validate:"required,max=120"`
	Items   []CreateGradeItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateGradeRequest struct {
	Score float64 `json:"score" validate:"min=0,max=100"`
}

type GradeResponse struct {
	GradeID   uuid.UUID `json:"grade_id"`
	ClassID   uuid.UUID `json:"class_id"`
	StudentID uuid.UUID `json:"student_id"`
	Subject   string    `json:"subject"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Score     float64   `json:"score"`
}

func FromGradeModel(m model.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:   m.GradeID,
		ClassID:   m.GradeClassID,
		StudentID: m.GradeStudentID,
		Subject:   m.GradeSubject,
		Kind:      m.GradeKind,
		Title:     m.GradeTitle,
		Score:     m.GradeScore,
	}
}

func FromGradeModels(models []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromGradeModel(m))
	}
	return out
}

// Rekap nilai per siswa untuk satu kelas+mapel.
type GradeRecapRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	AvgTugas    float64   `json:"avg_tugas"`
	AvgUTS      float64   `json:"avg_uts"`
	AvgUAS      float64   `json:"avg_uas"`
	AvgTotal    float64   `json:"avg_total"`
}
