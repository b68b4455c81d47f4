package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/model"
)

type BulkAttendanceItem struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=H S I A"`
	Note      *string   `json:"note" validate:"omitempty,max=255"`
}

type BulkAttendanceRequest struct {
	ClassID uuid.UUID            `json:"class_id" validate:"required"`
	Date    string               `json:"date" validate:"required,datetime=2006-01-02"`
	Items   []BulkAttendanceItem `json:"items" validate:"required,min=1,dive"`
}

type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	ClassID      uuid.UUID `json:"class_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
}

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: m.AttendanceID,
		ClassID:      m.AttendanceClassID,
		StudentID:    m.AttendanceStudentID,
		Date:         m.AttendanceDate.Format("2006-01-02"),
		Status:       m.AttendanceStatus,
		Note:         m.AttendanceNote,
	}
}

func FromAttendanceModels(models []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}

// Rekap per siswa dalam satu rentang tanggal.
type AttendanceRecapRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Hadir       int       `json:"hadir"`
	Sakit       int       `json:"sakit"`
	Izin        int       `json:"izin"`
	Alpa        int       `json:"alpa"`
}
