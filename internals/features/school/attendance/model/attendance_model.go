package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status absensi: H (hadir), S (sakit), I (izin), A (alpa).
const (
	StatusHadir = "H"
	StatusSakit = "S"
	StatusIzin  = "I"
	StatusAlpa  = "A"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusHadir, StatusSakit, StatusIzin, StatusAlpa:
		return true
	}
	return false
}

// Satu baris = satu siswa satu tanggal. Simpan ulang lewat tanggal yang
// sama menimpa status sebelumnya (upsert di controller).
type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"column:attendance_school_id;type:uuid;not null;index;uniqueIndex:uq_attendance_day" json:"attendance_school_id"`

	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;index" json:"attendance_class_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_day" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_day" json:"attendance_date"`

	AttendanceStatus string  `gorm:"column:attendance_status;type:varchar(1);not null" json:"attendance_status"`
	AttendanceNote   *string `gorm:"column:attendance_note;type:varchar(255)" json:"attendance_note,omitempty"`

	// guru yang mengisi
	AttendanceMarkedBy uuid.UUID `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;not null;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
