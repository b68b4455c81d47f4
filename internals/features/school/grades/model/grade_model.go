package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// grade_kind: tugas | uts | uas
type GradeModel struct {
	GradeID       uuid.UUID `gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_id"`
	GradeSchoolID uuid.UUID `gorm:"column:grade_school_id;type:uuid;not null;index" json:"grade_school_id"`

	GradeClassID   uuid.UUID `gorm:"column:grade_class_id;type:uuid;not null;index" json:"grade_class_id"`
	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;index" json:"grade_student_id"`
	GradeTeacherID uuid.UUID `gorm:"column:grade_teacher_id;type:uuid;not null" json:"grade_teacher_id"`

	GradeSubject string `gorm:"column:grade_subject;type:varchar(120);not null" json:"grade_subject"`
	GradeKind    string `gorm:"column:grade_kind;type:varchar(10);not null" json:"grade_kind"`
	GradeTitle   string `gorm:"column:grade_title;type:varchar(120);not null" json:"grade_title"`

	// 0-100
	GradeScore float64 `gorm:"column:grade_score;not null" json:"grade_score"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;not null;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }
