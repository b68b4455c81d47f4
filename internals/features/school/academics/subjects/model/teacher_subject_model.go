// internals/features/school/academics/subjects/model/teacher_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Link guru ↔ mapel. Unik per (teacher, subject) supaya auto-link importer
// idempoten: import ulang tidak bikin baris ganda.
type TeacherSubjectModel struct {
	TeacherSubjectID       uuid.UUID `gorm:"column:teacher_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_subject_id"`
	TeacherSubjectSchoolID uuid.UUID `gorm:"column:teacher_subject_school_id;type:uuid;not null;index" json:"teacher_subject_school_id"`

	TeacherSubjectTeacherID uuid.UUID `gorm:"column:teacher_subject_teacher_id;type:uuid;not null;uniqueIndex:uq_teacher_subject" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"column:teacher_subject_subject_id;type:uuid;not null;uniqueIndex:uq_teacher_subject" json:"teacher_subject_subject_id"`

	TeacherSubjectCreatedAt time.Time `gorm:"column:teacher_subject_created_at;not null;autoCreateTime" json:"teacher_subject_created_at"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
