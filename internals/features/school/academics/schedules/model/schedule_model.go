// internals/features/school/academics/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
//   - natural key jadwal: (school, class, day_of_week, start_time).
//     Importer & controller melakukan upsert lewat kunci ini, jadi import
//     ulang file yang sama tidak menggandakan jadwal.
//   - schedule_subject disimpan sebagai NAMA mapel (string), mengikuti data
//     jadwal yang tampil ke user; katalog subjects dipakai untuk link guru.
//   - day_of_week: 0–6 (0 = Minggu)
//   - start/end: "HH:MM" (sudah dinormalisasi zero-pad sebelum persist)
type ScheduleModel struct {
	ScheduleID       uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleSchoolID uuid.UUID `gorm:"column:schedule_school_id;type:uuid;not null;index;uniqueIndex:uq_schedule_slot" json:"schedule_school_id"`

	ScheduleClassID   uuid.UUID `gorm:"column:schedule_class_id;type:uuid;not null;uniqueIndex:uq_schedule_slot" json:"schedule_class_id"`
	ScheduleTeacherID uuid.UUID `gorm:"column:schedule_teacher_id;type:uuid;not null;index" json:"schedule_teacher_id"`

	ScheduleSubject string `gorm:"column:schedule_subject;type:varchar(120);not null" json:"schedule_subject"`

	ScheduleDayOfWeek int    `gorm:"column:schedule_day_of_week;not null;uniqueIndex:uq_schedule_slot" json:"schedule_day_of_week"`
	ScheduleStartTime string `gorm:"column:schedule_start_time;type:varchar(5);not null;uniqueIndex:uq_schedule_slot" json:"schedule_start_time"`
	ScheduleEndTime   string `gorm:"column:schedule_end_time;type:varchar(5);not null" json:"schedule_end_time"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;not null;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;not null;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
