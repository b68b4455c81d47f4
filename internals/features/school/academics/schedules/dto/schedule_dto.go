package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/schedules/model"
)

type CreateScheduleRequest struct {
	ClassID   uuid.UUID `json:"schedule_class_id" validate:"required"`
	TeacherID uuid.UUID `json:"schedule_teacher_id" validate:"required"`
	Subject   string    `json:"schedule_subject" validate:"required,min=1,max=120"`
	DayOfWeek int       `json:"schedule_day_of_week" validate:"gte=0,lte=6"`
	StartTime string    `json:"schedule_start_time" validate:"required"`
	EndTime   string    `json:"schedule_end_time" validate:"required"`
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	SchoolID   uuid.UUID `json:"schedule_school_id"`
	ClassID    uuid.UUID `json:"schedule_class_id"`
	TeacherID  uuid.UUID `json:"schedule_teacher_id"`
	Subject    string    `json:"schedule_subject"`
	DayOfWeek  int       `json:"schedule_day_of_week"`
	StartTime  string    `json:"schedule_start_time"`
	EndTime    string    `json:"schedule_end_time"`
	CreatedAt  time.Time `json:"schedule_created_at"`
	UpdatedAt  time.Time `json:"schedule_updated_at"`
}

func FromScheduleModel(mm m.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID: mm.ScheduleID,
		SchoolID:   mm.ScheduleSchoolID,
		ClassID:    mm.ScheduleClassID,
		TeacherID:  mm.ScheduleTeacherID,
		Subject:    mm.ScheduleSubject,
		DayOfWeek:  mm.ScheduleDayOfWeek,
		StartTime:  mm.ScheduleStartTime,
		EndTime:    mm.ScheduleEndTime,
		CreatedAt:  mm.ScheduleCreatedAt,
		UpdatedAt:  mm.ScheduleUpdatedAt,
	}
}

func FromScheduleModels(rows []m.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromScheduleModel(r))
	}
	return out
}
