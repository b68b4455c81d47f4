package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	scheduleModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
)

// ResolvedSchedule: hasil resolusi satu baris, siap ditulis ke storage.
type ResolvedSchedule struct {
	SchoolID  uuid.UUID
	ClassID   uuid.UUID
	TeacherID uuid.UUID
	Subject   string
	DayOfWeek int
	StartTime string
	EndTime   string
}

// Store adalah kontrak minimum reconciler terhadap storage. Tiap operasi
// atomic di level satu record; tidak ada transaksi lintas panggilan.
type Store interface {
	FindClassesBySchool(schoolID uuid.UUID) ([]CachedClass, error)
	FindSubjectsBySchool(schoolID uuid.UUID) ([]CachedSubject, error)
	FindTeachersBySchool(schoolID uuid.UUID) ([]CachedTeacher, error)

	CreateSubject(schoolID uuid.UUID, name, code string) (CachedSubject, error)
	LinkTeacherToSubject(schoolID, teacherID, subjectID uuid.UUID) error

	FindScheduleByNaturalKey(schoolID, classID uuid.UUID, dayOfWeek int, startTime string) (*uuid.UUID, error)
	CreateSchedule(in ResolvedSchedule) error
	UpdateSchedule(scheduleID uuid.UUID, in ResolvedSchedule) error
}

/* =========================================================
   Implementasi GORM
   ========================================================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FindClassesBySchool(schoolID uuid.UUID) ([]CachedClass, error) {
	var rows []struct {
		ClassID   uuid.UUID `gorm:"column:class_id"`
		ClassName string    `gorm:"column:class_name"`
	}
	if err := s.DB.Table("classes").
		Select("class_id, class_name").
		Where("class_school_id = ? AND class_deleted_at IS NULL", schoolID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]CachedClass, 0, len(rows))
	for _, r := range rows {
		out = append(out, CachedClass{ID: r.ClassID, Name: r.ClassName})
	}
	return out, nil
}

func (s *GormStore) FindSubjectsBySchool(schoolID uuid.UUID) ([]CachedSubject, error) {
	var rows []struct {
		SubjectID   uuid.UUID `gorm:"column:subject_id"`
		SubjectName string    `gorm:"column:subject_name"`
		SubjectCode string    `gorm:"column:subject_code"`
	}
	if err := s.DB.Table("subjects").
		Select("subject_id, subject_name, subject_code").
		Where("subject_school_id = ? AND subject_deleted_at IS NULL", schoolID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]CachedSubject, 0, len(rows))
	for _, r := range rows {
		out = append(out, CachedSubject{ID: r.SubjectID, Name: r.SubjectName, Code: r.SubjectCode})
	}
	return out, nil
}

func (s *GormStore) FindTeachersBySchool(schoolID uuid.UUID) ([]CachedTeacher, error) {
	var rows []struct {
		UserID   uuid.UUID `gorm:"column:user_id"`
		UserName string    `gorm:"column:user_name"`
		UserMail string    `gorm:"column:user_email"`
	}
	if err := s.DB.Table("users").
		Select("user_id, user_name, user_email").
		Where("user_school_id = ? AND user_role = ? AND user_deleted_at IS NULL", schoolID, constants.RoleTeacher).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	teachers := make([]CachedTeacher, 0, len(rows))
	for _, r := range rows {
		var subjectIDs []uuid.UUID
		if err := s.DB.Table("teacher_subjects").
			Where("teacher_subject_school_id = ? AND teacher_subject_teacher_id = ?", schoolID, r.UserID).
			Pluck("teacher_subject_subject_id", &subjectIDs).Error; err != nil {
			return nil, err
		}
		teachers = append(teachers, CachedTeacher{
			ID: r.UserID, Name: r.UserName, Email: r.UserMail, SubjectIDs: subjectIDs,
		})
	}
	return teachers, nil
}

func (s *GormStore) CreateSubject(schoolID uuid.UUID, name, code string) (CachedSubject, error) {
	mm := subjectModel.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectName:     name,
		SubjectCode:     code,
	}
	if err := s.DB.Create(&mm).Error; err != nil {
		return CachedSubject{}, err
	}
	return CachedSubject{ID: mm.SubjectID, Name: mm.SubjectName, Code: mm.SubjectCode}, nil
}

func (s *GormStore) LinkTeacherToSubject(schoolID, teacherID, subjectID uuid.UUID) error {
	link := subjectModel.TeacherSubjectModel{
		TeacherSubjectSchoolID:  schoolID,
		TeacherSubjectTeacherID: teacherID,
		TeacherSubjectSubjectID: subjectID,
	}
	// Idempotent: constraint uq_teacher_subject menahan duplikat.
	return s.DB.
		Where("teacher_subject_school_id = ? AND teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ?",
			schoolID, teacherID, subjectID).
		FirstOrCreate(&link).Error
}

func (s *GormStore) FindScheduleByNaturalKey(schoolID, classID uuid.UUID, dayOfWeek int, startTime string) (*uuid.UUID, error) {
	var row struct {
		ScheduleID uuid.UUID `gorm:"column:schedule_id"`
	}
	res := s.DB.Table("schedules").
		Select("schedule_id").
		Where("schedule_school_id = ? AND schedule_class_id = ? AND schedule_day_of_week = ? AND schedule_start_time = ? AND schedule_deleted_at IS NULL",
			schoolID, classID, dayOfWeek, startTime).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	id := row.ScheduleID
	return &id, nil
}

func (s *GormStore) CreateSchedule(in ResolvedSchedule) error {
	mm := scheduleModel.ScheduleModel{
		ScheduleSchoolID:  in.SchoolID,
		ScheduleClassID:   in.ClassID,
		ScheduleTeacherID: in.TeacherID,
		ScheduleSubject:   in.Subject,
		ScheduleDayOfWeek: in.DayOfWeek,
		ScheduleStartTime: in.StartTime,
		ScheduleEndTime:   in.EndTime,
	}
	return s.DB.Create(&mm).Error
}

func (s *GormStore) UpdateSchedule(scheduleID uuid.UUID, in ResolvedSchedule) error {
	return s.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_id = ?", scheduleID).
		Updates(map[string]any{
			"schedule_teacher_id": in.TeacherID,
			"schedule_subject":    in.Subject,
			"schedule_end_time":   in.EndTime,
		}).Error
}
