package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// fakeStore: implementasi Store in-memory untuk test importer, tanpa DB.
type fakeStore struct {
	classes  []CachedClass
	subjects []CachedSubject
	teachers []CachedTeacher

	schedules []ResolvedSchedule
	links     map[string]bool

	subjectsCreated  int
	schedulesCreated int
	schedulesUpdated int

	failLoad    bool
	failCreates int // gagalkan N insert jadwal berikutnya
}

func newFakeStore() *fakeStore {
	return &fakeStore{links: map[string]bool{}}
}

func (f *fakeStore) addClass(name string) uuid.UUID {
	id := uuid.New()
	f.classes = append(f.classes, CachedClass{ID: id, Name: name})
	return id
}

func (f *fakeStore) addSubject(name, code string) uuid.UUID {
	id := uuid.New()
	f.subjects = append(f.subjects, CachedSubject{ID: id, Name: name, Code: code})
	return id
}

func (f *fakeStore) addTeacher(name, email string, subjectIDs ...uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.teachers = append(f.teachers, CachedTeacher{ID: id, Name: name, Email: email, SubjectIDs: subjectIDs})
	return id
}

func (f *fakeStore) FindClassesBySchool(uuid.UUID) ([]CachedClass, error) {
	if f.failLoad {
		return nil, errors.New("koneksi database putus")
	}
	return append([]CachedClass(nil), f.classes...), nil
}

func (f *fakeStore) FindSubjectsBySchool(uuid.UUID) ([]CachedSubject, error) {
	if f.failLoad {
		return nil, errors.New("koneksi database putus")
	}
	return append([]CachedSubject(nil), f.subjects...), nil
}

func (f *fakeStore) FindTeachersBySchool(uuid.UUID) ([]CachedTeacher, error) {
	if f.failLoad {
		return nil, errors.New("koneksi database putus")
	}
	out := make([]CachedTeacher, len(f.teachers))
	for i, t := range f.teachers {
		out[i] = CachedTeacher{
			ID: t.ID, Name: t.Name, Email: t.Email,
			SubjectIDs: append([]uuid.UUID(nil), t.SubjectIDs...),
		}
	}
	return out, nil
}

func (f *fakeStore) CreateSubject(_ uuid.UUID, name, code string) (CachedSubject, error) {
	f.subjectsCreated++
	s := CachedSubject{ID: uuid.New(), Name: name, Code: code}
	f.subjects = append(f.subjects, s)
	return s, nil
}

func (f *fakeStore) LinkTeacherToSubject(_, teacherID, subjectID uuid.UUID) error {
	f.links[teacherID.String()+"/"+subjectID.String()] = true
	return nil
}

func (f *fakeStore) FindScheduleByNaturalKey(schoolID, classID uuid.UUID, day int, start string) (*uuid.UUID, error) {
	for i := range f.schedules {
		s := &f.schedules[i]
		if s.SchoolID == schoolID && s.ClassID == classID && s.DayOfWeek == day && s.StartTime == start {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join([]string{classID.String(), start}, "/")))
			return &id, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateSchedule(in ResolvedSchedule) error {
	if f.failCreates > 0 {
		f.failCreates--
		return errors.New("constraint violation")
	}
	f.schedulesCreated++
	f.schedules = append(f.schedules, in)
	return nil
}

func (f *fakeStore) UpdateSchedule(_ uuid.UUID, in ResolvedSchedule) error {
	f.schedulesUpdated++
	for i := range f.schedules {
		s := &f.schedules[i]
		if s.SchoolID == in.SchoolID && s.ClassID == in.ClassID && s.DayOfWeek == in.DayOfWeek && s.StartTime == in.StartTime {
			s.TeacherID = in.TeacherID
			s.Subject = in.Subject
			s.EndTime = in.EndTime
			return nil
		}
	}
	return errors.New("jadwal tidak ditemukan")
}

/* ClassWriter untuk test ImportClasses */

func (f *fakeStore) CreateClass(_ uuid.UUID, name, _ string) error {
	f.classes = append(f.classes, CachedClass{ID: uuid.New(), Name: name})
	return nil
}
