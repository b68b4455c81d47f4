package service

import (
	"strings"

	"github.com/google/uuid"
)

type CachedClass struct {
	ID   uuid.UUID
	Name string
}

type CachedSubject struct {
	ID   uuid.UUID
	Name string
	Code string
}

type CachedTeacher struct {
	ID         uuid.UUID
	Name       string
	Email      string
	SubjectIDs []uuid.UUID
}

// ReferenceCache: snapshot kelas/mapel/guru milik satu sekolah, dimuat sekali
// per job import. Dimiliki eksklusif oleh job itu dan dimutasi di tempat
// (mapel baru, link guru-mapel baru) supaya baris berikutnya langsung lihat
// perubahannya tanpa query ulang.
type ReferenceCache struct {
	Classes  []CachedClass
	Subjects []CachedSubject
	Teachers []CachedTeacher
}

// LoadReferenceCache menarik tiga snapshot dari storage. Gagal di sini
// menggugurkan seluruh job, bukan per baris.
func LoadReferenceCache(store Store, schoolID uuid.UUID) (*ReferenceCache, error) {
	classes, err := store.FindClassesBySchool(schoolID)
	if err != nil {
		return nil, err
	}
	subjects, err := store.FindSubjectsBySchool(schoolID)
	if err != nil {
		return nil, err
	}
	teachers, err := store.FindTeachersBySchool(schoolID)
	if err != nil {
		return nil, err
	}
	return &ReferenceCache{Classes: classes, Subjects: subjects, Teachers: teachers}, nil
}

func (rc *ReferenceCache) ClassByName(name string) *CachedClass {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range rc.Classes {
		if strings.ToLower(rc.Classes[i].Name) == want {
			return &rc.Classes[i]
		}
	}
	return nil
}

func (rc *ReferenceCache) SubjectByID(id uuid.UUID) *CachedSubject {
	for i := range rc.Subjects {
		if rc.Subjects[i].ID == id {
			return &rc.Subjects[i]
		}
	}
	return nil
}

// AddSubject memasukkan mapel yang baru dibuat ke cache supaya baris
// selanjutnya dalam job yang sama memakainya, bukan membuat duplikat.
func (rc *ReferenceCache) AddSubject(s CachedSubject) {
	rc.Subjects = append(rc.Subjects, s)
}

// AddTeacherLink mencatat link guru-mapel pada salinan cache.
func (rc *ReferenceCache) AddTeacherLink(teacherID, subjectID uuid.UUID) {
	for i := range rc.Teachers {
		if rc.Teachers[i].ID == teacherID {
			rc.Teachers[i].SubjectIDs = append(rc.Teachers[i].SubjectIDs, subjectID)
			return
		}
	}
}

func (t *CachedTeacher) HasSubject(subjectID uuid.UUID) bool {
	for _, id := range t.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
