package service

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// RowFailure membawa baris mentah apa adanya supaya user bisa menemukan
// kembali baris bermasalah di file aslinya.
type RowFailure struct {
	Row     ImportRow `json:"row"`
	Message string    `json:"message"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Failed   int          `json:"failed"`
	Errors   []RowFailure `json:"errors"`
}

func (r *ImportResult) ok() {
	r.Imported++
}

func (r *ImportResult) fail(row ImportRow, err *RowError) {
	r.Failed++
	r.Errors = append(r.Errors, RowFailure{Row: row, Message: err.Message})
}

/* =========================================================
   Import jadwal
   Baris diproses berurutan, bukan paralel: baris belakangan boleh
   bergantung pada mutasi cache (mapel baru, link guru baru) dari baris
   sebelumnya. Gagal per baris dicatat lalu lanjut; hanya gagal memuat
   ReferenceCache yang menggugurkan seluruh job.
   ========================================================= */

func ImportSchedules(store Store, schoolID uuid.UUID, rows []ImportRow) (*ImportResult, error) {
	cache, err := LoadReferenceCache(store, schoolID)
	if err != nil {
		log.Printf("[ERROR] gagal memuat cache referensi import: %v", err)
		return nil, err
	}

	resolver := &Resolver{
		Store:             store,
		Cache:             cache,
		SchoolID:          schoolID,
		AutoCreateSubject: true,
	}

	result := &ImportResult{Errors: []RowFailure{}}
	for _, raw := range rows {
		row := NormalizeRow(raw)
		if rerr := importOneSchedule(store, resolver, schoolID, row); rerr != nil {
			result.fail(raw, rerr)
			continue
		}
		result.ok()
	}
	return result, nil
}

func importOneSchedule(store Store, resolver *Resolver, schoolID uuid.UUID, row ImportRow) *RowError {
	className := row.Field(aliasClass)
	if className == "" {
		return rowErr(ErrMissingField, "Kolom kelas wajib diisi (ClassName/Kelas/NamaKelas)")
	}
	subjectToken := row.Field(aliasSubject)
	if subjectToken == "" {
		return rowErr(ErrMissingField, "Kolom mapel wajib diisi (Subject/Mapel/MataPelajaran)")
	}
	dayToken := row.Field(aliasDay)
	if dayToken == "" {
		return rowErr(ErrMissingField, "Kolom hari wajib diisi (Day/Hari)")
	}
	startToken := row.Field(aliasStart)
	if startToken == "" {
		return rowErr(ErrMissingField, "Kolom jam mulai wajib diisi (StartTime/JamMulai)")
	}
	endToken := row.Field(aliasEnd)
	if endToken == "" {
		return rowErr(ErrMissingField, "Kolom jam selesai wajib diisi (EndTime/JamSelesai)")
	}

	class, rerr := resolver.ResolveClass(className)
	if rerr != nil {
		return rerr
	}
	subject, rerr := resolver.ResolveSubject(subjectToken)
	if rerr != nil {
		return rerr
	}
	teacher, rerr := resolver.ResolveTeacher(row.Field(aliasTeacher), subject)
	if rerr != nil {
		return rerr
	}

	day, err := ParseDayOfWeek(dayToken)
	if err != nil {
		return rowErr(ErrInvalidDay, "%v", err)
	}
	start, err := NormalizeClock(startToken)
	if err != nil {
		return rowErr(ErrInvalidTimeFormat, "%v", err)
	}
	end, err := NormalizeClock(endToken)
	if err != nil {
		return rowErr(ErrInvalidTimeFormat, "%v", err)
	}

	in := ResolvedSchedule{
		SchoolID:  schoolID,
		ClassID:   class.ID,
		TeacherID: teacher.ID,
		Subject:   subject.Name,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}

	// Upsert pada natural key: slot sama → refresh guru/mapel/jam selesai.
	existingID, err := store.FindScheduleByNaturalKey(schoolID, class.ID, day, start)
	if err != nil {
		return rowErr(ErrPersistenceFailure, "Gagal cek jadwal: %v", err)
	}
	if existingID != nil {
		if err := store.UpdateSchedule(*existingID, in); err != nil {
			return rowErr(ErrPersistenceFailure, "Gagal memperbarui jadwal: %v", err)
		}
		return nil
	}
	if err := store.CreateSchedule(in); err != nil {
		return rowErr(ErrPersistenceFailure, "Gagal menyimpan jadwal: %v", err)
	}
	return nil
}

/* =========================================================
   Import kelas
   Tidak ada auto-create referensi di sini; kelas yang namanya sudah ada
   (case-insensitive) dilewati sebagai update no-op supaya re-run aman.
   ========================================================= */

type ClassWriter interface {
	CreateClass(schoolID uuid.UUID, name, level string) error
}

func ImportClasses(store Store, writer ClassWriter, schoolID uuid.UUID, rows []ImportRow) (*ImportResult, error) {
	cache, err := LoadReferenceCache(store, schoolID)
	if err != nil {
		log.Printf("[ERROR] gagal memuat cache referensi import: %v", err)
		return nil, err
	}

	result := &ImportResult{Errors: []RowFailure{}}
	for _, raw := range rows {
		row := NormalizeRow(raw)

		name := row.Field(aliasName)
		if name == "" {
			name = row.Field(aliasClass)
		}
		if name == "" {
			result.fail(raw, rowErr(ErrMissingField, "Kolom nama kelas wajib diisi (Name/Nama/Kelas)"))
			continue
		}

		if cache.ClassByName(name) != nil {
			// Sudah ada; idempoten.
			result.ok()
			continue
		}

		if err := writer.CreateClass(schoolID, name, row.Field(aliasLevel)); err != nil {
			result.fail(raw, rowErr(ErrPersistenceFailure, "Gagal menyimpan kelas '%s': %v", name, err))
			continue
		}
		cache.Classes = append(cache.Classes, CachedClass{Name: name})
		result.ok()
	}
	return result, nil
}

/* =========================================================
   Import user (siswa/guru)
   ========================================================= */

// Peran yang boleh dibuat lewat import massal. Admin/owner hanya bisa
// dibuat lewat endpoint manual, jadi baris dengan peran lain digagalkan.
var importableRoles = map[string]string{
	"student": constants.RoleStudent,
	"siswa":   constants.RoleStudent,
	"teacher": constants.RoleTeacher,
	"guru":    constants.RoleTeacher,
}

type UserWriter interface {
	FindUserEmailsBySchool(schoolID uuid.UUID) (map[string]bool, error)
	CreateUser(schoolID uuid.UUID, name, email, role, nisn string) error
}

func ImportUsers(writer UserWriter, schoolID uuid.UUID, rows []ImportRow, defaultRole string) (*ImportResult, error) {
	known, err := writer.FindUserEmailsBySchool(schoolID)
	if err != nil {
		log.Printf("[ERROR] gagal memuat email user untuk import: %v", err)
		return nil, err
	}

	result := &ImportResult{Errors: []RowFailure{}}
	for _, raw := range rows {
		row := NormalizeRow(raw)

		name := row.Field(aliasName)
		if name == "" {
			result.fail(raw, rowErr(ErrMissingField, "Kolom nama wajib diisi (Name/Nama)"))
			continue
		}
		email := strings.ToLower(row.Field(aliasEmail))
		if email == "" {
			result.fail(raw, rowErr(ErrMissingField, "Kolom email wajib diisi"))
			continue
		}

		if known[email] {
			// Email sudah terdaftar di sekolah ini; idempoten.
			result.ok()
			continue
		}

		role := strings.ToLower(row.Field(aliasRole))
		if role == "" {
			role = defaultRole
		} else if canon, ok := importableRoles[role]; ok {
			role = canon
		} else {
			result.fail(raw, rowErr(ErrInvalidRole,
				"Peran '%s' tidak dikenal; pilihan: student/siswa atau teacher/guru", row.Field(aliasRole)))
			continue
		}

		if err := writer.CreateUser(schoolID, name, email, role, row.Field(aliasNISN)); err != nil {
			result.fail(raw, rowErr(ErrPersistenceFailure, "Gagal menyimpan user '%s': %v", email, err))
			continue
		}
		known[email] = true
		result.ok()
	}
	return result, nil
}
