package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

/* =========================================================
   Error bertipe per baris
   Semua non-fatal untuk batch; importer menangkap dan lanjut.
   ========================================================= */

type RowErrorKind string

const (
	ErrMissingField       RowErrorKind = "MISSING_FIELD"
	ErrUnknownClass       RowErrorKind = "UNKNOWN_CLASS"
	ErrUnknownSubject     RowErrorKind = "UNKNOWN_SUBJECT"
	ErrAmbiguousTeacher   RowErrorKind = "AMBIGUOUS_TEACHER"
	ErrUnknownTeacher     RowErrorKind = "UNKNOWN_TEACHER"
	ErrInvalidDay         RowErrorKind = "INVALID_DAY"
	ErrInvalidTimeFormat  RowErrorKind = "INVALID_TIME_FORMAT"
	ErrInvalidRole        RowErrorKind = "INVALID_ROLE"
	ErrPersistenceFailure RowErrorKind = "PERSISTENCE_FAILURE"
)

type RowError struct {
	Kind    RowErrorKind
	Message string
}

func (e *RowError) Error() string { return e.Message }

func rowErr(kind RowErrorKind, format string, args ...any) *RowError {
	return &RowError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

/* =========================================================
   Resolver: teks bebas dari spreadsheet → id entitas di cache
   ========================================================= */

type Resolver struct {
	Store    Store
	Cache    *ReferenceCache
	SchoolID uuid.UUID

	// AutoCreateSubject: hanya import jadwal yang boleh membuat mapel baru;
	// import kelas/user tidak.
	AutoCreateSubject bool
}

// ResolveClass: exact match case-insensitive saja. Kelas tidak pernah
// dibuat otomatis dari import jadwal.
func (r *Resolver) ResolveClass(name string) (*CachedClass, *RowError) {
	if cls := r.Cache.ClassByName(name); cls != nil {
		return cls, nil
	}
	msg := fmt.Sprintf("Kelas '%s' tidak ditemukan", name)
	if hint := r.suggestClass(name); hint != "" {
		msg += fmt.Sprintf(" (mungkin maksudnya '%s'?)", hint)
	}
	return nil, &RowError{Kind: ErrUnknownClass, Message: msg}
}

// ResolveSubject: exact (nama/kode, case-insensitive) → containment
// (toleran format template seperti "MATEMATIKA (MTK01)") → auto-create
// kalau kebijakan import mengizinkan.
func (r *Resolver) ResolveSubject(token string) (*CachedSubject, *RowError) {
	norm := strings.ToLower(strings.TrimSpace(token))

	for i := range r.Cache.Subjects {
		s := &r.Cache.Subjects[i]
		if strings.ToLower(s.Name) == norm || strings.ToLower(s.Code) == norm {
			return s, nil
		}
	}
	for i := range r.Cache.Subjects {
		s := &r.Cache.Subjects[i]
		name, code := strings.ToLower(s.Name), strings.ToLower(s.Code)
		if strings.Contains(norm, name) || strings.Contains(name, norm) ||
			(code != "" && (strings.Contains(norm, code) || strings.Contains(code, norm))) {
			return s, nil
		}
	}

	if !r.AutoCreateSubject {
		return nil, rowErr(ErrUnknownSubject, "Mapel '%s' tidak ditemukan", token)
	}

	name := strings.TrimSpace(token)
	created, err := r.Store.CreateSubject(r.SchoolID, name, subjectCodeFor(name))
	if err != nil {
		return nil, rowErr(ErrPersistenceFailure, "Gagal membuat mapel '%s': %v", name, err)
	}
	r.Cache.AddSubject(created)
	return &r.Cache.Subjects[len(r.Cache.Subjects)-1], nil
}

// ResolveTeacher: email eksplisit (termasuk bentuk "Nama [email]") bersifat
// otoritatif. Tanpa email, coba nama persis; terakhir auto-link-by-subject
// yang mensyaratkan tepat satu kandidat.
func (r *Resolver) ResolveTeacher(token string, subject *CachedSubject) (*CachedTeacher, *RowError) {
	token = strings.TrimSpace(token)

	if token != "" {
		email := extractEmail(token)
		if email != "" {
			for i := range r.Cache.Teachers {
				if r.Cache.Teachers[i].Email == email {
					t := &r.Cache.Teachers[i]
					if err := r.ensureLink(t, subject); err != nil {
						return nil, err
					}
					return t, nil
				}
			}
			return nil, rowErr(ErrUnknownTeacher, "Guru dengan email '%s' tidak ditemukan", email)
		}

		want := strings.ToLower(token)
		for i := range r.Cache.Teachers {
			if strings.ToLower(r.Cache.Teachers[i].Name) == want {
				t := &r.Cache.Teachers[i]
				if err := r.ensureLink(t, subject); err != nil {
					return nil, err
				}
				return t, nil
			}
		}
		msg := fmt.Sprintf("Guru '%s' tidak ditemukan", token)
		if hint := r.suggestTeacher(token); hint != "" {
			msg += fmt.Sprintf(" (mungkin maksudnya '%s'?)", hint)
		}
		return nil, &RowError{Kind: ErrUnknownTeacher, Message: msg}
	}

	// Auto-link by subject: cari guru yang sudah terhubung ke mapel ini.
	var candidates []*CachedTeacher
	for i := range r.Cache.Teachers {
		if r.Cache.Teachers[i].HasSubject(subject.ID) {
			candidates = append(candidates, &r.Cache.Teachers[i])
		}
	}
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return nil, rowErr(ErrUnknownTeacher,
			"Tidak ada guru yang terhubung ke mapel '%s'; isi kolom email guru", subject.Name)
	default:
		return nil, rowErr(ErrAmbiguousTeacher,
			"Ada %d guru untuk mapel '%s'; isi kolom email guru untuk memilih", len(candidates), subject.Name)
	}
}

// ensureLink: guru yang di-match eksplisit tapi belum terhubung ke mapel
// resolved akan di-link sekalian (persist + update cache).
func (r *Resolver) ensureLink(t *CachedTeacher, subject *CachedSubject) *RowError {
	if subject == nil || t.HasSubject(subject.ID) {
		return nil
	}
	if err := r.Store.LinkTeacherToSubject(r.SchoolID, t.ID, subject.ID); err != nil {
		return rowErr(ErrPersistenceFailure, "Gagal menghubungkan guru '%s' ke mapel '%s': %v", t.Name, subject.Name, err)
	}
	r.Cache.AddTeacherLink(t.ID, subject.ID)
	return nil
}

// suggestClass / suggestTeacher hanya memperkaya pesan error dengan
// kandidat terdekat; tidak pernah dipakai untuk resolusi otomatis.
func (r *Resolver) suggestClass(name string) string {
	names := make([]string, 0, len(r.Cache.Classes))
	for _, c := range r.Cache.Classes {
		names = append(names, c.Name)
	}
	return closest(name, names)
}

func (r *Resolver) suggestTeacher(name string) string {
	names := make([]string, 0, len(r.Cache.Teachers))
	for _, t := range r.Cache.Teachers {
		names = append(names, t.Name)
	}
	return closest(name, names)
}

func closest(input string, pool []string) string {
	matches := fuzzy.RankFindNormalizedFold(input, pool)
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best.Target
}

// extractEmail mengambil email dari token: "guru@sekolah.id" langsung, atau
// "Bu Sari [sari@sekolah.id]" diambil isi kurung sikunya.
func extractEmail(token string) string {
	if i := strings.Index(token, "["); i >= 0 {
		if j := strings.Index(token[i:], "]"); j > 0 {
			inner := strings.TrimSpace(token[i+1 : i+j])
			if strings.Contains(inner, "@") {
				return inner
			}
		}
		return ""
	}
	if strings.Contains(token, "@") && !strings.Contains(token, " ") {
		return token
	}
	return ""
}

// subjectCodeFor: kode uppercase dari 3 karakter pertama nama mapel.
func subjectCodeFor(name string) string {
	runes := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	if len(runes) == 0 {
		return "SUB"
	}
	return string(runes)
}
