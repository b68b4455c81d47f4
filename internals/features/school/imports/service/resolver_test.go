package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, store *fakeStore, autoCreate bool) *Resolver {
	t.Helper()
	schoolID := uuid.New()
	cache, err := LoadReferenceCache(store, schoolID)
	require.NoError(t, err)
	return &Resolver{Store: store, Cache: cache, SchoolID: schoolID, AutoCreateSubject: autoCreate}
}

func TestResolveClass_ExactCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	id := store.addClass("7A")
	r := newResolver(t, store, true)

	cls, rerr := r.ResolveClass("7a")
	require.Nil(t, rerr)
	assert.Equal(t, id, cls.ID)

	// Tidak ada fuzzy match untuk kelas: "7" saja gagal.
	_, rerr = r.ResolveClass("7")
	require.NotNil(t, rerr)
	assert.Equal(t, ErrUnknownClass, rerr.Kind)
}

func TestResolveSubject_ExactLaluContainment(t *testing.T) {
	store := newFakeStore()
	id := store.addSubject("Matematika", "MTK01")
	r := newResolver(t, store, false)

	s, rerr := r.ResolveSubject("matematika")
	require.Nil(t, rerr)
	assert.Equal(t, id, s.ID)

	s, rerr = r.ResolveSubject("mtk01")
	require.Nil(t, rerr)
	assert.Equal(t, id, s.ID)

	// Format template: nama + kode dalam satu sel.
	s, rerr = r.ResolveSubject("MATEMATIKA (MTK01)")
	require.Nil(t, rerr)
	assert.Equal(t, id, s.ID)

	// Kode hanya ditulis sebagian; arah containment sebaliknya.
	s, rerr = r.ResolveSubject("MTK")
	require.Nil(t, rerr)
	assert.Equal(t, id, s.ID)
}

func TestResolveSubject_AutoCreateSesuaiKebijakan(t *testing.T) {
	store := newFakeStore()
	r := newResolver(t, store, false)

	_, rerr := r.ResolveSubject("Kimia")
	require.NotNil(t, rerr)
	assert.Equal(t, ErrUnknownSubject, rerr.Kind)
	assert.Zero(t, store.subjectsCreated)

	r = newResolver(t, store, true)
	s, rerr := r.ResolveSubject("Kimia")
	require.Nil(t, rerr)
	assert.Equal(t, "Kimia", s.Name)
	assert.Equal(t, "KIM", s.Code)
	assert.Equal(t, 1, store.subjectsCreated)

	// Baris kedua dalam job yang sama memakai cache, bukan create lagi.
	s2, rerr := r.ResolveSubject("kimia")
	require.Nil(t, rerr)
	assert.Equal(t, s.ID, s2.ID)
	assert.Equal(t, 1, store.subjectsCreated)
}

func TestResolveTeacher_EmailOtoritatif(t *testing.T) {
	store := newFakeStore()
	subjectID := store.addSubject("Fisika", "FIS")
	teacherID := store.addTeacher("Pak Budi", "budi@sekolah.id")
	r := newResolver(t, store, true)
	subject := r.Cache.SubjectByID(subjectID)

	tch, rerr := r.ResolveTeacher("budi@sekolah.id", subject)
	require.Nil(t, rerr)
	assert.Equal(t, teacherID, tch.ID)
	// Match eksplisit sekalian membuat link guru-mapel.
	assert.True(t, store.links[teacherID.String()+"/"+subjectID.String()])

	// Bentuk "Nama [email]" juga diterima.
	tch, rerr = r.ResolveTeacher("Budi Santoso [budi@sekolah.id]", subject)
	require.Nil(t, rerr)
	assert.Equal(t, teacherID, tch.ID)

	_, rerr = r.ResolveTeacher("siapa@sekolah.id", subject)
	require.NotNil(t, rerr)
	assert.Equal(t, ErrUnknownTeacher, rerr.Kind)
}

func TestResolveTeacher_AutoLinkBySubject(t *testing.T) {
	store := newFakeStore()
	subjectID := store.addSubject("Matematika", "MTK")
	teacherID := store.addTeacher("Bu Sari", "sari@sekolah.id", subjectID)
	store.addTeacher("Pak Joko", "joko@sekolah.id")
	r := newResolver(t, store, true)
	subject := r.Cache.SubjectByID(subjectID)

	// Tepat satu guru terhubung: terpilih otomatis.
	tch, rerr := r.ResolveTeacher("", subject)
	require.Nil(t, rerr)
	assert.Equal(t, teacherID, tch.ID)
}

func TestResolveTeacher_AutoLinkAmbiguDanKosong(t *testing.T) {
	store := newFakeStore()
	mtk := store.addSubject("Matematika", "MTK")
	ipa := store.addSubject("IPA", "IPA")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)
	store.addTeacher("Pak Joko", "joko@sekolah.id", mtk)
	r := newResolver(t, store, true)

	_, rerr := r.ResolveTeacher("", r.Cache.SubjectByID(mtk))
	require.NotNil(t, rerr)
	assert.Equal(t, ErrAmbiguousTeacher, rerr.Kind)
	assert.Contains(t, rerr.Message, "email")

	_, rerr = r.ResolveTeacher("", r.Cache.SubjectByID(ipa))
	require.NotNil(t, rerr)
	assert.Equal(t, ErrUnknownTeacher, rerr.Kind)
}

func TestSubjectCodeFor(t *testing.T) {
	assert.Equal(t, "KIM", subjectCodeFor("Kimia"))
	assert.Equal(t, "IPA", subjectCodeFor("ipa"))
	assert.Equal(t, "PK", subjectCodeFor("pk"))
	assert.Equal(t, "SUB", subjectCodeFor("  "))
}
