package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleRow(kelas, mapel, guru, hari, mulai, selesai string) ImportRow {
	return ImportRow{
		"Kelas": kelas, "Mapel": mapel, "Guru": guru,
		"Hari": hari, "JamMulai": mulai, "JamSelesai": selesai,
	}
}

func TestImportSchedules_Idempoten(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)
	schoolID := uuid.New()

	rows := []ImportRow{
		scheduleRow("7A", "Matematika", "", "senin", "8:00", "9:30"),
		scheduleRow("7A", "Matematika", "", "selasa", "10:00", "11:30"),
	}

	first, err := ImportSchedules(store, schoolID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)
	assert.Equal(t, 0, first.Failed)
	assert.Equal(t, 2, store.schedulesCreated)

	// File yang sama diimport ulang: semua baris jatuh ke update, tidak
	// ada jadwal baru.
	second, err := ImportSchedules(store, schoolID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Imported)
	assert.Equal(t, first.Failed, second.Failed)
	assert.Equal(t, 2, store.schedulesCreated)
	assert.Equal(t, 2, store.schedulesUpdated)
	assert.Len(t, store.schedules, 2)
}

func TestImportSchedules_JamDipadNol(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)

	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		scheduleRow("7A", "Matematika", "", "senin", "8:00", "9:30"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)
	assert.Equal(t, "08:00", store.schedules[0].StartTime)
	assert.Equal(t, "09:30", store.schedules[0].EndTime)
}

func TestImportSchedules_AutoCreateMapelSekaliPerJob(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	store.addClass("7B")
	store.addTeacher("Bu Sari", "sari@sekolah.id")

	// Dua baris menyebut mapel baru "Kimia": hanya satu record mapel dibuat,
	// baris kedua memakai id dari cache.
	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		scheduleRow("7A", "Kimia", "sari@sekolah.id", "senin", "08:00", "09:30"),
		scheduleRow("7B", "kimia", "sari@sekolah.id", "selasa", "08:00", "09:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, store.subjectsCreated)
}

func TestImportSchedules_AmbiguTidakDipersist(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)
	store.addTeacher("Pak Joko", "joko@sekolah.id", mtk)

	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		scheduleRow("7A", "Matematika", "", "senin", "08:00", "09:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 1, res.Failed)
	assert.Empty(t, store.schedules)
	assert.Contains(t, res.Errors[0].Message, "guru")
}

func TestImportSchedules_BatchParsial(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)
	schoolID := uuid.New()

	jamOK := []string{"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00"}
	var rows []ImportRow
	for _, jam := range jamOK {
		rows = append(rows, scheduleRow("7A", "Matematika", "", "senin", jam, "14:00"))
	}
	// 3 baris rusak: kelas tak dikenal, hari tak dikenal, jam rusak.
	badClass := scheduleRow("9Z", "Matematika", "", "senin", "07:00", "08:00")
	badDay := scheduleRow("7A", "Matematika", "", "funday", "07:00", "08:00")
	badTime := scheduleRow("7A", "Matematika", "", "selasa", "8:0", "09:00")
	rows = append(rows, badClass, badDay, badTime)

	res, err := ImportSchedules(store, schoolID, rows)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Imported)
	assert.Equal(t, 3, res.Failed)
	require.Len(t, res.Errors, 3)

	// Field row pada error = baris mentah aslinya.
	assert.Equal(t, badClass, res.Errors[0].Row)
	assert.Equal(t, badDay, res.Errors[1].Row)
	assert.Equal(t, badTime, res.Errors[2].Row)
	assert.Contains(t, res.Errors[1].Message, "funday")
}

func TestImportSchedules_KolomWajibKosong(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")

	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		{"Mapel": "IPA", "Hari": "senin", "JamMulai": "08:00", "JamSelesai": "09:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Contains(t, res.Errors[0].Message, "kelas")
}

func TestImportSchedules_RepairDelimiterSampaiPersist(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)

	// CSV nyasar jadi satu kolom: header dan nilai dipecah dulu, lalu
	// baris diproses seperti biasa.
	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		{"Kelas;Mapel;Hari;JamMulai;JamSelesai": "7A;Matematika;senin;08:00;09:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 0, res.Failed)
}

func TestImportSchedules_GagalMuatCacheMenggugurkanJob(t *testing.T) {
	store := newFakeStore()
	store.failLoad = true

	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		scheduleRow("7A", "Matematika", "", "senin", "08:00", "09:00"),
	})
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestImportClasses_IdempotenCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")

	res, err := ImportClasses(store, store, uuid.New(), []ImportRow{
		{"Nama": "7a"},
		{"Nama": "8B"},
		{"Nama": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)
	// "7a" sudah ada, hanya "8B" yang benar-benar dibuat.
	assert.Len(t, store.classes, 2)
}

type fakeUserWriter struct {
	known   map[string]bool
	created []string
	fail    bool
}

func (f *fakeUserWriter) FindUserEmailsBySchool(uuid.UUID) (map[string]bool, error) {
	if f.fail {
		return nil, errors.New("koneksi database putus")
	}
	return f.known, nil
}

func (f *fakeUserWriter) CreateUser(_ uuid.UUID, _, email, role, _ string) error {
	f.created = append(f.created, email+":"+role)
	return nil
}

func TestImportUsers(t *testing.T) {
	w := &fakeUserWriter{known: map[string]bool{"ada@sekolah.id": true}}

	res, err := ImportUsers(w, uuid.New(), []ImportRow{
		{"Nama": "Siswa Baru", "Email": "Baru@Sekolah.id"},
		{"Nama": "Sudah Ada", "Email": "ada@sekolah.id"},
		{"Nama": "Tanpa Email"},
	}, "student")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)
	// Email dinormalisasi lowercase; role default dipakai.
	assert.Equal(t, []string{"baru@sekolah.id:student"}, w.created)
}

func TestImportUsers_PeranDiLuarDaftarGagal(t *testing.T) {
	w := &fakeUserWriter{known: map[string]bool{}}

	res, err := ImportUsers(w, uuid.New(), []ImportRow{
		{"Nama": "Penyusup", "Email": "x@sekolah.id", "Peran": "owner"},
		{"Nama": "Salah Ketik", "Email": "y@sekolah.id", "Peran": "gurru"},
		{"Nama": "Guru Valid", "Email": "z@sekolah.id", "Peran": "Guru"},
	}, "student")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Failed)
	// Baris owner/typo gagal tanpa menyentuh writer; alias Indonesia
	// dikanonkan ke role platform.
	assert.Equal(t, []string{"z@sekolah.id:teacher"}, w.created)
	for _, e := range res.Errors {
		assert.Contains(t, e.Message, "tidak dikenal")
	}
}

func TestImportSchedules_GagalSimpanSatuBarisLanjut(t *testing.T) {
	store := newFakeStore()
	store.addClass("7A")
	mtk := store.addSubject("Matematika", "MTK")
	store.addTeacher("Bu Sari", "sari@sekolah.id", mtk)

	store.failCreates = 1
	res, err := ImportSchedules(store, uuid.New(), []ImportRow{
		scheduleRow("7A", "Matematika", "", "senin", "08:00", "09:00"),
		scheduleRow("7A", "Matematika", "", "selasa", "08:00", "09:00"),
	})
	require.NoError(t, err)

	// Baris pertama ditolak storage, baris berikutnya tetap masuk.
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "constraint violation")
	assert.Equal(t, "senin", res.Errors[0].Row["Hari"])
	assert.Equal(t, 1, store.schedulesCreated)
}
