package service

import "strings"

// ImportRow: satu baris spreadsheet, header → nilai mentah. Hanya hidup
// selama satu request import.
type ImportRow map[string]string

// Alias header per field logis. Urutan menentukan: alias non-kosong
// pertama yang menang.
var (
	aliasClass   = []string{"ClassName", "Kelas", "NamaKelas"}
	aliasSubject = []string{"Subject", "Mapel", "MataPelajaran"}
	aliasTeacher = []string{"Teacher", "Guru", "Email Guru", "TeacherEmail", "EmailGuru"}
	aliasDay     = []string{"Day", "Hari"}
	aliasStart   = []string{"StartTime", "JamMulai", "Jam Mulai"}
	aliasEnd     = []string{"EndTime", "JamSelesai", "Jam Selesai"}

	aliasName  = []string{"Name", "Nama"}
	aliasEmail = []string{"Email"}
	aliasRole  = []string{"Role", "Peran"}
	aliasLevel = []string{"Level", "Tingkat"}
	aliasNISN  = []string{"NISN"}
)

// NormalizeRow memperbaiki artefak CSV-terbaca-satu-kolom: kalau baris hanya
// punya satu key dan key itu mengandung koma/titik-koma, header dan nilainya
// dipecah dengan delimiter yang sama lalu dirakit ulang. Selain itu baris
// diteruskan apa adanya. Tidak pernah gagal; baris aneh biarlah jatuh di
// tahap resolusi.
func NormalizeRow(row ImportRow) ImportRow {
	if len(row) != 1 {
		return row
	}

	var key, val string
	for k, v := range row {
		key, val = k, v
	}

	delim := ""
	switch {
	case strings.Contains(key, ";"):
		delim = ";"
	case strings.Contains(key, ","):
		delim = ","
	default:
		return row
	}

	headers := strings.Split(key, delim)
	values := strings.Split(val, delim)

	out := make(ImportRow, len(headers))
	for i, h := range headers {
		v := ""
		if i < len(values) {
			v = strings.TrimSpace(values[i])
		}
		out[strings.TrimSpace(h)] = v
	}
	return out
}

// Field mengambil nilai non-kosong pertama dari daftar alias header,
// case-insensitive terhadap spasi dan kapital.
func (r ImportRow) Field(aliases []string) string {
	for _, a := range aliases {
		want := canonKey(a)
		for k, v := range r {
			if canonKey(k) == want && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

func canonKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}
