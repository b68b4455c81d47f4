package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow_PerbaikanDelimiter(t *testing.T) {
	// CSV yang terbaca sebagai satu kolom Excel.
	got := NormalizeRow(ImportRow{"A;B;C": "1;2;3"})
	assert.Equal(t, ImportRow{"A": "1", "B": "2", "C": "3"}, got)

	got = NormalizeRow(ImportRow{"Kelas,Mapel": " 7A , Matematika "})
	assert.Equal(t, ImportRow{"Kelas": "7A", "Mapel": "Matematika"}, got)
}

func TestNormalizeRow_NilaiKurangDariHeader(t *testing.T) {
	got := NormalizeRow(ImportRow{"A;B;C": "1;2"})
	assert.Equal(t, ImportRow{"A": "1", "B": "2", "C": ""}, got)
}

func TestNormalizeRow_BarisNormalLewatApaAdanya(t *testing.T) {
	in := ImportRow{"Kelas": "7A", "Mapel": "IPA"}
	assert.Equal(t, in, NormalizeRow(in))

	// Satu kolom tapi tanpa delimiter: tidak disentuh.
	in = ImportRow{"Kelas": "7A"}
	assert.Equal(t, in, NormalizeRow(in))
}

func TestField_AliasHeader(t *testing.T) {
	row := ImportRow{"NamaKelas": "8B"}
	assert.Equal(t, "8B", row.Field(aliasClass))

	row = ImportRow{"kelas": "8B"}
	assert.Equal(t, "8B", row.Field(aliasClass))

	row = ImportRow{"Mata Pelajaran": "IPA"}
	assert.Equal(t, "IPA", row.Field(aliasSubject))

	// Alias pertama yang tidak kosong menang.
	row = ImportRow{"ClassName": "", "Kelas": "9C"}
	assert.Equal(t, "9C", row.Field(aliasClass))

	row = ImportRow{"Hari": ""}
	assert.Equal(t, "", row.Field(aliasDay))
}
