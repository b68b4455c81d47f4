package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalDay_DiniHariWIBTetapHariIni(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)

	// 18:30 UTC = 01:30 WIB hari berikutnya; tanggal absensi harus
	// ikut kalender sekolah, bukan kalender UTC.
	at := time.Date(2026, 1, 10, 18, 30, 0, 0, time.UTC)
	day := LocalDay(at, wib)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), day)

	// Siang hari kedua zona sepakat.
	at = time.Date(2026, 1, 10, 5, 0, 0, 0, time.UTC) // 12:00 WIB
	day = LocalDay(at, wib)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), day)
}

func TestLocalDay_MenitDetikDibuang(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	at := time.Date(2026, 3, 2, 0, 59, 59, 123, wib)
	day := LocalDay(at, wib)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day)
}
