// internals/features/school/checkins/service/clock.go
package service

import (
	"time"

	"sekolahku_backend/internals/configs"
)

// Zona waktu sekolah untuk batas hari absensi. Tanpa ini, check-in
// antara 00:00-07:00 WIB jatuh ke tanggal kalender kemarin (UTC).
func SchoolLocation() *time.Location {
	loc, err := time.LoadLocation(configs.GetEnv("APP_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}

// LocalDay memotong timestamp ke tanggal kalender pada zona waktu loc.
// Hasilnya midnight UTC supaya cocok dengan kolom date di Postgres.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}
