package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Hari diterima dalam tiga kosakata sekaligus: nama Indonesia, nama Inggris,
// dan angka literal 0-6 (0 = Minggu). Semuanya dipetakan ke domain 0-6.
var dayTokens = map[string]int{
	"minggu": 0, "senin": 1, "selasa": 2, "rabu": 3,
	"kamis": 4, "jumat": 5, "jum'at": 5, "sabtu": 6,

	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,

	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6,
}

// ParseDayOfWeek memetakan token hari ke 0-6. Token di luar kosakata adalah
// kegagalan keras, tidak pernah default diam-diam.
func ParseDayOfWeek(token string) (int, error) {
	norm := strings.ToLower(strings.TrimSpace(token))
	if day, ok := dayTokens[norm]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("hari '%s' tidak dikenali (pakai Senin-Minggu, Monday-Sunday, atau 0-6)", token)
}

// NormalizeClock memvalidasi jam H:MM / HH:MM dan mengembalikan bentuk HH:MM
// (jam satu digit di-pad nol). Menit wajib tepat dua digit.
func NormalizeClock(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("format jam '%s' tidak valid (pakai HH:MM)", raw)
	}
	hh, mm := parts[0], parts[1]
	if len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return "", fmt.Errorf("format jam '%s' tidak valid (pakai HH:MM)", raw)
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return "", fmt.Errorf("format jam '%s' tidak valid (pakai HH:MM)", raw)
	}
	if len(hh) == 1 {
		hh = "0" + hh
	}
	return hh + ":" + mm, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
