package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek_TigaKosakata(t *testing.T) {
	// "senin", "monday", dan "1" harus jatuh ke hari yang sama.
	for _, token := range []string{"senin", "Senin", "SENIN", "monday", "Monday", "1"} {
		day, err := ParseDayOfWeek(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, 1, day, "token %q", token)
	}

	day, err := ParseDayOfWeek("minggu")
	require.NoError(t, err)
	assert.Equal(t, 0, day)

	day, err = ParseDayOfWeek("sunday")
	require.NoError(t, err)
	assert.Equal(t, 0, day)

	day, err = ParseDayOfWeek("0")
	require.NoError(t, err)
	assert.Equal(t, 0, day)
}

func TestParseDayOfWeek_TokenAsing(t *testing.T) {
	for _, token := range []string{"funday", "7", "-1", "", "sen in"} {
		_, err := ParseDayOfWeek(token)
		assert.Error(t, err, "token %q", token)
	}
	_, err := ParseDayOfWeek("funday")
	assert.Contains(t, err.Error(), "funday")
}

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"8:00":   "08:00",
		"08:00":  "08:00",
		"7:05":   "07:05",
		"23:59":  "23:59",
		"0:00":   "00:00",
		" 9:30 ": "09:30",
	}
	for in, want := range cases {
		got, err := NormalizeClock(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizeClock_Malformed(t *testing.T) {
	for _, in := range []string{"8:0", "8.00", "800", "24:00", "12:60", "ab:cd", "8:000", ":"} {
		_, err := NormalizeClock(in)
		assert.Error(t, err, "input %q", in)
	}
}
