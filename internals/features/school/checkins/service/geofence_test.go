package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// Titik yang sama: nol.
	assert.InDelta(t, 0, HaversineMeters(-6.2, 106.8, -6.2, 106.8), 0.001)

	// Monas → Istiqlal, Jakarta: ± 600-700 m.
	d := HaversineMeters(-6.1754, 106.8272, -6.1702, 106.8316)
	assert.InDelta(t, 750, d, 150)

	// 1 derajat lintang ≈ 111 km.
	d = HaversineMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 500)
}

func TestWithinRadius(t *testing.T) {
	schoolLat, schoolLng := -6.2000, 106.8000

	ok, d := WithinRadius(schoolLat, schoolLng, schoolLat, schoolLng, 100)
	assert.True(t, ok)
	assert.InDelta(t, 0, d, 0.001)

	// ± 555 m ke utara: di luar radius 100 m, jarak ikut dilaporkan.
	ok, d = WithinRadius(schoolLat+0.005, schoolLng, schoolLat, schoolLng, 100)
	assert.False(t, ok)
	assert.Greater(t, d, 500.0)
	assert.Less(t, d, 600.0)

	// Radius longgar meloloskan titik yang sama.
	ok, _ = WithinRadius(schoolLat+0.005, schoolLng, schoolLat, schoolLng, 1000)
	assert.True(t, ok)
}
