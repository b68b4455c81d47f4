package service

import "math"

const earthRadiusM = 6371000.0

// HaversineMeters: jarak permukaan bumi antara dua koordinat, dalam meter.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// WithinRadius: true kalau posisi user masih di dalam radius geofence
// sekolah. Jarak dikembalikan juga untuk pesan error.
func WithinRadius(userLat, userLng, schoolLat, schoolLng, radiusM float64) (bool, float64) {
	d := HaversineMeters(userLat, userLng, schoolLat, schoolLng)
	return d <= radiusM, d
}
