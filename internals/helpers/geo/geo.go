package geo

import "math"

// Radius bumi rata-rata (meter).
const earthRadiusM = 6371000.0

// Location adalah titik koordinat GPS (derajat desimal).
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceMeters menghitung jarak great-circle dua titik dengan formula
// Haversine. Simetris, nol untuk titik yang sama. Input di luar rentang
// lat/lon tidak divalidasi di sini; itu tanggung jawab pemanggil.
func DistanceMeters(a, b Location) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
