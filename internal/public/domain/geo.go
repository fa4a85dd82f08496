package domain

import "math"

// EarthRadiusKm は距離計算で使用する地球の平均半径 (km)。
const EarthRadiusKm = 6371.0

// Point represents a WGS84 coordinate pair.
type Point struct {
	Longitude float64
	Latitude  float64
}

// DistanceKm は 2 点間の大円距離を haversine 公式で求める。
// 座標の範囲チェックは呼び出し側の責務であり、ここでは行わない。
func DistanceKm(a, b Point) float64 {
	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Round2 rounds to two decimal places. Stored ratings always pass through here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidLongitude reports whether v is within [-180, 180].
func ValidLongitude(v float64) bool {
	return v >= -180 && v <= 180
}

// ValidLatitude reports whether v is within [-90, 90].
func ValidLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
