package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// KmPerDegreeLat is how many kilometers one degree of latitude spans.
const KmPerDegreeLat = 111.32

// Point is a resolved (lat, lng) pair. Ephemeral, never persisted.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Haversine returns the great-circle distance in kilometers between p and q.
func Haversine(p, q Point) float64 {
	lat1 := p.Latitude * math.Pi / 180
	lat2 := q.Latitude * math.Pi / 180
	dLat := (q.Latitude - p.Latitude) * math.Pi / 180
	dLng := (q.Longitude - p.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a rectangular lat/lng window around a center point.
// It over-selects relative to the circle it wraps, callers must still
// apply the exact distance check.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround computes the bounding box for a circle of radiusKm around center.
// Longitude degrees shrink towards the poles, hence the cos(lat) correction.
func BoxAround(center Point, radiusKm float64) BoundingBox {
	latDelta := radiusKm / KmPerDegreeLat
	lngDelta := radiusKm / (KmPerDegreeLat * math.Cos(center.Latitude*math.Pi/180))
	if lngDelta < 0 {
		lngDelta = -lngDelta
	}
	return BoundingBox{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLng: center.Longitude - lngDelta,
		MaxLng: center.Longitude + lngDelta,
	}
}

// Contains reports whether pt falls inside the box.
func (b BoundingBox) Contains(pt Point) bool {
	return pt.Latitude >= b.MinLat && pt.Latitude <= b.MaxLat &&
		pt.Longitude >= b.MinLng && pt.Longitude <= b.MaxLng
}
