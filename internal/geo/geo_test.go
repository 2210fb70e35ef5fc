package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sydney    = Point{Latitude: -33.8688, Longitude: 151.2093}
	melbourne = Point{Latitude: -37.8136, Longitude: 144.9631}
)

func TestHaversineZeroAndSymmetry(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(sydney, sydney))
	assert.Equal(t, Haversine(sydney, melbourne), Haversine(melbourne, sydney))
}

func TestHaversineSydneyMelbourne(t *testing.T) {
	assert.InDelta(t, 713, Haversine(sydney, melbourne), 5)
}

// Every point within the radius must land inside the bounding box. The
// box may admit outsiders (it is a square around a circle), never the
// other way around.
func TestBoundingBoxContainment(t *testing.T) {
	const radius = 50.0
	box := BoxAround(sydney, radius)

	for dLat := -0.6; dLat <= 0.6; dLat += 0.05 {
		for dLng := -0.7; dLng <= 0.7; dLng += 0.05 {
			pt := Point{Latitude: sydney.Latitude + dLat, Longitude: sydney.Longitude + dLng}
			if Haversine(sydney, pt) <= radius {
				assert.True(t, box.Contains(pt),
					"point at %.1fkm should be inside the box", Haversine(sydney, pt))
			}
		}
	}
}

func TestBoundingBoxLongitudeWidensWithLatitude(t *testing.T) {
	equatorBox := BoxAround(Point{Latitude: 0, Longitude: 100}, 100)
	hobartBox := BoxAround(Point{Latitude: -42.88, Longitude: 147.33}, 100)

	equatorWidth := equatorBox.MaxLng - equatorBox.MinLng
	hobartWidth := hobartBox.MaxLng - hobartBox.MinLng

	// Meridians converge away from the equator, so the same radius needs
	// a wider longitude window further south
	assert.Greater(t, hobartWidth, equatorWidth)

	// Latitude span is latitude-independent
	assert.InDelta(t, equatorBox.MaxLat-equatorBox.MinLat, hobartBox.MaxLat-hobartBox.MinLat, 1e-9)
}
