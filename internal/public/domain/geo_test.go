package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmIdentity(t *testing.T) {
	p := Point{Longitude: 139.7671, Latitude: 35.6812}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKmSymmetry(t *testing.T) {
	tokyo := Point{Longitude: 139.7671, Latitude: 35.6812}
	osaka := Point{Longitude: 135.4959, Latitude: 34.7025}

	forward := DistanceKm(tokyo, osaka)
	backward := DistanceKm(osaka, tokyo)
	assert.InDelta(t, forward, backward, 1e-6)
}

func TestDistanceKmKnownPairs(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
		delta    float64
	}{
		{
			name:     "東京-大阪",
			a:        Point{Longitude: 139.7671, Latitude: 35.6812},
			b:        Point{Longitude: 135.4959, Latitude: 34.7025},
			expected: 403,
			delta:    5,
		},
		{
			name:     "赤道上の経度1度",
			a:        Point{Longitude: 0, Latitude: 0},
			b:        Point{Longitude: 1, Latitude: 0},
			expected: 111.19,
			delta:    0.5,
		},
		{
			name:     "対蹠点",
			a:        Point{Longitude: 0, Latitude: 0},
			b:        Point{Longitude: 180, Latitude: 0},
			expected: math.Pi * EarthRadiusKm,
			delta:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceKm(tt.a, tt.b), tt.delta)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, Round2(4.3333333))
	assert.Equal(t, 4.67, Round2(4.666666))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 5.0, Round2(4.999))
}

func TestValidCoordinateRanges(t *testing.T) {
	assert.True(t, ValidLongitude(180))
	assert.True(t, ValidLongitude(-180))
	assert.False(t, ValidLongitude(180.001))
	assert.True(t, ValidLatitude(90))
	assert.True(t, ValidLatitude(-90))
	assert.False(t, ValidLatitude(-90.001))
}
