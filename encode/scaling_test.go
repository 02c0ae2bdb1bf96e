package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalingAtReferenceZoom(t *testing.T) {
	s := ScalingForZoom(ReferenceZoom)
	assert.Equal(t, float64(12000), s.RadiusMeters)       // 1500 * 8
	assert.Equal(t, float64(24000), s.ElevationMultiplier) // 6000 * 4
	assert.Equal(t, float64(100), s.HeatmapRadiusPixels)
}

func TestRadiusNonIncreasingInZoom(t *testing.T) {
	prev := ScalingForZoom(0).RadiusMeters
	for zoom := 0.5; zoom <= 20; zoom += 0.5 {
		cur := ScalingForZoom(zoom).RadiusMeters
		assert.LessOrEqual(t, cur, prev, "radius grew between zoom %f and %f", zoom-0.5, zoom)
		prev = cur
	}
}

func TestScalingFloors(t *testing.T) {
	s := ScalingForZoom(22)
	assert.Equal(t, float64(MinRadiusMeters), s.RadiusMeters)
	assert.Equal(t, float64(MinElevationMultiplier), s.ElevationMultiplier)
	assert.Equal(t, float64(MinHeatmapRadiusPixels), s.HeatmapRadiusPixels)
}

func TestScalingMultiplierCaps(t *testing.T) {
	// Deep zoom-out: stepped multiplier must be capped, so the radius stays
	// bounded by base * scale * cap.
	zoom := 0.0
	s := ScalingForZoom(zoom)
	scale := 1.0
	for i := 0; i < ReferenceZoom; i++ {
		scale *= 1.25
	}
	assert.LessOrEqual(t, s.RadiusMeters, 1500*scale*MaxRadiusZoomMultiplier+1)
	assert.LessOrEqual(t, s.ElevationMultiplier, 6000*scale*MaxElevationZoomMultiple+1)
}

func TestPharmacyClusterRadiusFloor(t *testing.T) {
	assert.Equal(t, float64(8), PharmacyClusterRadius(20))
	assert.Greater(t, PharmacyClusterRadius(4), PharmacyClusterRadius(8))
}

func TestPharmacyPointRadiusClamped(t *testing.T) {
	assert.Equal(t, float64(50), PharmacyPointRadius(0))
	assert.Equal(t, float64(250), PharmacyPointRadius(250))
	assert.Equal(t, float64(500), PharmacyPointRadius(10000))
}

func TestElevationTiers(t *testing.T) {
	tiers := DefaultSaturationTiers
	assert.Equal(t, 200.0, tiers.Elevation(10, true))
	assert.Equal(t, 1500.0, tiers.Elevation(33, true))
	assert.Equal(t, 5000.0, tiers.Elevation(66, true))
	assert.Equal(t, 5000.0, tiers.Elevation(100, true))
	assert.Equal(t, 20.0, tiers.Elevation(0, false))
}

func TestVulnerabilityElevationSuperlinear(t *testing.T) {
	low := VulnerabilityElevation(18, true)
	high := VulnerabilityElevation(27, true)
	// a 1.5x percentage difference produces a far larger height ratio
	assert.Greater(t, high/low, 5.0)
	assert.Equal(t, 0.0, VulnerabilityElevation(0, false))
}

func TestDepotElevationRange(t *testing.T) {
	assert.Equal(t, 20.0, DepotElevation(0, 100))
	assert.Equal(t, 50.0, DepotElevation(100, 100))
	assert.Equal(t, 20.0, DepotElevation(10, 0))
}
