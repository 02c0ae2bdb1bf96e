package encode

import "math"

// ReferenceZoom is the zoom level at which the base sizes apply.
const ReferenceZoom = 5

// Base sizes at the reference zoom.
const (
	baseRadiusMeters        = 1500
	baseElevation           = 6000
	baseHeatmapPixels       = 100
	baseRadiusMultiplier    = 8
	baseElevationMultiplier = 4
)

// Documented clamp bounds. The floors keep geometry from degenerating when
// zoomed far in; the multiplier caps keep it from swallowing the map when
// zoomed far out.
const (
	MinRadiusMeters          = 600
	MinElevationMultiplier   = 50
	MinHeatmapRadiusPixels   = 8
	MaxRadiusZoomMultiplier  = 30
	MaxElevationZoomMultiple = 12
)

// ViewScaling is the zoom-derived sizing shared by every layer build.
type ViewScaling struct {
	RadiusMeters        float64
	ElevationMultiplier float64
	HeatmapRadiusPixels float64
}

// ScalingForZoom derives sizes from the camera zoom. The exponential falloff
// 1.25^(reference-zoom) alone makes shapes either invisible zoomed out or
// absurd zoomed in, so a stepped multiplier that grows with discrete zoom-out
// levels compensates at the extremes, clamped to the documented caps.
func ScalingForZoom(zoom float64) ViewScaling {
	if math.IsNaN(zoom) {
		zoom = ReferenceZoom
	}
	scale := math.Pow(1.25, ReferenceZoom-zoom)

	levelsOut := math.Max(0, math.Ceil(ReferenceZoom-zoom))
	radiusZoomMultiplier := math.Min(MaxRadiusZoomMultiplier, baseRadiusMultiplier*(1+levelsOut))
	elevationZoomMultiplier := math.Min(MaxElevationZoomMultiple, baseElevationMultiplier*(1+levelsOut))

	return ViewScaling{
		RadiusMeters:        math.Max(MinRadiusMeters, math.Round(baseRadiusMeters*scale*radiusZoomMultiplier)),
		ElevationMultiplier: math.Max(MinElevationMultiplier, math.Round(baseElevation*scale*elevationZoomMultiplier)),
		HeatmapRadiusPixels: math.Max(MinHeatmapRadiusPixels, math.Round(baseHeatmapPixels*scale)),
	}
}

// PharmacyClusterZoomThreshold switches pharmacies between hexagonal
// clustering (below) and individual points (at or above).
const PharmacyClusterZoomThreshold = 8

// PharmacyClusterRadius sizes the clustering bins for the current zoom.
func PharmacyClusterRadius(zoom float64) float64 {
	return math.Max(8, 500000/math.Pow(4, zoom/2))
}

// PharmacyPointRadius sizes an individual pharmacy point by stock, clamped
// to 50..500 meters.
func PharmacyPointRadius(stock float64) float64 {
	return clamp(stock, 50, 500)
}
