package encode

import "math"

// ElevationTiers is a 3-step stepped elevation scale. Stepped rather than
// continuous so that severity tiers stay legible at a glance; the boundary
// values are presentation constants, not domain law, hence configurable.
type ElevationTiers struct {
	LowMax    float64 // values below this are the low tier
	MediumMax float64 // values below this are the medium tier
	Low       float64
	Medium    float64
	High      float64
	Missing   float64 // rendered when the value is absent
}

// DefaultSaturationTiers is the department alert extrusion used by the
// boundary layer.
var DefaultSaturationTiers = ElevationTiers{
	LowMax:    33,
	MediumMax: 66,
	Low:       200,
	Medium:    1500,
	High:      5000,
	Missing:   20,
}

// Elevation maps a 0-100 value onto the tier heights.
func (t ElevationTiers) Elevation(pct float64, ok bool) float64 {
	if !ok || math.IsNaN(pct) {
		return t.Missing
	}
	clamped := clamp(pct, 0, 100)
	switch {
	case clamped < t.LowMax:
		return t.Low
	case clamped < t.MediumMax:
		return t.Medium
	default:
		return t.High
	}
}

// VulnerabilityElevationScale is the K of the population extrusion formula.
const VulnerabilityElevationScale = 200

// VulnerabilityElevation exaggerates small differences in the 65+ percentage
// with a superlinear curve, (pct/10)^5 * K. This is intentional for this one
// layer only; other layers keep stepped tiers.
func VulnerabilityElevation(pct float64, ok bool) float64 {
	if !ok {
		return 0
	}
	return math.Pow(pct/10, 5) * VulnerabilityElevationScale
}

// HospitalElevation scales a saturation percentage by the zoom-derived
// elevation multiplier.
func HospitalElevation(saturation, elevationMultiplier float64) float64 {
	return clamp(saturation, 0, 100) / 100 * elevationMultiplier
}

// DepotElevation maps a warehouse fill rate onto the 20..50 column range.
func DepotElevation(stockCurrent, capacity float64) float64 {
	if capacity <= 0 {
		return 20
	}
	fillRate := clamp(stockCurrent/capacity, 0, 1)
	return 20 + fillRate*30
}
