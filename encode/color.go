package encode

import (
	"strings"

	"github.com/hexavax/hexavax-engine/schema"
)

// NeutralGray renders values that fail numeric coercion; a bad value must
// never pick up a severity color.
var NeutralGray = schema.RGB(200, 200, 200)

// BucketColor maps a generic severity percentage to the 4-step saturation
// palette. Currently,
// green:   < 30
// blue:    30 ~ 49
// magenta: 50 ~ 69
// red:     >= 70
func BucketColor(pct float64, ok bool) schema.Color {
	if !ok {
		return NeutralGray
	}
	switch {
	case pct < 30:
		return schema.RGB(46, 204, 113)
	case pct < 50:
		return schema.RGB(46, 150, 255)
	case pct < 70:
		return schema.RGB(199, 63, 197)
	default:
		return schema.RGB(255, 0, 0)
	}
}

// OccupancyColor maps ICU occupancy to its own 4-step palette with thresholds
// at 50/70/80. The palette is intentionally distinct from BucketColor: the
// two encode different semantic ranges and are tuned for different datasets.
func OccupancyColor(pct float64, ok bool) schema.Color {
	if !ok {
		return NeutralGray.WithAlpha(160)
	}
	switch {
	case pct < 50:
		return schema.Color{46, 204, 113, 200}
	case pct < 70:
		return schema.Color{241, 196, 15, 200}
	case pct < 80:
		return schema.Color{230, 126, 34, 210}
	default:
		return schema.Color{231, 76, 60, 220}
	}
}

// CriticalStateColor colors a department by its free-text alert label. The
// labels come from a French dataset; matching is substring-based over the
// known spellings.
func CriticalStateColor(state string) schema.Color {
	if state == "" {
		return schema.Color{150, 200, 255, 160}
	}
	lower := strings.ToLower(state)
	switch {
	case strings.Contains(lower, "élev") || strings.Contains(lower, "elev") ||
		strings.Contains(lower, "haut") || strings.Contains(lower, "fort"):
		return schema.Color{220, 45, 45, 220}
	case strings.Contains(lower, "moy") || strings.Contains(lower, "medium") ||
		strings.Contains(lower, "mod"):
		return schema.Color{250, 160, 60, 200}
	case strings.Contains(lower, "faibl") || strings.Contains(lower, "low"):
		return schema.Color{70, 180, 100, 180}
	default:
		return schema.Color{150, 200, 255, 160}
	}
}

// SaturationAlpha modulates a fill alpha by saturation: stronger saturation
// renders more opaque, over the 80..255 range.
func SaturationAlpha(pct float64, ok bool) uint8 {
	if !ok {
		return 180
	}
	c := clamp(pct, 0, 100)
	return uint8(80 + c/100*(255-80))
}

// PharmacyColorRange is the cluster color ramp, red (little stock) to green.
var PharmacyColorRange = []schema.Color{
	{220, 45, 45, 255},
	{250, 100, 60, 255},
	{250, 160, 60, 255},
	{220, 200, 80, 255},
	{120, 200, 80, 255},
	{46, 204, 113, 255},
}

// PharmacyColor maps a pharmacy's dose stock to a point color.
func PharmacyColor(stock float64) schema.Color {
	switch {
	case stock > 250:
		return schema.Color{46, 204, 113, 200}
	case stock > 150:
		return schema.Color{120, 200, 80, 200}
	case stock > 100:
		return schema.Color{220, 200, 80, 200}
	case stock > 50:
		return schema.Color{250, 160, 60, 200}
	default:
		return schema.Color{220, 45, 45, 200}
	}
}

// VulnerabilityColor maps the 65+ percentage to the demographic ramp.
func VulnerabilityColor(pct float64, ok bool) schema.Color {
	if !ok {
		return schema.Color{200, 200, 200, 100}
	}
	switch {
	case pct >= 27:
		return schema.Color{239, 79, 145, 200}
	case pct >= 24:
		return schema.Color{255, 107, 129, 180}
	case pct >= 21:
		return schema.Color{126, 227, 242, 160}
	case pct >= 18:
		return schema.Color{110, 107, 243, 140}
	default:
		return schema.Color{110, 107, 243, 120}
	}
}

// WarehouseStatusColor colors a depot column by its stock status.
func WarehouseStatusColor(status string) schema.Color {
	switch status {
	case schema.WarehouseStatusDanger:
		return schema.Color{239, 79, 145, 200}
	case schema.WarehouseStatusWarning:
		return schema.Color{255, 193, 7, 200}
	default:
		return schema.Color{110, 107, 243, 200}
	}
}

// BudgetFillColor colors a department polygon by its share of the national
// budget: the share drives opacity only, hue stays constant. Unjoined
// features render near-transparent.
func BudgetFillColor(partBudgetNational float64, ok bool) schema.Color {
	if !ok {
		return schema.Color{110, 107, 243, 20}
	}
	alpha := clamp(partBudgetNational*50, 0, 150)
	return schema.Color{110, 107, 243, uint8(alpha)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
