package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Property aliases under which source files spell the identifying field.
// Upstream GeoJSON collections are inconsistent; the list order is the
// resolution priority.
var departmentCodeAliases = []string{
	"code", "CODE", "COD_DEP", "cod_dep", "insee", "INSEE", "code_insee", "Code", "dep", "DEP",
}

var areaNameAliases = []string{
	"nom", "name", "NOM", "LIBELLE", "label", "CODE",
}

// NormalizeDepartmentCode canonicalizes one raw department identifier:
// leading zeros are stripped and numeric values are rendered in decimal, so
// "01", "1" and 1 all become "1". Non-numeric codes (Corsica "2A"/"2B") are
// uppercased. Three-digit overseas codes keep their full value ("971" stays
// "971"). Returns "" for empty input.
func NormalizeDepartmentCode(raw interface{}) string {
	s := stringify(raw)
	if s == "" {
		return ""
	}
	stripped := strings.TrimLeft(s, "0")
	if stripped == "" {
		stripped = "0"
	}
	if n, err := strconv.Atoi(stripped); err == nil {
		return strconv.Itoa(n)
	}
	return strings.ToUpper(stripped)
}

// DepartmentCode resolves the INSEE code of a GeoJSON feature, trying the
// known property aliases in priority order. The second return is false when
// no candidate field is present; such a feature is unjoinable and renders
// with default styling.
func DepartmentCode(f *geojson.Feature) (string, bool) {
	if f == nil || f.Properties == nil {
		return "", false
	}
	for _, alias := range departmentCodeAliases {
		v, ok := f.Properties[alias]
		if !ok || v == nil {
			continue
		}
		if code := NormalizeDepartmentCode(v); code != "" {
			return code, true
		}
	}
	return "", false
}

// NormalizeRegionKey canonicalizes a region display name: trimmed, interior
// whitespace preserved. Region datasets join by display name, so the only
// normalization that is safe is trimming.
func NormalizeRegionKey(raw interface{}) string {
	return strings.TrimSpace(stringify(raw))
}

// AreaName resolves the display name of a feature, for region joins and
// panel titles.
func AreaName(f *geojson.Feature) (string, bool) {
	if f == nil || f.Properties == nil {
		return "", false
	}
	for _, alias := range areaNameAliases {
		v, ok := f.Properties[alias]
		if !ok || v == nil {
			continue
		}
		if name := NormalizeRegionKey(v); name != "" {
			return name, true
		}
	}
	return "", false
}

func stringify(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		// GeoJSON numeric properties decode as float64; codes are integral.
		return strconv.Itoa(int(v))
	case int:
		return strconv.Itoa(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
