package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroPadded(t *testing.T) {
	assert.Equal(t, "1", NormalizeDepartmentCode("01"))
	assert.Equal(t, "1", NormalizeDepartmentCode("1"))
	assert.Equal(t, "1", NormalizeDepartmentCode(1))
	assert.Equal(t, "1", NormalizeDepartmentCode(float64(1)))
}

func TestNormalizeCorsica(t *testing.T) {
	assert.Equal(t, "2A", NormalizeDepartmentCode("2A"))
	assert.Equal(t, "2A", NormalizeDepartmentCode("2a"))
	assert.Equal(t, "2B", NormalizeDepartmentCode("2b"))
	assert.Equal(t, "2A", NormalizeDepartmentCode("02A"))
}

func TestNormalizeOverseasKeepsThreeDigits(t *testing.T) {
	assert.Equal(t, "971", NormalizeDepartmentCode("971"))
	assert.Equal(t, "976", NormalizeDepartmentCode("976"))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"01", "1", "2a", "971", "095"} {
		once := NormalizeDepartmentCode(raw)
		assert.Equal(t, once, NormalizeDepartmentCode(once))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeDepartmentCode(""))
	assert.Equal(t, "", NormalizeDepartmentCode(nil))
	assert.Equal(t, "", NormalizeDepartmentCode("   "))
}

func featureWithProps(props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{2.35, 48.85})
	f.Properties = props
	return f
}

func TestDepartmentCodeAliasPriority(t *testing.T) {
	f := featureWithProps(map[string]interface{}{"COD_DEP": "033", "dep": "99"})
	code, ok := DepartmentCode(f)
	assert.True(t, ok)
	assert.Equal(t, "33", code)
}

func TestDepartmentCodeNumericProperty(t *testing.T) {
	f := featureWithProps(map[string]interface{}{"code": float64(5)})
	code, ok := DepartmentCode(f)
	assert.True(t, ok)
	assert.Equal(t, "5", code)
}

func TestDepartmentCodeMissing(t *testing.T) {
	f := featureWithProps(map[string]interface{}{"population": 1234})
	code, ok := DepartmentCode(f)
	assert.False(t, ok)
	assert.Equal(t, "", code)
}

func TestAreaName(t *testing.T) {
	f := featureWithProps(map[string]interface{}{"nom": " Bretagne "})
	name, ok := AreaName(f)
	assert.True(t, ok)
	assert.Equal(t, "Bretagne", name)

	f = featureWithProps(map[string]interface{}{})
	_, ok = AreaName(f)
	assert.False(t, ok)
}

func TestBuildHexClosedRing(t *testing.T) {
	hex := BuildHex(2.35, 48.85, 1500)
	assert.Len(t, hex, 7)
	assert.Equal(t, hex[0], hex[6])
}

func TestCentroidPolygon(t *testing.T) {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}}})
	c, ok := Centroid(f)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, c[0], 1e-9)
	assert.InDelta(t, 1.0, c[1], 1e-9)
}

func TestContains(t *testing.T) {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})
	assert.True(t, Contains(f, 1, 1))
	assert.False(t, Contains(f, 3, 1))
}
