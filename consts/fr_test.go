package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexavax/hexavax-engine/consts"
)

func TestDepartmentRegionCoversMetropole(t *testing.T) {
	// 96 metropolitan codes (1-95 with 20 replaced by 2A/2B) plus 5 overseas
	// departments with a region of their own.
	assert.Len(t, consts.DepartmentRegion, 101)

	assert.Equal(t, consts.RegionIleDeFrance, consts.DepartmentRegion["75"])
	assert.Equal(t, consts.RegionCorse, consts.DepartmentRegion["2A"])
	assert.Equal(t, consts.RegionCorse, consts.DepartmentRegion["2B"])
	assert.Equal(t, consts.RegionLaReunion, consts.DepartmentRegion["974"])

	_, hasZeroPadded := consts.DepartmentRegion["01"]
	assert.False(t, hasZeroPadded, "table must be keyed by normalized codes")
}

func TestRegionDepartments(t *testing.T) {
	idf := consts.RegionDepartments(consts.RegionIleDeFrance)
	assert.Len(t, idf, 8)
	assert.Contains(t, idf, "75")
	assert.Contains(t, idf, "95")

	corse := consts.RegionDepartments(consts.RegionCorse)
	assert.ElementsMatch(t, []string{"2A", "2B"}, corse)
}

func TestEveryDepartmentRegionHasStats(t *testing.T) {
	for code, region := range consts.DepartmentRegion {
		_, ok := consts.RegionStats[region]
		assert.True(t, ok, "region %s of department %s has no reference stats", region, code)
	}
}

func TestHospitalDepartment(t *testing.T) {
	assert.Equal(t, "75", consts.HospitalDepartment("Hôpital Saint-Louis Paris"))
	assert.Equal(t, "33", consts.HospitalDepartment("CHU BORDEAUX Pellegrin"))
	assert.Equal(t, "", consts.HospitalDepartment("Clinique du Val"))
}
