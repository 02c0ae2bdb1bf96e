// Package store owns the loaded dataset snapshots and the fetch boundary
// that fills them. Tables are written by the load path only and read by
// every other component; the event loop is single threaded, so there is no
// locking. A table is either "not loaded" (zero value, renders defaults) or
// fully loaded, never half populated.
package store

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/hexavax/hexavax-engine/schema"
)

// Tables is the set of immutable dataset snapshots the engine reads from.
// Each sample array carries a version stamp renewed on load; derived-array
// memoization keys on it.
type Tables struct {
	EpidemicSamples []schema.EpidemicSample
	EpidemicVersion uuid.UUID

	HospitalSamples []schema.HospitalSample
	HospitalVersion uuid.UUID

	Pharmacies      []schema.Pharmacy
	PharmacyVersion uuid.UUID

	DepartmentSeries schema.DepartmentSeries
	RegionSeries     schema.RegionSeries
	NationalSeries   schema.NationalSeries

	VulnerablePop    *schema.VulnerablePopulation
	Logistics        *schema.VaccineLogistics
	DepartmentLedger *schema.BudgetLedger
	RegionLedger     *schema.BudgetLedger

	viewGeometry   map[schema.ViewMode]*geojson.FeatureCollection
	viewGeneration int
}

// NewTables returns an empty table set.
func NewTables() *Tables {
	return &Tables{
		viewGeometry: make(map[schema.ViewMode]*geojson.FeatureCollection),
	}
}

// ViewGeometry returns the boundary collection for a mode, nil while not
// loaded or superseded.
func (t *Tables) ViewGeometry(mode schema.ViewMode) *geojson.FeatureCollection {
	return t.viewGeometry[mode]
}

// NextViewRequest starts a boundary-geometry fetch for a new view mode and
// returns its generation token. Issuing a new request supersedes every
// earlier one: a stale fetch completing later is identified by its token,
// never by comparing resolved data, and is discarded.
func (t *Tables) NextViewRequest() int {
	t.viewGeneration++
	return t.viewGeneration
}

// InstallViewGeometry stores a fetched boundary collection if its token is
// still current. It reports whether the geometry was applied.
func (t *Tables) InstallViewGeometry(token int, mode schema.ViewMode, fc *geojson.FeatureCollection) bool {
	if token != t.viewGeneration {
		return false
	}
	t.viewGeometry[mode] = fc
	return true
}

// DepartmentMetrics looks up the department series by (date, normalized
// code). The boolean is false when either key is absent.
func (t *Tables) DepartmentMetrics(date, code string) (schema.AreaMetrics, bool) {
	day, ok := t.DepartmentSeries[date]
	if !ok {
		return schema.AreaMetrics{}, false
	}
	m, ok := day[code]
	return m, ok
}

// RegionMetrics looks up the region series by (date, display name).
func (t *Tables) RegionMetrics(date, name string) (schema.AreaMetrics, bool) {
	day, ok := t.RegionSeries[date]
	if !ok {
		return schema.AreaMetrics{}, false
	}
	m, ok := day[name]
	return m, ok
}

// NationalMetrics looks up the national series by date.
func (t *Tables) NationalMetrics(date string) (schema.AreaMetrics, bool) {
	m, ok := t.NationalSeries[date]
	return m, ok
}
