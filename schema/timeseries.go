package schema

// AreaMetrics holds the epidemiology indicators published for one area on one
// date. Every field may legitimately be zero on dates the upstream pipeline
// did not cover; consumers treat a missing (date, area) pair as "no data",
// not as zeros.
type AreaMetrics struct {
	VaccinationRatePct float64 `json:"vaccination_rate_pct"`
	CasesPer100k       float64 `json:"cases_per_100k"`
	IncidenceRate      float64 `json:"incidence_rate"`
	PositivityRate     float64 `json:"positivity_rate"`
	ICUOccupancyPct    float64 `json:"icu_occupancy_pct"`
	REffectif          float64 `json:"r_effectif"`
	TotalCases         float64 `json:"total_cases"`
	TotalVaccinated    float64 `json:"total_vaccinated"`

	// Optional alert/bed fields, present only in some dataset generations.
	AlertLevel      string  `json:"alert_level,omitempty"`
	ICUBedsTotal    float64 `json:"icu_beds_total,omitempty"`
	ICUBedsOccupied float64 `json:"icu_beds_occupied,omitempty"`
}

// DepartmentSeries maps date -> normalized INSEE code -> metrics.
type DepartmentSeries map[string]map[string]AreaMetrics

// RegionSeries maps date -> region display name -> metrics. Regions are keyed
// by name because the upstream region stats are indexed by name, not code.
type RegionSeries map[string]map[string]AreaMetrics

// NationalSeries maps date -> metrics for the national singleton.
type NationalSeries map[string]AreaMetrics
