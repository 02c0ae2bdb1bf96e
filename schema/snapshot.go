package schema

// AggregatedAreaSnapshot is the unified view-model built when the user selects
// a map feature. It merges six independent data domains for one area and one
// date. It is replaced wholesale on every recomputation, never patched in
// place, and discarded when the selection is cleared.
type AggregatedAreaSnapshot struct {
	Overview             OverviewSection             `json:"overview"`
	Epidemiology         EpidemiologySection         `json:"epidemiology"`
	HealthSystem         HealthSystemSection         `json:"healthSystem"`
	Vaccination          VaccinationSection          `json:"vaccination"`
	VulnerablePopulation VulnerablePopulationSection `json:"vulnerablePopulation"`
	Budget               BudgetSection               `json:"budget"`
}

// OverviewSection identifies the area. Population and surface are pointers:
// zero is a valid population and must not be confused with "unknown".
type OverviewSection struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Type       ViewMode `json:"type"`
	Date       string   `json:"date"`
	Population *float64 `json:"population"`
	SurfaceKm2 *float64 `json:"surface_km2"`
}

// EpidemiologySection carries the time-series indicators for the area and
// date, plus whether a record was actually found.
type EpidemiologySection struct {
	AreaMetrics
	HasData bool `json:"has_data"`
}

// HealthSystemSection lists hospitals matched to the area by the city-name
// heuristic. AvgSaturationPct is 0 when no hospital matched; that is the one
// place where zero stands for "no hospitals found".
type HealthSystemSection struct {
	Hospitals        []RenderableHospital `json:"hospitals"`
	AvgSaturationPct float64              `json:"avg_saturation_pct"`
	AlertLevel       string               `json:"alert_level"`
}

// VaccinationSection merges pharmacy counts with warehouse logistics for the
// current date.
type VaccinationSection struct {
	PharmaciesPartners int              `json:"pharmacies_partners"`
	VaccinationCenters int              `json:"vaccination_centers"`
	StockCurrent       float64          `json:"stock_current"`
	StockPlanned       float64          `json:"stock_planned"`
	Warehouses         []WarehouseState `json:"warehouses"`
}

// VulnerablePopulationSection holds demographics, summed over member
// departments for regional/national areas. Percentages are recomputed from
// the summed numerators and denominators, never averaged from child
// percentages.
type VulnerablePopulationSection struct {
	PopulationTotale   float64 `json:"population_totale"`
	Population65Plus   float64 `json:"population_65_plus"`
	Pourcentage65Plus  float64 `json:"pourcentage_65_plus"`
	PopulationARisque  float64 `json:"population_a_risque"`
	PopulationMoins25  float64 `json:"population_moins_25"`
	PourcentageMoins25 float64 `json:"pourcentage_moins_25"`
	HasData            bool    `json:"has_data"`
}

// BudgetSection holds the campaign funding numbers, resolved against the
// ledger's historical year. LedgerDate is the remapped date the record was
// found under.
type BudgetSection struct {
	MontantQuotidien   float64            `json:"montant_quotidien"`
	MontantCumule      float64            `json:"montant_cumule"`
	PartBudgetNational float64            `json:"part_budget_national"`
	SourcesFinancement map[string]float64 `json:"sources_financement"`
	LedgerDate         string             `json:"ledger_date"`
	HasData            bool               `json:"has_data"`
}
