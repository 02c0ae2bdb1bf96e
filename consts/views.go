package consts

import "github.com/hexavax/hexavax-engine/schema"

// ViewStates are the camera targets per view mode. Switching modes flies the
// camera to the mode's state and starts the settle window.
var ViewStates = map[schema.ViewMode]schema.ViewState{
	schema.ViewModeNational:     {Longitude: 2.5, Latitude: 46.5, Zoom: 5, Pitch: 20},
	schema.ViewModeRegional:     {Longitude: 2.5, Latitude: 46.5, Zoom: 5.5, Pitch: 20},
	schema.ViewModeDepartmental: {Longitude: 2.5, Latitude: 46.5, Zoom: 6, Pitch: 20},
	schema.ViewModeDomTom:       {Longitude: 55.5, Latitude: -21.1, Zoom: 9, Pitch: 20},
}

// DomTomList is the overseas-territory carousel, in navigator order.
var DomTomList = []schema.DomTomTerritory{
	{Name: "La Réunion", Code: "974", Longitude: 55.5, Latitude: -21.1, Zoom: 9},
	{Name: "Guadeloupe", Code: "971", Longitude: -61.55, Latitude: 16.25, Zoom: 9},
	{Name: "Martinique", Code: "972", Longitude: -61.0, Latitude: 14.6, Zoom: 9},
	{Name: "Guyane", Code: "973", Longitude: -53.1, Latitude: 3.9, Zoom: 7},
	{Name: "Mayotte", Code: "976", Longitude: 45.16, Latitude: -12.8, Zoom: 10},
	{Name: "St-Pierre-et-Miquelon", Code: "975", Longitude: -56.2, Latitude: 46.8, Zoom: 10},
	{Name: "St-Barthélemy", Code: "977", Longitude: -62.85, Latitude: 17.9, Zoom: 11},
	{Name: "St-Martin", Code: "978", Longitude: -63.05, Latitude: 18.08, Zoom: 11},
}

// DomTomTerritory returns the carousel entry for a territory code.
func DomTomTerritory(code string) (schema.DomTomTerritory, bool) {
	for _, t := range DomTomList {
		if t.Code == code {
			return t, true
		}
	}
	return schema.DomTomTerritory{}, false
}

// DomTomAfter cycles the carousel: the territory following the given code,
// wrapping at the end. An unknown code restarts at the first territory.
func DomTomAfter(code string) schema.DomTomTerritory {
	for i, t := range DomTomList {
		if t.Code == code {
			return DomTomList[(i+1)%len(DomTomList)]
		}
	}
	return DomTomList[0]
}

// Dataset relative paths, one per category. All data is pre-computed and
// served as static documents.
const (
	PathEpidemicFrance      = "data/mockData_france_propagation_dec2025_realistic.json"
	PathEpidemicIDF         = "data/mockData_iledefrance_daily.json"
	PathHospitals           = "data/mockData_saturation_hopitaux_france.json"
	PathPharmacies          = "data/pharmacies_france_v1.json"
	PathDepartmentSeries    = "data/areas_stats/departments_epidemic_timeseries_dec2025.json"
	PathRegionSeries        = "data/areas_stats/regions_epidemic_timeseries_dec2025.json"
	PathNationalSeries      = "data/areas_stats/national_epidemic_timeseries_dec2025.json"
	PathVulnerablePop       = "data/Population_vulnerable.json"
	PathVaccineLogistics    = "data/vaccine_logistics.json"
	PathBudgetDepartments   = "data/budget_departements.json"
	PathBudgetRegions       = "data/budget_regions.json"
	PathGeoMetropole        = "data/geojson/metropole.geojson"
	PathGeoRegions          = "data/geojson/regions-avec-outre-mer.geojson"
	PathGeoDepartments      = "data/geojson/departements-avec-outre-mer.geojson"
	PathGeoDepartmentsDrawn = PathGeoDepartments // domtom shares the departmental geometry
)

// EpidemicDataset selects which propagation document feeds the heatmap. The
// dashboard ships two, the national December 2025 simulation and a denser
// Île-de-France daily series.
type EpidemicDataset string

const (
	EpidemicDatasetFrance EpidemicDataset = "france"
	EpidemicDatasetIDF    EpidemicDataset = "iledefrance"
)

// EpidemicPath returns the propagation document path for a dataset selector.
// Unknown selectors fall back to the national document.
func EpidemicPath(dataset EpidemicDataset) string {
	if dataset == EpidemicDatasetIDF {
		return PathEpidemicIDF
	}
	return PathEpidemicFrance
}

// GeoPath returns the boundary-geometry path for a view mode.
func GeoPath(mode schema.ViewMode) string {
	switch mode {
	case schema.ViewModeRegional:
		return PathGeoRegions
	case schema.ViewModeDepartmental:
		return PathGeoDepartments
	case schema.ViewModeDomTom:
		return PathGeoDepartmentsDrawn
	default:
		return PathGeoMetropole
	}
}

// Time-axis and ledger anchors.
const (
	// CampaignStartDate is the first predicted date of the vaccination
	// campaign; the scrub position defaults to it when present in the axis.
	CampaignStartDate = "2025-12-01"

	// BudgetLedgerYear is the fixed historical year the funding ledger lives
	// in. Displayed dates are remapped into this year before every ledger
	// lookup; this is a documented property of the dataset, not a bug.
	BudgetLedgerYear = "2024"
)

// FiltersStorageKey is the well-known key the filter toggles persist under.
const FiltersStorageKey = "hexavax_filters"

// VaccinationCenterStockThreshold is the dose stock above which a pharmacy
// counts as an active vaccination center.
const VaccinationCenterStockThreshold = 150
