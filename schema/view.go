package schema

// ViewMode is the active administrative granularity. It decides which time
// series table and which identifier resolution strategy apply.
type ViewMode string

const (
	ViewModeNational     ViewMode = "national"
	ViewModeRegional     ViewMode = "regional"
	ViewModeDepartmental ViewMode = "departmental"
	ViewModeDomTom       ViewMode = "domtom"
)

// Valid reports whether the mode is one of the four known granularities.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewModeNational, ViewModeRegional, ViewModeDepartmental, ViewModeDomTom:
		return true
	}
	return false
}

// ViewState is a camera target for a view mode or DOM-TOM territory.
type ViewState struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

// Filters is the flat set of layer toggles the user controls. It round-trips
// through the preference store; unknown stored fields default to false.
type Filters struct {
	Heatmap              bool `json:"heatmap"`
	Hospitals            bool `json:"hospitals"`
	Pharmacies           bool `json:"pharmacies"`
	Departments          bool `json:"departments"`
	VulnerablePopulation bool `json:"vulnerablePopulation"`
	VaccineLogistics     bool `json:"vaccineLogistics"`
	Budget               bool `json:"budget"`
}

// DomTomTerritory is one overseas territory the navigator can fly to.
type DomTomTerritory struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
}
