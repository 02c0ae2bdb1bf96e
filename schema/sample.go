package schema

// EpidemicSample is one raw epidemic measurement as found in the daily
// propagation datasets. Samples carry a point location and a 0-100 risk value.
type EpidemicSample struct {
	Date  string  `json:"date"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// TimePoint is the renderable projection of an epidemic sample for the
// current scrub date. Derived per frame, never persisted.
type TimePoint struct {
	Position [2]float64 `json:"position"` // [lon, lat]
	Weight   float64    `json:"weight"`   // 0-100
	Label    string     `json:"label"`
}

// HospitalSample is one hospital saturation measurement. The label is a
// free-text name ("CHU Bordeaux"); hospitals carry no INSEE code.
type HospitalSample struct {
	Date       string  `json:"date"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Saturation float64 `json:"saturation"` // 0-100
	Label      string  `json:"label"`
}

// RenderableHospital is the per-date projection of a hospital sample.
type RenderableHospital struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Saturation float64 `json:"saturation"`
	Label      string  `json:"label"`
}

// Pharmacy is a vaccination point of sale. Stock appears under either
// "stock_doses" or "doses" depending on the dataset generation.
type Pharmacy struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	StockDoses float64 `json:"stock_doses"`
	Doses      float64 `json:"doses"`
}

// Stock returns the dose stock regardless of which property the source
// dataset used.
func (p Pharmacy) Stock() float64 {
	if p.StockDoses != 0 {
		return p.StockDoses
	}
	return p.Doses
}
