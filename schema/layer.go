package schema

import "github.com/paulmach/orb/geojson"

// LayerKind names the render-engine primitive a descriptor maps to.
type LayerKind string

const (
	LayerKindGeoJSON LayerKind = "geojson"
	LayerKindHeatmap LayerKind = "heatmap"
	LayerKindPolygon LayerKind = "polygon"
	LayerKindScatter LayerKind = "scatterplot"
	LayerKindHexagon LayerKind = "hexagon"
	LayerKindArc     LayerKind = "arc"
	LayerKindColumn  LayerKind = "column"
	LayerKindText    LayerKind = "text"
)

// Stable layer identifiers, used for hit-testing dispatch in the tooltip
// resolver.
const (
	LayerIDView               = "view-layer"
	LayerIDHeatmap            = "heatmap-layer"
	LayerIDHospitalSaturation = "hospital-saturation"
	LayerIDDepartmentAlert    = "departments-critical-layer"
	LayerIDPharmaciesHexagon  = "pharmacies-hexagon-layer"
	LayerIDPharmaciesScatter  = "pharmacies-scatter-layer"
	LayerIDVulnerablePop      = "vulnerable-population-layer"
	LayerIDLogisticsArcs      = "vaccine-logistics-arcs"
	LayerIDLogisticsDepots    = "vaccine-logistics-warehouses"
	LayerIDBudgetPolygons     = "budget-layer-polygons"
	LayerIDBudgetLabels       = "budget-layer-labels"
)

// Color is an RGBA quadruplet as consumed by the render engine.
type Color [4]uint8

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color { return Color{c[0], c[1], c[2], a} }

// Layer is a renderable layer descriptor handed to the render engine. The
// engine draws descriptors in slice order; descriptors are read-only.
type Layer interface {
	LayerID() string
	Kind() LayerKind
	Pickable() bool
}

// BoundaryLayer draws the administrative boundary GeoJSON for the active view
// mode, optionally extruded with per-feature visuals.
type BoundaryLayer struct {
	ID                 string
	Mode               ViewMode
	Collection         *geojson.FeatureCollection
	Extruded           bool
	Wireframe          bool
	FillColor          func(*geojson.Feature) Color
	Elevation          func(*geojson.Feature) float64
	LineColor          Color
	LineWidthMinPixels float64
	OnClick            func(*geojson.Feature)
}

func (l *BoundaryLayer) LayerID() string { return l.ID }
func (l *BoundaryLayer) Kind() LayerKind { return LayerKindGeoJSON }
func (l *BoundaryLayer) Pickable() bool  { return l.OnClick != nil }

// HeatmapLayer draws weighted points as a density surface. Weights are
// already normalized to 0..1.
type HeatmapLayer struct {
	ID           string
	Points       []TimePoint
	Weight       func(TimePoint) float64
	RadiusPixels float64
	Intensity    float64
	Threshold    float64
	Opacity      float64
}

func (l *HeatmapLayer) LayerID() string { return l.ID }
func (l *HeatmapLayer) Kind() LayerKind { return LayerKindHeatmap }
func (l *HeatmapLayer) Pickable() bool  { return false }

// HospitalCell is one extruded hexagonal prism over a hospital.
type HospitalCell struct {
	RenderableHospital
	Polygon   [][2]float64
	Elevation float64
	FillColor Color
}

// HospitalLayer draws hospital saturation as extruded hex cells.
type HospitalLayer struct {
	ID        string
	Cells     []HospitalCell
	LineColor Color
}

func (l *HospitalLayer) LayerID() string { return l.ID }
func (l *HospitalLayer) Kind() LayerKind { return LayerKindPolygon }
func (l *HospitalLayer) Pickable() bool  { return true }

// PharmacyClusterLayer aggregates pharmacies into hexagonal bins when zoomed
// out. Bin color and elevation both encode the summed dose stock.
type PharmacyClusterLayer struct {
	ID             string
	Pharmacies     []Pharmacy
	RadiusMeters   float64
	ElevationScale float64
	ColorRange     []Color
	Weight         func(Pharmacy) float64
}

func (l *PharmacyClusterLayer) LayerID() string { return l.ID }
func (l *PharmacyClusterLayer) Kind() LayerKind { return LayerKindHexagon }
func (l *PharmacyClusterLayer) Pickable() bool  { return true }

// PharmacyPoint is one pharmacy with precomputed point visuals.
type PharmacyPoint struct {
	Pharmacy
	Radius    float64
	FillColor Color
}

// PharmacyScatterLayer draws individual pharmacies when zoomed in.
type PharmacyScatterLayer struct {
	ID              string
	Points          []PharmacyPoint
	RadiusMinPixels float64
	RadiusMaxPixels float64
	LineColor       Color
	Opacity         float64
}

func (l *PharmacyScatterLayer) LayerID() string { return l.ID }
func (l *PharmacyScatterLayer) Kind() LayerKind { return LayerKindScatter }
func (l *PharmacyScatterLayer) Pickable() bool  { return true }

// DeliveryArc is one dose shipment drawn as a 3D arc.
type DeliveryArc struct {
	Source        [3]float64
	Target        [3]float64
	Doses         float64
	Type          string
	Dept          string
	WarehouseID   string
	WarehouseName string
	StockStatus   string
	Width         float64
	Height        float64
	SourceColor   Color
	TargetColor   Color
}

// ArcLayer draws delivery flows from depots to department centroids.
type ArcLayer struct {
	ID      string
	Arcs    []DeliveryArc
	Opacity float64
	OnHover func(DeliveryArc)
}

func (l *ArcLayer) LayerID() string { return l.ID }
func (l *ArcLayer) Kind() LayerKind { return LayerKindArc }
func (l *ArcLayer) Pickable() bool  { return true }

// DepotColumn is one warehouse drawn as an extruded disk.
type DepotColumn struct {
	WarehouseState
	Position  [2]float64
	Elevation float64
	FillColor Color
}

// ColumnLayer draws warehouse depots.
type ColumnLayer struct {
	ID             string
	Columns        []DepotColumn
	RadiusMeters   float64
	DiskResolution int
	ElevationScale float64
	LineColor      Color
	OnClick        func(DepotColumn)
}

func (l *ColumnLayer) LayerID() string { return l.ID }
func (l *ColumnLayer) Kind() LayerKind { return LayerKindColumn }
func (l *ColumnLayer) Pickable() bool  { return l.OnClick != nil }

// MapLabel is one piece of text anchored to a map position.
type MapLabel struct {
	Position [2]float64
	Text     string
	Code     string
}

// TextLayer draws map-anchored labels (budget percentages over departments).
type TextLayer struct {
	ID       string
	Labels   []MapLabel
	Size     float64
	Color    Color
	FontBold bool
}

func (l *TextLayer) LayerID() string { return l.ID }
func (l *TextLayer) Kind() LayerKind { return LayerKindText }
func (l *TextLayer) Pickable() bool  { return false }
