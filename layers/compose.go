// Package layers turns the loaded tables into the ordered list of layer
// descriptors for one frame. Composition is pure: same frame in, same
// descriptors out, and the boundary layer always renders below the thematic
// layers.
package layers

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/hexavax/hexavax-engine/aggregate"
	"github.com/hexavax/hexavax-engine/encode"
	"github.com/hexavax/hexavax-engine/geo"
	"github.com/hexavax/hexavax-engine/schema"
	"github.com/hexavax/hexavax-engine/slice"
	"github.com/hexavax/hexavax-engine/store"
	"github.com/hexavax/hexavax-engine/timeline"
)

// Frame is everything one composition depends on.
type Frame struct {
	Mode    schema.ViewMode
	Date    string
	Zoom    float64
	Filters schema.Filters

	// Settled is false while the camera is still transitioning; composition
	// is skipped entirely until the view settles.
	Settled bool

	Tables *store.Tables
	Slicer *slice.Slicer

	OnFeatureClick func(*geojson.Feature)
	OnDepotClick   func(schema.DepotColumn)
}

// Compose builds the frame's layer stack. It returns nil while the view is
// transitioning; the renderer keeps showing the previous stack.
func Compose(frame Frame) []schema.Layer {
	if !frame.Settled || frame.Tables == nil {
		return nil
	}
	scaling := encode.ScalingForZoom(frame.Zoom)

	// Boundary first, thematic layers on top in a fixed order.
	stack := make([]schema.Layer, 0, 8)
	if l := viewLayer(frame); l != nil {
		stack = append(stack, l)
	}
	if frame.Filters.Heatmap {
		if l := heatmapLayer(frame, scaling); l != nil {
			stack = append(stack, l)
		}
	}
	if frame.Filters.Hospitals {
		if l := hospitalLayer(frame, scaling); l != nil {
			stack = append(stack, l)
		}
	}
	if frame.Filters.Departments {
		if l := departmentAlertLayer(frame); l != nil {
			stack = append(stack, l)
		}
	}
	if frame.Filters.Pharmacies {
		if l := pharmacyLayer(frame); l != nil {
			stack = append(stack, l)
		}
	}
	if frame.Filters.VulnerablePopulation {
		if l := vulnerablePopulationLayer(frame); l != nil {
			stack = append(stack, l)
		}
	}
	if frame.Filters.VaccineLogistics {
		stack = append(stack, logisticsLayers(frame)...)
	}
	if frame.Filters.Budget {
		stack = append(stack, budgetLayers(frame)...)
	}
	return stack
}

// viewLayer is the administrative boundary choropleth for the active mode.
// Fill encodes ICU occupancy from the matching time series; departmental and
// overseas views extrude the polygons by the saturation tiers.
func viewLayer(frame Frame) schema.Layer {
	fc := frame.Tables.ViewGeometry(frame.Mode)
	if fc == nil {
		return nil
	}

	resolver := aggregate.ResolverFor(frame.Mode)
	metricsFor := func(f *geojson.Feature) (schema.AreaMetrics, bool) {
		area, ok := resolver.ResolveKey(f)
		if !ok {
			return schema.AreaMetrics{}, false
		}
		return resolver.LookupSeries(frame.Tables, area, frame.Date)
	}

	extruded := frame.Mode == schema.ViewModeDepartmental || frame.Mode == schema.ViewModeDomTom
	return &schema.BoundaryLayer{
		ID:         schema.LayerIDView,
		Mode:       frame.Mode,
		Collection: fc,
		Extruded:   extruded,
		Wireframe:  extruded,
		FillColor: func(f *geojson.Feature) schema.Color {
			m, ok := metricsFor(f)
			return encode.OccupancyColor(m.ICUOccupancyPct, ok)
		},
		Elevation: func(f *geojson.Feature) float64 {
			if !extruded {
				return 0
			}
			m, ok := metricsFor(f)
			return encode.DefaultSaturationTiers.Elevation(m.ICUOccupancyPct, ok)
		},
		LineColor:          schema.RGB(255, 255, 255).WithAlpha(120),
		LineWidthMinPixels: 1,
		OnClick:            frame.OnFeatureClick,
	}
}

func heatmapLayer(frame Frame, scaling encode.ViewScaling) schema.Layer {
	points := frame.Slicer.EpidemicPoints(frame.Tables.EpidemicSamples, frame.Tables.EpidemicVersion, frame.Date)
	if len(points) == 0 {
		return nil
	}
	return &schema.HeatmapLayer{
		ID:     schema.LayerIDHeatmap,
		Points: points,
		Weight: func(p schema.TimePoint) float64 {
			w := p.Weight / 100
			if w < 0 {
				return 0
			}
			if w > 1 {
				return 1
			}
			return w
		},
		RadiusPixels: scaling.HeatmapRadiusPixels,
		Intensity:    1,
		Threshold:    0.05,
		Opacity:      0.8,
	}
}

func hospitalLayer(frame Frame, scaling encode.ViewScaling) schema.Layer {
	hospitals := frame.Slicer.Hospitals(frame.Tables.HospitalSamples, frame.Tables.HospitalVersion, frame.Date)
	if len(hospitals) == 0 {
		return nil
	}

	cells := make([]schema.HospitalCell, 0, len(hospitals))
	for _, h := range hospitals {
		fill := encode.BucketColor(h.Saturation, true).
			WithAlpha(encode.SaturationAlpha(h.Saturation, true))
		cells = append(cells, schema.HospitalCell{
			RenderableHospital: h,
			Polygon:            geo.BuildHex(h.Lon, h.Lat, scaling.RadiusMeters),
			Elevation:          encode.HospitalElevation(h.Saturation, scaling.ElevationMultiplier),
			FillColor:          fill,
		})
	}
	return &schema.HospitalLayer{
		ID:        schema.LayerIDHospitalSaturation,
		Cells:     cells,
		LineColor: schema.RGB(255, 255, 255).WithAlpha(90),
	}
}

// departmentAlertLayer colors departments by their free-text alert label,
// with opacity tracking ICU occupancy and the stepped tier extrusion. It
// always draws over the departmental geometry.
func departmentAlertLayer(frame Frame) schema.Layer {
	fc := frame.Tables.ViewGeometry(schema.ViewModeDepartmental)
	if fc == nil {
		return nil
	}

	metricsFor := func(f *geojson.Feature) (schema.AreaMetrics, bool) {
		code, ok := geo.DepartmentCode(f)
		if !ok {
			return schema.AreaMetrics{}, false
		}
		return frame.Tables.DepartmentMetrics(frame.Date, code)
	}

	return &schema.BoundaryLayer{
		ID:         schema.LayerIDDepartmentAlert,
		Mode:       schema.ViewModeDepartmental,
		Collection: fc,
		Extruded:   true,
		Wireframe:  true,
		FillColor: func(f *geojson.Feature) schema.Color {
			m, ok := metricsFor(f)
			return encode.CriticalStateColor(m.AlertLevel).
				WithAlpha(encode.SaturationAlpha(m.ICUOccupancyPct, ok))
		},
		Elevation: func(f *geojson.Feature) float64 {
			m, ok := metricsFor(f)
			return encode.DefaultSaturationTiers.Elevation(m.ICUOccupancyPct, ok)
		},
		LineColor:          schema.RGB(255, 255, 255).WithAlpha(70),
		LineWidthMinPixels: 0.5,
	}
}

// pharmacyLayer switches representation on zoom: hexagonal clustering zoomed
// out, individual stock-sized points zoomed in.
func pharmacyLayer(frame Frame) schema.Layer {
	pharmacies := frame.Tables.Pharmacies
	if len(pharmacies) == 0 {
		return nil
	}

	if frame.Zoom < encode.PharmacyClusterZoomThreshold {
		return &schema.PharmacyClusterLayer{
			ID:             schema.LayerIDPharmaciesHexagon,
			Pharmacies:     pharmacies,
			RadiusMeters:   encode.PharmacyClusterRadius(frame.Zoom),
			ElevationScale: 20,
			ColorRange:     encode.PharmacyColorRange,
			Weight:         schema.Pharmacy.Stock,
		}
	}

	points := make([]schema.PharmacyPoint, 0, len(pharmacies))
	for _, p := range pharmacies {
		points = append(points, schema.PharmacyPoint{
			Pharmacy:  p,
			Radius:    encode.PharmacyPointRadius(p.Stock()),
			FillColor: encode.PharmacyColor(p.Stock()),
		})
	}
	return &schema.PharmacyScatterLayer{
		ID:              schema.LayerIDPharmaciesScatter,
		Points:          points,
		RadiusMinPixels: 2,
		RadiusMaxPixels: 30,
		LineColor:       schema.RGB(255, 255, 255).WithAlpha(80),
		Opacity:         0.85,
	}
}

// vulnerablePopulationLayer extrudes the departmental geometry by the 65+
// share. It always draws over departments, whatever the active view mode.
func vulnerablePopulationLayer(frame Frame) schema.Layer {
	fc := frame.Tables.ViewGeometry(schema.ViewModeDepartmental)
	if fc == nil || frame.Tables.VulnerablePop == nil {
		return nil
	}

	pctFor := func(f *geojson.Feature) (float64, bool) {
		code, ok := geo.DepartmentCode(f)
		if !ok {
			return 0, false
		}
		dept, ok := frame.Tables.VulnerablePop.Department(code)
		if !ok {
			return 0, false
		}
		return dept.Pourcentage65Plus, true
	}

	return &schema.BoundaryLayer{
		ID:         schema.LayerIDVulnerablePop,
		Mode:       schema.ViewModeDepartmental,
		Collection: fc,
		Extruded:   true,
		FillColor: func(f *geojson.Feature) schema.Color {
			pct, ok := pctFor(f)
			return encode.VulnerabilityColor(pct, ok)
		},
		Elevation: func(f *geojson.Feature) float64 {
			pct, ok := pctFor(f)
			return encode.VulnerabilityElevation(pct, ok)
		},
		LineColor:          schema.RGB(255, 255, 255).WithAlpha(60),
		LineWidthMinPixels: 0.5,
	}
}

// Arc height factors per delivery zone; rural arcs fly highest.
var deliveryArcHeight = map[string]float64{
	schema.DeliveryZoneUrban:     0.3,
	schema.DeliveryZonePeriurban: 0.5,
	schema.DeliveryZoneRural:     0.7,
}

const (
	arcWidthMin = 3
	arcWidthMax = 12
)

// arcTargetColor is the fixed landing color of every delivery arc; only the
// source end encodes depot status.
var arcTargetColor = schema.Color{125, 227, 242, 180}

// logisticsLayers builds the delivery arcs and the depot columns for the
// current date. Arc widths are normalized over the day's dose range so the
// thickest arc is always the day's largest shipment.
func logisticsLayers(frame Frame) []schema.Layer {
	logistics := frame.Tables.Logistics
	if logistics == nil {
		return nil
	}

	centroids := departmentCentroids(frame.Tables)

	type pendingArc struct {
		warehouse schema.Warehouse
		status    string
		delivery  schema.Delivery
	}
	var pending []pendingArc
	minDoses, maxDoses := 0.0, 0.0

	columns := make([]schema.DepotColumn, 0, len(logistics.Warehouses))
	for _, w := range logistics.Warehouses {
		state := schema.WarehouseState{Warehouse: w}
		if entry, ok := logistics.DayEntry(frame.Date, w.ID); ok {
			state.StockCurrent = entry.StockCurrent
			state.StockPlanned = entry.StockPlanned
			state.Status = entry.Status
			state.Deliveries = entry.Deliveries
		}
		columns = append(columns, schema.DepotColumn{
			WarehouseState: state,
			Position:       w.Coordinates,
			Elevation:      encode.DepotElevation(state.StockCurrent, w.Capacity),
			FillColor:      encode.WarehouseStatusColor(state.Status),
		})

		for _, d := range state.Deliveries {
			if len(pending) == 0 || d.Doses < minDoses {
				minDoses = d.Doses
			}
			if d.Doses > maxDoses {
				maxDoses = d.Doses
			}
			pending = append(pending, pendingArc{warehouse: w, status: state.Status, delivery: d})
		}
	}

	arcs := make([]schema.DeliveryArc, 0, len(pending))
	for _, p := range pending {
		target, ok := centroids[geo.NormalizeDepartmentCode(p.delivery.Dept)]
		if !ok {
			continue
		}
		width := float64(arcWidthMin)
		if maxDoses > minDoses {
			width += (p.delivery.Doses - minDoses) / (maxDoses - minDoses) * (arcWidthMax - arcWidthMin)
		}
		height, ok := deliveryArcHeight[p.delivery.Type]
		if !ok {
			height = deliveryArcHeight[schema.DeliveryZonePeriurban]
		}
		arcs = append(arcs, schema.DeliveryArc{
			Source:        [3]float64{p.warehouse.Coordinates[0], p.warehouse.Coordinates[1], 0},
			Target:        [3]float64{target[0], target[1], 0},
			Doses:         p.delivery.Doses,
			Type:          p.delivery.Type,
			Dept:          geo.NormalizeDepartmentCode(p.delivery.Dept),
			WarehouseID:   p.warehouse.ID,
			WarehouseName: p.warehouse.Name,
			StockStatus:   p.status,
			Width:         width,
			Height:        height,
			SourceColor:   encode.WarehouseStatusColor(p.status),
			TargetColor:   arcTargetColor,
		})
	}

	stack := make([]schema.Layer, 0, 2)
	if len(arcs) > 0 {
		stack = append(stack, &schema.ArcLayer{
			ID:      schema.LayerIDLogisticsArcs,
			Arcs:    arcs,
			Opacity: 0.85,
		})
	}
	if len(columns) > 0 {
		stack = append(stack, &schema.ColumnLayer{
			ID:             schema.LayerIDLogisticsDepots,
			Columns:        columns,
			RadiusMeters:   15000,
			DiskResolution: 12,
			ElevationScale: 100,
			LineColor:      schema.RGB(255, 255, 255).WithAlpha(100),
			OnClick:        frame.OnDepotClick,
		})
	}
	return stack
}

// budgetLayers draws the funding choropleth over departments plus a centroid
// label with each department's national budget share.
func budgetLayers(frame Frame) []schema.Layer {
	fc := frame.Tables.ViewGeometry(schema.ViewModeDepartmental)
	if fc == nil || frame.Tables.DepartmentLedger == nil {
		return nil
	}
	day, ok := frame.Tables.DepartmentLedger.Day(frame.LedgerDate())
	if !ok {
		return nil
	}

	byCode := make(map[string]schema.DepartmentBudget, len(day.Departements))
	for _, d := range day.Departements {
		byCode[geo.NormalizeDepartmentCode(d.CodeInsee)] = d
	}

	labels := make([]schema.MapLabel, 0, len(fc.Features))
	for _, f := range fc.Features {
		code, ok := geo.DepartmentCode(f)
		if !ok {
			continue
		}
		budget, ok := byCode[code]
		if !ok {
			continue
		}
		center, ok := geo.Centroid(f)
		if !ok {
			continue
		}
		labels = append(labels, schema.MapLabel{
			Position: center,
			Text:     fmt.Sprintf("%.2f%%", budget.PartBudgetNational),
			Code:     code,
		})
	}

	stack := []schema.Layer{
		&schema.BoundaryLayer{
			ID:         schema.LayerIDBudgetPolygons,
			Mode:       schema.ViewModeDepartmental,
			Collection: fc,
			FillColor: func(f *geojson.Feature) schema.Color {
				code, ok := geo.DepartmentCode(f)
				if !ok {
					return encode.BudgetFillColor(0, false)
				}
				budget, joined := byCode[code]
				return encode.BudgetFillColor(budget.PartBudgetNational, joined)
			},
			LineColor:          schema.RGB(110, 107, 243).WithAlpha(160),
			LineWidthMinPixels: 1,
		},
	}
	if len(labels) > 0 {
		stack = append(stack, &schema.TextLayer{
			ID:       schema.LayerIDBudgetLabels,
			Labels:   labels,
			Size:     14,
			Color:    schema.RGB(255, 255, 255),
			FontBold: true,
		})
	}
	return stack
}

// LedgerDate is the frame's date remapped into the budget ledger's year.
func (f Frame) LedgerDate() string {
	return timeline.RemapToLedgerYear(f.Date)
}

func departmentCentroids(tables *store.Tables) map[string][2]float64 {
	fc := tables.ViewGeometry(schema.ViewModeDepartmental)
	if fc == nil {
		return nil
	}
	centroids := make(map[string][2]float64, len(fc.Features))
	for _, f := range fc.Features {
		code, ok := geo.DepartmentCode(f)
		if !ok {
			continue
		}
		if center, ok := geo.Centroid(f); ok {
			centroids[code] = center
		}
	}
	return centroids
}
