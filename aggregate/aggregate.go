// Package aggregate builds the per-area snapshot shown when the user selects
// a map feature. Six data domains are joined independently for one area and
// one date; a domain whose dataset failed to load simply reports no data
// instead of poisoning the others.
package aggregate

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	log "github.com/sirupsen/logrus"

	"github.com/hexavax/hexavax-engine/consts"
	"github.com/hexavax/hexavax-engine/geo"
	"github.com/hexavax/hexavax-engine/schema"
	"github.com/hexavax/hexavax-engine/store"
	"github.com/hexavax/hexavax-engine/timeline"
)

var ErrUnresolvedArea = fmt.Errorf("aggregate: feature does not resolve to a known area")

// Aggregator joins the loaded tables into area snapshots.
type Aggregator struct {
	tables *store.Tables
}

func New(tables *store.Tables) *Aggregator {
	return &Aggregator{tables: tables}
}

// Snapshot assembles the six-section view model for the selected feature on
// the given date. The snapshot is built fresh on every call; callers replace
// their previous snapshot wholesale.
func (a *Aggregator) Snapshot(f *geojson.Feature, mode schema.ViewMode, date string) (schema.AggregatedAreaSnapshot, error) {
	if f == nil || date == "" {
		return schema.AggregatedAreaSnapshot{}, ErrUnresolvedArea
	}
	resolver := ResolverFor(mode)
	area, ok := resolver.ResolveKey(f)
	if !ok {
		return schema.AggregatedAreaSnapshot{}, ErrUnresolvedArea
	}
	resolver.ReferenceData(a.tables, &area)

	snapshot := schema.AggregatedAreaSnapshot{
		Overview: schema.OverviewSection{
			Code:       area.Code,
			Name:       area.Name,
			Type:       area.Kind,
			Date:       date,
			Population: area.Population,
			SurfaceKm2: area.SurfaceKm2,
		},
		Epidemiology:         a.epidemiology(resolver, area, date),
		HealthSystem:         a.healthSystem(resolver, area, date),
		Vaccination:          a.vaccination(f, resolver, area, date),
		VulnerablePopulation: a.vulnerablePopulation(resolver, area),
		Budget:               a.budget(resolver, area, date),
	}
	log.WithField("prefix", "aggregate").Debugf("snapshot %s/%s for %s", area.Kind, area.Name, date)
	return snapshot, nil
}

func (a *Aggregator) epidemiology(resolver AreaResolver, area Area, date string) schema.EpidemiologySection {
	metrics, ok := resolver.LookupSeries(a.tables, area, date)
	return schema.EpidemiologySection{AreaMetrics: metrics, HasData: ok}
}

// healthSystem filters the day's hospital samples into the area through the
// city-name heuristic and averages their saturation. The average is 0 when no
// hospital matched, which the panel renders as "no hospitals found".
func (a *Aggregator) healthSystem(resolver AreaResolver, area Area, date string) schema.HealthSystemSection {
	section := schema.HealthSystemSection{Hospitals: []schema.RenderableHospital{}}

	var total float64
	for _, s := range a.tables.HospitalSamples {
		if s.Date != date {
			continue
		}
		if area.Kind != schema.ViewModeNational {
			dept := consts.HospitalDepartment(s.Label)
			if !resolver.ContainsDepartment(area, dept) {
				continue
			}
		}
		section.Hospitals = append(section.Hospitals, schema.RenderableHospital{
			Lat: s.Lat, Lon: s.Lon, Saturation: s.Saturation, Label: s.Label,
		})
		total += s.Saturation
	}

	if len(section.Hospitals) > 0 {
		section.AvgSaturationPct = total / float64(len(section.Hospitals))
	}
	section.AlertLevel = saturationAlertLevel(section.AvgSaturationPct, len(section.Hospitals) > 0)
	return section
}

func saturationAlertLevel(avg float64, found bool) string {
	switch {
	case !found:
		return ""
	case avg >= 80:
		return "élevé"
	case avg >= 50:
		return "moyen"
	default:
		return "faible"
	}
}

// vaccination counts pharmacies inside the selected geometry and merges the
// covering warehouses with their logistics entry for the date. A pharmacy
// qualifies as a vaccination center when its stock clears the campaign
// threshold.
func (a *Aggregator) vaccination(f *geojson.Feature, resolver AreaResolver, area Area, date string) schema.VaccinationSection {
	section := schema.VaccinationSection{Warehouses: []schema.WarehouseState{}}

	for _, p := range a.tables.Pharmacies {
		if !geo.Contains(f, p.Lon, p.Lat) {
			continue
		}
		section.PharmaciesPartners++
		if p.Stock() > consts.VaccinationCenterStockThreshold {
			section.VaccinationCenters++
		}
	}

	if a.tables.Logistics == nil {
		return section
	}
	for _, w := range a.tables.Logistics.Warehouses {
		if !warehouseCovers(resolver, area, w) {
			continue
		}
		state := schema.WarehouseState{Warehouse: w}
		if entry, ok := a.tables.Logistics.DayEntry(date, w.ID); ok {
			state.StockCurrent = entry.StockCurrent
			state.StockPlanned = entry.StockPlanned
			state.Status = entry.Status
			state.Deliveries = entry.Deliveries
		}
		section.StockCurrent += state.StockCurrent
		section.StockPlanned += state.StockPlanned
		section.Warehouses = append(section.Warehouses, state)
	}
	return section
}

func warehouseCovers(resolver AreaResolver, area Area, w schema.Warehouse) bool {
	for _, code := range w.CoverageDepartments {
		if resolver.ContainsDepartment(area, code) {
			return true
		}
	}
	return false
}

// vulnerablePopulation sums the member departments' demographics and derives
// the percentages from the summed counts. Averaging the member percentages
// would weight a small department as much as a large one.
func (a *Aggregator) vulnerablePopulation(resolver AreaResolver, area Area) schema.VulnerablePopulationSection {
	var section schema.VulnerablePopulationSection

	for _, code := range resolver.MemberDepartments(area) {
		dept, ok := a.tables.VulnerablePop.Department(code)
		if !ok {
			continue
		}
		section.PopulationTotale += dept.PopulationTotale
		section.Population65Plus += dept.Population65Plus
		section.PopulationARisque += dept.PopulationARisque
		section.PopulationMoins25 += dept.PopulationMoins25
		section.HasData = true
	}

	if section.PopulationTotale > 0 {
		section.Pourcentage65Plus = section.Population65Plus / section.PopulationTotale * 100
		section.PourcentageMoins25 = section.PopulationMoins25 / section.PopulationTotale * 100
	}
	return section
}

// budget resolves the funding numbers against the ledger's historical year.
func (a *Aggregator) budget(resolver AreaResolver, area Area, date string) schema.BudgetSection {
	ledgerDate := timeline.RemapToLedgerYear(date)
	section, ok := resolver.LookupBudget(a.tables, area, ledgerDate)
	section.LedgerDate = ledgerDate
	section.HasData = ok
	return section
}
