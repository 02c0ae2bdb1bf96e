package aggregate

import "github.com/hexavax/hexavax-engine/schema"

// WarehouseKPI is the side-panel summary for one depot on one date.
type WarehouseKPI struct {
	FillRatePct        float64
	StockPer1000       float64
	AutonomyDays       float64
	TwoDoseCoveragePct float64

	CoveredPopulation     float64
	CoveredPopulation65Up float64
	CoveredDepartments    int
}

// autonomyFallbackRate stands in for daily consumption on dates without
// deliveries: assume 3% of the current stock ships per day.
const autonomyFallbackRate = 0.03

// WarehouseKPIs derives the depot panel indicators from a merged warehouse
// state. The demographics roll up over the depot's covered departments;
// departments missing from the table simply contribute nothing.
func (a *Aggregator) WarehouseKPIs(state schema.WarehouseState) WarehouseKPI {
	kpi := WarehouseKPI{}

	if state.Capacity > 0 {
		kpi.FillRatePct = state.StockCurrent / state.Capacity * 100
	}

	for _, code := range state.CoverageDepartments {
		dept, ok := a.tables.VulnerablePop.Department(code)
		if !ok {
			continue
		}
		kpi.CoveredDepartments++
		kpi.CoveredPopulation += dept.PopulationTotale
		kpi.CoveredPopulation65Up += dept.Population65Plus
	}

	if kpi.CoveredPopulation > 0 {
		kpi.StockPer1000 = state.StockCurrent / kpi.CoveredPopulation * 1000
		kpi.TwoDoseCoveragePct = state.StockCurrent / 2 / kpi.CoveredPopulation * 100
	}

	var dailyConsumption float64
	for _, d := range state.Deliveries {
		dailyConsumption += d.Doses
	}
	if dailyConsumption == 0 {
		dailyConsumption = state.StockCurrent * autonomyFallbackRate
	}
	if dailyConsumption > 0 {
		kpi.AutonomyDays = state.StockCurrent / dailyConsumption
	}
	return kpi
}
