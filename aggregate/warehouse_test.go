package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexavax/hexavax-engine/aggregate"
	"github.com/hexavax/hexavax-engine/schema"
)

func warehouseState() schema.WarehouseState {
	state := schema.WarehouseState{
		Warehouse: schema.Warehouse{
			ID: "W-IDF", Capacity: 100_000,
			CoverageDepartments: []string{"75", "77", "999"},
		},
		StockCurrent: 40_000,
	}
	return state
}

func TestWarehouseKPIs(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	state := warehouseState()
	state.Deliveries = []schema.Delivery{{Dept: "75", Doses: 5000}, {Dept: "77", Doses: 3000}}
	kpi := agg.WarehouseKPIs(state)

	assert.Equal(t, 40.0, kpi.FillRatePct)
	// The unknown department 999 contributes nothing to the rollup.
	assert.Equal(t, 2, kpi.CoveredDepartments)
	assert.Equal(t, 3_500_000.0, kpi.CoveredPopulation)
	assert.Equal(t, 550_000.0, kpi.CoveredPopulation65Up)

	assert.InDelta(t, 11.4286, kpi.StockPer1000, 0.001)
	assert.InDelta(t, 0.5714, kpi.TwoDoseCoveragePct, 0.001)
	assert.Equal(t, 5.0, kpi.AutonomyDays)
}

func TestWarehouseKPIsAutonomyFallback(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	// No deliveries today: autonomy falls back to 3% daily consumption.
	kpi := agg.WarehouseKPIs(warehouseState())
	assert.InDelta(t, 33.333, kpi.AutonomyDays, 0.001)
}

func TestWarehouseKPIsZeroCapacity(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	state := warehouseState()
	state.Capacity = 0
	state.StockCurrent = 0
	kpi := agg.WarehouseKPIs(state)
	assert.Equal(t, 0.0, kpi.FillRatePct)
	assert.Equal(t, 0.0, kpi.AutonomyDays)
}
