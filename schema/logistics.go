package schema

// Warehouse statuses as published in the logistics document.
const (
	WarehouseStatusNormal  = "normal"
	WarehouseStatusWarning = "warning"
	WarehouseStatusDanger  = "danger"
)

// Delivery zone types; rural deliveries are drawn with higher arcs.
const (
	DeliveryZoneUrban     = "urban"
	DeliveryZonePeriurban = "periurban"
	DeliveryZoneRural     = "rural"
)

// Warehouse is a vaccine storage depot. Coordinates are [lon, lat].
type Warehouse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Location            string     `json:"location"`
	Coordinates         [2]float64 `json:"coordinates"`
	Capacity            float64    `json:"capacity"`
	CoverageDepartments []string   `json:"coverage_departments"`
}

// Delivery is one dose shipment from a warehouse to a department.
type Delivery struct {
	Dept  string  `json:"dept"`
	Doses float64 `json:"doses"`
	Type  string  `json:"type"`
}

// DailyLogisticsEntry is the state of one warehouse on one date.
type DailyLogisticsEntry struct {
	StockCurrent float64    `json:"stock_current"`
	StockPlanned float64    `json:"stock_planned"`
	Status       string     `json:"status"`
	Deliveries   []Delivery `json:"deliveries"`
}

// VaccineLogistics is the full logistics document: static warehouse records
// plus a date -> warehouse id -> entry table. A warehouse's rendered state is
// always the record merged with the current date's entry; the merge is
// recomputed on every date change.
type VaccineLogistics struct {
	Warehouses     []Warehouse                               `json:"warehouses"`
	DailyLogistics map[string]map[string]DailyLogisticsEntry `json:"daily_logistics"`
}

// DayEntry returns the logistics entry for a warehouse on a date.
func (v *VaccineLogistics) DayEntry(date, warehouseID string) (DailyLogisticsEntry, bool) {
	if v == nil || v.DailyLogistics == nil {
		return DailyLogisticsEntry{}, false
	}
	day, ok := v.DailyLogistics[date]
	if !ok {
		return DailyLogisticsEntry{}, false
	}
	entry, ok := day[warehouseID]
	return entry, ok
}

// WarehouseState is a warehouse merged with its logistics entry for the
// current date, the shape the depot column layer and the side panel consume.
type WarehouseState struct {
	Warehouse
	StockCurrent float64    `json:"stock_current"`
	StockPlanned float64    `json:"stock_planned"`
	Status       string     `json:"status"`
	Deliveries   []Delivery `json:"deliveries"`
}
