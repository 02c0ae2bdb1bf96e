package aggregate_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"

	"github.com/hexavax/hexavax-engine/aggregate"
	"github.com/hexavax/hexavax-engine/consts"
	"github.com/hexavax/hexavax-engine/schema"
	"github.com/hexavax/hexavax-engine/store"
)

func fixtureTables() *store.Tables {
	t := store.NewTables()

	t.DepartmentSeries = schema.DepartmentSeries{
		"2025-12-10": {
			"75": {VaccinationRatePct: 61.2, ICUOccupancyPct: 74, TotalCases: 1200},
		},
	}
	t.RegionSeries = schema.RegionSeries{
		"2025-12-10": {
			consts.RegionIleDeFrance: {VaccinationRatePct: 58.4},
		},
	}
	t.NationalSeries = schema.NationalSeries{
		"2025-12-10": {VaccinationRatePct: 55.1},
	}

	t.HospitalSamples = []schema.HospitalSample{
		{Date: "2025-12-10", Label: "Hôpital Saint-Louis Paris", Saturation: 80},
		{Date: "2025-12-10", Label: "CHU Lyon Sud", Saturation: 60},
		{Date: "2025-12-09", Label: "CHU Paris Nord", Saturation: 95},
	}

	t.Pharmacies = []schema.Pharmacy{
		{Name: "Pharmacie Bastille", Lon: 0.5, Lat: 0.25, StockDoses: 300},
		{Name: "Pharmacie Opéra", Lon: 0.5, Lat: 0.2, Doses: 40},
		{Name: "Pharmacie Vieux-Port", Lon: 5, Lat: 43}, // outside the fixture polygon
	}

	t.VulnerablePop = &schema.VulnerablePopulation{
		Departements: []schema.DepartmentPopulation{
			{Code: "75", Nom: "Paris", PopulationTotale: 2_100_000, Population65Plus: 340_000, PopulationMoins25: 600_000},
			{Code: "77", Nom: "Seine-et-Marne", PopulationTotale: 1_400_000, Population65Plus: 210_000, PopulationMoins25: 450_000},
			{Code: "93", Nom: "Seine-Saint-Denis", PopulationTotale: 1_600_000, Population65Plus: 180_000, PopulationMoins25: 620_000},
		},
	}

	t.Logistics = &schema.VaccineLogistics{
		Warehouses: []schema.Warehouse{
			{ID: "W-IDF", Name: "Dépôt Roissy", CoverageDepartments: []string{"75", "77", "93"}, Capacity: 100_000},
			{ID: "W-SUD", Name: "Dépôt Marseille", CoverageDepartments: []string{"13", "83"}, Capacity: 80_000},
		},
		DailyLogistics: map[string]map[string]schema.DailyLogisticsEntry{
			"2025-12-10": {
				"W-IDF": {StockCurrent: 42_000, StockPlanned: 50_000, Status: schema.WarehouseStatusWarning},
				"W-SUD": {StockCurrent: 60_000, StockPlanned: 20_000, Status: schema.WarehouseStatusNormal},
			},
		},
	}

	t.DepartmentLedger = &schema.BudgetLedger{
		Donnees: []schema.BudgetDay{
			{
				Date: "2024-12-10",
				Departements: []schema.DepartmentBudget{
					{CodeInsee: "075", MontantQuotidien: 120_000, MontantCumule: 1_500_000, PartBudgetNational: 3.2,
						SourcesFinancement: map[string]float64{"etat": 70, "region": 30}},
				},
			},
		},
	}
	t.RegionLedger = &schema.BudgetLedger{
		Donnees: []schema.BudgetDay{
			{
				Date: "2024-12-10",
				Regions: []schema.RegionBudget{
					{Nom: consts.RegionIleDeFrance, MontantQuotidien: 900_000, MontantCumule: 11_000_000, PartBudgetNational: 22.5,
						SourcesFinancement: map[string]float64{"etat": 65, "region": 35}},
					{Nom: consts.RegionOccitanie, MontantQuotidien: 400_000, MontantCumule: 5_000_000, PartBudgetNational: 9.1,
						SourcesFinancement: map[string]float64{"etat": 80, "region": 20}},
				},
			},
		},
	}

	return t
}

func departmentFeature(code, name string) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 0.5}, {0, 0.5}, {0, 0}}})
	f.Properties["code"] = code
	f.Properties["nom"] = name
	return f
}

func regionFeature(name string) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 0.5}, {0, 0.5}, {0, 0}}})
	f.Properties["nom"] = name
	return f
}

func TestSnapshotDepartment(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	snap, err := agg.Snapshot(departmentFeature("075", "Paris"), schema.ViewModeDepartmental, "2025-12-10")
	assert.NoError(t, err)

	assert.Equal(t, "75", snap.Overview.Code)
	assert.Equal(t, "Paris", snap.Overview.Name)
	if assert.NotNil(t, snap.Overview.Population) {
		assert.Equal(t, 2_100_000.0, *snap.Overview.Population)
	}

	assert.True(t, snap.Epidemiology.HasData)
	assert.Equal(t, 61.2, snap.Epidemiology.VaccinationRatePct)

	// Only the Paris hospital on the selected date qualifies.
	if assert.Len(t, snap.HealthSystem.Hospitals, 1) {
		assert.Equal(t, 80.0, snap.HealthSystem.AvgSaturationPct)
		assert.Equal(t, "élevé", snap.HealthSystem.AlertLevel)
	}

	assert.Equal(t, 2, snap.Vaccination.PharmaciesPartners)
	assert.Equal(t, 1, snap.Vaccination.VaccinationCenters)
	if assert.Len(t, snap.Vaccination.Warehouses, 1) {
		assert.Equal(t, "W-IDF", snap.Vaccination.Warehouses[0].ID)
		assert.Equal(t, schema.WarehouseStatusWarning, snap.Vaccination.Warehouses[0].Status)
	}
	assert.Equal(t, 42_000.0, snap.Vaccination.StockCurrent)

	assert.True(t, snap.VulnerablePopulation.HasData)
	assert.Equal(t, 2_100_000.0, snap.VulnerablePopulation.PopulationTotale)
}

func TestSnapshotBudgetYearRemap(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	snap, err := agg.Snapshot(departmentFeature("75", "Paris"), schema.ViewModeDepartmental, "2025-12-10")
	assert.NoError(t, err)

	assert.True(t, snap.Budget.HasData)
	assert.Equal(t, "2024-12-10", snap.Budget.LedgerDate)
	assert.Equal(t, 120_000.0, snap.Budget.MontantQuotidien)
	assert.Equal(t, 3.2, snap.Budget.PartBudgetNational)
}

func TestSnapshotRegionPercentagesFromSums(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	snap, err := agg.Snapshot(regionFeature(consts.RegionIleDeFrance), schema.ViewModeRegional, "2025-12-10")
	assert.NoError(t, err)

	vp := snap.VulnerablePopulation
	assert.True(t, vp.HasData)
	assert.Equal(t, 5_100_000.0, vp.PopulationTotale)
	assert.Equal(t, 730_000.0, vp.Population65Plus)
	// 730000/5100000, not the mean of the three member percentages.
	assert.InDelta(t, 14.3137, vp.Pourcentage65Plus, 0.001)

	assert.True(t, snap.Budget.HasData)
	assert.Equal(t, 22.5, snap.Budget.PartBudgetNational)

	if assert.NotNil(t, snap.Overview.Population) {
		assert.Equal(t, consts.RegionStats[consts.RegionIleDeFrance].Population, *snap.Overview.Population)
	}
}

func TestSnapshotNationalBudgetSumsRegions(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	snap, err := agg.Snapshot(regionFeature("whatever"), schema.ViewModeNational, "2025-12-10")
	assert.NoError(t, err)

	assert.Equal(t, consts.NationalAreaCode, snap.Overview.Code)
	assert.Equal(t, 1_300_000.0, snap.Budget.MontantQuotidien)
	assert.Equal(t, 100.0, snap.Budget.PartBudgetNational)

	// National warehouses include every depot.
	assert.Len(t, snap.Vaccination.Warehouses, 2)
	assert.Equal(t, 102_000.0, snap.Vaccination.StockCurrent)
}

func TestSnapshotNoHospitalsAverageIsZero(t *testing.T) {
	tables := fixtureTables()
	tables.HospitalSamples = nil
	agg := aggregate.New(tables)

	snap, err := agg.Snapshot(departmentFeature("75", "Paris"), schema.ViewModeDepartmental, "2025-12-10")
	assert.NoError(t, err)

	assert.Empty(t, snap.HealthSystem.Hospitals)
	assert.Equal(t, 0.0, snap.HealthSystem.AvgSaturationPct)
	assert.Equal(t, "", snap.HealthSystem.AlertLevel)
}

func TestSnapshotUnknownDepartmentPopulationStaysNil(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	snap, err := agg.Snapshot(departmentFeature("2A", "Corse-du-Sud"), schema.ViewModeDepartmental, "2025-12-10")
	assert.NoError(t, err)

	// Unknown is nil; it must never collapse into a zero population.
	assert.Nil(t, snap.Overview.Population)
	assert.False(t, snap.Epidemiology.HasData)
	assert.False(t, snap.VulnerablePopulation.HasData)
}

func TestSnapshotMissingDatasetsIsolated(t *testing.T) {
	tables := fixtureTables()
	tables.Logistics = nil
	tables.DepartmentLedger = nil
	agg := aggregate.New(tables)

	snap, err := agg.Snapshot(departmentFeature("75", "Paris"), schema.ViewModeDepartmental, "2025-12-10")
	assert.NoError(t, err)

	// Epidemiology still resolves even though logistics and budget are gone.
	assert.True(t, snap.Epidemiology.HasData)
	assert.Empty(t, snap.Vaccination.Warehouses)
	assert.False(t, snap.Budget.HasData)
}

func TestSnapshotRequiresFeatureAndDate(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	// The national singleton never needs the feature's properties, but an
	// absent feature or date still means there is nothing to aggregate.
	_, err := agg.Snapshot(nil, schema.ViewModeNational, "2025-12-10")
	assert.ErrorIs(t, err, aggregate.ErrUnresolvedArea)

	_, err = agg.Snapshot(regionFeature("whatever"), schema.ViewModeNational, "")
	assert.ErrorIs(t, err, aggregate.ErrUnresolvedArea)

	_, err = agg.Snapshot(nil, schema.ViewModeDepartmental, "")
	assert.ErrorIs(t, err, aggregate.ErrUnresolvedArea)
}

func TestResolveAreaRejectsFeatureWithoutCode(t *testing.T) {
	agg := aggregate.New(fixtureTables())

	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	_, err := agg.Snapshot(f, schema.ViewModeDepartmental, "2025-12-10")
	assert.ErrorIs(t, err, aggregate.ErrUnresolvedArea)
}
