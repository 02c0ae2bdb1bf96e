// Package export flattens an area snapshot into spreadsheet rows.
package export

import (
	"fmt"
	"sort"

	"github.com/hexavax/hexavax-engine/schema"
)

// Header is the first row of every export.
var Header = []string{"section", "indicateur", "valeur"}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// SnapshotRows flattens the snapshot into rows of section, indicator and
// value, header first. Sections that carry no data contribute no rows, so a
// half-loaded snapshot exports cleanly.
func SnapshotRows(snap schema.AggregatedAreaSnapshot) [][]string {
	rows := [][]string{Header}

	row := func(section, indicator, value string) {
		rows = append(rows, []string{section, indicator, value})
	}

	row("overview", "code", snap.Overview.Code)
	row("overview", "nom", snap.Overview.Name)
	row("overview", "type", string(snap.Overview.Type))
	row("overview", "date", snap.Overview.Date)
	if snap.Overview.Population != nil {
		row("overview", "population", formatNumber(*snap.Overview.Population))
	}
	if snap.Overview.SurfaceKm2 != nil {
		row("overview", "surface_km2", formatNumber(*snap.Overview.SurfaceKm2))
	}

	if snap.Epidemiology.HasData {
		row("epidemiologie", "taux_vaccination_pct", formatNumber(snap.Epidemiology.VaccinationRatePct))
		row("epidemiologie", "cas_pour_100k", formatNumber(snap.Epidemiology.CasesPer100k))
		row("epidemiologie", "taux_incidence", formatNumber(snap.Epidemiology.IncidenceRate))
		row("epidemiologie", "taux_positivite", formatNumber(snap.Epidemiology.PositivityRate))
		row("epidemiologie", "occupation_rea_pct", formatNumber(snap.Epidemiology.ICUOccupancyPct))
		row("epidemiologie", "r_effectif", formatNumber(snap.Epidemiology.REffectif))
		row("epidemiologie", "cas_totaux", formatNumber(snap.Epidemiology.TotalCases))
		row("epidemiologie", "vaccines_totaux", formatNumber(snap.Epidemiology.TotalVaccinated))
	}

	if len(snap.HealthSystem.Hospitals) > 0 {
		row("hopitaux", "etablissements", fmt.Sprintf("%d", len(snap.HealthSystem.Hospitals)))
		row("hopitaux", "saturation_moyenne_pct", formatNumber(snap.HealthSystem.AvgSaturationPct))
		row("hopitaux", "niveau_alerte", snap.HealthSystem.AlertLevel)
	}

	row("vaccination", "pharmacies_partenaires", fmt.Sprintf("%d", snap.Vaccination.PharmaciesPartners))
	row("vaccination", "centres_vaccination", fmt.Sprintf("%d", snap.Vaccination.VaccinationCenters))
	if len(snap.Vaccination.Warehouses) > 0 {
		row("vaccination", "stock_actuel", formatNumber(snap.Vaccination.StockCurrent))
		row("vaccination", "stock_prevu", formatNumber(snap.Vaccination.StockPlanned))
		for _, w := range snap.Vaccination.Warehouses {
			row("vaccination", "entrepot_"+w.ID, formatNumber(w.StockCurrent))
		}
	}

	if snap.VulnerablePopulation.HasData {
		row("population_vulnerable", "population_totale", formatNumber(snap.VulnerablePopulation.PopulationTotale))
		row("population_vulnerable", "population_65_plus", formatNumber(snap.VulnerablePopulation.Population65Plus))
		row("population_vulnerable", "pourcentage_65_plus", formatNumber(snap.VulnerablePopulation.Pourcentage65Plus))
		row("population_vulnerable", "population_a_risque", formatNumber(snap.VulnerablePopulation.PopulationARisque))
		row("population_vulnerable", "population_moins_25", formatNumber(snap.VulnerablePopulation.PopulationMoins25))
		row("population_vulnerable", "pourcentage_moins_25", formatNumber(snap.VulnerablePopulation.PourcentageMoins25))
	}

	if snap.Budget.HasData {
		row("budget", "montant_quotidien", formatNumber(snap.Budget.MontantQuotidien))
		row("budget", "montant_cumule", formatNumber(snap.Budget.MontantCumule))
		row("budget", "part_budget_national_pct", formatNumber(snap.Budget.PartBudgetNational))
		row("budget", "date_reference", snap.Budget.LedgerDate)

		sources := make([]string, 0, len(snap.Budget.SourcesFinancement))
		for source := range snap.Budget.SourcesFinancement {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			row("budget", "financement_"+source, formatNumber(snap.Budget.SourcesFinancement[source]))
		}
	}

	return rows
}
