package schema

// DepartmentBudget is one department's line in a daily budget record.
type DepartmentBudget struct {
	CodeInsee          string             `json:"code_insee"`
	MontantQuotidien   float64            `json:"montant_quotidien"`
	MontantCumule      float64            `json:"montant_cumule"`
	PartBudgetNational float64            `json:"part_budget_national"`
	SourcesFinancement map[string]float64 `json:"sources_financement"`
}

// RegionBudget is one region's line in a daily budget record, keyed by
// display name like every other region dataset.
type RegionBudget struct {
	Nom                string             `json:"nom"`
	MontantQuotidien   float64            `json:"montant_quotidien"`
	MontantCumule      float64            `json:"montant_cumule"`
	PartBudgetNational float64            `json:"part_budget_national"`
	SourcesFinancement map[string]float64 `json:"sources_financement"`
}

// BudgetDay is the ledger for one calendar date.
type BudgetDay struct {
	Date         string             `json:"date"`
	Departements []DepartmentBudget `json:"departements"`
	Regions      []RegionBudget     `json:"regions"`
}

// BudgetLedger is the campaign funding ledger. Its dates live in a fixed
// historical campaign year, not the year of the epidemic datasets; consumers
// must remap the displayed date into the ledger's year before lookup.
type BudgetLedger struct {
	Donnees []BudgetDay `json:"donnees"`
}

// Day returns the ledger record for an already-remapped date.
func (b *BudgetLedger) Day(date string) (BudgetDay, bool) {
	if b == nil {
		return BudgetDay{}, false
	}
	for _, d := range b.Donnees {
		if d.Date == date {
			return d, true
		}
	}
	return BudgetDay{}, false
}
