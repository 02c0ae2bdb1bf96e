package schema

// DepartmentPopulation is the static demographic record for one department.
type DepartmentPopulation struct {
	Code               string  `json:"code"`
	Nom                string  `json:"nom"`
	PopulationTotale   float64 `json:"population_totale"`
	Population65Plus   float64 `json:"population_65_plus"`
	Pourcentage65Plus  float64 `json:"pourcentage_65_plus"`
	PopulationARisque  float64 `json:"population_a_risque"`
	PopulationMoins25  float64 `json:"population_moins_25"`
	PourcentageMoins25 float64 `json:"pourcentage_moins_25"`
}

// VulnerablePopulation is the date-invariant per-department demographics
// table.
type VulnerablePopulation struct {
	Departements []DepartmentPopulation `json:"departements"`
}

// Department returns the record for the given INSEE code. Codes are compared
// with leading zeros stripped so "01" and "1" address the same record.
func (v *VulnerablePopulation) Department(code string) (DepartmentPopulation, bool) {
	if v == nil {
		return DepartmentPopulation{}, false
	}
	want := stripLeadingZeros(code)
	for _, d := range v.Departements {
		if stripLeadingZeros(d.Code) == want {
			return d, true
		}
	}
	return DepartmentPopulation{}, false
}

func stripLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
