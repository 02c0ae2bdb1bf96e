package aggregate

import (
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/hexavax/hexavax-engine/consts"
	"github.com/hexavax/hexavax-engine/geo"
	"github.com/hexavax/hexavax-engine/schema"
	"github.com/hexavax/hexavax-engine/store"
)

// Area is the resolved identity of a selected map feature: which granularity
// it belongs to and the keys the per-domain lookups need. Population and
// surface stay nil when no reference source knows them.
type Area struct {
	Kind       schema.ViewMode
	Code       string
	Name       string
	Population *float64
	SurfaceKm2 *float64
}

// AreaResolver is the per-granularity lookup strategy. One implementation
// exists per view mode, so the per-mode behavior lives in one place instead
// of re-branching inside every snapshot section.
type AreaResolver interface {
	// ResolveKey extracts the area identity from the feature.
	ResolveKey(f *geojson.Feature) (Area, bool)
	// ReferenceData fills population and surface from the reference source.
	ReferenceData(tables *store.Tables, area *Area)
	// LookupSeries reads the area's metrics for the date from its table.
	LookupSeries(tables *store.Tables, area Area, date string) (schema.AreaMetrics, bool)
	// LookupBudget reads the area's funding line for an already-remapped date.
	LookupBudget(tables *store.Tables, area Area, ledgerDate string) (schema.BudgetSection, bool)
	// MemberDepartments lists the codes whose records roll up into the area.
	MemberDepartments(area Area) []string
	// ContainsDepartment reports whether a department belongs to the area.
	ContainsDepartment(area Area, code string) bool
}

// ResolverFor returns the strategy for a view mode. Overseas territories are
// departments with a different camera, so they share the departmental
// resolver.
func ResolverFor(mode schema.ViewMode) AreaResolver {
	switch mode {
	case schema.ViewModeNational:
		return nationalResolver{}
	case schema.ViewModeRegional:
		return regionalResolver{}
	default:
		return departmentalResolver{mode: mode}
	}
}

func ref(v float64) *float64 { return &v }

type nationalResolver struct{}

func (nationalResolver) ResolveKey(_ *geojson.Feature) (Area, bool) {
	// The national view has a single area regardless of the clicked feature.
	return Area{
		Kind: schema.ViewModeNational,
		Code: consts.NationalAreaCode,
		Name: consts.NationalAreaName,
	}, true
}

func (nationalResolver) ReferenceData(_ *store.Tables, area *Area) {
	area.Population = ref(consts.NationalPopulation)
	area.SurfaceKm2 = ref(consts.NationalSurfaceKm2)
}

func (nationalResolver) LookupSeries(tables *store.Tables, _ Area, date string) (schema.AreaMetrics, bool) {
	return tables.NationalMetrics(date)
}

// LookupBudget sums the regional ledger lines; the funding-source breakdown
// of the first line is carried as representative.
func (nationalResolver) LookupBudget(tables *store.Tables, _ Area, ledgerDate string) (schema.BudgetSection, bool) {
	day, ok := tables.RegionLedger.Day(ledgerDate)
	if !ok || len(day.Regions) == 0 {
		return schema.BudgetSection{}, false
	}
	section := schema.BudgetSection{PartBudgetNational: 100}
	for i, r := range day.Regions {
		section.MontantQuotidien += r.MontantQuotidien
		section.MontantCumule += r.MontantCumule
		if i == 0 {
			section.SourcesFinancement = r.SourcesFinancement
		}
	}
	return section, true
}

func (nationalResolver) MemberDepartments(_ Area) []string {
	codes := make([]string, 0, len(consts.DepartmentRegion))
	for code := range consts.DepartmentRegion {
		codes = append(codes, code)
	}
	return codes
}

func (nationalResolver) ContainsDepartment(_ Area, code string) bool {
	return code != ""
}

type regionalResolver struct{}

func (regionalResolver) ResolveKey(f *geojson.Feature) (Area, bool) {
	name, ok := geo.AreaName(f)
	if !ok {
		return Area{}, false
	}
	return Area{Kind: schema.ViewModeRegional, Name: name}, true
}

func (regionalResolver) ReferenceData(_ *store.Tables, area *Area) {
	if stats, ok := consts.RegionStats[area.Name]; ok {
		area.Population = ref(stats.Population)
		area.SurfaceKm2 = ref(stats.SurfaceKm2)
	}
}

func (regionalResolver) LookupSeries(tables *store.Tables, area Area, date string) (schema.AreaMetrics, bool) {
	return tables.RegionMetrics(date, area.Name)
}

func (regionalResolver) LookupBudget(tables *store.Tables, area Area, ledgerDate string) (schema.BudgetSection, bool) {
	day, ok := tables.RegionLedger.Day(ledgerDate)
	if !ok {
		return schema.BudgetSection{}, false
	}
	for _, r := range day.Regions {
		if strings.EqualFold(r.Nom, area.Name) {
			return schema.BudgetSection{
				MontantQuotidien:   r.MontantQuotidien,
				MontantCumule:      r.MontantCumule,
				PartBudgetNational: r.PartBudgetNational,
				SourcesFinancement: r.SourcesFinancement,
			}, true
		}
	}
	return schema.BudgetSection{}, false
}

func (regionalResolver) MemberDepartments(area Area) []string {
	return consts.RegionDepartments(area.Name)
}

func (regionalResolver) ContainsDepartment(area Area, code string) bool {
	return consts.DepartmentRegion[geo.NormalizeDepartmentCode(code)] == area.Name
}

type departmentalResolver struct {
	mode schema.ViewMode
}

func (r departmentalResolver) ResolveKey(f *geojson.Feature) (Area, bool) {
	code, ok := geo.DepartmentCode(f)
	if !ok {
		return Area{}, false
	}
	area := Area{Kind: r.mode, Code: code}
	if name, ok := geo.AreaName(f); ok {
		area.Name = name
	}
	return area, true
}

func (departmentalResolver) ReferenceData(tables *store.Tables, area *Area) {
	dept, ok := tables.VulnerablePop.Department(area.Code)
	if !ok {
		return
	}
	area.Population = ref(dept.PopulationTotale)
	if area.Name == "" {
		area.Name = dept.Nom
	}
}

func (departmentalResolver) LookupSeries(tables *store.Tables, area Area, date string) (schema.AreaMetrics, bool) {
	return tables.DepartmentMetrics(date, area.Code)
}

func (departmentalResolver) LookupBudget(tables *store.Tables, area Area, ledgerDate string) (schema.BudgetSection, bool) {
	day, ok := tables.DepartmentLedger.Day(ledgerDate)
	if !ok {
		return schema.BudgetSection{}, false
	}
	for _, d := range day.Departements {
		if geo.NormalizeDepartmentCode(d.CodeInsee) == area.Code {
			return schema.BudgetSection{
				MontantQuotidien:   d.MontantQuotidien,
				MontantCumule:      d.MontantCumule,
				PartBudgetNational: d.PartBudgetNational,
				SourcesFinancement: d.SourcesFinancement,
			}, true
		}
	}
	return schema.BudgetSection{}, false
}

func (departmentalResolver) MemberDepartments(area Area) []string {
	return []string{area.Code}
}

func (departmentalResolver) ContainsDepartment(area Area, code string) bool {
	return geo.NormalizeDepartmentCode(code) == area.Code
}
