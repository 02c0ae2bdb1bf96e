package consts

import "strings"

// Region display names. Stats and budget datasets index regions by these
// names, never by a numeric code.
const (
	RegionAuvergneRhoneAlpes     = "Auvergne-Rhône-Alpes"
	RegionBourgogneFrancheComte  = "Bourgogne-Franche-Comté"
	RegionBretagne               = "Bretagne"
	RegionCentreValDeLoire       = "Centre-Val de Loire"
	RegionCorse                  = "Corse"
	RegionGrandEst               = "Grand Est"
	RegionHautsDeFrance          = "Hauts-de-France"
	RegionIleDeFrance            = "Île-de-France"
	RegionNormandie              = "Normandie"
	RegionNouvelleAquitaine      = "Nouvelle-Aquitaine"
	RegionOccitanie              = "Occitanie"
	RegionPaysDeLaLoire          = "Pays de la Loire"
	RegionProvenceAlpesCoteDAzur = "Provence-Alpes-Côte d'Azur"
	RegionGuadeloupe             = "Guadeloupe"
	RegionMartinique             = "Martinique"
	RegionGuyane                 = "Guyane"
	RegionLaReunion              = "La Réunion"
	RegionMayotte                = "Mayotte"
)

// DepartmentRegion maps a normalized INSEE department code to its region
// display name. This is the single shared department→region table: logistics
// and vulnerable-population aggregation must both go through it.
var DepartmentRegion map[string]string

func init() {
	DepartmentRegion = make(map[string]string)

	fill := func(region string, codes ...string) {
		for _, c := range codes {
			DepartmentRegion[c] = region
		}
	}

	fill(RegionAuvergneRhoneAlpes, "1", "3", "7", "15", "26", "38", "42", "43", "63", "69", "73", "74")
	fill(RegionBourgogneFrancheComte, "21", "25", "39", "58", "70", "71", "89", "90")
	fill(RegionBretagne, "22", "29", "35", "56")
	fill(RegionCentreValDeLoire, "18", "28", "36", "37", "41", "45")
	fill(RegionCorse, "2A", "2B")
	fill(RegionGrandEst, "8", "10", "51", "52", "54", "55", "57", "67", "68", "88")
	fill(RegionHautsDeFrance, "2", "59", "60", "62", "80")
	fill(RegionIleDeFrance, "75", "77", "78", "91", "92", "93", "94", "95")
	fill(RegionNormandie, "14", "27", "50", "61", "76")
	fill(RegionNouvelleAquitaine, "16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87")
	fill(RegionOccitanie, "9", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82")
	fill(RegionPaysDeLaLoire, "44", "49", "53", "72", "85")
	fill(RegionProvenceAlpesCoteDAzur, "4", "5", "6", "13", "83", "84")
	fill(RegionGuadeloupe, "971")
	fill(RegionMartinique, "972")
	fill(RegionGuyane, "973")
	fill(RegionLaReunion, "974")
	fill(RegionMayotte, "976")
}

// RegionDepartments returns the normalized codes of a region's member
// departments.
func RegionDepartments(region string) []string {
	codes := make([]string, 0, 13)
	for code, r := range DepartmentRegion {
		if r == region {
			codes = append(codes, code)
		}
	}
	return codes
}

// RegionReference is the fixed demographic reference for one region.
type RegionReference struct {
	Population float64
	SurfaceKm2 float64
}

// RegionStats holds reference population and surface per region, keyed by
// display name like the time-series tables.
var RegionStats = map[string]RegionReference{
	RegionAuvergneRhoneAlpes:     {Population: 8_078_000, SurfaceKm2: 69_711},
	RegionBourgogneFrancheComte:  {Population: 2_793_000, SurfaceKm2: 47_784},
	RegionBretagne:               {Population: 3_373_000, SurfaceKm2: 27_208},
	RegionCentreValDeLoire:       {Population: 2_573_000, SurfaceKm2: 39_151},
	RegionCorse:                  {Population: 344_000, SurfaceKm2: 8_680},
	RegionGrandEst:               {Population: 5_562_000, SurfaceKm2: 57_441},
	RegionHautsDeFrance:          {Population: 6_004_000, SurfaceKm2: 31_806},
	RegionIleDeFrance:            {Population: 12_262_000, SurfaceKm2: 12_011},
	RegionNormandie:              {Population: 3_325_000, SurfaceKm2: 29_906},
	RegionNouvelleAquitaine:      {Population: 6_034_000, SurfaceKm2: 84_036},
	RegionOccitanie:              {Population: 5_973_000, SurfaceKm2: 72_724},
	RegionPaysDeLaLoire:          {Population: 3_832_000, SurfaceKm2: 32_082},
	RegionProvenceAlpesCoteDAzur: {Population: 5_098_000, SurfaceKm2: 31_400},
	RegionGuadeloupe:             {Population: 384_000, SurfaceKm2: 1_628},
	RegionMartinique:             {Population: 361_000, SurfaceKm2: 1_128},
	RegionGuyane:                 {Population: 295_000, SurfaceKm2: 83_534},
	RegionLaReunion:              {Population: 868_000, SurfaceKm2: 2_504},
	RegionMayotte:                {Population: 310_000, SurfaceKm2: 374},
}

// National reference constants for the national singleton area.
const (
	NationalAreaCode   = "FRA"
	NationalAreaName   = "France"
	NationalPopulation = 68_043_000
	NationalSurfaceKm2 = 643_801
)

// HospitalCityDepartment maps a lowercase city fragment found in hospital
// labels to the department hosting it. Hospital records only carry free-text
// labels, so area filtering is a substring heuristic over this table; it is a
// known approximation, not geocoding.
var HospitalCityDepartment map[string]string

func init() {
	HospitalCityDepartment = make(map[string]string)

	HospitalCityDepartment["paris"] = "75"
	HospitalCityDepartment["lyon"] = "69"
	HospitalCityDepartment["marseille"] = "13"
	HospitalCityDepartment["toulouse"] = "31"
	HospitalCityDepartment["bordeaux"] = "33"
	HospitalCityDepartment["lille"] = "59"
	HospitalCityDepartment["nantes"] = "44"
	HospitalCityDepartment["strasbourg"] = "67"
	HospitalCityDepartment["nice"] = "6"
	HospitalCityDepartment["rennes"] = "35"
	HospitalCityDepartment["montpellier"] = "34"
	HospitalCityDepartment["grenoble"] = "38"
	HospitalCityDepartment["dijon"] = "21"
	HospitalCityDepartment["rouen"] = "76"
	HospitalCityDepartment["reims"] = "51"
	HospitalCityDepartment["tours"] = "37"
	HospitalCityDepartment["clermont-ferrand"] = "63"
	HospitalCityDepartment["nancy"] = "54"
	HospitalCityDepartment["caen"] = "14"
	HospitalCityDepartment["limoges"] = "87"
	HospitalCityDepartment["besançon"] = "25"
	HospitalCityDepartment["poitiers"] = "86"
	HospitalCityDepartment["orléans"] = "45"
	HospitalCityDepartment["amiens"] = "80"
	HospitalCityDepartment["brest"] = "29"
	HospitalCityDepartment["saint-étienne"] = "42"
	HospitalCityDepartment["angers"] = "49"
	HospitalCityDepartment["ajaccio"] = "2A"
	HospitalCityDepartment["bastia"] = "2B"
	HospitalCityDepartment["pointe-à-pitre"] = "971"
	HospitalCityDepartment["fort-de-france"] = "972"
	HospitalCityDepartment["cayenne"] = "973"
	HospitalCityDepartment["saint-denis"] = "974"
	HospitalCityDepartment["mamoudzou"] = "976"
}

// HospitalDepartment resolves a hospital label to a department code via the
// city table, or "" when no known city appears in the label.
func HospitalDepartment(label string) string {
	lower := strings.ToLower(label)
	for city, dept := range HospitalCityDepartment {
		if strings.Contains(lower, city) {
			return dept
		}
	}
	return ""
}
