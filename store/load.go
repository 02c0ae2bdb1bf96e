package store

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	log "github.com/sirupsen/logrus"

	"github.com/hexavax/hexavax-engine/consts"
	"github.com/hexavax/hexavax-engine/geo"
	"github.com/hexavax/hexavax-engine/schema"
)

const loadLogPrefix = "load"

// Loader fills Tables from a Fetcher. Every dataset loads independently: a
// failed fetch logs, reports to sentry and leaves that one table in its "not
// loaded" default, never blocking the others.
type Loader struct {
	fetcher Fetcher
	tables  *Tables
}

// NewLoader builds a loader writing into the given tables.
func NewLoader(fetcher Fetcher, tables *Tables) *Loader {
	return &Loader{fetcher: fetcher, tables: tables}
}

// LoadAll fetches every dataset category. The returned error is nil even if
// individual datasets failed; per-dataset failures degrade the affected
// layers only.
func (l *Loader) LoadAll(ctx context.Context) {
	l.LoadEpidemicSamples(ctx, consts.EpidemicDatasetFrance)
	l.LoadHospitalSamples(ctx)
	l.LoadPharmacies(ctx)
	l.LoadDepartmentSeries(ctx)
	l.LoadRegionSeries(ctx)
	l.LoadNationalSeries(ctx)
	l.LoadVulnerablePopulation(ctx)
	l.LoadVaccineLogistics(ctx)
	l.LoadBudgetLedgers(ctx)
}

func (l *Loader) fetchJSON(ctx context.Context, path string, v interface{}) bool {
	body, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		log.WithField("prefix", loadLogPrefix).WithError(err).Warnf("fetch %s failed", path)
		sentry.CaptureException(err)
		return false
	}
	if err := sonic.Unmarshal(body, v); err != nil {
		log.WithField("prefix", loadLogPrefix).WithError(err).Warnf("parse %s failed", path)
		sentry.CaptureException(err)
		return false
	}
	return true
}

// LoadEpidemicSamples loads the daily propagation samples for the selected
// dataset. Switching datasets reloads and re-versions the sample table.
func (l *Loader) LoadEpidemicSamples(ctx context.Context, dataset consts.EpidemicDataset) {
	var samples []schema.EpidemicSample
	if !l.fetchJSON(ctx, consts.EpidemicPath(dataset), &samples) {
		return
	}
	l.tables.EpidemicSamples = samples
	l.tables.EpidemicVersion = uuid.New()
	log.WithField("prefix", loadLogPrefix).Infof("loaded %d epidemic samples", len(samples))
}

// LoadHospitalSamples loads the hospital saturation samples.
func (l *Loader) LoadHospitalSamples(ctx context.Context) {
	var samples []schema.HospitalSample
	if !l.fetchJSON(ctx, consts.PathHospitals, &samples) {
		return
	}
	l.tables.HospitalSamples = samples
	l.tables.HospitalVersion = uuid.New()
	log.WithField("prefix", loadLogPrefix).Infof("loaded %d hospital samples", len(samples))
}

// LoadPharmacies loads the pharmacy points.
func (l *Loader) LoadPharmacies(ctx context.Context) {
	var pharmacies []schema.Pharmacy
	if !l.fetchJSON(ctx, consts.PathPharmacies, &pharmacies) {
		return
	}
	l.tables.Pharmacies = pharmacies
	l.tables.PharmacyVersion = uuid.New()
}

// LoadDepartmentSeries loads the per-department epidemiology time series.
// Upstream documents key departments inconsistently, some zero padded ("01")
// and some stripped ("1"), so every code is normalized once here and lookups
// stay exact-match.
func (l *Loader) LoadDepartmentSeries(ctx context.Context) {
	var series schema.DepartmentSeries
	if !l.fetchJSON(ctx, consts.PathDepartmentSeries, &series) {
		return
	}
	for date, day := range series {
		normalized := make(map[string]schema.AreaMetrics, len(day))
		for code, m := range day {
			normalized[geo.NormalizeDepartmentCode(code)] = m
		}
		series[date] = normalized
	}
	l.tables.DepartmentSeries = series
}

// LoadRegionSeries loads the per-region epidemiology time series.
func (l *Loader) LoadRegionSeries(ctx context.Context) {
	var series schema.RegionSeries
	if l.fetchJSON(ctx, consts.PathRegionSeries, &series) {
		l.tables.RegionSeries = series
	}
}

// LoadNationalSeries loads the national epidemiology time series.
func (l *Loader) LoadNationalSeries(ctx context.Context) {
	var series schema.NationalSeries
	if l.fetchJSON(ctx, consts.PathNationalSeries, &series) {
		l.tables.NationalSeries = series
	}
}

// LoadVulnerablePopulation loads the static demographics table.
func (l *Loader) LoadVulnerablePopulation(ctx context.Context) {
	var pop schema.VulnerablePopulation
	if l.fetchJSON(ctx, consts.PathVulnerablePop, &pop) {
		l.tables.VulnerablePop = &pop
	}
}

// LoadVaccineLogistics loads the warehouse and delivery document.
func (l *Loader) LoadVaccineLogistics(ctx context.Context) {
	var logistics schema.VaccineLogistics
	if l.fetchJSON(ctx, consts.PathVaccineLogistics, &logistics) {
		l.tables.Logistics = &logistics
	}
}

// LoadBudgetLedgers loads the department and region funding ledgers.
func (l *Loader) LoadBudgetLedgers(ctx context.Context) {
	var departments schema.BudgetLedger
	if l.fetchJSON(ctx, consts.PathBudgetDepartments, &departments) {
		l.tables.DepartmentLedger = &departments
	}

	var regions schema.BudgetLedger
	if l.fetchJSON(ctx, consts.PathBudgetRegions, &regions) {
		l.tables.RegionLedger = &regions
	}
}

// LoadViewGeometry fetches the boundary GeoJSON for a view mode under the
// given generation token. A completion whose token was superseded by a later
// mode switch is discarded.
func (l *Loader) LoadViewGeometry(ctx context.Context, mode schema.ViewMode, token int) {
	body, err := l.fetcher.Fetch(ctx, consts.GeoPath(mode))
	if err != nil {
		log.WithField("prefix", loadLogPrefix).WithError(err).Warnf("fetch boundaries for %s failed", mode)
		sentry.CaptureException(err)
		return
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		log.WithField("prefix", loadLogPrefix).WithError(err).Warnf("parse boundaries for %s failed", mode)
		sentry.CaptureException(err)
		return
	}

	if !l.tables.InstallViewGeometry(token, mode, fc) {
		log.WithField("prefix", loadLogPrefix).Debugf("discarding stale boundary fetch for %s", mode)
		return
	}
	log.WithField("prefix", loadLogPrefix).Infof("loaded %d boundary features for %s", len(fc.Features), mode)
}
