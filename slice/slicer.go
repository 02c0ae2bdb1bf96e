// Package slice projects raw sample arrays into the lightweight renderable
// records for one scrub date. Slicing is a pure filter+project, O(n) per
// call; results are memoized on (date, snapshot version) so re-renders that
// change neither input reuse the previous allocation.
package slice

import (
	"github.com/google/uuid"

	"github.com/hexavax/hexavax-engine/schema"
)

type pointsKey struct {
	date    string
	version uuid.UUID
}

// Slicer caches the last projection per dataset. A new snapshot version is a
// cache miss by definition; there is no other invalidation rule.
type Slicer struct {
	lastPoints    pointsKey
	cachedPoints  []schema.TimePoint
	lastHospitals pointsKey
	cachedHosp    []schema.RenderableHospital
}

// New returns an empty slicer.
func New() *Slicer {
	return &Slicer{}
}

// EpidemicPoints returns the heatmap points active on the given date. An
// empty date (out-of-range scrub) yields an empty set.
func (s *Slicer) EpidemicPoints(samples []schema.EpidemicSample, version uuid.UUID, date string) []schema.TimePoint {
	key := pointsKey{date: date, version: version}
	if key == s.lastPoints && s.cachedPoints != nil {
		return s.cachedPoints
	}

	points := make([]schema.TimePoint, 0, len(samples)/8)
	if date != "" {
		for _, raw := range samples {
			if raw.Date != date {
				continue
			}
			points = append(points, schema.TimePoint{
				Position: [2]float64{raw.Lon, raw.Lat},
				Weight:   raw.Value,
				Label:    raw.Label,
			})
		}
	}

	s.lastPoints = key
	s.cachedPoints = points
	return points
}

// Hospitals returns the hospital saturation records active on the given date.
func (s *Slicer) Hospitals(samples []schema.HospitalSample, version uuid.UUID, date string) []schema.RenderableHospital {
	key := pointsKey{date: date, version: version}
	if key == s.lastHospitals && s.cachedHosp != nil {
		return s.cachedHosp
	}

	hospitals := make([]schema.RenderableHospital, 0, len(samples)/8)
	if date != "" {
		for _, raw := range samples {
			if raw.Date != date {
				continue
			}
			hospitals = append(hospitals, schema.RenderableHospital{
				Lat:        raw.Lat,
				Lon:        raw.Lon,
				Saturation: raw.Saturation,
				Label:      raw.Label,
			})
		}
	}

	s.lastHospitals = key
	s.cachedHosp = hospitals
	return hospitals
}
