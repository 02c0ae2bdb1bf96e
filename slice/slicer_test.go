package slice

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hexavax/hexavax-engine/schema"
)

var samples = []schema.EpidemicSample{
	{Date: "2025-11-20", Lat: 48.85, Lon: 2.35, Value: 80, Label: "Paris"},
	{Date: "2025-11-20", Lat: 45.76, Lon: 4.84, Value: 40, Label: "Lyon"},
	{Date: "2025-11-21", Lat: 48.85, Lon: 2.35, Value: 90, Label: "Paris"},
}

func TestEpidemicPointsFiltersByDate(t *testing.T) {
	s := New()
	points := s.EpidemicPoints(samples, uuid.New(), "2025-11-20")
	assert.Len(t, points, 2)
	assert.Equal(t, [2]float64{2.35, 48.85}, points[0].Position)
	assert.Equal(t, 80.0, points[0].Weight)
}

func TestEpidemicPointsEmptyDate(t *testing.T) {
	s := New()
	assert.Empty(t, s.EpidemicPoints(samples, uuid.New(), ""))
}

func TestEpidemicPointsMemoized(t *testing.T) {
	s := New()
	v := uuid.New()
	first := s.EpidemicPoints(samples, v, "2025-11-20")
	second := s.EpidemicPoints(samples, v, "2025-11-20")
	assert.Same(t, &first[0], &second[0], "same (date, version) must reuse the cached slice")
}

func TestEpidemicPointsNewVersionMisses(t *testing.T) {
	s := New()
	first := s.EpidemicPoints(samples, uuid.New(), "2025-11-20")
	second := s.EpidemicPoints(samples, uuid.New(), "2025-11-20")
	assert.Equal(t, first, second)
	assert.NotSame(t, &first[0], &second[0])
}

func TestEpidemicPointsDateChangeMisses(t *testing.T) {
	s := New()
	v := uuid.New()
	day1 := s.EpidemicPoints(samples, v, "2025-11-20")
	day2 := s.EpidemicPoints(samples, v, "2025-11-21")
	assert.Len(t, day1, 2)
	assert.Len(t, day2, 1)
}

func TestHospitals(t *testing.T) {
	hosp := []schema.HospitalSample{
		{Date: "2025-11-20", Lat: 44.84, Lon: -0.58, Saturation: 72, Label: "CHU Bordeaux"},
		{Date: "2025-11-21", Lat: 44.84, Lon: -0.58, Saturation: 75, Label: "CHU Bordeaux"},
	}
	s := New()
	out := s.Hospitals(hosp, uuid.New(), "2025-11-20")
	assert.Len(t, out, 1)
	assert.Equal(t, 72.0, out[0].Saturation)
}
