package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const metersPerDegreeLat = 111320

// Centroid returns the approximate center of a feature as [lon, lat]: the
// mean of the outer ring's vertices, matching how arc targets and budget
// labels were always positioned. MultiPolygons use their first polygon.
func Centroid(f *geojson.Feature) ([2]float64, bool) {
	if f == nil || f.Geometry == nil {
		return [2]float64{}, false
	}

	var ring orb.Ring
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return [2]float64{}, false
		}
		ring = g[0]
	case orb.MultiPolygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return [2]float64{}, false
		}
		ring = g[0][0]
	default:
		return [2]float64{}, false
	}

	if len(ring) == 0 {
		return [2]float64{}, false
	}
	var sumLon, sumLat float64
	for _, pt := range ring {
		sumLon += pt.Lon()
		sumLat += pt.Lat()
	}
	n := float64(len(ring))
	return [2]float64{sumLon / n, sumLat / n}, true
}

// Contains reports whether a lon/lat point falls inside a feature's polygon
// or multipolygon.
func Contains(f *geojson.Feature, lon, lat float64) bool {
	if f == nil || f.Geometry == nil {
		return false
	}
	pt := orb.Point{lon, lat}
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		return polygonContains(g, pt)
	case orb.MultiPolygon:
		for _, poly := range g {
			if polygonContains(poly, pt) {
				return true
			}
		}
	}
	return false
}

// polygonContains is a ray-casting test over the outer ring; holes are rare
// in the administrative collections and are ignored on purpose.
func polygonContains(poly orb.Polygon, pt orb.Point) bool {
	if len(poly) == 0 {
		return false
	}
	ring := poly[0]
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i].Lon(), ring[i].Lat()
		xj, yj := ring[j].Lon(), ring[j].Lat()
		if (yi > pt.Lat()) != (yj > pt.Lat()) &&
			pt.Lon() < (xj-xi)*(pt.Lat()-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// BuildHex returns a closed flat-top hexagon ring of the given radius in
// meters around a lon/lat center, for the hospital saturation cells.
func BuildHex(lon, lat, radiusMeters float64) [][2]float64 {
	latRad := lat * math.Pi / 180
	metersPerDegLon := metersPerDegreeLat * math.Cos(latRad)

	coords := make([][2]float64, 0, 7)
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * (60*float64(i) + 30)
		dx := radiusMeters * math.Cos(angle)
		dy := radiusMeters * math.Sin(angle)
		coords = append(coords, [2]float64{
			lon + dx/metersPerDegLon,
			lat + dy/metersPerDegreeLat,
		})
	}
	coords = append(coords, coords[0])
	return coords
}
