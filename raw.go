package osm2turns

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// RawRoad is continuous way geometry as it comes from the source data. Points are lon/lat
type RawRoad struct {
	SourceID int64
	Points   orb.LineString
	Tags     osm.Tags
}

// Building is passed through road splitting untouched
type Building struct {
	SourceID int64
	Points   orb.LineString
	Tags     osm.Tags
}

// Area is passed through road splitting untouched
type Area struct {
	SourceID int64
	Points   orb.LineString
	Tags     osm.Tags
}

// RawData is the input of road splitting
type RawData struct {
	Roads     []RawRoad
	Buildings []Building
	Areas     []Area
	// Points of OSM nodes tagged as traffic signals
	Signals map[orb.Point]struct{}
	// Names of OSM nodes which could be used as intersection labels
	Names map[orb.Point]string
}

// ElevationFunc returns height (meters) for given point
type ElevationFunc func(lon, lat float64) float64

// FlatElevation is ElevationFunc for maps without elevation data
func FlatElevation(lon, lat float64) float64 {
	return 0
}

func (road *RawRoad) isRoundabout() bool {
	_, ok := roundaboutJunctionTypes[road.Tags.Find("junction")]
	return ok
}
