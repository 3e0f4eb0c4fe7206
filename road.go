package osm2turns

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type RoadID int

// Road is an edge between two intersections. Fields set by SplitRoads are never changed afterwards,
// AssignLanes fills Center and Lanes
type Road struct {
	Tags osm.Tags
	// Lon/lat geometry from I1 to I2
	Geom orb.LineString
	// Geometry in EPSG:3857
	GeomEuclidean orb.LineString
	// GeomEuclidean trimmed back from intersections. Lanes are laid out along it
	Center orb.LineString
	// Lanes ordered from the road's center line outwards, right side of the way first
	Lanes    []LaneID
	SourceID int64
	ID       RoadID
	I1       IntersectionID
	I2       IntersectionID
}

// IncomingLanes returns lanes of the road which end at given intersection
func (road *Road) IncomingLanes(lanes map[LaneID]*Lane, i IntersectionID) []*Lane {
	result := make([]*Lane, 0, len(road.Lanes))
	for _, laneID := range road.Lanes {
		if lane, ok := lanes[laneID]; ok && lane.DstI == i {
			result = append(result, lane)
		}
	}
	return result
}

// OutgoingLanes returns lanes of the road which start at given intersection
func (road *Road) OutgoingLanes(lanes map[LaneID]*Lane, i IntersectionID) []*Lane {
	result := make([]*Lane, 0, len(road.Lanes))
	for _, laneID := range road.Lanes {
		if lane, ok := lanes[laneID]; ok && lane.SrcI == i {
			result = append(result, lane)
		}
	}
	return result
}

// centerLine returns trimmed center line when lanes are assigned and untouched geometry otherwise
func (road *Road) centerLine() orb.LineString {
	if len(road.Center) >= 2 {
		return road.Center
	}
	return road.GeomEuclidean
}

// incomingLineEuclidean returns the last segment of the road's center line directed into given intersection
func (road *Road) incomingLineEuclidean(i IntersectionID) (orb.Point, orb.Point) {
	geom := road.centerLine()
	if road.I2 == i {
		return geom[len(geom)-2], geom[len(geom)-1]
	}
	return geom[1], geom[0]
}
