package osm2turns

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type LaneID int

// Lane is a typed directional part of a road
type Lane struct {
	// Euclidean geometry in direction of travel
	Geom      orb.LineString
	Width     float64
	ID        LaneID
	Road      RoadID
	SrcI      IntersectionID
	DstI      IntersectionID
	Type      LaneType
	Direction DirectionType
}

type LaneType uint16

const (
	LANE_DRIVING = LaneType(iota + 1)
	LANE_PARKING
	LANE_SIDEWALK
	LANE_SHOULDER
	LANE_BIKING
)

func (iotaIdx LaneType) String() string {
	return [...]string{"driving", "parking", "sidewalk", "shoulder", "biking"}[iotaIdx-1]
}

// IsWalkable checks if pedestrians could use the lane
func (iotaIdx LaneType) IsWalkable() bool {
	return iotaIdx == LANE_SIDEWALK || iotaIdx == LANE_SHOULDER
}

type DirectionType uint16

const (
	DIRECTION_FORWARD = DirectionType(iota + 1)
	DIRECTION_BACKWARD
)

func (iotaIdx DirectionType) String() string {
	return [...]string{"forward", "backward"}[iotaIdx-1]
}

func (lane *Lane) FirstPoint() orb.Point {
	return lane.Geom[0]
}

func (lane *Lane) LastPoint() orb.Point {
	return lane.Geom[len(lane.Geom)-1]
}

func (lane *Lane) FirstLine() orb.LineString {
	return orb.LineString{lane.Geom[0], lane.Geom[1]}
}

func (lane *Lane) LastLine() orb.LineString {
	return orb.LineString{lane.Geom[len(lane.Geom)-2], lane.Geom[len(lane.Geom)-1]}
}

// Endpoint returns point of the lane which faces given intersection
func (lane *Lane) Endpoint(i IntersectionID) orb.Point {
	if lane.DstI == i {
		return lane.LastPoint()
	}
	return lane.FirstPoint()
}

// Length returns Euclidean length of the lane
func (lane *Lane) Length() float64 {
	return planar.Length(lane.Geom)
}
