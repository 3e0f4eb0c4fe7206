package osm2turns

import (
	"github.com/paulmach/orb"
)

type IntersectionID int

// Intersection is a point where roads meet or where a road ends
type Intersection struct {
	// Lon/lat location
	Point       orb.Point
	Label       string
	Elevation   float64
	ID          IntersectionID
	ControlType ControlType

	// Boundary (Euclidean, clockwise). Assigned by BuildIntersectionGeometry
	Polygon orb.Ring
	// Connected roads. BuildIntersectionGeometry sorts them by incoming angle (counter-clockwise)
	Roads []RoadID
}

type ControlType uint16

const (
	CONTROL_STOP_SIGN = ControlType(iota + 1)
	CONTROL_TRAFFIC_SIGNAL
)

func (iotaIdx ControlType) String() string {
	return [...]string{"stop_sign", "traffic_signal"}[iotaIdx-1]
}

// Degree returns number of connected roads
func (i *Intersection) Degree() int {
	return len(i.Roads)
}
