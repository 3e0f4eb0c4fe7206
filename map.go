package osm2turns

import (
	"sort"
)

// Map is a normalized road network: intersections, roads bounded by them, lanes and pedestrian turns
type Map struct {
	Intersections map[IntersectionID]*Intersection
	Roads         map[RoadID]*Road
	Lanes         map[LaneID]*Lane
	Turns         map[TurnID]*Turn
	Buildings     []Building
	Areas         []Area
}

// NewMap returns empty map
func NewMap() *Map {
	return &Map{
		Intersections: make(map[IntersectionID]*Intersection),
		Roads:         make(map[RoadID]*Road),
		Lanes:         make(map[LaneID]*Lane),
		Turns:         make(map[TurnID]*Turn),
	}
}

// IntersectionIDs returns identifiers of all intersections in ascending order
func (m *Map) IntersectionIDs() []IntersectionID {
	ids := make([]IntersectionID, 0, len(m.Intersections))
	for id := range m.Intersections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RoadIDs returns identifiers of all roads in ascending order
func (m *Map) RoadIDs() []RoadID {
	ids := make([]RoadID, 0, len(m.Roads))
	for id := range m.Roads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LaneIDs returns identifiers of all lanes in ascending order
func (m *Map) LaneIDs() []LaneID {
	ids := make([]LaneID, 0, len(m.Lanes))
	for id := range m.Lanes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TurnIDs returns identifiers of all turns in ascending order
func (m *Map) TurnIDs() []TurnID {
	ids := make([]TurnID, 0, len(m.Turns))
	for id := range m.Turns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].less(ids[j]) })
	return ids
}

// roadsOf returns roads connected to the intersection in stored (angular) order
func (m *Map) roadsOf(i *Intersection) []*Road {
	roads := make([]*Road, 0, len(i.Roads))
	for _, roadID := range i.Roads {
		if road, ok := m.Roads[roadID]; ok {
			roads = append(roads, road)
		}
	}
	return roads
}
