package osm2turns

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// TurnID identifies directed movement between two lanes at one intersection
type TurnID struct {
	Parent IntersectionID
	Src    LaneID
	Dst    LaneID
}

func (id TurnID) String() string {
	return fmt.Sprintf("TurnID(%d: %d -> %d)", id.Parent, id.Src, id.Dst)
}

func (id TurnID) less(other TurnID) bool {
	if id.Parent != other.Parent {
		return id.Parent < other.Parent
	}
	if id.Src != other.Src {
		return id.Src < other.Src
	}
	return id.Dst < other.Dst
}

type TurnType uint16

const (
	TURN_SHARED_SIDEWALK_CORNER = TurnType(iota + 1)
	TURN_CROSSWALK
)

func (iotaIdx TurnType) String() string {
	return [...]string{"shared_sidewalk_corner", "crosswalk"}[iotaIdx-1]
}

// Turn is a directed pedestrian movement between two lanes
type Turn struct {
	// Euclidean geometry
	Geom orb.LineString
	// Crosswalks which are associated with this one. Never contains the turn itself
	OtherCrosswalkIDs map[TurnID]struct{}
	ID                TurnID
	Type              TurnType
}

func turnID(parent IntersectionID, src, dst LaneID) TurnID {
	return TurnID{Parent: parent, Src: src, Dst: dst}
}

// newTurnPair returns turn from l1 to l2 and its reverse sibling
func newTurnPair(parent IntersectionID, src, dst LaneID, turnType TurnType, geom orb.LineString) (*Turn, *Turn) {
	fwd := &Turn{
		ID:                turnID(parent, src, dst),
		Type:              turnType,
		Geom:              geom.Clone(),
		OtherCrosswalkIDs: make(map[TurnID]struct{}),
	}
	back := &Turn{
		ID:                turnID(parent, dst, src),
		Type:              turnType,
		Geom:              reverseLine(geom),
		OtherCrosswalkIDs: make(map[TurnID]struct{}),
	}
	if turnType == TURN_CROSSWALK {
		fwd.OtherCrosswalkIDs[back.ID] = struct{}{}
		back.OtherCrosswalkIDs[fwd.ID] = struct{}{}
	}
	return fwd, back
}

// SortedOtherCrosswalkIDs returns associated crosswalks in deterministic order
func (turn *Turn) SortedOtherCrosswalkIDs() []TurnID {
	ids := make([]TurnID, 0, len(turn.OtherCrosswalkIDs))
	for id := range turn.OtherCrosswalkIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].less(ids[j])
	})
	return ids
}
