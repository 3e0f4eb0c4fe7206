package osm2turns

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// makeCrosswalks builds crosswalk from l1 to l2 and its reverse sibling.
// The path juts into the intersection, crosses over and juts back.
func makeCrosswalks(i IntersectionID, l1, l2 *Lane) (*Turn, *Turn, error) {
	l1Pt := l1.Endpoint(i)
	l2Pt := l2.Endpoint(i)
	if approxEqual(l1Pt, l2Pt, epsilonDistance) {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "crosswalk between lanes %d and %d has zero length", l1.ID, l2.ID)
	}
	// Both lanes arrive or both depart: jut to the left of the crossing line
	direction := 1.0
	if (l1.DstI == i) == (l2.DstI == i) {
		direction = -1.0
	}
	line := shiftRight(orb.LineString{l1Pt, l2Pt}, direction*l1.Width/2.0)
	geom := dedupe([]orb.Point{l1Pt, line[0], line[1], l2Pt})
	if len(geom) < 2 {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "crosswalk between lanes %d and %d collapsed", l1.ID, l2.ID)
	}
	fwd, back := newTurnPair(i, l1.ID, l2.ID, TURN_CROSSWALK, orb.LineString(geom))
	return fwd, back, nil
}

// makeDegenerateCrosswalks builds the only crosswalk of intersection with two roads, right in the middle of it
func makeDegenerateCrosswalks(i IntersectionID, lanes map[LaneID]*Lane, r1, r2 *Road) (*Turn, *Turn, error) {
	l1In := getSidewalk(r1.IncomingLanes(lanes, i))
	l1Out := getSidewalk(r1.OutgoingLanes(lanes, i))
	l2In := getSidewalk(r2.IncomingLanes(lanes, i))
	l2Out := getSidewalk(r2.OutgoingLanes(lanes, i))
	if l1In == nil || l1Out == nil || l2In == nil || l2Out == nil {
		return nil, nil, errors.Wrapf(ErrMissingSidewalk, "roads %d and %d at intersection %d", r1.ID, r2.ID, i)
	}

	pt1 := midpoint(l1In.LastPoint(), l2Out.FirstPoint())
	pt2 := midpoint(l1Out.FirstPoint(), l2In.LastPoint())
	if pt1 == pt2 {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "crosswalk between roads %d and %d has coincident midpoints", r1.ID, r2.ID)
	}
	geom := dedupe([]orb.Point{l1In.LastPoint(), pt1, pt2, l1Out.FirstPoint()})
	if len(geom) < 2 {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "crosswalk between lanes %d and %d collapsed", l1In.ID, l1Out.ID)
	}
	fwd, back := newTurnPair(i, l1In.ID, l1Out.ID, TURN_CROSSWALK, orb.LineString(geom))
	return fwd, back, nil
}
