package osm2turns

// MakeWalkingTurns returns crosswalks and shared sidewalk corners of given intersection.
// Roads of the intersection should be sorted by incoming angle and lanes with boundary polygon should be built.
// Turns which can't be built are skipped, problems with corner geometry go to the sink.
func MakeWalkingTurns(m *Map, i *Intersection, side DrivingSide, sink WarningSink) []*Turn {
	roads := m.roadsOf(i)
	result := []*Turn{}

	switch len(roads) {
	case 0:
		return result
	case 1:
		// Dead end
		l1 := getSidewalk(roads[0].IncomingLanes(m.Lanes, i.ID))
		l2 := getSidewalk(roads[0].OutgoingLanes(m.Lanes, i.ID))
		if l1 != nil && l2 != nil {
			result = appendCorner(result, side, i, l1, l2, sink)
		}
		return result
	case 2:
		fwd, back, err := makeDegenerateCrosswalks(i.ID, m.Lanes, roads[0], roads[1])
		if err == nil {
			result = append(result, fwd, back)
		}
		for idx := range roads {
			l1 := getSidewalk(roads[idx].IncomingLanes(m.Lanes, i.ID))
			if l1 == nil {
				continue
			}
			neighbor := roads[neighborAtOffset(side, idx, 1, len(roads))]
			l2 := getSidewalk(neighbor.OutgoingLanes(m.Lanes, i.ID))
			if l2 != nil && l1.LastPoint() != l2.FirstPoint() {
				result = appendCorner(result, side, i, l1, l2, sink)
			}
		}
		return result
	}

	// Ramps and medians may lack sidewalks, so look a bit further for something to cross to
	maxSteps := 2
	if len(roads) > 3 {
		maxSteps = 3
	}
	for idx, road := range roads {
		l1 := getSidewalk(road.IncomingLanes(m.Lanes, i.ID))
		if l1 == nil {
			continue
		}
		// Crosswalk to the other side of the same road
		if l2 := getSidewalk(road.OutgoingLanes(m.Lanes, i.ID)); l2 != nil {
			result = appendCrosswalks(result, i.ID, l1, l2)
		}

		neighbor := roads[neighborAtOffset(side, idx, 1, len(roads))]
		if l2 := getSidewalk(neighbor.OutgoingLanes(m.Lanes, i.ID)); l2 != nil {
			if l1.LastPoint() != l2.FirstPoint() {
				result = appendCorner(result, side, i, l1, l2, sink)
			}
			continue
		}
		// Neighbor misses sidewalk on the near side, but has one on the far side
		if l2 := getSidewalk(neighbor.IncomingLanes(m.Lanes, i.ID)); l2 != nil {
			result = appendCrosswalks(result, i.ID, l1, l2)
			continue
		}
		for steps := 2; steps <= maxSteps; steps++ {
			other := roads[neighborAtOffset(side, idx, steps, len(roads))]
			if l2 := getSidewalk(other.OutgoingLanes(m.Lanes, i.ID)); l2 != nil {
				result = appendCrosswalks(result, i.ID, l1, l2)
				break
			}
			if l2 := getSidewalk(other.IncomingLanes(m.Lanes, i.ID)); l2 != nil {
				result = appendCrosswalks(result, i.ID, l1, l2)
				break
			}
		}
	}
	return result
}

// getSidewalk returns the first sidewalk or shoulder
func getSidewalk(lanes []*Lane) *Lane {
	for _, lane := range lanes {
		if lane.Type.IsWalkable() {
			return lane
		}
	}
	return nil
}

func appendCorner(turns []*Turn, side DrivingSide, i *Intersection, l1, l2 *Lane, sink WarningSink) []*Turn {
	geom := makeSharedSidewalkCorner(side, i, l1, l2, sink)
	fwd, back := newTurnPair(i.ID, l1.ID, l2.ID, TURN_SHARED_SIDEWALK_CORNER, geom)
	return append(turns, fwd, back)
}

func appendCrosswalks(turns []*Turn, i IntersectionID, l1, l2 *Lane) []*Turn {
	fwd, back, err := makeCrosswalks(i, l1, l2)
	if err != nil {
		return turns
	}
	return append(turns, fwd, back)
}
