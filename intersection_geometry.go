package osm2turns

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// BuildIntersectionGeometry sorts roads of every intersection by incoming angle (counter-clockwise)
// and builds clockwise boundary polygon from the road-end corners. Lanes should be assigned already.
func BuildIntersectionGeometry(m *Map, side DrivingSide) {
	for _, id := range m.IntersectionIDs() {
		buildIntersectionGeometry(m, m.Intersections[id], side)
	}
}

type roadEnd struct {
	road  *Road
	angle float64
	// Road end and unit vector of direction into the intersection
	end orb.Point
	dir [2]float64
	// Outer edge points of the road end, relative to direction into the intersection
	left      orb.Point
	right     orb.Point
	reach     float64
	capLength float64
}

func buildIntersectionGeometry(m *Map, i *Intersection, side DrivingSide) {
	roads := m.roadsOf(i)
	if len(roads) == 0 {
		i.Polygon = nil
		return
	}
	ends := make([]roadEnd, 0, len(roads))
	for _, road := range roads {
		if len(road.centerLine()) < 2 {
			continue
		}
		p, q := road.incomingLineEuclidean(i.ID)
		end := roadEnd{
			road:  road,
			angle: angleOfSegment(p, q),
			end:   q,
		}
		dx, dy := q[0]-p[0], q[1]-p[1]
		if l := math.Sqrt(dx*dx + dy*dy); l > epsilonDistance {
			end.dir = [2]float64{dx / l, dy / l}
		} else {
			end.dir = [2]float64{1, 0}
		}
		ends = append(ends, end)
	}
	sort.SliceStable(ends, func(a, b int) bool {
		if ends[a].angle != ends[b].angle {
			return ends[a].angle < ends[b].angle
		}
		return ends[a].road.ID < ends[b].road.ID
	})
	i.Roads = make([]RoadID, 0, len(ends))
	for _, end := range ends {
		i.Roads = append(i.Roads, end.road.ID)
	}

	center := pointToEuclidean(i.Point)
	for idx := range ends {
		end := &ends[idx]
		wayLeft, wayRight := end.road.sideWidths(m.Lanes, side)
		// Widths relative to direction into the intersection
		inLeft, inRight := wayLeft, wayRight
		if end.road.I2 != i.ID {
			inLeft, inRight = wayRight, wayLeft
		}
		rightPerp := [2]float64{end.dir[1], -end.dir[0]}
		leftPerp := [2]float64{-end.dir[1], end.dir[0]}
		end.right = orb.Point{end.end[0] + rightPerp[0]*inRight, end.end[1] + rightPerp[1]*inRight}
		end.left = orb.Point{end.end[0] + leftPerp[0]*inLeft, end.end[1] + leftPerp[1]*inLeft}
		end.reach = planar.Distance(end.end, center)
		end.capLength = (inLeft + inRight) / 2.0
	}

	// Counter-clockwise road order reversed gives clockwise boundary
	ring := make(orb.Ring, 0, 3*len(ends)+2)
	for idx := len(ends) - 1; idx >= 0; idx-- {
		end := ends[idx]
		ring = append(ring, end.right, end.left)
		if len(ends) == 1 {
			// Dead end gets a cap in front of the road
			ring = append(ring, orb.Point{end.end[0] + end.dir[0]*end.capLength, end.end[1] + end.dir[1]*end.capLength})
			continue
		}
		next := ends[(idx-1+len(ends))%len(ends)]
		if corner, ok := edgesMeeting(end, next); ok {
			ring = append(ring, corner)
		}
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	i.Polygon = ring
}

// edgesMeeting returns point where the left edge of one road end meets the right edge of the next one (clockwise).
// The point should lie ahead of both road ends, but not further than the intersection's center.
func edgesMeeting(a, b roadEnd) (orb.Point, bool) {
	pt, err := intersect(
		orb.Point{a.left[0] - a.dir[0], a.left[1] - a.dir[1]}, a.left,
		orb.Point{b.right[0] - b.dir[0], b.right[1] - b.dir[1]}, b.right,
	)
	if err != nil {
		return orb.Point{}, false
	}
	ahead := func(from orb.Point, dir [2]float64, reach float64) bool {
		d := (pt[0]-from[0])*dir[0] + (pt[1]-from[1])*dir[1]
		return d > cornerTraceThreshold && d <= reach
	}
	if !ahead(a.left, a.dir, a.reach) || !ahead(b.right, b.dir, b.reach) {
		return orb.Point{}, false
	}
	return pt, true
}
