package osm2turns

import (
	"github.com/paulmach/orb"
)

// remappedRoad is a copy of raw road which could have been extended to roundabout's center
type remappedRoad struct {
	raw          *RawRoad
	points       orb.LineString
	addedToStart bool
	addedToEnd   bool
}

// collapseRoundabouts drops roundabout ways and maps all of their points to the roundabout's center.
// Input is not modified.
func collapseRoundabouts(roads []RawRoad) ([]*RawRoad, map[orb.Point]orb.Point) {
	remaining := make([]*RawRoad, 0, len(roads))
	centers := make(map[orb.Point]orb.Point)
	for i := range roads {
		road := &roads[i]
		if !road.isRoundabout() {
			remaining = append(remaining, road)
			continue
		}
		// Closing point of the ring should not pull the center towards itself
		center := findCentroid(ringPoints(orb.Ring(road.Points)))
		for _, pt := range road.Points {
			centers[pt] = center
		}
	}
	return remaining, centers
}

// remapRoundaboutEnds makes roads which touch a roundabout go through the roundabout's center
func remapRoundaboutEnds(road *RawRoad, centers map[orb.Point]orb.Point) *remappedRoad {
	remapped := &remappedRoad{
		raw:    road,
		points: make(orb.LineString, 0, len(road.Points)+2),
	}
	if center, ok := centers[road.Points[0]]; ok {
		remapped.points = append(remapped.points, center)
		remapped.addedToStart = true
	}
	remapped.points = append(remapped.points, road.Points...)
	if center, ok := centers[road.Points[len(road.Points)-1]]; ok {
		remapped.points = append(remapped.points, center)
		remapped.addedToEnd = true
	}
	return remapped
}
