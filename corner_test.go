package osm2turns

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// cornerLanes returns lane arriving to the origin from the west and lane departing from (2, 0) to the east
func cornerLanes() (*Lane, *Lane) {
	l1 := &Lane{ID: 0, Geom: orb.LineString{{-10, 0}, {0, 0}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	l2 := &Lane{ID: 1, Geom: orb.LineString{{2, 0}, {10, 0}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 0, DstI: 2}
	return l1, l2
}

func warningKinds(sink *WarningCollector) []WarningKind {
	kinds := []WarningKind{}
	for _, w := range sink.Warnings() {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func TestCornerWithoutPolygon(t *testing.T) {
	l1, l2 := cornerLanes()
	sink := &WarningCollector{}
	geom := makeSharedSidewalkCorner(DRIVING_SIDE_RIGHT, &Intersection{ID: 0}, l1, l2, sink)
	correct := orb.LineString{{0, 0}, {2, 0}}
	if !lineEquals(geom, correct) {
		t.Errorf("Corner should be %v, but got %v", correct, geom)
	}
	if len(sink.Warnings()) != 0 {
		t.Errorf("There should be no warnings, but got %v", sink.Warnings())
	}
}

func TestCornerSmoothingFailed(t *testing.T) {
	l1, l2 := cornerLanes()
	l2.Geom = orb.LineString{{0.5, 0}, {10, 0}}
	sink := &WarningCollector{}
	geom := makeSharedSidewalkCorner(DRIVING_SIDE_RIGHT, &Intersection{ID: 0}, l1, l2, sink)
	correct := orb.LineString{{0, 0}, {0.5, 0}}
	if !lineEquals(geom, correct) {
		t.Errorf("Corner should be %v, but got %v", correct, geom)
	}
	kinds := warningKinds(sink)
	if len(kinds) != 1 || kinds[0] != WARNING_SMOOTHING_FAILED {
		t.Errorf("Warnings should be [%s], but got %v", WARNING_SMOOTHING_FAILED, kinds)
	}
}

func TestCornerDuplicateTrace(t *testing.T) {
	l1, l2 := cornerLanes()
	intersection := &Intersection{
		ID: 0,
		// The shorter way from (2, -0.5) to (0, -0.5) goes through (1, -3) twice
		Polygon: orb.Ring{{2, -0.5}, {1, -3}, {5, -5}, {1, -3}, {0, -0.5}, {1, 10}, {2, -0.5}},
	}
	sink := &WarningCollector{}
	geom := makeSharedSidewalkCorner(DRIVING_SIDE_RIGHT, intersection, l1, l2, sink)
	correct := orb.LineString{{0, 0}, {2, 0}}
	if !lineEquals(geom, correct) {
		t.Errorf("Corner should fall back to %v, but got %v", correct, geom)
	}
	kinds := warningKinds(sink)
	if len(kinds) != 1 || kinds[0] != WARNING_DUPLICATE_TRACE {
		t.Errorf("Warnings should be [%s], but got %v", WARNING_DUPLICATE_TRACE, kinds)
	}
}

func TestCornerExplodedGeometry(t *testing.T) {
	l1, l2 := cornerLanes()
	intersection := &Intersection{
		ID: 0,
		// Both ways around the polygon are about 100 meters long while lanes are 2 meters apart
		Polygon: orb.Ring{{0, -0.5}, {0, 50}, {2, 50}, {2, -0.5}, {2, -50}, {0, -50}, {0, -0.5}},
	}
	sink := &WarningCollector{}
	geom := makeSharedSidewalkCorner(DRIVING_SIDE_RIGHT, intersection, l1, l2, sink)
	correct := orb.LineString{{0, 0}, {2, 0}}
	if !lineEquals(geom, correct) {
		t.Errorf("Corner should fall back to %v, but got %v", correct, geom)
	}
	kinds := warningKinds(sink)
	if len(kinds) != 1 || kinds[0] != WARNING_EXPLODED_GEOMETRY {
		t.Errorf("Warnings should be [%s], but got %v", WARNING_EXPLODED_GEOMETRY, kinds)
	}
	if w := sink.Warnings(); len(w) == 1 && (w[0].L1 != l1.ID || w[0].L2 != l2.ID) {
		t.Errorf("Warning should reference lanes %d and %d, but got %d and %d", l1.ID, l2.ID, w[0].L1, w[0].L2)
	}
}

func TestCornerFollowsPolygon(t *testing.T) {
	cases := []struct {
		side    DrivingSide
		l2      orb.LineString
		polygon orb.Ring
		correct orb.LineString
	}{
		{
			// Lane arrives from the south to (0, 0), other lane departs from (3, 3) to the east
			side:    DRIVING_SIDE_RIGHT,
			l2:      orb.LineString{{3, 3}, {13, 3}},
			polygon: orb.Ring{{0.5, 0}, {-5, -5}, {-5, 10}, {3, 2.5}, {0.5, 2.5}, {0.5, 0}},
			correct: orb.LineString{{0, 0}, {0, 3}, {3, 3}},
		},
		{
			// Mirrored: other lane departs from (-3, 3) to the west
			side:    DRIVING_SIDE_LEFT,
			l2:      orb.LineString{{-3, 3}, {-13, 3}},
			polygon: orb.Ring{{-0.5, 0}, {5, -5}, {5, 10}, {-3, 2.5}, {-0.5, 2.5}, {-0.5, 0}},
			correct: orb.LineString{{0, 0}, {0, 3}, {-3, 3}},
		},
	}
	for _, c := range cases {
		l1 := &Lane{ID: 0, Geom: orb.LineString{{0, -10}, {0, 0}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
		l2 := &Lane{ID: 1, Geom: c.l2, Width: 1, Type: LANE_SIDEWALK, SrcI: 0, DstI: 2}
		sink := &WarningCollector{}
		geom := makeSharedSidewalkCorner(c.side, &Intersection{ID: 0, Polygon: c.polygon}, l1, l2, sink)
		if !lineEquals(geom, c.correct) {
			t.Errorf("Corner (%s) should be %v, but got %v", c.side, c.correct, geom)
		}
		if len(sink.Warnings()) != 0 {
			t.Errorf("There should be no warnings (%s), but got %v", c.side, sink.Warnings())
		}
		baseline := planar.Distance(l1.LastPoint(), l2.FirstPoint())
		if length := planar.Length(geom); length <= baseline {
			t.Errorf("Corner (%s) should go around the polygon and be longer than %f, but got %f", c.side, baseline, length)
		}
	}
}

func lineEquals(a, b orb.LineString) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approxEqual(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}
