package osm2turns

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestIntersectionIndex(t *testing.T) {
	m, _ := buildTestMap(t, threeWayData(), DRIVING_SIDE_RIGHT)
	index := NewIntersectionIndex(m)
	if index.Size() != len(m.Intersections) {
		t.Errorf("Index size should be %d, but got %d", len(m.Intersections), index.Size())
	}

	nearest := index.Nearest(orb.Point{0.0009, 0.00001})
	if nearest == nil {
		t.Fatalf("Nearest intersection should exist")
	}
	if nearest.Point != (orb.Point{testStep, 0}) {
		t.Errorf("Nearest intersection should be at %v, but got %v", orb.Point{testStep, 0}, nearest.Point)
	}

	center := intersectionAt(t, m, orb.Point{0, 0})
	found := index.Within(orb.Bound{Min: orb.Point{-0.00001, -0.00001}, Max: orb.Point{0.00001, 0.00001}})
	if len(found) != 1 || found[0] != center.ID {
		t.Errorf("Only intersection %d should be found near the center, but got %v", center.ID, found)
	}

	all := index.Within(orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}})
	if len(all) != len(m.Intersections) {
		t.Errorf("All %d intersections should be found, but got %v", len(m.Intersections), all)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("Found intersections should be sorted, but got %v", all)
		}
	}

	empty := NewIntersectionIndex(NewMap())
	if empty.Nearest(orb.Point{0, 0}) != nil {
		t.Errorf("Empty index should not find anything")
	}
}
