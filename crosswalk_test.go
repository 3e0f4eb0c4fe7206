package osm2turns

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func TestMakeCrosswalks(t *testing.T) {
	// l1 arrives to intersection 0 at (0, 0), l2 departs from (0, 10)
	l1 := &Lane{ID: 3, Geom: orb.LineString{{-10, 0}, {0, 0}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	l2 := &Lane{ID: 4, Geom: orb.LineString{{0, 10}, {-10, 10}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 0, DstI: 1}
	fwd, back, err := makeCrosswalks(0, l1, l2)
	if err != nil {
		t.Fatal(err)
	}
	correct := orb.LineString{{0, 0}, {1, 0}, {1, 10}, {0, 10}}
	if !lineEquals(fwd.Geom, correct) {
		t.Errorf("Crosswalk should be %v, but got %v", correct, fwd.Geom)
	}
	if !lineEquals(back.Geom, reverseLine(correct)) {
		t.Errorf("Reverse crosswalk should be %v, but got %v", reverseLine(correct), back.Geom)
	}
	if fwd.ID != turnID(0, 3, 4) || back.ID != turnID(0, 4, 3) {
		t.Errorf("Crosswalk identifiers should be %s and %s, but got %s and %s", turnID(0, 3, 4), turnID(0, 4, 3), fwd.ID, back.ID)
	}
	if fwd.Type != TURN_CROSSWALK || back.Type != TURN_CROSSWALK {
		t.Errorf("Both turns should be %s, but got %s and %s", TURN_CROSSWALK, fwd.Type, back.Type)
	}
	if _, ok := fwd.OtherCrosswalkIDs[back.ID]; !ok || len(fwd.OtherCrosswalkIDs) != 1 {
		t.Errorf("Crosswalk should reference only its sibling, but got %v", fwd.SortedOtherCrosswalkIDs())
	}
	if _, ok := back.OtherCrosswalkIDs[fwd.ID]; !ok || len(back.OtherCrosswalkIDs) != 1 {
		t.Errorf("Crosswalk should reference only its sibling, but got %v", back.SortedOtherCrosswalkIDs())
	}
}

func TestMakeCrosswalksSameDirection(t *testing.T) {
	// Both lanes arrive to intersection 0, so the path juts to the other side
	l1 := &Lane{ID: 0, Geom: orb.LineString{{-10, 0}, {0, 0}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	l2 := &Lane{ID: 1, Geom: orb.LineString{{-10, 10}, {0, 10}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	fwd, _, err := makeCrosswalks(0, l1, l2)
	if err != nil {
		t.Fatal(err)
	}
	correct := orb.LineString{{0, 0}, {-1, 0}, {-1, 10}, {0, 10}}
	if !lineEquals(fwd.Geom, correct) {
		t.Errorf("Crosswalk should be %v, but got %v", correct, fwd.Geom)
	}
}

func TestMakeCrosswalksDegenerate(t *testing.T) {
	l1 := &Lane{ID: 0, Geom: orb.LineString{{-10, 0}, {0, 0}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	l2 := &Lane{ID: 1, Geom: orb.LineString{{0, 0}, {10, 0}}, Width: 2, Type: LANE_SIDEWALK, SrcI: 0, DstI: 2}
	_, _, err := makeCrosswalks(0, l1, l2)
	if err == nil {
		t.Fatalf("Crosswalk between coincident endpoints should give an error")
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Error should match ErrDegenerateGeometry, but got %v", err)
	}
	if !IsRecoverable(err) {
		t.Errorf("Error %v should be recoverable", err)
	}
}

func TestMakeDegenerateCrosswalksMissingSidewalk(t *testing.T) {
	m := NewMap()
	m.Lanes[0] = &Lane{ID: 0, Geom: orb.LineString{{-10, -2}, {0, -2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	m.Lanes[1] = &Lane{ID: 1, Geom: orb.LineString{{0, 2}, {-10, 2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 0, DstI: 1}
	m.Lanes[2] = &Lane{ID: 2, Geom: orb.LineString{{0, -1}, {10, -1}}, Width: 3, Type: LANE_DRIVING, SrcI: 0, DstI: 2}
	r1 := &Road{ID: 0, I1: 1, I2: 0, Lanes: []LaneID{0, 1}}
	r2 := &Road{ID: 1, I1: 0, I2: 2, Lanes: []LaneID{2}}
	_, _, err := makeDegenerateCrosswalks(0, m.Lanes, r1, r2)
	if err == nil {
		t.Fatalf("Road without sidewalks should give an error")
	}
	if !errors.Is(err, ErrMissingSidewalk) {
		t.Errorf("Error should match ErrMissingSidewalk, but got %v", err)
	}
	if IsRecoverable(errors.Wrap(ErrInvalidTopology, "wrapped")) {
		t.Errorf("Invalid topology should not be recoverable")
	}
}

func TestMakeDegenerateCrosswalks(t *testing.T) {
	m := NewMap()
	// First road comes from the west, second one goes to the east
	m.Lanes[0] = &Lane{ID: 0, Geom: orb.LineString{{-10, -2}, {-1, -2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 1, DstI: 0}
	m.Lanes[1] = &Lane{ID: 1, Geom: orb.LineString{{-1, 2}, {-10, 2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 0, DstI: 1}
	m.Lanes[2] = &Lane{ID: 2, Geom: orb.LineString{{1, -2}, {10, -2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 0, DstI: 2}
	m.Lanes[3] = &Lane{ID: 3, Geom: orb.LineString{{10, 2}, {1, 2}}, Width: 1, Type: LANE_SIDEWALK, SrcI: 2, DstI: 0}
	r1 := &Road{ID: 0, I1: 1, I2: 0, Lanes: []LaneID{0, 1}}
	r2 := &Road{ID: 1, I1: 0, I2: 2, Lanes: []LaneID{2, 3}}
	fwd, back, err := makeDegenerateCrosswalks(0, m.Lanes, r1, r2)
	if err != nil {
		t.Fatal(err)
	}
	correct := orb.LineString{{-1, -2}, {0, -2}, {0, 2}, {-1, 2}}
	if !lineEquals(fwd.Geom, correct) {
		t.Errorf("Crosswalk should be %v, but got %v", correct, fwd.Geom)
	}
	if fwd.ID != turnID(0, 0, 1) || back.ID != turnID(0, 1, 0) {
		t.Errorf("Crosswalk identifiers should be %s and %s, but got %s and %s", turnID(0, 0, 1), turnID(0, 1, 0), fwd.ID, back.ID)
	}
}
