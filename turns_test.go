package osm2turns

import (
	"context"
	"testing"
)

func prepareForTurns(t *testing.T, data *RawData) *Map {
	t.Helper()
	m := mustSplit(t, data)
	err := AssignLanes(m, DefaultLaneConfig(), DRIVING_SIDE_RIGHT)
	if err != nil {
		t.Fatal(err)
	}
	BuildIntersectionGeometry(m, DRIVING_SIDE_RIGHT)
	return m
}

func TestGenerateTurnsWorkers(t *testing.T) {
	single := prepareForTurns(t, crossData())
	err := GenerateTurns(context.Background(), single, WithWorkers(1), WithWarningSink(&WarningCollector{}))
	if err != nil {
		t.Fatal(err)
	}
	parallel := prepareForTurns(t, crossData())
	err = GenerateTurns(context.Background(), parallel, WithWorkers(8), WithWarningSink(&WarningCollector{}))
	if err != nil {
		t.Fatal(err)
	}
	singleIDs, parallelIDs := single.TurnIDs(), parallel.TurnIDs()
	if len(singleIDs) == 0 {
		t.Fatalf("Turns should be generated")
	}
	if len(singleIDs) != len(parallelIDs) {
		t.Fatalf("Number of turns should not depend on workers: %d and %d", len(singleIDs), len(parallelIDs))
	}
	for idx := range singleIDs {
		if singleIDs[idx] != parallelIDs[idx] {
			t.Errorf("Turn %d should be %s, but got %s", idx, singleIDs[idx], parallelIDs[idx])
			continue
		}
		if !lineEquals(single.Turns[singleIDs[idx]].Geom, parallel.Turns[parallelIDs[idx]].Geom) {
			t.Errorf("Geometry of turn %s should not depend on workers", singleIDs[idx])
		}
	}
	// Four-way junction: 4 crosswalk pairs and 4 corner pairs, each of 4 dead ends: 1 corner pair
	if len(singleIDs) != 16+8 {
		t.Errorf("Number of turns should be %d, but got %d", 24, len(singleIDs))
	}
	checkTurns(t, single, mapTurns(single))
}

func TestGenerateTurnsCanceled(t *testing.T) {
	m := prepareForTurns(t, threeWayData())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := GenerateTurns(ctx, m, WithWorkers(2))
	if err == nil {
		t.Errorf("Canceled context should give an error")
	}
	if len(m.Turns) != 0 {
		t.Errorf("Map should stay untouched on error, but got %d turns", len(m.Turns))
	}
}

func mapTurns(m *Map) []*Turn {
	turns := make([]*Turn, 0, len(m.Turns))
	for _, id := range m.TurnIDs() {
		turns = append(turns, m.Turns[id])
	}
	return turns
}
