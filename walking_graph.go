package osm2turns

import (
	"fmt"
	"time"

	"github.com/LdDl/ch"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WalkingGraph is a contraction hierarchies graph over walkable lanes and pedestrian turns.
// Every walkable lane gives two vertices (its start and its end), pedestrians may go along the lane in both directions.
type WalkingGraph struct {
	graph ch.Graph
	lanes map[LaneID]*Lane
}

func laneStartVertex(id LaneID) int64 {
	return int64(id) * 2
}

func laneEndVertex(id LaneID) int64 {
	return int64(id)*2 + 1
}

func vertexLane(vertex int64) LaneID {
	return LaneID(vertex / 2)
}

type WalkingGraphOptions struct {
	logger *zap.Logger
}

func WithWalkingGraphLogger(logger *zap.Logger) func(*WalkingGraphOptions) {
	return func(opts *WalkingGraphOptions) {
		opts.logger = logger
	}
}

// NewWalkingGraph prepares walking graph from walkable lanes and turns of the map
func NewWalkingGraph(m *Map, options ...func(*WalkingGraphOptions)) (*WalkingGraph, error) {
	opts := &WalkingGraphOptions{
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(opts)
	}
	wg := &WalkingGraph{
		graph: ch.Graph{},
		lanes: make(map[LaneID]*Lane),
	}
	addBoth := func(source, target int64, cost float64) error {
		err := wg.graph.AddEdge(source, target, cost)
		if err != nil {
			return err
		}
		return wg.graph.AddEdge(target, source, cost)
	}

	for _, id := range m.LaneIDs() {
		lane := m.Lanes[id]
		if !lane.Type.IsWalkable() {
			continue
		}
		wg.lanes[id] = lane
		source, target := laneStartVertex(id), laneEndVertex(id)
		err := wg.graph.CreateVertex(source)
		if err != nil {
			return nil, errors.Wrap(err, "Can't create lane start vertex")
		}
		err = wg.graph.CreateVertex(target)
		if err != nil {
			return nil, errors.Wrap(err, "Can't create lane end vertex")
		}
		err = addBoth(source, target, lane.Length())
		if err != nil {
			return nil, errors.Wrap(err, "Can't add lane edge")
		}
	}

	for _, id := range m.TurnIDs() {
		turn := m.Turns[id]
		src, okSrc := wg.lanes[turn.ID.Src]
		dst, okDst := wg.lanes[turn.ID.Dst]
		if !okSrc || !okDst {
			continue
		}
		err := wg.graph.AddEdge(laneVertexAt(src, turn.ID.Parent), laneVertexAt(dst, turn.ID.Parent), planar.Length(turn.Geom))
		if err != nil {
			return nil, errors.Wrap(err, "Can't add turn edge")
		}
	}

	opts.logger.Info("Starting contraction process", zap.Int("lanes", len(wg.lanes)), zap.Int("turns", len(m.Turns)))
	st := time.Now()
	wg.graph.PrepareContractionHierarchies()
	opts.logger.Info("Done contraction process", zap.Duration("elapsed", time.Since(st)))
	return wg, nil
}

// laneVertexAt returns vertex of the lane which faces given intersection
func laneVertexAt(lane *Lane, i IntersectionID) int64 {
	if lane.DstI == i {
		return laneEndVertex(lane.ID)
	}
	return laneStartVertex(lane.ID)
}

// Route returns walking distance and sequence of lanes from the start of one walkable lane to the end of another one.
// Returns cost -1 when there is no route.
func (wg *WalkingGraph) Route(from, to LaneID) (float64, []LaneID, error) {
	fromLane, ok := wg.lanes[from]
	if !ok {
		return -1, nil, fmt.Errorf("Lane %d is not walkable or doesn't exist", from)
	}
	if _, ok := wg.lanes[to]; !ok {
		return -1, nil, fmt.Errorf("Lane %d is not walkable or doesn't exist", to)
	}
	if from == to {
		return fromLane.Length(), []LaneID{from}, nil
	}
	cost, vertices := wg.graph.ShortestPath(laneStartVertex(from), laneEndVertex(to))
	if cost < 0 {
		return -1, nil, nil
	}
	lanes := make([]LaneID, 0, len(vertices)/2+1)
	for _, vertex := range vertices {
		id := vertexLane(vertex)
		if len(lanes) == 0 || lanes[len(lanes)-1] != id {
			lanes = append(lanes, id)
		}
	}
	return cost, lanes, nil
}

// Reachable checks if pedestrian could get from one walkable lane to another one
func (wg *WalkingGraph) Reachable(from, to LaneID) bool {
	cost, _, err := wg.Route(from, to)
	return err == nil && cost >= 0
}
