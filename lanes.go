package osm2turns

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LaneConfig holds lane widths (meters) and distance to trim roads back from intersections
type LaneConfig struct {
	DrivingWidth  float64 `yaml:"driving_width"`
	SidewalkWidth float64 `yaml:"sidewalk_width"`
	ShoulderWidth float64 `yaml:"shoulder_width"`
	BikingWidth   float64 `yaml:"biking_width"`
	TrimDistance  float64 `yaml:"trim_distance"`
}

func DefaultLaneConfig() LaneConfig {
	return LaneConfig{
		DrivingWidth:  3.5,
		SidewalkWidth: 1.5,
		ShoulderWidth: 1.0,
		BikingWidth:   1.8,
		TrimDistance:  8.0,
	}
}

type LaneOptions struct {
	logger *zap.Logger
}

func WithLanesLogger(logger *zap.Logger) func(*LaneOptions) {
	return func(opts *LaneOptions) {
		opts.logger = logger
	}
}

type laneSpec struct {
	laneType  LaneType
	direction DirectionType
	width     float64
}

// AssignLanes trims roads back from intersections and lays out lanes from road tags.
// Lanes on each side of the way go from its center line outwards, sidewalks and shoulders are the outermost ones.
func AssignLanes(m *Map, cfg LaneConfig, side DrivingSide, options ...func(*LaneOptions)) error {
	opts := &LaneOptions{
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(opts)
	}
	if len(m.Lanes) != 0 {
		return errors.New("Can't assign lanes: map has lanes already")
	}
	opts.logger.Info("Assigning lanes", zap.Int("roads", len(m.Roads)), zap.Stringer("driving_side", side))
	st := time.Now()

	skipped := 0
	for _, roadID := range m.RoadIDs() {
		road := m.Roads[roadID]
		if len(road.GeomEuclidean) < 2 || planar.Length(road.GeomEuclidean) < epsilonDistance {
			opts.logger.Warn("Road with degenerate geometry met, no lanes for it", zap.Int("road_id", int(road.ID)), zap.Int64("way_id", road.SourceID))
			skipped++
			continue
		}
		trimStart, trimEnd := 0.0, 0.0
		if m.Intersections[road.I1].Degree() > 1 {
			trimStart = cfg.TrimDistance
		}
		if m.Intersections[road.I2].Degree() > 1 {
			trimEnd = cfg.TrimDistance
		}
		road.Center = trimLine(road.GeomEuclidean, trimStart, trimEnd)
		if len(road.Center) < 2 {
			road.Center = road.GeomEuclidean.Clone()
		}

		rightSide, leftSide := laneSpecsForRoad(road.Tags, cfg, side)
		addSideLanes(m, road, rightSide, false)
		addSideLanes(m, road, leftSide, true)
	}

	opts.logger.Info("Done assigning lanes", zap.Duration("elapsed", time.Since(st)), zap.Int("lanes", len(m.Lanes)), zap.Int("skipped_roads", skipped))
	return nil
}

// laneSpecsForRoad returns lanes for right and left sides of the way (relative to its drawing direction), center line first
func laneSpecsForRoad(tags osm.Tags, cfg LaneConfig, side DrivingSide) ([]laneSpec, []laneSpec) {
	highway := getHighwayType(tags.Find("highway"))
	sidewalks := parseSidewalk(tags, highway)

	fwdCount, backCount := 0, 0
	if !highway.isPedestrianOnly() {
		fwdCount, backCount = drivingLanesCount(tags, highway)
	}

	drivingType := LANE_DRIVING
	drivingWidth := cfg.DrivingWidth
	if highway == HIGHWAY_CYCLEWAY {
		drivingType = LANE_BIKING
		drivingWidth = cfg.BikingWidth
	}

	// Forward lanes lie on the driving side of the way
	rightDir, leftDir := DIRECTION_FORWARD, DIRECTION_BACKWARD
	rightCount, leftCount := fwdCount, backCount
	if side == DRIVING_SIDE_LEFT {
		rightDir, leftDir = DIRECTION_BACKWARD, DIRECTION_FORWARD
		rightCount, leftCount = backCount, fwdCount
	}

	_, noWalking := noWalkingHighways[highway]
	buildSide := func(count int, direction DirectionType, hasSidewalk bool) []laneSpec {
		specs := make([]laneSpec, 0, count+1)
		for i := 0; i < count; i++ {
			specs = append(specs, laneSpec{laneType: drivingType, direction: direction, width: drivingWidth})
		}
		switch {
		case hasSidewalk:
			specs = append(specs, laneSpec{laneType: LANE_SIDEWALK, direction: direction, width: cfg.SidewalkWidth})
		case !noWalking && count > 0:
			specs = append(specs, laneSpec{laneType: LANE_SHOULDER, direction: direction, width: cfg.ShoulderWidth})
		}
		return specs
	}
	return buildSide(rightCount, rightDir, sidewalks.hasRight()), buildSide(leftCount, leftDir, sidewalks.hasLeft())
}

// drivingLanesCount returns number of forward and backward lanes
func drivingLanesCount(tags osm.Tags, highway HighwayType) (int, int) {
	perDirection, ok := defaultLanesByHighway[highway]
	if !ok {
		perDirection = 1
	}
	total := parseLanesTag(tags, "lanes")
	oneway, reversed := parseOneway(tags)
	if oneway {
		n := perDirection
		if total > 0 {
			n = total
		}
		if reversed {
			return 0, n
		}
		return n, 0
	}
	fwd, back := perDirection, perDirection
	if total > 0 {
		fwd = (total + 1) / 2
		back = total / 2
	}
	if lanesForward := parseLanesTag(tags, "lanes:forward"); lanesForward >= 0 {
		fwd = lanesForward
	}
	if lanesBackward := parseLanesTag(tags, "lanes:backward"); lanesBackward >= 0 {
		back = lanesBackward
	}
	return fwd, back
}

// addSideLanes creates lanes for one side of the road
func addSideLanes(m *Map, road *Road, specs []laneSpec, leftSide bool) {
	offset := 0.0
	for _, spec := range specs {
		center := offset + spec.width/2.0
		offset += spec.width
		var geom orb.LineString
		if leftSide {
			geom = offsetCurve(road.Center, center)
		} else {
			geom = shiftRight(road.Center, center)
		}
		lane := &Lane{
			ID:        LaneID(len(m.Lanes)),
			Road:      road.ID,
			Type:      spec.laneType,
			Direction: spec.direction,
			Width:     spec.width,
			SrcI:      road.I1,
			DstI:      road.I2,
		}
		if spec.direction == DIRECTION_BACKWARD {
			geom = reverseLine(geom)
			lane.SrcI, lane.DstI = road.I2, road.I1
		}
		lane.Geom = geom
		m.Lanes[lane.ID] = lane
		road.Lanes = append(road.Lanes, lane.ID)
	}
}

// sideWidths returns total width of lanes on the left and on the right side of the way (relative to its drawing direction)
func (road *Road) sideWidths(lanes map[LaneID]*Lane, side DrivingSide) (float64, float64) {
	left, right := 0.0, 0.0
	for _, laneID := range road.Lanes {
		lane, ok := lanes[laneID]
		if !ok {
			continue
		}
		onRight := lane.Direction == DIRECTION_FORWARD
		if side == DRIVING_SIDE_LEFT {
			onRight = !onRight
		}
		if onRight {
			right += lane.Width
		} else {
			left += lane.Width
		}
	}
	return left, right
}
