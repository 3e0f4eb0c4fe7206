package osm2turns

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BuildMap runs the whole pipeline: splits roads, assigns lanes, builds intersection geometry and walking turns
func BuildMap(ctx context.Context, data *RawData, elevation ElevationFunc, config *Config, logger *zap.Logger, sink WarningSink) (*Map, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := SplitRoads(data, elevation, WithSplitLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "Can't split roads")
	}
	err = AssignLanes(m, config.Lanes, config.DrivingSide, WithLanesLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "Can't assign lanes")
	}
	BuildIntersectionGeometry(m, config.DrivingSide)

	turnOptions := []func(*TurnOptions){
		WithTurnsLogger(logger),
		WithDrivingSide(config.DrivingSide),
	}
	if config.Workers > 0 {
		turnOptions = append(turnOptions, WithWorkers(config.Workers))
	}
	if sink != nil {
		turnOptions = append(turnOptions, WithWarningSink(sink))
	}
	err = GenerateTurns(ctx, m, turnOptions...)
	if err != nil {
		return nil, err
	}
	return m, nil
}
