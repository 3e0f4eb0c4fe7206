package osm2turns

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TurnOptions configures GenerateTurns
type TurnOptions struct {
	logger  *zap.Logger
	sink    WarningSink
	workers int
	side    DrivingSide
}

func WithTurnsLogger(logger *zap.Logger) func(*TurnOptions) {
	return func(opts *TurnOptions) {
		opts.logger = logger
	}
}

// WithWarningSink sets receiver of non-fatal geometry warnings. Warnings are logged by default
func WithWarningSink(sink WarningSink) func(*TurnOptions) {
	return func(opts *TurnOptions) {
		opts.sink = sink
	}
}

func WithWorkers(workers int) func(*TurnOptions) {
	return func(opts *TurnOptions) {
		opts.workers = workers
	}
}

func WithDrivingSide(side DrivingSide) func(*TurnOptions) {
	return func(opts *TurnOptions) {
		opts.side = side
	}
}

// GenerateTurns builds walking turns for every intersection in parallel and stores them in the map.
// The map is only read while turns are being built.
func GenerateTurns(ctx context.Context, m *Map, options ...func(*TurnOptions)) error {
	opts := &TurnOptions{
		logger:  zap.NewNop(),
		workers: runtime.NumCPU(),
		side:    DRIVING_SIDE_RIGHT,
	}
	for _, option := range options {
		option(opts)
	}
	if opts.sink == nil {
		opts.sink = NewZapWarningSink(opts.logger)
	}
	if opts.workers < 1 {
		opts.workers = 1
	}

	opts.logger.Info("Generating walking turns", zap.Int("intersections", len(m.Intersections)), zap.Int("workers", opts.workers))
	st := time.Now()

	ids := m.IntersectionIDs()
	// Each worker writes only its own slot
	results := make([][]*Turn, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for idx, id := range ids {
		idx, id := idx, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[idx] = MakeWalkingTurns(m, m.Intersections[id], opts.side, opts.sink)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "Can't generate walking turns")
	}

	for _, turns := range results {
		for _, turn := range turns {
			m.Turns[turn.ID] = turn
		}
	}
	opts.logger.Info("Done generating walking turns", zap.Duration("elapsed", time.Since(st)), zap.Int("turns", len(m.Turns)))
	return nil
}
