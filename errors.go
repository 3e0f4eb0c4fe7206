package osm2turns

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidTopology means that input breaks assumptions of road splitting. Construction can't continue
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrDegenerateGeometry means that a single turn can't be built. Caller skips it
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrMissingSidewalk means that a turn needs a sidewalk which is not there. Caller skips it
	ErrMissingSidewalk = errors.New("missing sidewalk")
)

// TopologyError describes a way which touches a roundabout not at its endpoint
type TopologyError struct {
	SourceID int64
	Index    int
	Length   int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("Way %d hits a roundabout not at an endpoint. idx %d of length %d", e.SourceID, e.Index, e.Length)
}

// Is makes errors.Is(err, ErrInvalidTopology) work
func (e *TopologyError) Is(target error) bool {
	return target == ErrInvalidTopology
}

// IsRecoverable checks if error should only skip a single turn
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrDegenerateGeometry) || errors.Is(err, ErrMissingSidewalk)
}
