package osm2turns

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type WarningKind uint16

const (
	WARNING_DUPLICATE_TRACE = WarningKind(iota + 1)
	WARNING_SMOOTHING_FAILED
	WARNING_DUPLICATE_RESULT
	WARNING_EXPLODED_GEOMETRY
)

func (iotaIdx WarningKind) String() string {
	return [...]string{"duplicate_trace", "smoothing_failed", "duplicate_result", "exploded_geometry"}[iotaIdx-1]
}

// Warning is a non-fatal problem met while building a single turn
type Warning struct {
	Reason       string
	Intersection IntersectionID
	L1           LaneID
	L2           LaneID
	Kind         WarningKind
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] intersection %d, lanes %d and %d: %s", w.Kind, w.Intersection, w.L1, w.L2, w.Reason)
}

// WarningSink receives non-fatal warnings. Implementations must be safe for concurrent use
type WarningSink interface {
	Warn(w Warning)
}

// ZapWarningSink writes warnings to the logger
type ZapWarningSink struct {
	logger *zap.Logger
}

func NewZapWarningSink(logger *zap.Logger) *ZapWarningSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapWarningSink{logger: logger}
}

func (sink *ZapWarningSink) Warn(w Warning) {
	sink.logger.Warn(w.Reason,
		zap.Stringer("kind", w.Kind),
		zap.Int("intersection", int(w.Intersection)),
		zap.Int("l1", int(w.L1)),
		zap.Int("l2", int(w.L2)),
	)
}

// WarningCollector keeps warnings in memory
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

func (c *WarningCollector) Warn(w Warning) {
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Warnings returns copy of collected warnings
func (c *WarningCollector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]Warning, len(c.warnings))
	copy(result, c.warnings)
	return result
}
