package osm2turns

import (
	"sort"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// SplitOptions configures SplitRoads
type SplitOptions struct {
	logger *zap.Logger
}

func WithSplitLogger(logger *zap.Logger) func(*SplitOptions) {
	return func(opts *SplitOptions) {
		opts.logger = logger
	}
}

// pointCounts is an immutable snapshot of point usage across remapped roads
type pointCounts struct {
	counts        map[orb.Point]int
	intersections map[orb.Point]struct{}
}

// SplitRoads turns raw ways into intersections and roads bounded by them.
//
// Roundabouts are collapsed into single intersections first. Returns *TopologyError (matches ErrInvalidTopology)
// when some way touches a roundabout not at its endpoint.
func SplitRoads(data *RawData, elevation ElevationFunc, options ...func(*SplitOptions)) (*Map, error) {
	opts := &SplitOptions{
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(opts)
	}
	if elevation == nil {
		elevation = FlatElevation
	}
	logger := opts.logger

	logger.Info("Splitting up roads", zap.Int("roads", len(data.Roads)))
	st := time.Now()

	roads, centers := collapseRoundabouts(data.Roads)
	remapped := make([]*remappedRoad, 0, len(roads))
	for _, road := range roads {
		if len(road.Points) < 2 {
			logger.Warn("Way with less than 2 points met", zap.Int64("way_id", road.SourceID), zap.Int("points", len(road.Points)))
			continue
		}
		remapped = append(remapped, remapRoundaboutEnds(road, centers))
	}

	counts, err := countPoints(remapped, centers)
	if err != nil {
		return nil, err
	}

	m := NewMap()
	m.Buildings = data.Buildings
	m.Areas = data.Areas

	ptToIntersection := materializeIntersections(m, counts, data, elevation)
	splitRemapped(m, remapped, ptToIntersection)

	logger.Info("Done splitting",
		zap.Duration("elapsed", time.Since(st)),
		zap.Int("roundabout_points", len(centers)),
		zap.Int("intersections", len(m.Intersections)),
		zap.Int("roads", len(m.Roads)),
	)
	return m, nil
}

// countPoints counts point occurrences and detects intersections
func countPoints(roads []*remappedRoad, centers map[orb.Point]orb.Point) (*pointCounts, error) {
	result := &pointCounts{
		counts:        make(map[orb.Point]int),
		intersections: make(map[orb.Point]struct{}),
	}
	for _, road := range roads {
		last := len(road.points) - 1
		for idx, pt := range road.points {
			result.counts[pt]++
			if result.counts[pt] == 2 {
				result.intersections[pt] = struct{}{}
			}
			// All start and end points of ways are also intersections
			if idx == 0 || idx == last {
				result.intersections[pt] = struct{}{}
				continue
			}
			if _, ok := centers[pt]; !ok {
				continue
			}
			if idx == 1 && road.addedToStart {
				continue
			}
			if idx == last-1 && road.addedToEnd {
				continue
			}
			return nil, &TopologyError{SourceID: road.raw.SourceID, Index: idx, Length: len(road.points)}
		}
	}
	return result, nil
}

// materializeIntersections creates intersections in order of their points
func materializeIntersections(m *Map, counts *pointCounts, data *RawData, elevation ElevationFunc) map[orb.Point]IntersectionID {
	pts := make([]orb.Point, 0, len(counts.intersections))
	for pt := range counts.intersections {
		pts = append(pts, pt)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	ptToIntersection := make(map[orb.Point]IntersectionID, len(pts))
	for idx, pt := range pts {
		id := IntersectionID(idx)
		intersection := &Intersection{
			ID:          id,
			Point:       pt,
			Elevation:   elevation(pt.Lon(), pt.Lat()),
			ControlType: CONTROL_STOP_SIGN,
		}
		if _, ok := data.Signals[pt]; ok {
			intersection.ControlType = CONTROL_TRAFFIC_SIGNAL
		}
		if name, ok := data.Names[pt]; ok {
			intersection.Label = name
		}
		m.Intersections[id] = intersection
		ptToIntersection[pt] = id
	}
	return ptToIntersection
}

// splitRemapped walks every road and cuts it at each intersection it passes
func splitRemapped(m *Map, roads []*remappedRoad, ptToIntersection map[orb.Point]IntersectionID) {
	for _, orig := range roads {
		segment := orb.LineString{orig.points[0]}
		i1 := ptToIntersection[orig.points[0]]
		for _, pt := range orig.points[1:] {
			segment = append(segment, pt)
			i2, ok := ptToIntersection[pt]
			if !ok {
				continue
			}
			id := RoadID(len(m.Roads))
			m.Roads[id] = &Road{
				ID:            id,
				SourceID:      orig.raw.SourceID,
				Geom:          segment,
				GeomEuclidean: lineToEuclidean(segment),
				I1:            i1,
				I2:            i2,
				Tags:          append(orig.raw.Tags[:0:0], orig.raw.Tags...),
			}
			m.Intersections[i1].Roads = append(m.Intersections[i1].Roads, id)
			if i2 != i1 {
				m.Intersections[i2].Roads = append(m.Intersections[i2].Roads, id)
			}
			// Start a new road
			segment = orb.LineString{pt}
			i1 = i2
		}
	}
}
