package osm2turns

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

type OSMFormat uint16

const (
	OSM_FORMAT_XML = OSMFormat(iota + 1)
	OSM_FORMAT_PBF
)

func (iotaIdx OSMFormat) String() string {
	return [...]string{"xml", "pbf"}[iotaIdx-1]
}

// OSMFormatFromFilename guesses data format by file extension
func OSMFormatFromFilename(filename string) (OSMFormat, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return OSM_FORMAT_XML, nil
	case ".pbf":
		return OSM_FORMAT_PBF, nil
	default:
		return 0, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

type ReaderOptions struct {
	logger *zap.Logger
	bound  *orb.Bound
	procs  int
}

func WithReaderLogger(logger *zap.Logger) func(*ReaderOptions) {
	return func(opts *ReaderOptions) {
		opts.logger = logger
	}
}

// WithBound keeps only ways which have at least one point inside of given bound (lon/lat)
func WithBound(bound orb.Bound) func(*ReaderOptions) {
	return func(opts *ReaderOptions) {
		opts.bound = &bound
	}
}

// WithPBFProcs sets number of goroutines for PBF decoding
func WithPBFProcs(procs int) func(*ReaderOptions) {
	return func(opts *ReaderOptions) {
		opts.procs = procs
	}
}

type wayRaw struct {
	ID    osm.WayID
	Nodes []osm.NodeID
	Tags  osm.Tags
}

// ReadOSMFile reads roads, buildings and areas from OSM file. Format is guessed by extension
func ReadOSMFile(filename string, options ...func(*ReaderOptions)) (*RawData, error) {
	format, err := OSMFormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open OSM file")
	}
	defer file.Close()
	return ReadOSM(context.Background(), file, format, options...)
}

// ReadOSM reads roads, buildings and areas from OSM data. Source is scanned twice: for ways and then for their nodes
func ReadOSM(ctx context.Context, r io.ReadSeeker, format OSMFormat, options ...func(*ReaderOptions)) (*RawData, error) {
	opts := &ReaderOptions{
		logger: zap.NewNop(),
		procs:  4,
	}
	for _, option := range options {
		option(opts)
	}
	logger := opts.logger

	/* Process ways */
	logger.Info("Processing ways")
	st := time.Now()
	roads := []wayRaw{}
	buildings := []wayRaw{}
	areas := []wayRaw{}
	nodesSeen := make(map[osm.NodeID]struct{})
	err := scanOSM(ctx, r, format, opts.procs, func(obj osm.Object) {
		way, ok := obj.(*osm.Way)
		if !ok {
			return
		}
		prepared := wayRaw{
			ID:    way.ID,
			Nodes: make([]osm.NodeID, 0, len(way.Nodes)),
			Tags:  make(osm.Tags, len(way.Tags)),
		}
		copy(prepared.Tags, way.Tags)
		for _, node := range way.Nodes {
			prepared.Nodes = append(prepared.Nodes, node.ID)
		}
		switch {
		case isRoadTags(way.Tags):
			roads = append(roads, prepared)
		case isBuildingTags(way.Tags):
			buildings = append(buildings, prepared)
		case isAreaTags(way.Tags):
			areas = append(areas, prepared)
		default:
			return
		}
		// Mark way's nodes as seen to skip unused nodes on the next pass
		for _, nodeID := range prepared.Nodes {
			nodesSeen[nodeID] = struct{}{}
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan ways")
	}
	logger.Info("Done processing ways", zap.Duration("elapsed", time.Since(st)), zap.Int("roads", len(roads)), zap.Int("buildings", len(buildings)), zap.Int("areas", len(areas)))

	// Seek to start
	_, err = r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	logger.Info("Processing nodes")
	st = time.Now()
	points := make(map[osm.NodeID]orb.Point, len(nodesSeen))
	data := &RawData{
		Signals: make(map[orb.Point]struct{}),
		Names:   make(map[orb.Point]string),
	}
	err = scanOSM(ctx, r, format, opts.procs, func(obj osm.Object) {
		node, ok := obj.(*osm.Node)
		if !ok {
			return
		}
		if _, ok := nodesSeen[node.ID]; !ok {
			return
		}
		pt := orb.Point{node.Lon, node.Lat}
		points[node.ID] = pt
		if node.Tags.Find("highway") == "traffic_signals" {
			data.Signals[pt] = struct{}{}
		}
		if name := node.Tags.Find("name"); name != "" {
			data.Names[pt] = name
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan nodes")
	}
	logger.Info("Done processing nodes", zap.Duration("elapsed", time.Since(st)), zap.Int("nodes", len(points)))

	missing := 0
	for _, way := range roads {
		line, ok := wayGeometry(way, points)
		if !ok {
			missing++
			continue
		}
		if opts.bound != nil && !touchesBound(line, *opts.bound) {
			continue
		}
		data.Roads = append(data.Roads, RawRoad{SourceID: int64(way.ID), Points: line, Tags: way.Tags})
	}
	for _, way := range buildings {
		if line, ok := wayGeometry(way, points); ok && (opts.bound == nil || touchesBound(line, *opts.bound)) {
			data.Buildings = append(data.Buildings, Building{SourceID: int64(way.ID), Points: line, Tags: way.Tags})
		}
	}
	for _, way := range areas {
		if line, ok := wayGeometry(way, points); ok && (opts.bound == nil || touchesBound(line, *opts.bound)) {
			data.Areas = append(data.Areas, Area{SourceID: int64(way.ID), Points: line, Tags: way.Tags})
		}
	}
	if missing > 0 {
		logger.Warn("Some roads reference unknown nodes and have been skipped", zap.Int("roads", missing))
	}
	return data, nil
}

func scanOSM(ctx context.Context, r io.Reader, format OSMFormat, procs int, handle func(obj osm.Object)) error {
	var scanner OSMScanner
	switch format {
	case OSM_FORMAT_XML:
		scanner = osmxml.New(ctx, r)
	case OSM_FORMAT_PBF:
		scanner = osmpbf.New(ctx, r, procs)
	default:
		return fmt.Errorf("OSM format '%d' is not handled", format)
	}
	defer scanner.Close()
	for scanner.Scan() {
		handle(scanner.Object())
	}
	return scanner.Err()
}

// wayGeometry returns way's points. Returns false when some node is unknown
func wayGeometry(way wayRaw, points map[osm.NodeID]orb.Point) (orb.LineString, bool) {
	line := make(orb.LineString, 0, len(way.Nodes))
	for _, nodeID := range way.Nodes {
		pt, ok := points[nodeID]
		if !ok {
			return nil, false
		}
		line = append(line, pt)
	}
	return line, true
}

func touchesBound(line orb.LineString, bound orb.Bound) bool {
	for _, pt := range line {
		if bound.Contains(pt) {
			return true
		}
	}
	return false
}
