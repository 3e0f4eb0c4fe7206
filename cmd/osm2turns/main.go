package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LdDl/osm2turns"
	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	Config  string `short:"c" long:"config" description:"YAML configuration file. Defaults are used when not specified"`
	Verbose bool   `short:"v" long:"verbose" description:"Print progress information"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func main() {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (g *GlobalOptions) Logger() (*zap.Logger, error) {
	if !g.Verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func (g *GlobalOptions) LoadConfig() (*osm2turns.Config, error) {
	if g.Config == "" {
		return osm2turns.DefaultConfig(), nil
	}
	config, err := osm2turns.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %s", err.Error())
	}
	return config, nil
}

// buildMap reads OSM file and runs the whole pipeline on it with given configuration
func (g *GlobalOptions) buildMap(filename, bbox string, config *osm2turns.Config) (*osm2turns.Map, *zap.Logger, error) {
	logger, err := g.Logger()
	if err != nil {
		return nil, nil, err
	}
	readerOptions := []func(*osm2turns.ReaderOptions){osm2turns.WithReaderLogger(logger)}
	if bbox != "" {
		bound, err := parseBBox(bbox)
		if err != nil {
			return nil, nil, err
		}
		readerOptions = append(readerOptions, osm2turns.WithBound(bound))
	}
	data, err := osm2turns.ReadOSMFile(filename, readerOptions...)
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to read OSM data: %s", err.Error())
	}
	m, err := osm2turns.BuildMap(context.Background(), data, osm2turns.FlatElevation, config, logger, osm2turns.NewZapWarningSink(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to build map: %s", err.Error())
	}
	return m, logger, nil
}

// parseBBox parses "minLon,minLat,maxLon,maxLat"
func parseBBox(str string) (orb.Bound, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("Bounding box should be 'minLon,minLat,maxLon,maxLat', got '%s'", str)
	}
	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("Bad bounding box value '%s': %s", part, err.Error())
		}
		values[i] = v
	}
	return orb.Bound{Min: orb.Point{values[0], values[1]}, Max: orb.Point{values[2], values[3]}}, nil
}
