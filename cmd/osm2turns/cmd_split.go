package main

import (
	"fmt"

	"github.com/LdDl/osm2turns"
)

type CmdSplit struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("split",
		"Split roads",
		"Split OSM ways into intersections and roads, collapse roundabouts",
		&CmdSplit{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSplit) Usage() string {
	return "input.osm.pbf output.csv"
}

func (cmd CmdSplit) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output file not specified, Usage: %s", cmd.Usage())
	}
	logger, err := cmd.global.Logger()
	if err != nil {
		return err
	}
	data, err := osm2turns.ReadOSMFile(args[0], osm2turns.WithReaderLogger(logger))
	if err != nil {
		return fmt.Errorf("Failed to read OSM data: %s", err.Error())
	}
	m, err := osm2turns.SplitRoads(data, osm2turns.FlatElevation, osm2turns.WithSplitLogger(logger))
	if err != nil {
		return fmt.Errorf("Failed to split roads: %s", err.Error())
	}
	err = m.ExportToCSV(args[1])
	if err != nil {
		return fmt.Errorf("Failed to export: %s", err.Error())
	}
	return nil
}
