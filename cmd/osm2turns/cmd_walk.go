package main

import (
	"fmt"
	"strconv"

	"github.com/LdDl/osm2turns"
)

type CmdWalk struct {
	global *GlobalOptions

	BBox string `long:"bbox" description:"Keep only ways touching 'minLon,minLat,maxLon,maxLat'"`
}

func init() {
	_, err := parser.AddCommand("walk",
		"Find walking route",
		"Find pedestrian route between two sidewalk lanes using contraction hierarchies",
		&CmdWalk{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdWalk) Usage() string {
	return "input.osm.pbf from_lane_id to_lane_id"
}

func (cmd CmdWalk) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}
	from, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}
	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	m, logger, err := cmd.global.buildMap(args[0], cmd.BBox, config)
	if err != nil {
		return err
	}
	graph, err := osm2turns.NewWalkingGraph(m, osm2turns.WithWalkingGraphLogger(logger))
	if err != nil {
		return fmt.Errorf("Failed to prepare walking graph: %s", err.Error())
	}
	cost, lanes, err := graph.Route(osm2turns.LaneID(from), osm2turns.LaneID(to))
	if err != nil {
		return err
	}
	if cost < 0 {
		fmt.Printf("No walking route between lanes %d and %d\n", from, to)
		return nil
	}
	fmt.Printf("Walking distance: %f\n", cost)
	fmt.Printf("Lanes: %v\n", lanes)
	return nil
}
