package main

import (
	"fmt"
	"strconv"

	"github.com/LdDl/osm2turns"
	"github.com/kr/pretty"
	"github.com/paulmach/orb"
)

type CmdInspect struct {
	global *GlobalOptions

	BBox string `long:"bbox" description:"Keep only ways touching 'minLon,minLat,maxLon,maxLat'"`
}

func init() {
	_, err := parser.AddCommand("inspect",
		"Inspect intersection",
		"Print intersection nearest to given point together with its roads and turns",
		&CmdInspect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInspect) Usage() string {
	return "input.osm.pbf lon lat"
}

func (cmd CmdInspect) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return err
	}
	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	m, _, err := cmd.global.buildMap(args[0], cmd.BBox, config)
	if err != nil {
		return err
	}
	index := osm2turns.NewIntersectionIndex(m)
	intersection := index.Nearest(orb.Point{lon, lat})
	if intersection == nil {
		return fmt.Errorf("There are no intersections")
	}
	fmt.Printf("%# v\n", pretty.Formatter(intersection))
	for _, roadID := range intersection.Roads {
		fmt.Printf("%# v\n", pretty.Formatter(m.Roads[roadID]))
	}
	for _, turnID := range m.TurnIDs() {
		if turnID.Parent != intersection.ID {
			continue
		}
		fmt.Printf("%# v\n", pretty.Formatter(m.Turns[turnID]))
	}
	return nil
}
