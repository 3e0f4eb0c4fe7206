package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/LdDl/osm2turns"
)

type CmdTurns struct {
	global *GlobalOptions

	BBox    string `long:"bbox" description:"Keep only ways touching 'minLon,minLat,maxLon,maxLat'"`
	GeoJSON string `long:"geojson" description:"Also write GeoJSON into given file"`
}

func init() {
	_, err := parser.AddCommand("turns",
		"Generate pedestrian turns",
		"Build lanes, intersection polygons, crosswalks and shared sidewalk corners",
		&CmdTurns{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdTurns) Usage() string {
	return "input.osm.pbf output.[csv|geojson]"
}

func (cmd CmdTurns) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output file not specified, Usage: %s", cmd.Usage())
	}
	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	m, _, err := cmd.global.buildMap(args[0], cmd.BBox, config)
	if err != nil {
		return err
	}

	if config.Export == osm2turns.EXPORT_GEOJSON || strings.HasSuffix(args[1], ".geojson") {
		err = writeGeoJSON(m, args[1])
	} else {
		err = m.ExportToCSV(args[1])
	}
	if err != nil {
		return fmt.Errorf("Failed to export: %s", err.Error())
	}
	if cmd.GeoJSON != "" {
		err = writeGeoJSON(m, cmd.GeoJSON)
		if err != nil {
			return fmt.Errorf("Failed to export GeoJSON: %s", err.Error())
		}
	}
	return nil
}

func writeGeoJSON(m *osm2turns.Map, fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return m.ExportToGeoJSON(file)
}
