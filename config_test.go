package osm2turns

import (
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	text := `
driving_side: left
workers: 2
export: geojson
lanes:
  sidewalk_width: 2.0
  trim_distance: 5
`
	config, err := ParseConfig(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if config.DrivingSide != DRIVING_SIDE_LEFT {
		t.Errorf("Driving side should be %s, but got %s", DRIVING_SIDE_LEFT, config.DrivingSide)
	}
	if config.Workers != 2 {
		t.Errorf("Workers should be %d, but got %d", 2, config.Workers)
	}
	if config.Export != EXPORT_GEOJSON {
		t.Errorf("Export format should be %s, but got %s", EXPORT_GEOJSON, config.Export)
	}
	if config.Lanes.SidewalkWidth != 2.0 {
		t.Errorf("Sidewalk width should be %f, but got %f", 2.0, config.Lanes.SidewalkWidth)
	}
	if config.Lanes.TrimDistance != 5.0 {
		t.Errorf("Trim distance should be %f, but got %f", 5.0, config.Lanes.TrimDistance)
	}
	// Missing values keep defaults
	defaults := DefaultLaneConfig()
	if config.Lanes.DrivingWidth != defaults.DrivingWidth {
		t.Errorf("Driving width should be %f, but got %f", defaults.DrivingWidth, config.Lanes.DrivingWidth)
	}
}

func TestParseConfigEmpty(t *testing.T) {
	config, err := ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if config.DrivingSide != DRIVING_SIDE_RIGHT {
		t.Errorf("Driving side should be %s, but got %s", DRIVING_SIDE_RIGHT, config.DrivingSide)
	}
	if config.Export != EXPORT_CSV {
		t.Errorf("Export format should be %s, but got %s", EXPORT_CSV, config.Export)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := []string{
		"driving_side: middle\n",
		"lanes:\n  driving_width: -1\n",
		"lanes:\n  trim_distance: -3\n",
		"workers: -1\n",
		"export: shapefile\n",
		"lanes: [1, 2\n",
	}
	for _, text := range cases {
		_, err := ParseConfig(strings.NewReader(text))
		if err == nil {
			t.Errorf("Configuration '%s' should give an error", strings.TrimSpace(text))
		}
	}
}

func TestParseDrivingSide(t *testing.T) {
	cases := map[string]DrivingSide{
		"right": DRIVING_SIDE_RIGHT,
		"left":  DRIVING_SIDE_LEFT,
	}
	for str, correct := range cases {
		side, err := ParseDrivingSide(str)
		if err != nil {
			t.Error(err)
			continue
		}
		if side != correct {
			t.Errorf("Driving side for '%s' should be %s, but got %s", str, correct, side)
		}
	}
	if _, err := ParseDrivingSide("up"); err == nil {
		t.Errorf("Unknown driving side should give an error")
	}
}
