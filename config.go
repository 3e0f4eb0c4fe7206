package osm2turns

import (
	"fmt"
	"io"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type ExportFormat string

const (
	EXPORT_CSV     = ExportFormat("csv")
	EXPORT_GEOJSON = ExportFormat("geojson")
)

// Config is the configuration of the whole pipeline
type Config struct {
	DrivingSide DrivingSide  `yaml:"driving_side"`
	Lanes       LaneConfig   `yaml:"lanes"`
	Workers     int          `yaml:"workers"`
	Export      ExportFormat `yaml:"export"`
}

func DefaultConfig() *Config {
	return &Config{
		DrivingSide: DRIVING_SIDE_RIGHT,
		Lanes:       DefaultLaneConfig(),
		Workers:     runtime.NumCPU(),
		Export:      EXPORT_CSV,
	}
}

// LoadConfig reads YAML configuration. Missing fields keep default values
func LoadConfig(configPath string) (*Config, error) {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}
	return parseConfig(data)
}

// ParseConfig is LoadConfig for arbitrary source
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration")
	}
	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values which can't be used by the pipeline
func (config *Config) Validate() error {
	if config.Lanes.DrivingWidth <= 0 || config.Lanes.SidewalkWidth <= 0 || config.Lanes.ShoulderWidth <= 0 || config.Lanes.BikingWidth <= 0 {
		return fmt.Errorf("Lane widths should be positive: %+v", config.Lanes)
	}
	if config.Lanes.TrimDistance < 0 {
		return fmt.Errorf("Trim distance should not be negative: %f", config.Lanes.TrimDistance)
	}
	if config.Workers < 0 {
		return fmt.Errorf("Number of workers should not be negative: %d", config.Workers)
	}
	switch config.Export {
	case EXPORT_CSV, EXPORT_GEOJSON:
	default:
		return fmt.Errorf("Export format '%s' is not supported", config.Export)
	}
	return nil
}
