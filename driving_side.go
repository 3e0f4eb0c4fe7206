package osm2turns

import (
	"fmt"

	"github.com/paulmach/orb"
)

type DrivingSide uint16

const (
	DRIVING_SIDE_RIGHT = DrivingSide(iota + 1)
	DRIVING_SIDE_LEFT
)

func (iotaIdx DrivingSide) String() string {
	return [...]string{"right", "left"}[iotaIdx-1]
}

// ParseDrivingSide converts textual representation ("right" or "left") to DrivingSide
func ParseDrivingSide(str string) (DrivingSide, error) {
	switch str {
	case "right", "":
		return DRIVING_SIDE_RIGHT, nil
	case "left":
		return DRIVING_SIDE_LEFT, nil
	default:
		return 0, fmt.Errorf("Driving side '%s' is not supported", str)
	}
}

// UnmarshalYAML allows to use "right" / "left" in configuration files
func (iotaIdx *DrivingSide) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	side, err := ParseDrivingSide(str)
	if err != nil {
		return err
	}
	*iotaIdx = side
	return nil
}

// rightShift shifts line to the side where vehicles drive: right for right-hand traffic, left otherwise
func (iotaIdx DrivingSide) rightShift(line orb.LineString, width float64) orb.LineString {
	if iotaIdx == DRIVING_SIDE_LEFT {
		return shiftRight(line, -width)
	}
	return shiftRight(line, width)
}

// neighborStep is index step towards the neighbor which shares a sidewalk corner.
// Roads are expected to be sorted counter-clockwise by incoming angle.
func (iotaIdx DrivingSide) neighborStep() int {
	if iotaIdx == DRIVING_SIDE_LEFT {
		return -1
	}
	return 1
}

// neighborAtOffset returns index of road which is given number of steps away from idx in angular order
func neighborAtOffset(side DrivingSide, idx, steps, n int) int {
	if n <= 0 {
		return 0
	}
	return ((idx+steps*side.neighborStep())%n + n) % n
}
