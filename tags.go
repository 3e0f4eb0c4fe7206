package osm2turns

import (
	"regexp"
	"strconv"

	"github.com/paulmach/osm"
)

type SidewalkSide uint16

const (
	SIDEWALK_NONE = SidewalkSide(iota + 1)
	SIDEWALK_LEFT
	SIDEWALK_RIGHT
	SIDEWALK_BOTH
)

func (iotaIdx SidewalkSide) String() string {
	return [...]string{"none", "left", "right", "both"}[iotaIdx-1]
}

func (iotaIdx SidewalkSide) hasLeft() bool {
	return iotaIdx == SIDEWALK_LEFT || iotaIdx == SIDEWALK_BOTH
}

func (iotaIdx SidewalkSide) hasRight() bool {
	return iotaIdx == SIDEWALK_RIGHT || iotaIdx == SIDEWALK_BOTH
}

var (
	roundaboutJunctionTypes = map[string]struct{}{
		"roundabout": {},
	}

	// Ways with these highway values do not take part in the road network
	negligibleHighwayTags = map[string]struct{}{
		"path":         {},
		"construction": {},
		"proposed":     {},
		"raceway":      {},
		"bridleway":    {},
		"rest_area":    {},
		"road":         {},
		"abandoned":    {},
		"planned":      {},
		"trailhead":    {},
		"stairs":       {},
		"dismantled":   {},
		"disused":      {},
		"razed":        {},
		"access":       {},
		"corridor":     {},
		"stop":         {},
		"elevator":     {},
		"escalator":    {},
		"platform":     {},
		"bus_stop":     {},
	}

	sidewalkSides = map[string]SidewalkSide{
		"both":     SIDEWALK_BOTH,
		"yes":      SIDEWALK_BOTH,
		"left":     SIDEWALK_LEFT,
		"right":    SIDEWALK_RIGHT,
		"no":       SIDEWALK_NONE,
		"none":     SIDEWALK_NONE,
		"separate": SIDEWALK_NONE,
	}

	onewayForward = map[string]struct{}{
		"yes":  {},
		"true": {},
		"1":    {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	areaTags = map[string]struct{}{
		"landuse": {},
		"leisure": {},
		"natural": {},
		"amenity": {},
		"water":   {},
	}

	lanesRegExp = regexp.MustCompile(`\d+`)
)

// isRoadTags checks if way with given tags should become a road
func isRoadTags(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" {
		return false
	}
	if _, ok := negligibleHighwayTags[highway]; ok {
		return false
	}
	if tags.Find("area") == "yes" {
		return false
	}
	return getHighwayType(highway) != 0
}

func isBuildingTags(tags osm.Tags) bool {
	return tags.Find("building") != ""
}

func isAreaTags(tags osm.Tags) bool {
	for _, tag := range tags {
		if _, ok := areaTags[tag.Key]; ok {
			return true
		}
	}
	return false
}

// parseLanesTag extracts number from `lanes`-like tag. Returns -1 when tag is missing or broken
func parseLanesTag(tags osm.Tags, key string) int {
	text := tags.Find(key)
	if text == "" {
		return -1
	}
	lanesNum := lanesRegExp.FindString(text)
	if lanesNum == "" {
		return -1
	}
	lanes, err := strconv.Atoi(lanesNum)
	if err != nil {
		return -1
	}
	return lanes
}

// parseOneway returns whether way is oneway and whether it is drawn against travel direction
func parseOneway(tags osm.Tags) (bool, bool) {
	onewayText := tags.Find("oneway")
	if _, ok := onewayForward[onewayText]; ok {
		return true, false
	}
	if onewayText == "-1" {
		return true, true
	}
	// Reversible or alternating ways depend on time conditions, treat them as two-way ones
	if _, ok := onewayReversible[onewayText]; ok {
		return false, false
	}
	return false, false
}

// parseSidewalk returns sides of the way (relative to its drawing direction) which have sidewalks
func parseSidewalk(tags osm.Tags, highway HighwayType) SidewalkSide {
	if side, ok := sidewalkSides[tags.Find("sidewalk")]; ok {
		return side
	}
	if highway.isPedestrianOnly() {
		return SIDEWALK_BOTH
	}
	if _, ok := defaultSidewalkHighways[highway]; ok {
		return SIDEWALK_BOTH
	}
	return SIDEWALK_NONE
}
