package osm2turns

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified"}[iotaIdx-1]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// isPedestrianOnly checks if the highway carries no vehicle lanes at all
func (iotaIdx HighwayType) isPedestrianOnly() bool {
	_, ok := pedestrianHighways[iotaIdx]
	return ok
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"residential":    HIGHWAY_RESIDENTIAL,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
		"cycleway":       HIGHWAY_CYCLEWAY,
		"footway":        HIGHWAY_FOOTWAY,
		"pedestrian":     HIGHWAY_PEDESTRIAN,
		"steps":          HIGHWAY_STEPS,
		"track":          HIGHWAY_TRACK,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
	}

	// Driving lanes per direction when no `lanes` tag is given
	defaultLanesByHighway = map[HighwayType]int{
		HIGHWAY_MOTORWAY:       3,
		HIGHWAY_MOTORWAY_LINK:  1,
		HIGHWAY_TRUNK:          2,
		HIGHWAY_TRUNK_LINK:     1,
		HIGHWAY_PRIMARY:        2,
		HIGHWAY_PRIMARY_LINK:   1,
		HIGHWAY_SECONDARY:      1,
		HIGHWAY_SECONDARY_LINK: 1,
		HIGHWAY_TERTIARY:       1,
		HIGHWAY_TERTIARY_LINK:  1,
		HIGHWAY_RESIDENTIAL:    1,
		HIGHWAY_LIVING_STREET:  1,
		HIGHWAY_SERVICE:        1,
		HIGHWAY_CYCLEWAY:       1,
		HIGHWAY_TRACK:          1,
		HIGHWAY_UNCLASSIFIED:   1,
	}

	// Highways which get sidewalks on both sides when `sidewalk` tag is missing
	defaultSidewalkHighways = map[HighwayType]struct{}{
		HIGHWAY_PRIMARY:       {},
		HIGHWAY_SECONDARY:     {},
		HIGHWAY_TERTIARY:      {},
		HIGHWAY_RESIDENTIAL:   {},
		HIGHWAY_LIVING_STREET: {},
		HIGHWAY_UNCLASSIFIED:  {},
	}

	// Highways where pedestrians are not allowed even on shoulders
	noWalkingHighways = map[HighwayType]struct{}{
		HIGHWAY_MOTORWAY:      {},
		HIGHWAY_MOTORWAY_LINK: {},
		HIGHWAY_TRUNK:         {},
		HIGHWAY_TRUNK_LINK:    {},
	}

	pedestrianHighways = map[HighwayType]struct{}{
		HIGHWAY_FOOTWAY:    {},
		HIGHWAY_PEDESTRIAN: {},
		HIGHWAY_STEPS:      {},
	}
)
