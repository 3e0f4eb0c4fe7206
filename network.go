package osm2turns

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// ExportToCSV writes intersections, roads, lanes and turns into separate files which names are derived from given one.
// Geometries are WKT in lon/lat.
func (m *Map) ExportToCSV(fname string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameIntersections := fnameParts[0] + "_intersections.csv"
	fnameRoads := fnameParts[0] + "_roads.csv"
	fnameLanes := fnameParts[0] + "_lanes.csv"
	fnameTurns := fnameParts[0] + "_turns.csv"

	err := m.exportIntersectionsToCSV(fnameIntersections)
	if err != nil {
		return errors.Wrap(err, "Can't export intersections")
	}

	err = m.exportRoadsToCSV(fnameRoads)
	if err != nil {
		return errors.Wrap(err, "Can't export roads")
	}

	err = m.exportLanesToCSV(fnameLanes)
	if err != nil {
		return errors.Wrap(err, "Can't export lanes")
	}

	err = m.exportTurnsToCSV(fnameTurns)
	if err != nil {
		return errors.Wrap(err, "Can't export turns")
	}
	return nil
}

func createCSV(fname string, header []string) (*os.File, *csv.Writer, error) {
	file, err := os.Create(fname)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't create file")
	}
	writer := csv.NewWriter(file)
	writer.Comma = ';'
	err = writer.Write(header)
	if err != nil {
		file.Close()
		return nil, nil, errors.Wrap(err, "Can't write header")
	}
	return file, writer, nil
}

// flushCSV writes buffered rows and closes the file. Both write and close errors are returned
func flushCSV(file *os.File, writer *csv.Writer) error {
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush rows")
	}
	return file.Close()
}

func (m *Map) exportIntersectionsToCSV(fname string) error {
	file, writer, err := createCSV(fname, []string{"id", "control_type", "label", "elevation", "roads", "longitude", "latitude", "polygon"})
	if err != nil {
		return err
	}
	defer file.Close()

	for _, id := range m.IntersectionIDs() {
		intersection := m.Intersections[id]
		roads := make([]string, len(intersection.Roads))
		for i, roadID := range intersection.Roads {
			roads[i] = fmt.Sprintf("%d", roadID)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", intersection.ID),
			fmt.Sprintf("%s", intersection.ControlType),
			intersection.Label,
			fmt.Sprintf("%f", intersection.Elevation),
			strings.Join(roads, ","),
			fmt.Sprintf("%f", intersection.Point.Lon()),
			fmt.Sprintf("%f", intersection.Point.Lat()),
			euclideanRingToWKT(intersection.Polygon),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write intersection")
		}
	}
	return flushCSV(file, writer)
}

func (m *Map) exportRoadsToCSV(fname string) error {
	file, writer, err := createCSV(fname, []string{"id", "osm_way_id", "source_intersection", "target_intersection", "highway", "lanes", "length_meters", "geom"})
	if err != nil {
		return err
	}
	defer file.Close()

	for _, id := range m.RoadIDs() {
		road := m.Roads[id]
		lanes := make([]string, len(road.Lanes))
		for i, laneID := range road.Lanes {
			lanes[i] = fmt.Sprintf("%d", laneID)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", road.ID),
			fmt.Sprintf("%d", road.SourceID),
			fmt.Sprintf("%d", road.I1),
			fmt.Sprintf("%d", road.I2),
			road.Tags.Find("highway"),
			strings.Join(lanes, ","),
			fmt.Sprintf("%f", geo.Length(road.Geom)),
			wkt.MarshalString(road.Geom),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write road")
		}
	}
	return flushCSV(file, writer)
}

func (m *Map) exportLanesToCSV(fname string) error {
	file, writer, err := createCSV(fname, []string{"id", "road_id", "lane_type", "direction", "source_intersection", "target_intersection", "width", "geom"})
	if err != nil {
		return err
	}
	defer file.Close()

	for _, id := range m.LaneIDs() {
		lane := m.Lanes[id]
		err = writer.Write([]string{
			fmt.Sprintf("%d", lane.ID),
			fmt.Sprintf("%d", lane.Road),
			fmt.Sprintf("%s", lane.Type),
			fmt.Sprintf("%s", lane.Direction),
			fmt.Sprintf("%d", lane.SrcI),
			fmt.Sprintf("%d", lane.DstI),
			fmt.Sprintf("%f", lane.Width),
			euclideanLineToWKT(lane.Geom),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write lane")
		}
	}
	return flushCSV(file, writer)
}

func (m *Map) exportTurnsToCSV(fname string) error {
	file, writer, err := createCSV(fname, []string{"intersection_id", "src_lane", "dst_lane", "turn_type", "other_crosswalks", "geom"})
	if err != nil {
		return err
	}
	defer file.Close()

	for _, id := range m.TurnIDs() {
		turn := m.Turns[id]
		others := turn.SortedOtherCrosswalkIDs()
		othersStr := make([]string, len(others))
		for i, other := range others {
			othersStr[i] = fmt.Sprintf("%d-%d", other.Src, other.Dst)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", turn.ID.Parent),
			fmt.Sprintf("%d", turn.ID.Src),
			fmt.Sprintf("%d", turn.ID.Dst),
			fmt.Sprintf("%s", turn.Type),
			strings.Join(othersStr, ","),
			euclideanLineToWKT(turn.Geom),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write turn")
		}
	}
	return flushCSV(file, writer)
}
