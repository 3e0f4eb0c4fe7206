package osm2turns

import (
	"io"

	"github.com/paulmach/orb"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

func lineToCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return pts2d
}

// ExportToGeoJSON writes the map as GeoJSON feature collection in lon/lat.
// Feature property "kind" is one of: intersection, intersection_polygon, road, lane, turn.
func (m *Map) ExportToGeoJSON(w io.Writer) error {
	fc := geojson.NewFeatureCollection()

	for _, id := range m.IntersectionIDs() {
		intersection := m.Intersections[id]
		f := geojson.NewPointFeature([]float64{intersection.Point.Lon(), intersection.Point.Lat()})
		f.SetProperty("kind", "intersection")
		f.SetProperty("id", int(intersection.ID))
		f.SetProperty("control_type", intersection.ControlType.String())
		f.SetProperty("degree", intersection.Degree())
		if intersection.Label != "" {
			f.SetProperty("label", intersection.Label)
		}
		fc.AddFeature(f)
		if len(intersection.Polygon) < 4 {
			continue
		}
		polygon := geojson.NewPolygonFeature([][][]float64{lineToCoordinates(orb.LineString(ringToSpherical(intersection.Polygon)))})
		polygon.SetProperty("kind", "intersection_polygon")
		polygon.SetProperty("id", int(intersection.ID))
		fc.AddFeature(polygon)
	}

	for _, id := range m.RoadIDs() {
		road := m.Roads[id]
		f := geojson.NewLineStringFeature(lineToCoordinates(road.Geom))
		f.SetProperty("kind", "road")
		f.SetProperty("id", int(road.ID))
		f.SetProperty("osm_way_id", road.SourceID)
		f.SetProperty("i1", int(road.I1))
		f.SetProperty("i2", int(road.I2))
		fc.AddFeature(f)
	}

	for _, id := range m.LaneIDs() {
		lane := m.Lanes[id]
		f := geojson.NewLineStringFeature(lineToCoordinates(lineToSpherical(lane.Geom)))
		f.SetProperty("kind", "lane")
		f.SetProperty("id", int(lane.ID))
		f.SetProperty("road_id", int(lane.Road))
		f.SetProperty("lane_type", lane.Type.String())
		f.SetProperty("direction", lane.Direction.String())
		fc.AddFeature(f)
	}

	for _, id := range m.TurnIDs() {
		turn := m.Turns[id]
		f := geojson.NewLineStringFeature(lineToCoordinates(lineToSpherical(turn.Geom)))
		f.SetProperty("kind", "turn")
		f.SetProperty("intersection_id", int(turn.ID.Parent))
		f.SetProperty("src_lane", int(turn.ID.Src))
		f.SetProperty("dst_lane", int(turn.ID.Dst))
		f.SetProperty("turn_type", turn.Type.String())
		fc.AddFeature(f)
	}

	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal GeoJSON")
	}
	_, err = w.Write(b)
	if err != nil {
		return errors.Wrap(err, "Can't write GeoJSON")
	}
	return nil
}
