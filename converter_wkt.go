package osm2turns

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// euclideanLineToWKT returns WKT representation (lon/lat) of EPSG:3857 LineString
func euclideanLineToWKT(line orb.LineString) string {
	return wkt.MarshalString(lineToSpherical(line))
}

// euclideanRingToWKT returns WKT representation (lon/lat) of EPSG:3857 ring as Polygon. Empty ring gives empty string
func euclideanRingToWKT(ring orb.Ring) string {
	if len(ring) == 0 {
		return ""
	}
	return wkt.MarshalString(orb.Polygon{ringToSpherical(ring)})
}
