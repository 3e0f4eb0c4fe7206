package osm2turns

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// Max distance between lane corner and intersection polygon point to treat them as the same point
	cornerTraceThreshold = 0.5
	// Backtracking shorter than this is smoothed out
	cornerSmoothThreshold = 1.0
	// Corner path longer than baseline multiplied by this value is replaced with baseline
	cornerMaxStretch = 10.0
)

// makeSharedSidewalkCorner builds path from the end of l1 to the start of l2 along the intersection's boundary.
// Falls back to straight line when boundary based geometry is broken. The last point always equals l2's first point.
func makeSharedSidewalkCorner(side DrivingSide, i *Intersection, l1, l2 *Lane, sink WarningSink) orb.LineString {
	baseline := orb.LineString{l1.LastPoint(), l2.FirstPoint()}
	warn := func(kind WarningKind, reason string) {
		if sink != nil {
			sink.Warn(Warning{Reason: reason, Intersection: i.ID, L1: l1.ID, L2: l2.ID, Kind: kind})
		}
	}

	shifted1 := side.rightShift(l1.LastLine(), l1.Width/2.0)
	corner1 := shifted1[len(shifted1)-1]
	corner2 := side.rightShift(l2.FirstLine(), l2.Width/2.0)[0]

	// Intersection polygons are clockwise, so scan from corner2 to corner1 and reverse at the end
	ptsBetween := []orb.Point{l2.FirstPoint()}
	polygonPts := ringPoints(i.Polygon)
	if side == DRIVING_SIDE_LEFT {
		polygonPts = reverseLine(orb.LineString(polygonPts))
	}
	if traced, ok := findPointsBetween(polygonPts, corner2, corner1, cornerTraceThreshold); ok {
		deduped := dedupe(traced)
		if len(deduped) >= 2 {
			if containsDuplicates(deduped) {
				warn(WARNING_DUPLICATE_TRACE, "shared sidewalk corner has weird duplicate geometry, so just doing straight line")
				return baseline
			}
			ptsBetween = append(ptsBetween, side.rightShift(orb.LineString(deduped), math.Min(l1.Width, l2.Width)/2.0)...)
		}
	}
	ptsBetween = append(ptsBetween, l1.LastPoint())
	ptsBetween = reverseLine(orb.LineString(ptsBetween))

	finalPts := approxDedupe(ptsBetween, cornerSmoothThreshold)
	if len(finalPts) < 2 {
		warn(WARNING_SMOOTHING_FAILED, "shared sidewalk corner couldn't do final smoothing")
		finalPts = dedupe(ptsBetween)
		if len(finalPts) < 2 {
			return baseline
		}
	}
	// The last point might be removed as a duplicate, but start and end should match lanes exactly
	if finalPts[len(finalPts)-1] != l2.FirstPoint() {
		finalPts[len(finalPts)-1] = l2.FirstPoint()
	}
	if containsDuplicates(finalPts) {
		warn(WARNING_DUPLICATE_RESULT, "shared sidewalk corner has weird duplicate geometry, so just doing straight line")
		return baseline
	}
	result := orb.LineString(finalPts)
	if length := planar.Length(result); length > cornerMaxStretch*planar.Length(baseline) {
		warn(WARNING_EXPLODED_GEOMETRY, fmt.Sprintf("shared sidewalk corner explodes to %f long, so just doing straight line", length))
		return baseline
	}
	return result
}
