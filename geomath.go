package osm2turns

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	pi180    = math.Pi / 180.0
	pi180Rev = 180.0 / math.Pi

	// Geometry coarser than this is treated as a single point
	epsilonDistance = 1e-9
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// findCentroid returns center point for given set of geo-points (not middle point)
func findCentroid(line []orb.Point) orb.Point {
	totalPoints := len(line)
	if totalPoints == 1 {
		return line[0]
	}
	x, y, z := 0.0, 0.0, 0.0
	for i := 0; i < totalPoints; i++ {
		longitude := degreesToRadians(line[i].Lon())
		latitude := degreesToRadians(line[i].Lat())
		c1 := math.Cos(latitude)
		x += c1 * math.Cos(longitude)
		y += c1 * math.Sin(longitude)
		z += math.Sin(latitude)
	}

	x /= float64(totalPoints)
	y /= float64(totalPoints)
	z /= float64(totalPoints)

	centralLongitude := math.Atan2(y, x)
	centralSquareRoot := math.Sqrt(x*x + y*y)
	centralLatitude := math.Atan2(z, centralSquareRoot)

	return orb.Point{radiansTodegrees(centralLongitude), radiansTodegrees(centralLatitude)}
}

// Check if two segments intersects and returns intersections Point
// p1, p2 - first segment
// p3, p4 - second segment
// Note: Euclidean space
func intersect(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	det := a1*b2 - a2*b1
	if det == 0 {
		return orb.Point{}, fmt.Errorf("The lines are parallel")
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

// offsetCurve returns line shifted by given distance. Positive distance shifts to the left side of line direction, negative - to the right one.
//
// Zero-length segments are ignored. Returns copy of the line when there is nothing to shift.
func offsetCurve(line orb.LineString, distance float64) orb.LineString {
	var result orb.LineString
	var segments [][2]orb.Point

	for i := 1; i < len(line); i++ {
		p1 := line[i-1]
		p2 := line[i]

		vec := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}
		vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
		if vecLen < epsilonDistance {
			continue
		}
		vec = [2]float64{vec[0] / vecLen, vec[1] / vecLen}

		// Rotate the vector by 90 degrees
		rotated := [2]float64{-vec[1], vec[0]}
		offset := [2]float64{rotated[0] * distance, rotated[1] * distance}

		op1 := orb.Point{p1[0] + offset[0], p1[1] + offset[1]}
		op2 := orb.Point{p2[0] + offset[0], p2[1] + offset[1]}
		segments = append(segments, [2]orb.Point{op1, op2})
	}
	if len(segments) == 0 {
		return line.Clone()
	}

	result = append(result, segments[0][0])
	for i := 1; i < len(segments); i++ {
		seg1 := segments[i-1]
		seg2 := segments[i]
		intersection, err := intersect(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			continue
		}
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}

// shiftRight shifts line to the right side of its direction. Negative distance shifts to the left
func shiftRight(line orb.LineString, distance float64) orb.LineString {
	return offsetCurve(line, -distance)
}

// approxEqual checks if two points are closer than threshold
func approxEqual(p, q orb.Point, threshold float64) bool {
	return planar.Distance(p, q) < threshold
}

// midpoint returns middle point of the segment (Euclidean)
func midpoint(p, q orb.Point) orb.Point {
	return orb.Point{(p[0] + q[0]) / 2.0, (p[1] + q[1]) / 2.0}
}

// dedupe removes consecutive exact duplicates. Returns new slice
func dedupe(pts []orb.Point) []orb.Point {
	result := make([]orb.Point, 0, len(pts))
	for _, pt := range pts {
		if len(result) == 0 || result[len(result)-1] != pt {
			result = append(result, pt)
		}
	}
	return result
}

// approxDedupe removes points which are closer than threshold to the previously kept one. Returns new slice
func approxDedupe(pts []orb.Point, threshold float64) []orb.Point {
	result := make([]orb.Point, 0, len(pts))
	for _, pt := range pts {
		if len(result) == 0 || !approxEqual(result[len(result)-1], pt, threshold) {
			result = append(result, pt)
		}
	}
	return result
}

// containsDuplicates checks if any point is met twice (not only consecutively)
func containsDuplicates(pts []orb.Point) bool {
	seen := make(map[orb.Point]struct{}, len(pts))
	for _, pt := range pts {
		if _, ok := seen[pt]; ok {
			return true
		}
		seen[pt] = struct{}{}
	}
	return false
}

// closestIndex returns index of point closest to the target if it is within threshold
func closestIndex(pts []orb.Point, target orb.Point, threshold float64) (int, bool) {
	idx := -1
	best := math.Inf(1)
	for i, pt := range pts {
		d := planar.Distance(pt, target)
		if d < threshold && d < best {
			best = d
			idx = i
		}
	}
	return idx, idx >= 0
}

// findPointsBetween walks closed chain of points (without closing point) from start to end.
// Both directions around the chain are considered and the shorter one is returned, the forward one wins a tie.
// Returns false when either start or end can't be matched within threshold.
func findPointsBetween(pts []orb.Point, start, end orb.Point, threshold float64) ([]orb.Point, bool) {
	n := len(pts)
	if n == 0 {
		return nil, false
	}
	startIdx, ok := closestIndex(pts, start, threshold)
	if !ok {
		return nil, false
	}
	endIdx, ok := closestIndex(pts, end, threshold)
	if !ok {
		return nil, false
	}
	forward := []orb.Point{pts[startIdx]}
	for i := startIdx; i != endIdx; {
		i = (i + 1) % n
		forward = append(forward, pts[i])
	}
	backward := []orb.Point{pts[startIdx]}
	for i := startIdx; i != endIdx; {
		i = (i - 1 + n) % n
		backward = append(backward, pts[i])
	}
	if planar.Length(orb.LineString(backward)) < planar.Length(orb.LineString(forward)) {
		return backward, true
	}
	return forward, true
}

// ringPoints returns ring points without the closing one
func ringPoints(ring orb.Ring) []orb.Point {
	pts := make([]orb.Point, len(ring))
	copy(pts, ring)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// pointOnSegment returns a point on given segment using distance from the first point
func pointOnSegment(p, q orb.Point, distance float64) orb.Point {
	fraction := distance / planar.Distance(p, q)
	return orb.Point{
		(1-fraction)*p[0] + (fraction * q[0]),
		(1-fraction)*p[1] + (fraction * q[1]),
	}
}

// substringPlanar returns part of the line between two distances along it (Euclidean)
func substringPlanar(line orb.LineString, startDist, endDist float64) orb.LineString {
	if len(line) < 2 || startDist >= endDist {
		return line.Clone()
	}
	result := make(orb.LineString, 0, len(line))
	cl := 0.0
	for i := 1; i < len(line); i++ {
		ol := cl
		segLen := planar.Distance(line[i-1], line[i])
		cl += segLen
		if segLen < epsilonDistance {
			continue
		}
		if len(result) == 0 && startDist <= cl {
			result = append(result, pointOnSegment(line[i-1], line[i], startDist-ol))
		}
		if len(result) == 0 {
			continue
		}
		if endDist <= cl {
			result = append(result, pointOnSegment(line[i-1], line[i], endDist-ol))
			break
		}
		result = append(result, line[i])
	}
	return dedupe(result)
}

// trimLine cuts given distances from both ends of the line. When the line is too short, only its middle part (by ratio) is kept
func trimLine(line orb.LineString, fromStart, fromEnd float64) orb.LineString {
	length := planar.Length(line)
	if length < epsilonDistance {
		return line.Clone()
	}
	if fromStart+fromEnd >= length {
		// Keep middle third of the line
		ratio := 2.0 * length / (3.0 * (fromStart + fromEnd))
		fromStart *= ratio
		fromEnd *= ratio
	}
	return substringPlanar(line, fromStart, length-fromEnd)
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts orb.LineString) orb.LineString {
	inputLen := len(pts)
	output := make(orb.LineString, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}
