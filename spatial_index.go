package osm2turns

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Size of the box around a single point (degrees)
const pointBoxTolerance = 1e-7

// intersectionEntry wraps intersection for R-tree storage
type intersectionEntry struct {
	id   IntersectionID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (entry *intersectionEntry) Bounds() rtreego.Rect {
	return entry.bbox
}

// IntersectionIndex answers spatial queries over intersections (lon/lat)
type IntersectionIndex struct {
	tree *rtreego.Rtree
	m    *Map
}

// NewIntersectionIndex indexes intersections by their boundary polygons, or by their points when there are no polygons
func NewIntersectionIndex(m *Map) *IntersectionIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, id := range m.IntersectionIDs() {
		intersection := m.Intersections[id]
		bound := intersection.Point.Bound()
		if len(intersection.Polygon) > 0 {
			bound = ringToSpherical(intersection.Polygon).Bound().Extend(intersection.Point)
		}
		bbox, err := boundToRect(bound)
		if err != nil {
			continue
		}
		tree.Insert(&intersectionEntry{id: id, bbox: bbox})
	}
	return &IntersectionIndex{tree: tree, m: m}
}

// Nearest returns intersection closest to given point. Returns nil for empty index
func (index *IntersectionIndex) Nearest(pt orb.Point) *Intersection {
	found := index.tree.NearestNeighbor(rtreego.Point{pt.Lon(), pt.Lat()})
	if found == nil {
		return nil
	}
	return index.m.Intersections[found.(*intersectionEntry).id]
}

// Within returns identifiers of intersections which intersect given bound, in ascending order
func (index *IntersectionIndex) Within(bound orb.Bound) []IntersectionID {
	bbox, err := boundToRect(bound)
	if err != nil {
		return []IntersectionID{}
	}
	results := index.tree.SearchIntersect(bbox)
	ids := make([]IntersectionID, 0, len(results))
	for _, item := range results {
		ids = append(ids, item.(*intersectionEntry).id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (index *IntersectionIndex) Size() int {
	return index.tree.Size()
}

// boundToRect converts bound to R-tree rectangle. Degenerate sides get small positive length
func boundToRect(bound orb.Bound) (rtreego.Rect, error) {
	width := bound.Max.Lon() - bound.Min.Lon()
	height := bound.Max.Lat() - bound.Min.Lat()
	minX, minY := bound.Min.Lon(), bound.Min.Lat()
	if width <= 0 {
		width = 2 * pointBoxTolerance
		minX -= pointBoxTolerance
	}
	if height <= 0 {
		height = 2 * pointBoxTolerance
		minY -= pointBoxTolerance
	}
	return rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{width, height},
	)
}
