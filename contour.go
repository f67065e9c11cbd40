package clipping

// Contour is a closed sequence of vertices (a polygon ring, or a hole ring).
// Shells are oriented counterclockwise and holes clockwise, per convention.
type Contour []Point

// Multipoint is a collection of points, as returned by the 0D residue of a
// complete intersection.
type Multipoint []Point

// Multisegment is an unordered collection of line segments.
type Multisegment []Segment

// Polygon is a simple shell contour plus zero or more hole contours, all
// inside the shell and pairwise disjoint.
type Polygon struct {
	Shell Contour
	Holes []Contour
}

// Multipolygon is a collection of polygons with pairwise-disjoint interiors.
type Multipolygon []Polygon

// Segments returns the oriented boundary edges of the contour, wrapping
// around from the last vertex to the first.
func (c Contour) Segments() []orientedSegment {
	n := len(c)
	segments := make([]orientedSegment, n)
	for i := 0; i < n; i++ {
		segments[i] = orientedSegment{from: c[i], to: c[(i+1)%n]}
	}
	return segments
}

// orientedSegment keeps the original contour-walk direction of an edge,
// which the sweep needs in order to know which side of the edge is the
// polygon's interior (see Event.InteriorToLeft).
type orientedSegment struct {
	from, to Point
}

func (o orientedSegment) segment() Segment {
	return NewSegment(o.from, o.to)
}

// agreesWithCanonical reports whether the edge's original contour-walk
// direction (from -> to) is the same direction as its canonicalized
// Start<=End form. When it isn't, whichever side was the polygon's
// interior while walking the ring flips once the segment is stored
// canonically.
func (o orientedSegment) agreesWithCanonical() bool {
	return !o.to.Less(o.from)
}

// PointInPolygonRelation classifies a point's relation to a region.
type PointInPolygonRelation int8

const (
	Outside PointInPolygonRelation = iota
	OnBoundary
	Inside
)

// PointInContour performs an exact point-in-polygon test against a single
// ring via the crossing-number rule, using exact orientation predicates
// instead of floating-point ray casting.
func PointInContour(p Point, ring Contour) PointInPolygonRelation {
	n := len(ring)
	if n == 0 {
		return Outside
	}
	crossings := 0
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		if onSegment(p, a, b) {
			return OnBoundary
		}
		aAbove := a.Y.Cmp(p.Y) > 0
		bAbove := b.Y.Cmp(p.Y) > 0
		if aAbove == bAbove {
			continue
		}
		// edge straddles the horizontal line through p; Orient(a,b,p)'s sign
		// tells us which side of the edge p.X falls on, equivalent to the
		// usual x < x-intersection test but without computing a division.
		o := Orient(a, b, p)
		rising := b.Y.Cmp(a.Y) > 0
		if (rising && o == CounterClockwise) || (!rising && o == Clockwise) {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// PointInPolygon tests a point against a polygon's shell and holes: inside
// the shell and outside every hole means Inside.
func PointInPolygon(p Point, polygon Polygon) PointInPolygonRelation {
	rel := PointInContour(p, polygon.Shell)
	if rel != Inside {
		return rel
	}
	for _, hole := range polygon.Holes {
		holeRel := PointInContour(p, hole)
		if holeRel == Inside {
			return Outside
		}
		if holeRel == OnBoundary {
			return OnBoundary
		}
	}
	return Inside
}
