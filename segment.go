package clipping

import (
	"fmt"
	"math/big"
)

// Segment is an unordered pair of distinct points, stored with Start <= End
// in Point order.
type Segment struct {
	Start, End Point
}

// NewSegment builds a Segment, reordering endpoints into Point order.
// It panics if the endpoints coincide: zero-length segments are rejected
// before they ever reach the sweep, per the engine's segment invariant.
func NewSegment(a, b Point) Segment {
	if a.Equal(b) {
		panic("clipping: zero-length segment")
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{Start: a, End: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Equal reports whether two segments share the same (unordered) endpoints.
func (s Segment) Equal(other Segment) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// IsVertical reports whether the segment's endpoints share an X coordinate.
func (s Segment) IsVertical() bool {
	return s.Start.X.Cmp(s.End.X) == 0
}

// Relation classifies how two segments relate to each other.
type Relation int8

const (
	Disjoint Relation = iota
	Touch             // share exactly one point, at least one of which is an endpoint
	Cross             // intersect at a single interior point of both
	Overlap           // share a non-degenerate collinear sub-segment
)

func onSegment(p, a, b Point) bool {
	if Orient(a, b, p) != Collinear {
		return false
	}
	minX, maxX := a.X, b.X
	if maxX.Cmp(minX) < 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if maxY.Cmp(minY) < 0 {
		minY, maxY = maxY, minY
	}
	return minX.Cmp(p.X) <= 0 && p.X.Cmp(maxX) <= 0 &&
		minY.Cmp(p.Y) <= 0 && p.Y.Cmp(maxY) <= 0
}

// SegmentsRelation computes the exact relationship between two segments.
func SegmentsRelation(s1, s2 Segment) Relation {
	o1 := Orient(s1.Start, s1.End, s2.Start)
	o2 := Orient(s1.Start, s1.End, s2.End)
	o3 := Orient(s2.Start, s2.End, s1.Start)
	o4 := Orient(s2.Start, s2.End, s1.End)

	if o1 == Collinear && o2 == Collinear {
		// collinear: relate via 1D projection on the dominant axis.
		return collinearRelation(s1, s2)
	}
	if o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear &&
		o1 != o2 && o3 != o4 {
		return Cross
	}
	if o1 == Collinear && onSegment(s2.Start, s1.Start, s1.End) {
		return Touch
	}
	if o2 == Collinear && onSegment(s2.End, s1.Start, s1.End) {
		return Touch
	}
	if o3 == Collinear && onSegment(s1.Start, s2.Start, s2.End) {
		return Touch
	}
	if o4 == Collinear && onSegment(s1.End, s2.Start, s2.End) {
		return Touch
	}
	return Disjoint
}

func collinearRelation(s1, s2 Segment) Relation {
	// project onto the X axis, or onto the Y axis when s1 is vertical.
	useX := s1.Start.X.Cmp(s1.End.X) != 0
	coord := func(p Point) *big.Rat {
		if useX {
			return p.X
		}
		return p.Y
	}
	a0, a1 := coord(s1.Start), coord(s1.End)
	if a1.Cmp(a0) < 0 {
		a0, a1 = a1, a0
	}
	b0, b1 := coord(s2.Start), coord(s2.End)
	if b1.Cmp(b0) < 0 {
		b0, b1 = b1, b0
	}
	if a1.Cmp(b0) < 0 || b1.Cmp(a0) < 0 {
		return Disjoint
	}
	if a1.Cmp(b0) == 0 || b1.Cmp(a0) == 0 {
		return Touch
	}
	lo := a0
	if b0.Cmp(lo) > 0 {
		lo = b0
	}
	hi := a1
	if b1.Cmp(hi) < 0 {
		hi = b1
	}
	if lo.Cmp(hi) < 0 {
		return Overlap
	}
	return Touch
}

// SegmentsIntersection returns the single crossing/touch point of two
// segments whose relation is Cross or Touch. The second return value is
// false if the segments are disjoint, or if they are parallel and share no
// endpoint. Collinear segments that share an endpoint return that endpoint,
// even when they also overlap.
func SegmentsIntersection(s1, s2 Segment) (Point, bool) {
	// Solve s1.Start + t*(s1.End-s1.Start) == s2.Start + u*(s2.End-s2.Start)
	// exactly via Cramer's rule on the 2x2 system.
	dx1 := new(big.Rat).Sub(s1.End.X, s1.Start.X)
	dy1 := new(big.Rat).Sub(s1.End.Y, s1.Start.Y)
	dx2 := new(big.Rat).Sub(s2.End.X, s2.Start.X)
	dy2 := new(big.Rat).Sub(s2.End.Y, s2.Start.Y)

	denom := new(big.Rat).Sub(new(big.Rat).Mul(dx1, dy2), new(big.Rat).Mul(dy1, dx2))
	if denom.Sign() == 0 {
		// parallel or collinear: touching case reduces to a shared endpoint
		switch {
		case s1.Start.Equal(s2.Start), s1.Start.Equal(s2.End):
			return s1.Start, true
		case s1.End.Equal(s2.Start), s1.End.Equal(s2.End):
			return s1.End, true
		default:
			return Point{}, false
		}
	}

	ex := new(big.Rat).Sub(s2.Start.X, s1.Start.X)
	ey := new(big.Rat).Sub(s2.Start.Y, s1.Start.Y)
	t := new(big.Rat).Quo(
		new(big.Rat).Sub(new(big.Rat).Mul(ex, dy2), new(big.Rat).Mul(ey, dx2)),
		denom,
	)
	x := new(big.Rat).Add(s1.Start.X, new(big.Rat).Mul(t, dx1))
	y := new(big.Rat).Add(s1.Start.Y, new(big.Rat).Mul(t, dy1))
	p := NewRatPoint(x, y)
	if !onSegment(p, s1.Start, s1.End) || !onSegment(p, s2.Start, s2.End) {
		return Point{}, false
	}
	return p, true
}
