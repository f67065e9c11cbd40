package clipping

import (
	"fmt"
	"math/big"
)

// Point is an exact 2D coordinate pair. Coordinates are arbitrary-precision
// rationals so that orientation and intersection predicates can be computed
// exactly for rational or integer input, per the engine's no-float-heuristics
// requirement.
type Point struct {
	X, Y *big.Rat
}

// NewPoint builds a Point from integer coordinates.
func NewPoint(x, y int64) Point {
	return Point{X: big.NewRat(x, 1), Y: big.NewRat(y, 1)}
}

// NewRatPoint builds a Point from already-exact rational coordinates.
func NewRatPoint(x, y *big.Rat) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.RatString(), p.Y.RatString())
}

// Equal reports componentwise exact equality.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Compare orders points lexicographically by X then Y, returning a negative
// number, zero, or a positive number as p is less than, equal to, or greater
// than q.
func (p Point) Compare(q Point) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	return p.Y.Cmp(q.Y)
}

// Less reports whether p sorts strictly before q in Point order.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}
