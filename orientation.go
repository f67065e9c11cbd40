package clipping

import "math/big"

// Orientation classifies the turn from a to b to c.
type Orientation int8

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Orient returns the exact orientation of the turn (a, b, c), computed via
// the sign of the 2D cross product of (b-a) and (c-a). All arithmetic is
// exact rational, so there is no epsilon and no degenerate floating case.
func Orient(a, b, c Point) Orientation {
	abx := new(big.Rat).Sub(b.X, a.X)
	aby := new(big.Rat).Sub(b.Y, a.Y)
	acx := new(big.Rat).Sub(c.X, a.X)
	acy := new(big.Rat).Sub(c.Y, a.Y)
	left := new(big.Rat).Mul(abx, acy)
	right := new(big.Rat).Mul(aby, acx)
	switch left.Cmp(right) {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

// SignedDoubleArea returns twice the signed area of the closed contour
// (shoelace formula). Positive for counterclockwise contours.
func SignedDoubleArea(contour Contour) *big.Rat {
	sum := new(big.Rat)
	n := len(contour)
	for i := 0; i < n; i++ {
		a, b := contour[i], contour[(i+1)%n]
		term := new(big.Rat).Sub(
			new(big.Rat).Mul(a.X, b.Y),
			new(big.Rat).Mul(b.X, a.Y),
		)
		sum.Add(sum, term)
	}
	return sum
}

// IsCounterClockwise reports whether the contour winds counterclockwise.
func IsCounterClockwise(contour Contour) bool {
	return SignedDoubleArea(contour).Sign() > 0
}
