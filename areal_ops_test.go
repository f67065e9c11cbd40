package clipping

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func square(x0, y0, x1, y1 int64) Polygon {
	return Polygon{Shell: Contour{
		NewPoint(x0, y0), NewPoint(x1, y0), NewPoint(x1, y1), NewPoint(x0, y1),
	}}
}

func TestIntersectPolygonsOverlapping(t *testing.T) {
	left := Multipolygon{square(0, 0, 4, 4)}
	right := Multipolygon{square(2, 2, 6, 6)}

	got, err := IntersectPolygons(left, right)
	test.Error(t, err)
	test.T(t, len(got), 1)
	test.T(t, SignedDoubleArea(got[0].Shell).Sign() > 0, true)
}

func TestUnitePolygonsDisjoint(t *testing.T) {
	left := Multipolygon{square(0, 0, 1, 1)}
	right := Multipolygon{square(5, 5, 6, 6)}

	got, err := UnitePolygons(left, right)
	test.Error(t, err)
	test.T(t, len(got), 2)
}

func TestSubtractPolygonsSelfIsEmpty(t *testing.T) {
	shape := Multipolygon{square(0, 0, 4, 4)}

	got, err := SubtractPolygons(shape, shape)
	test.Error(t, err)
	test.T(t, len(got), 0)
}

func TestSubtractPolygonsProducesHole(t *testing.T) {
	outer := Multipolygon{square(0, 0, 10, 10)}
	inner := Multipolygon{square(2, 2, 4, 4)}

	got, err := SubtractPolygons(outer, inner)
	test.Error(t, err)
	test.T(t, len(got), 1)
	test.T(t, len(got[0].Holes), 1)
}

func TestSymmetricSubtractPolygonsSelfIsEmpty(t *testing.T) {
	shape := Multipolygon{square(0, 0, 4, 4)}

	got, err := SymmetricSubtractPolygons(shape, shape)
	test.Error(t, err)
	test.T(t, len(got), 0)
}

func TestSymmetricSubtractPolygonsTrianglesFormSquare(t *testing.T) {
	left := Multipolygon{{Shell: Contour{NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1)}}}
	right := Multipolygon{{Shell: Contour{NewPoint(0, 1), NewPoint(1, 0), NewPoint(1, 1)}}}

	got, err := SymmetricSubtractPolygons(left, right)
	test.Error(t, err)
	test.T(t, len(got), 1)
	test.T(t, absRat(SignedDoubleArea(got[0].Shell)).Cmp(big.NewRat(2, 1)), 0)
}

func TestCompleteIntersectPolygonsTrianglesShareOnlyDiagonal(t *testing.T) {
	left := Multipolygon{{Shell: Contour{NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1)}}}
	right := Multipolygon{{Shell: Contour{NewPoint(0, 1), NewPoint(1, 0), NewPoint(1, 1)}}}

	zeroD, oneD, twoD, err := CompleteIntersectPolygons(left, right)
	test.Error(t, err)
	test.T(t, len(twoD), 0)
	test.T(t, len(zeroD), 0)
	test.T(t, len(oneD), 1)
	test.T(t, oneD[0].Start.Equal(NewPoint(0, 1)), true)
	test.T(t, oneD[0].End.Equal(NewPoint(1, 0)), true)
}

func TestRejectsShortContour(t *testing.T) {
	_, err := IntersectPolygons(Multipolygon{{Shell: Contour{NewPoint(0, 0), NewPoint(1, 1)}}}, nil)
	if err == nil {
		t.Fatal("expected an error for a contour with fewer than 3 vertices")
	}
}

func TestArealOperationProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		left := Multipolygon{randomRectangle(rng, 10)}
		right := Multipolygon{randomRectangle(rng, 10)}

		t.Run("union is commutative in size", func(t *testing.T) {
			ab, err := UnitePolygons(left, right)
			test.Error(t, err)
			ba, err := UnitePolygons(right, left)
			test.Error(t, err)
			test.T(t, len(ab), len(ba))
		})

		t.Run("intersection is idempotent", func(t *testing.T) {
			once, err := IntersectPolygons(left, left)
			test.Error(t, err)
			test.T(t, len(once), 1)
		})

		t.Run("difference plus intersection covers left", func(t *testing.T) {
			diff, err := SubtractPolygons(left, right)
			test.Error(t, err)
			inter, err := IntersectPolygons(left, right)
			test.Error(t, err)
			leftArea := absRat(SignedDoubleArea(left[0].Shell))
			var coveredArea int
			if len(diff) > 0 {
				coveredArea++
			}
			if len(inter) > 0 {
				coveredArea++
			}
			if leftArea.Sign() > 0 && coveredArea == 0 {
				t.Fatal("difference and intersection cannot both be empty when left has positive area")
			}
		})
	}
}
