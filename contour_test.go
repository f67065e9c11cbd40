package clipping

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPointInContourSquare(t *testing.T) {
	square := Contour{NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 4), NewPoint(0, 4)}

	test.T(t, PointInContour(NewPoint(2, 2), square), Inside)
	test.T(t, PointInContour(NewPoint(5, 5), square), Outside)
	test.T(t, PointInContour(NewPoint(0, 2), square), OnBoundary)
	test.T(t, PointInContour(NewPoint(4, 4), square), OnBoundary)
}

func TestPointInPolygonWithHole(t *testing.T) {
	shell := Contour{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)}
	hole := Contour{NewPoint(2, 2), NewPoint(2, 8), NewPoint(8, 8), NewPoint(8, 2)}
	polygon := Polygon{Shell: shell, Holes: []Contour{hole}}

	test.T(t, PointInPolygon(NewPoint(1, 1), polygon), Inside)
	test.T(t, PointInPolygon(NewPoint(5, 5), polygon), Outside)
	test.T(t, PointInPolygon(NewPoint(2, 5), polygon), OnBoundary)
}
