package clipping

import "math/rand"

// randomRectangle returns a simple axis-aligned rectangle with integer
// coordinates in [0, bound], used as test input for the universal
// properties that must hold for every pair of valid operands regardless of
// their exact shape.
func randomRectangle(rng *rand.Rand, bound int64) Polygon {
	x0, x1 := rng.Int63n(bound), rng.Int63n(bound)
	y0, y1 := rng.Int63n(bound), rng.Int63n(bound)
	if x0 == x1 {
		x1++
	}
	if y0 == y1 {
		y1++
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	shell := Contour{
		NewPoint(x0, y0),
		NewPoint(x1, y0),
		NewPoint(x1, y1),
		NewPoint(x0, y1),
	}
	return Polygon{Shell: shell}
}

// randomSegment returns a single non-degenerate segment with integer
// coordinates in [0, bound).
func randomSegment(rng *rand.Rand, bound int64) Segment {
	for {
		a := NewPoint(rng.Int63n(bound), rng.Int63n(bound))
		b := NewPoint(rng.Int63n(bound), rng.Int63n(bound))
		if !a.Equal(b) {
			return NewSegment(a, b)
		}
	}
}

func randomMultisegment(rng *rand.Rand, count int, bound int64) Multisegment {
	segments := make(Multisegment, 0, count)
	for i := 0; i < count; i++ {
		segments = append(segments, randomSegment(rng, bound))
	}
	return segments
}
