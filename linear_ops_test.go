package clipping

import (
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectSegmentsCross(t *testing.T) {
	left := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(4, 4))}
	right := Multisegment{NewSegment(NewPoint(0, 4), NewPoint(4, 0))}

	got, err := IntersectSegments(left, right)
	test.Error(t, err)
	test.T(t, len(got), 0)
}

// trident and squareBoundary build the operands used by the intersection,
// complete-intersection, and subtraction-asymmetry scenarios below: a
// three-segment trident from the origin and the boundary of its unit
// square.
func trident() Multisegment {
	return Multisegment{
		NewSegment(NewPoint(0, 0), NewPoint(0, 1)),
		NewSegment(NewPoint(0, 0), NewPoint(1, 1)),
		NewSegment(NewPoint(0, 0), NewPoint(1, 0)),
	}
}

func squareBoundary() Multisegment {
	return Multisegment{
		NewSegment(NewPoint(0, 0), NewPoint(1, 0)),
		NewSegment(NewPoint(1, 0), NewPoint(1, 1)),
		NewSegment(NewPoint(1, 1), NewPoint(0, 1)),
		NewSegment(NewPoint(0, 1), NewPoint(0, 0)),
	}
}

func TestIntersectSegmentsTridentAndSquareBoundary(t *testing.T) {
	got, err := IntersectSegments(trident(), squareBoundary())
	test.Error(t, err)
	test.T(t, len(got), 2)

	want := map[string]bool{
		segmentKey(NewSegment(NewPoint(0, 0), NewPoint(0, 1))): true,
		segmentKey(NewSegment(NewPoint(0, 0), NewPoint(1, 0))): true,
	}
	for _, s := range got {
		if !want[segmentKey(s)] {
			t.Fatalf("unexpected segment in result: %v", s)
		}
	}
}

func TestSubtractSegmentsTridentAndSquareBoundaryIsAsymmetric(t *testing.T) {
	forward, err := SubtractSegments(trident(), squareBoundary())
	test.Error(t, err)
	test.T(t, len(forward), 1)
	test.T(t, forward[0].Start.Equal(NewPoint(0, 0)), true)
	test.T(t, forward[0].End.Equal(NewPoint(1, 1)), true)

	backward, err := SubtractSegments(squareBoundary(), trident())
	test.Error(t, err)
	test.T(t, len(backward), 2)

	want := map[string]bool{
		segmentKey(NewSegment(NewPoint(0, 1), NewPoint(1, 1))): true,
		segmentKey(NewSegment(NewPoint(1, 0), NewPoint(1, 1))): true,
	}
	for _, s := range backward {
		if !want[segmentKey(s)] {
			t.Fatalf("unexpected segment in result: %v", s)
		}
	}
}

func TestUniteSegmentsDisjoint(t *testing.T) {
	left := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(1, 0))}
	right := Multisegment{NewSegment(NewPoint(5, 5), NewPoint(6, 5))}

	got, err := UniteSegments(left, right)
	test.Error(t, err)
	test.T(t, len(got), 2)
}

func TestUniteSegmentsOverlapMerges(t *testing.T) {
	left := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(3, 0))}
	right := Multisegment{NewSegment(NewPoint(1, 0), NewPoint(4, 0))}

	got, err := UniteSegments(left, right)
	test.Error(t, err)
	test.T(t, len(got), 1)
	test.T(t, got[0].Start.Equal(NewPoint(0, 0)), true)
	test.T(t, got[0].End.Equal(NewPoint(4, 0)), true)
}

func TestSubtractSegmentsSelfIsEmpty(t *testing.T) {
	segments := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(5, 0))}

	got, err := SubtractSegments(segments, segments)
	test.Error(t, err)
	test.T(t, len(got), 0)
}

func TestSymmetricSubtractSegmentsSelfIsEmpty(t *testing.T) {
	segments := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(5, 0))}

	got, err := SymmetricSubtractSegments(segments, segments)
	test.Error(t, err)
	test.T(t, len(got), 0)
}

func TestCompleteIntersectSegmentsIdenticalOperandsHasNoZeroD(t *testing.T) {
	segments := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(5, 0))}

	oneD, zeroD, err := CompleteIntersectSegments(segments, segments)
	test.Error(t, err)
	test.T(t, len(oneD), 1)
	test.T(t, len(zeroD), 0)
}

func TestCompleteIntersectSegmentsTouchOnly(t *testing.T) {
	left := Multisegment{NewSegment(NewPoint(0, 0), NewPoint(2, 0))}
	right := Multisegment{NewSegment(NewPoint(1, 0), NewPoint(1, 3))}

	oneD, zeroD, err := CompleteIntersectSegments(left, right)
	test.Error(t, err)
	test.T(t, len(oneD), 0)
	test.T(t, len(zeroD), 1)
	test.T(t, zeroD[0].Equal(NewPoint(1, 0)), true)
}

func TestRejectsDegenerateSegment(t *testing.T) {
	_, err := IntersectSegments(Multisegment{{Start: NewPoint(1, 1), End: NewPoint(1, 1)}}, nil)
	if err == nil {
		t.Fatal("expected an error for a degenerate segment")
	}
}

// properties that must hold for every pair of valid multisegment operands.
func TestLinearOperationProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		left := randomMultisegment(rng, 3, 6)
		right := randomMultisegment(rng, 3, 6)

		t.Run("union is commutative", func(t *testing.T) {
			ab, err := UniteSegments(left, right)
			test.Error(t, err)
			ba, err := UniteSegments(right, left)
			test.Error(t, err)
			test.T(t, len(ab), len(ba))
		})

		t.Run("intersection is idempotent", func(t *testing.T) {
			once, err := IntersectSegments(left, left)
			test.Error(t, err)
			merged, err := MergeSegments(left)
			test.Error(t, err)
			test.T(t, len(once), len(merged))
		})

		t.Run("union absorbs intersection", func(t *testing.T) {
			union, err := UniteSegments(left, right)
			test.Error(t, err)
			inter, err := IntersectSegments(left, right)
			test.Error(t, err)
			if len(union) < len(inter) {
				t.Errorf("union (%d) should be at least as large as intersection (%d)", len(union), len(inter))
			}
		})
	}
}
