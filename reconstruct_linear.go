package clipping

import "sort"

// reconstructLinear turns the sweep's selected events back into a
// Multisegment: adjacent collinear pieces that only meet each other are
// merged back into a single longer segment, exact duplicates are dropped,
// and the result is sorted into a deterministic order so that two calls
// over the same logical input always produce byte-identical output.
func reconstructLinear(arena *eventArena, selected []eventID) Multisegment {
	segments := make([]Segment, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		s := arena.segmentOf(id)
		key := segmentKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		segments = append(segments, s)
	}

	segments = mergeCollinearChains(segments)

	sort.Slice(segments, func(i, j int) bool {
		if c := segments[i].Start.Compare(segments[j].Start); c != 0 {
			return c < 0
		}
		return segments[i].End.Compare(segments[j].End) < 0
	})
	return Multisegment(segments)
}

func segmentKey(s Segment) string {
	return s.Start.X.RatString() + "," + s.Start.Y.RatString() + "-" +
		s.End.X.RatString() + "," + s.End.Y.RatString()
}

func pointKey(p Point) string {
	return p.X.RatString() + "," + p.Y.RatString()
}

// mergeCollinearChains repeatedly fuses two segments that share an
// endpoint touched by no other segment and that are collinear, until no
// more fusions are possible.
func mergeCollinearChains(segments []Segment) []Segment {
	alive := make([]bool, len(segments))
	for i := range alive {
		alive[i] = true
	}

	for {
		degree := make(map[string][]int)
		for i, s := range segments {
			if !alive[i] {
				continue
			}
			degree[pointKey(s.Start)] = append(degree[pointKey(s.Start)], i)
			degree[pointKey(s.End)] = append(degree[pointKey(s.End)], i)
		}

		merged := false
		for _, idxs := range degree {
			if len(idxs) != 2 {
				continue
			}
			i, j := idxs[0], idxs[1]
			if !alive[i] || !alive[j] {
				continue
			}
			if fused, ok := fuseIfCollinear(segments[i], segments[j]); ok {
				segments[i] = fused
				alive[j] = false
				merged = true
			}
		}
		if !merged {
			break
		}
	}

	result := make([]Segment, 0, len(segments))
	for i, s := range segments {
		if alive[i] {
			result = append(result, s)
		}
	}
	return result
}

// fuseIfCollinear merges two segments sharing exactly one endpoint into a
// single segment spanning both, if and only if all four endpoints are
// collinear and the shared endpoint lies between the two far ones (so the
// fusion does not change the shape of the geometry).
func fuseIfCollinear(a, b Segment) (Segment, bool) {
	shared, aFar, bFar, ok := sharedEndpoint(a, b)
	if !ok {
		return Segment{}, false
	}
	if Orient(aFar, shared, bFar) != Collinear || !onSegment(shared, aFar, bFar) {
		return Segment{}, false
	}
	return NewSegment(aFar, bFar), true
}

func sharedEndpoint(a, b Segment) (shared, aFar, bFar Point, ok bool) {
	switch {
	case a.Start.Equal(b.Start):
		return a.Start, a.End, b.End, true
	case a.Start.Equal(b.End):
		return a.Start, a.End, b.Start, true
	case a.End.Equal(b.Start):
		return a.End, a.Start, b.End, true
	case a.End.Equal(b.End):
		return a.End, a.Start, b.Start, true
	default:
		return Point{}, Point{}, Point{}, false
	}
}
