package clipping

// sweepState drives one Bentley-Ottmann pass over an arena of events: it
// pulls events off the queue in order, maintains the sweep-line status, and
// along the way detects and resolves intersections by subdividing segments,
// and labels each event with the interior/exterior bookkeeping the
// operation selector needs (InOut, OtherInOut, Overlap).
type sweepState struct {
	arena  *eventArena
	queue  *eventQueue
	status *statusTree

	// processed accumulates every start event popped from the queue, in the
	// order the sweep handled them. Reconstruction and selection both work
	// off this list rather than re-deriving it.
	processed []eventID

	// touchPoints records every point where segments from the two different
	// operands met, crossing or touching, during the sweep. CompleteIntersect
	// uses it to recover the 0D residue: junctions that never became part of
	// any selected 1D segment.
	touchPoints []Point
}

func newSweep(arena *eventArena) *sweepState {
	return &sweepState{
		arena:  arena,
		queue:  newEventQueue(arena),
		status: newStatusTree(arena),
	}
}

// leftEventOf returns the start event of id's segment, regardless of
// whether id itself is the start or the end event.
func (s *sweepState) leftEventOf(id eventID) eventID {
	e := s.arena.get(id)
	if e.IsStart {
		return id
	}
	return e.Other
}

// run drains the queue, returning the start events in processed order.
func (s *sweepState) run() []eventID {
	for {
		id, ok := s.queue.pop()
		if !ok {
			break
		}
		if s.arena.get(id).Obsolete {
			continue
		}
		if s.arena.get(id).IsStart {
			s.processStart(id)
		} else {
			s.processEnd(id)
		}
	}
	return s.processed
}

func (s *sweepState) processStart(id eventID) {
	below, above := s.status.insert(id)

	if below != noEvent {
		s.checkIntersection(id, below)
	}
	if above != noEvent {
		s.checkIntersection(id, above)
	}
	// Splitting can cut id down to a duplicate of a neighbour, so coincidence
	// is tested only once the intersection checks are done.
	if s.coincidesAcrossOperands(id, below) {
		s.markOverlap(id, below)
	} else if s.coincidesAcrossOperands(id, above) {
		s.markOverlap(id, above)
	}
	s.computeFields(id, below)
	s.processed = append(s.processed, id)
}

func (s *sweepState) processEnd(id eventID) {
	left := s.arena.get(id).Other
	below, above := s.status.remove(left)
	if below != noEvent && above != noEvent {
		s.checkIntersection(below, above)
	}
}

// coincidesAcrossOperands reports whether b is a segment of the other
// operand identical to a's segment.
func (s *sweepState) coincidesAcrossOperands(a, b eventID) bool {
	if b == noEvent || s.arena.get(a).FromOperand == s.arena.get(b).FromOperand {
		return false
	}
	sa, sb := s.arena.segmentOf(a), s.arena.segmentOf(b)
	return sa.Equal(sb)
}

func (s *sweepState) markOverlap(a, b eventID) {
	ea, eb := s.arena.get(a), s.arena.get(b)
	kind := OverlapSameOrientation
	if ea.InteriorToLeft != eb.InteriorToLeft {
		kind = OverlapDifferentOrientation
	}
	ea.Overlap = kind
	eb.Overlap = kind
}

// computeFields implements the classic interior/exterior bookkeeping rule
// for a newly-inserted segment given its immediate lower neighbor: same
// operand toggles InOut and copies the neighbor's OtherInOut; a different
// operand instead reads the neighbor's own InOut as this event's
// OtherInOut.
func (s *sweepState) computeFields(id, below eventID) {
	e := s.arena.get(id)
	if below == noEvent {
		e.InOut = false
		e.OtherInOut = true
		return
	}
	be := s.arena.get(below)
	if be.FromOperand == e.FromOperand {
		e.InOut = !be.InOut
		e.OtherInOut = be.OtherInOut
	} else {
		e.InOut = !be.OtherInOut
		e.OtherInOut = be.InOut
	}
}

// checkIntersection detects how two currently-adjacent status segments
// relate and, if they cross, touch away from a shared endpoint, or overlap
// without being identical, subdivides them so the sweep never has to reason
// about a segment crossing another segment still in front of it.
func (s *sweepState) checkIntersection(a, b eventID) {
	sa, sb := s.arena.segmentOf(a), s.arena.segmentOf(b)
	ea, eb := s.arena.get(a), s.arena.get(b)
	switch SegmentsRelation(sa, sb) {
	case Cross:
		if pt, ok := SegmentsIntersection(sa, sb); ok {
			s.divideIfInterior(a, pt)
			s.divideIfInterior(b, pt)
			if ea.FromOperand != eb.FromOperand {
				s.touchPoints = append(s.touchPoints, pt)
			}
		}
	case Touch:
		if pt, ok := SegmentsIntersection(sa, sb); ok {
			s.divideIfInterior(a, pt)
			s.divideIfInterior(b, pt)
			if ea.FromOperand != eb.FromOperand {
				s.touchPoints = append(s.touchPoints, pt)
			}
		}
	case Overlap:
		s.divideOverlap(a, b)
	}
}

// seedAllEvents pushes every event in the arena's id range [from, to) onto
// the queue, used once up front to prime the sweep with both endpoints of
// every input segment.
func (s *sweepState) seedAllEvents(from, to eventID) {
	for id := from; id < to; id++ {
		s.queue.push(id)
	}
}

func (s *sweepState) divideIfInterior(id eventID, pt Point) {
	e := s.arena.get(id)
	other := s.arena.get(e.Other)
	if pt.Equal(e.Point) || pt.Equal(other.Point) || !onSegment(pt, e.Point, other.Point) {
		return
	}
	s.divideSegment(id, pt)
}

// divideOverlap splits two collinear, partially overlapping segments at
// each other's non-shared endpoints, so that the overlapping middle portion
// becomes an identical segment on both, which processStart then detects as
// a duplicate.
func (s *sweepState) divideOverlap(a, b eventID) {
	sa, sb := s.arena.segmentOf(a), s.arena.segmentOf(b)
	// divideSegment keeps the part before pt and re-queues the rest, so each
	// segment is cut at the other's end before the other's start.
	for _, pt := range []Point{sa.End, sb.End, sa.Start, sb.Start} {
		s.divideIfInterior(a, pt)
		s.divideIfInterior(b, pt)
	}
}

// divideSegment splits the segment owned by the given event (which may be
// either its start or end event) at pt, a point strictly between its
// endpoints. It leaves the existing start event's segment to run from its
// original start to pt, marks the original end event obsolete, and pushes
// a fresh pair of events for the remainder running from pt to the original
// end. The new events carry over the original's operand, interior side and
// contour id; InOut, OtherInOut and Overlap are not copied, and the
// remainder gets them when its start event is processed.
func (s *sweepState) divideSegment(id eventID, pt Point) {
	// Every field needed below is read out into locals before any call that
	// might append to the arena's backing slice: append can reallocate, and
	// a *Event obtained before that point would then dangle.
	left := s.leftEventOf(id)
	leftEvent := s.arena.get(left)
	fromOperand := leftEvent.FromOperand
	interiorToLeft := leftEvent.InteriorToLeft
	contourID := leftEvent.ContourID
	oldEnd := leftEvent.Other
	farPoint := s.arena.get(oldEnd).Point
	s.arena.get(oldEnd).Obsolete = true

	newEnd := s.arena.appendEvent(Event{
		Point:          pt,
		IsStart:        false,
		Other:          left,
		FromOperand:    fromOperand,
		InteriorToLeft: interiorToLeft,
		ContourID:      contourID,
	})
	s.arena.get(left).Other = newEnd
	s.queue.push(newEnd)

	newStart, newFar := s.arena.addSegmentPoints(pt, farPoint, fromOperand, interiorToLeft, contourID)
	s.queue.push(newStart)
	s.queue.push(newFar)
}
