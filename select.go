package clipping

// Operation identifies which boolean set operation a sweep's results
// should be selected for.
type Operation int8

const (
	OpIntersection Operation = iota
	OpUnion
	OpDifference
	OpSymmetricDifference
)

// selectResult walks every start event the sweep processed and decides,
// per the operation's selector predicate, whether that event's segment
// belongs in the output. It mirrors the classic in_result rule: for
// non-overlapping edges the answer depends only on which side of the
// *other* operand the segment runs along (OtherInOut); coincident
// duplicate edges from both operands (Overlap != OverlapNone) are
// collapsed to a single contributing copy so the output never double-walks
// a shared boundary.
func selectResult(arena *eventArena, processed []eventID, op Operation) []eventID {
	selected := make([]eventID, 0, len(processed))
	for _, id := range processed {
		e := arena.get(id)
		e.InResult = isInResult(e, op)
		e.ResultInOut = resultInOut(e, op)
		if e.InResult {
			selected = append(selected, id)
		}
	}
	for i, id := range selected {
		arena.get(id).ResultIndex = int32(i)
		arena.get(arena.get(id).Other).ResultIndex = int32(i)
	}
	return selected
}

func isInResult(e *Event, op Operation) bool {
	if e.Overlap != OverlapNone {
		if e.FromOperand != operandLeft {
			// the coincident partner from the other operand contributes
			// nothing of its own; the surviving copy below already speaks
			// for both.
			return false
		}
		switch op {
		case OpIntersection, OpUnion:
			return e.Overlap == OverlapSameOrientation
		case OpDifference:
			return e.Overlap == OverlapDifferentOrientation
		default: // OpSymmetricDifference
			return false
		}
	}
	switch op {
	case OpIntersection:
		return !e.OtherInOut
	case OpUnion:
		return e.OtherInOut
	case OpDifference:
		if e.FromOperand == operandLeft {
			return e.OtherInOut
		}
		return !e.OtherInOut
	default: // OpSymmetricDifference
		return true
	}
}

// resultInOut records the transition direction the output boundary should
// carry for this edge. Edges contributed by the right operand under
// Difference form the subtracted region's boundary walking the opposite
// way around from how they appear in the clip operand, since they now
// bound a hole rather than a filled region.
func resultInOut(e *Event, op Operation) bool {
	if op == OpDifference && e.FromOperand == operandRight {
		return !e.InOut
	}
	return e.InOut
}

// selectLinearResult is the linear-geometry counterpart of selectResult. A
// bare segment has no interior, so the areal selector's region bookkeeping
// (InOut/OtherInOut) has no meaning here: membership in the result depends
// only on which operand or operands contributed each subdivided piece,
// exactly as linear.py's groupby-over-segment-identity does. A piece with
// Overlap set was contributed by both operands and collapses to a single
// copy (the surviving left event).
func selectLinearResult(arena *eventArena, processed []eventID, op Operation) []eventID {
	selected := make([]eventID, 0, len(processed))
	for _, id := range processed {
		e := arena.get(id)
		e.InResult = isInResultLinear(e, op)
		if e.InResult {
			selected = append(selected, id)
		}
	}
	return selected
}

func isInResultLinear(e *Event, op Operation) bool {
	fromBoth := e.Overlap != OverlapNone
	switch op {
	case OpIntersection:
		return fromBoth && e.FromOperand == operandLeft
	case OpUnion:
		if fromBoth {
			return e.FromOperand == operandLeft
		}
		return true
	case OpDifference:
		if fromBoth {
			return false
		}
		return e.FromOperand == operandLeft
	default: // OpSymmetricDifference
		return !fromBoth
	}
}
