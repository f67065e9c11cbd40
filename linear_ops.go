package clipping

// IntersectSegments returns the sub-segments shared by both operands.
// Isolated points where the operands cross or touch are not included;
// CompleteIntersectSegments reports those.
func IntersectSegments(left, right Multisegment) (Multisegment, error) {
	return runLinearOp(left, right, OpIntersection)
}

// UniteSegments returns the combination of left and right with any
// overlapping portions merged into one.
func UniteSegments(left, right Multisegment) (Multisegment, error) {
	return runLinearOp(left, right, OpUnion)
}

// SubtractSegments returns the portion of left that does not coincide with
// right.
func SubtractSegments(left, right Multisegment) (Multisegment, error) {
	return runLinearOp(left, right, OpDifference)
}

// SymmetricSubtractSegments returns the portions of left and right that do
// not coincide with each other.
func SymmetricSubtractSegments(left, right Multisegment) (Multisegment, error) {
	return runLinearOp(left, right, OpSymmetricDifference)
}

// CompleteIntersectSegments returns both residues of intersecting left and
// right: the 1D portion they share as a Multisegment, and the 0D portion of
// isolated points where they merely touch without overlapping.
func CompleteIntersectSegments(left, right Multisegment) (Multisegment, Multipoint, error) {
	if err := validateMultisegment(0, left); err != nil {
		return nil, nil, err
	}
	if err := validateMultisegment(1, right); err != nil {
		return nil, nil, err
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, nil, nil
	}
	leftBox := boundingBoxFromMultisegment(left)
	rightBox := boundingBoxFromMultisegment(right)
	if leftBox.disjoint(rightBox) {
		return nil, nil, nil
	}

	arena, from, to := buildLinearArena(left, right)
	sweep := newSweep(arena)
	sweep.seedAllEvents(from, to)
	processed := sweep.run()
	selected := selectLinearResult(arena, processed, OpIntersection)
	oneD := reconstructLinear(arena, selected)

	onResult := make(map[string]bool, len(oneD))
	for _, s := range oneD {
		onResult[pointKey(s.Start)] = true
		onResult[pointKey(s.End)] = true
	}
	seenPoint := make(map[string]bool)
	var zeroD Multipoint
	for _, p := range sweep.touchPoints {
		k := pointKey(p)
		if onResult[k] || seenPoint[k] {
			continue
		}
		seenPoint[k] = true
		zeroD = append(zeroD, p)
	}
	return oneD, zeroD, nil
}

// MergeSegments resolves self-intersections and overlaps within a single
// multisegment, returning the equivalent set of non-overlapping segments.
func MergeSegments(segments Multisegment) (Multisegment, error) {
	if err := validateMultisegment(0, segments); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}
	arena := newEventArena(4 * len(segments))
	from := eventID(len(arena.events))
	for _, s := range segments {
		arena.addSegment(s, operandLeft, false, 0)
	}
	to := eventID(len(arena.events))

	sweep := newSweep(arena)
	sweep.seedAllEvents(from, to)
	processed := sweep.run()

	selected := make([]eventID, 0, len(processed))
	for _, id := range processed {
		e := arena.get(id)
		if e.Overlap != OverlapNone && e.FromOperand != operandLeft {
			continue
		}
		selected = append(selected, id)
	}
	return reconstructLinear(arena, selected), nil
}

func runLinearOp(left, right Multisegment, op Operation) (Multisegment, error) {
	if err := validateMultisegment(0, left); err != nil {
		return nil, err
	}
	if err := validateMultisegment(1, right); err != nil {
		return nil, err
	}
	if len(left) == 0 && len(right) == 0 {
		return nil, nil
	}

	switch {
	case len(left) == 0:
		return emptyOperandLinearResult(right, op, operandRight)
	case len(right) == 0:
		return emptyOperandLinearResult(left, op, operandLeft)
	}

	leftBox := boundingBoxFromMultisegment(left)
	rightBox := boundingBoxFromMultisegment(right)
	if leftBox.disjoint(rightBox) {
		return disjointOperandsLinearResult(left, right, op)
	}

	arena, from, to := buildLinearArena(left, right)
	sweep := newSweep(arena)
	sweep.seedAllEvents(from, to)
	processed := sweep.run()
	selected := selectLinearResult(arena, processed, op)
	return reconstructLinear(arena, selected), nil
}

// emptyOperandLinearResult handles the degenerate case where one operand is
// empty: intersection is empty, union/symmetric-difference is the other
// operand, and difference depends on which side was empty.
func emptyOperandLinearResult(other Multisegment, op Operation, otherSide operand) (Multisegment, error) {
	switch op {
	case OpIntersection:
		return nil, nil
	case OpUnion, OpSymmetricDifference:
		return mergeSegmentsOrSelf(other)
	case OpDifference:
		if otherSide == operandLeft {
			return mergeSegmentsOrSelf(other)
		}
		return nil, nil
	}
	return nil, nil
}

func disjointOperandsLinearResult(left, right Multisegment, op Operation) (Multisegment, error) {
	switch op {
	case OpIntersection:
		return nil, nil
	case OpDifference:
		return mergeSegmentsOrSelf(left)
	default: // union, symmetric difference: disjoint operands simply concatenate
		merged, err := MergeSegments(append(append(Multisegment{}, left...), right...))
		return merged, err
	}
}

func mergeSegmentsOrSelf(segments Multisegment) (Multisegment, error) {
	return MergeSegments(segments)
}

func buildLinearArena(left, right Multisegment) (arena *eventArena, from, to eventID) {
	arena = newEventArena(4 * (len(left) + len(right)))
	from = eventID(len(arena.events))
	for _, s := range left {
		arena.addSegment(s, operandLeft, false, 0)
	}
	for _, s := range right {
		arena.addSegment(s, operandRight, false, 0)
	}
	to = eventID(len(arena.events))
	return arena, from, to
}
