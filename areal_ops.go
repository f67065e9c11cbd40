package clipping

// IntersectPolygons returns the region covered by both left and right.
func IntersectPolygons(left, right Multipolygon) (Multipolygon, error) {
	return runArealOp(left, right, OpIntersection)
}

// UnitePolygons returns the region covered by either left or right.
func UnitePolygons(left, right Multipolygon) (Multipolygon, error) {
	return runArealOp(left, right, OpUnion)
}

// SubtractPolygons returns the region covered by left but not right.
func SubtractPolygons(left, right Multipolygon) (Multipolygon, error) {
	return runArealOp(left, right, OpDifference)
}

// SymmetricSubtractPolygons returns the region covered by exactly one of
// left and right.
func SymmetricSubtractPolygons(left, right Multipolygon) (Multipolygon, error) {
	return runArealOp(left, right, OpSymmetricDifference)
}

// CompleteIntersectPolygons returns all three residues of intersecting left
// and right: the 2D residue (the Intersection region), the 1D residue
// (boundary overlap that does not bound any positive-area region of the
// intersection, such as touching shells with no shared interior), and the
// 0D residue (isolated points, such as corner-to-corner touches, that
// belong to neither the 1D nor the 2D residue).
func CompleteIntersectPolygons(left, right Multipolygon) (Multipoint, Multisegment, Multipolygon, error) {
	if err := validateMultipolygon(0, left); err != nil {
		return nil, nil, nil, err
	}
	if err := validateMultipolygon(1, right); err != nil {
		return nil, nil, nil, err
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, nil, nil, nil
	}
	leftBox := boundingBoxFromMultipolygon(left)
	rightBox := boundingBoxFromMultipolygon(right)
	if leftBox.disjoint(rightBox) {
		return nil, nil, nil, nil
	}

	arena, from, to := buildArealArena(left, right)
	sweep := newSweep(arena)
	sweep.seedAllEvents(from, to)
	processed := sweep.run()
	selected := selectResult(arena, processed, OpIntersection)
	twoD := reconstructAreal(arena, selected)

	onResult := make(map[string]bool)
	for _, p := range twoD {
		for _, v := range p.Shell {
			onResult[pointKey(v)] = true
		}
		for _, h := range p.Holes {
			for _, v := range h {
				onResult[pointKey(v)] = true
			}
		}
	}

	var oneD Multisegment
	for _, id := range processed {
		e := arena.get(id)
		if e.Overlap == OverlapNone || e.FromOperand != operandLeft {
			continue
		}
		s := arena.segmentOf(id)
		if onResult[pointKey(s.Start)] && onResult[pointKey(s.End)] {
			continue
		}
		oneD = append(oneD, s)
	}
	oneD = mergeCollinearChains(oneD)

	for _, s := range oneD {
		onResult[pointKey(s.Start)] = true
		onResult[pointKey(s.End)] = true
	}
	seenPoint := make(map[string]bool)
	var zeroD Multipoint
	for _, pt := range sweep.touchPoints {
		k := pointKey(pt)
		if onResult[k] || seenPoint[k] {
			continue
		}
		seenPoint[k] = true
		zeroD = append(zeroD, pt)
	}

	return zeroD, oneD, twoD, nil
}

func runArealOp(left, right Multipolygon, op Operation) (Multipolygon, error) {
	if err := validateMultipolygon(0, left); err != nil {
		return nil, err
	}
	if err := validateMultipolygon(1, right); err != nil {
		return nil, err
	}
	if len(left) == 0 && len(right) == 0 {
		return nil, nil
	}
	switch {
	case len(left) == 0:
		return emptyOperandArealResult(right, op, operandRight)
	case len(right) == 0:
		return emptyOperandArealResult(left, op, operandLeft)
	}

	leftBox := boundingBoxFromMultipolygon(left)
	rightBox := boundingBoxFromMultipolygon(right)
	if leftBox.disjoint(rightBox) {
		return disjointOperandsArealResult(left, right, op)
	}

	arena, from, to := buildArealArena(left, right)
	sweep := newSweep(arena)
	sweep.seedAllEvents(from, to)
	processed := sweep.run()
	selected := selectResult(arena, processed, op)
	return reconstructAreal(arena, selected), nil
}

func emptyOperandArealResult(other Multipolygon, op Operation, otherSide operand) (Multipolygon, error) {
	switch op {
	case OpIntersection:
		return nil, nil
	case OpUnion, OpSymmetricDifference:
		return other, nil
	case OpDifference:
		if otherSide == operandLeft {
			return other, nil
		}
		return nil, nil
	}
	return nil, nil
}

func disjointOperandsArealResult(left, right Multipolygon, op Operation) (Multipolygon, error) {
	switch op {
	case OpIntersection:
		return nil, nil
	case OpDifference:
		return left, nil
	default:
		result := make(Multipolygon, 0, len(left)+len(right))
		result = append(result, left...)
		result = append(result, right...)
		return result, nil
	}
}

func buildArealArena(left, right Multipolygon) (arena *eventArena, from, to eventID) {
	arena = newEventArena(16 * (len(left) + len(right)))
	from = eventID(len(arena.events))
	nextContourID := int32(0)
	addMultipolygon := func(mp Multipolygon, who operand) {
		for _, polygon := range mp {
			addRing(arena, polygon.Shell, who, nextContourID, false)
			nextContourID++
			for _, hole := range polygon.Holes {
				addRing(arena, hole, who, nextContourID, true)
				nextContourID++
			}
		}
	}
	addMultipolygon(left, operandLeft)
	addMultipolygon(right, operandRight)
	to = eventID(len(arena.events))
	return arena, from, to
}

// addRing registers a ring's edges, deriving each edge's interior-to-left
// flag from the ring's own winding combined with whether that edge's
// canonicalized direction matches the ring's walk direction. For a hole
// the polygon's interior lies outside the ring, so the flag is inverted.
func addRing(arena *eventArena, ring Contour, who operand, contourID int32, hole bool) {
	ringCCW := IsCounterClockwise(ring)
	for _, oriented := range ring.Segments() {
		interiorToLeft := (ringCCW == oriented.agreesWithCanonical()) != hole
		arena.addSegment(oriented.segment(), who, interiorToLeft, contourID)
	}
}
