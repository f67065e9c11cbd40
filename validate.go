package clipping

// validateMultisegment checks that no segment of the operand is degenerate.
// Segments of one operand may cross or overlap each other; the sweep
// subdivides them like any other intersection.
func validateMultisegment(operandIndex int, segments Multisegment) error {
	for i, s := range segments {
		if s.Start.Equal(s.End) {
			return &InvalidInputError{Operand: operandIndex, Index: i, Err: ErrDegenerateSegment}
		}
	}
	return nil
}

// validateContour checks that a ring has at least 3 vertices, that no two
// of its non-adjacent edges meet at all, and that adjacent edges only touch.
func validateContour(operandIndex, contourIndex int, contour Contour) error {
	if len(contour) < 3 {
		return &InvalidInputError{Operand: operandIndex, Index: contourIndex, Err: ErrEmptyContour}
	}
	edges := contour.Segments()
	n := len(edges)
	for i := 0; i < n; i++ {
		si := edges[i].segment()
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			sj := edges[j].segment()
			rel := SegmentsRelation(si, sj)
			switch {
			case rel == Disjoint:
				continue
			case rel == Touch && adjacent:
				continue
			default:
				return &InvalidInputError{Operand: operandIndex, Index: contourIndex, Err: ErrSelfIntersectingContour}
			}
		}
	}
	return nil
}

// validatePolygon checks a polygon's shell and holes individually. It does
// not check shell/hole or hole/hole interaction; that is left to the
// engine's general handling of overlapping input, since holes are simply
// additional oppositely-oriented rings of the same polygon operand.
func validatePolygon(operandIndex, polygonIndex int, polygon Polygon) error {
	if err := validateContour(operandIndex, polygonIndex, polygon.Shell); err != nil {
		return err
	}
	for _, hole := range polygon.Holes {
		if err := validateContour(operandIndex, polygonIndex, hole); err != nil {
			return err
		}
	}
	return nil
}

func validateMultipolygon(operandIndex int, multipolygon Multipolygon) error {
	for i, p := range multipolygon {
		if err := validatePolygon(operandIndex, i, p); err != nil {
			return err
		}
	}
	return nil
}
