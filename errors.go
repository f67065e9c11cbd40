package clipping

import "errors"

// ErrDegenerateSegment is returned when an operand segment has coincident
// endpoints.
var ErrDegenerateSegment = errors.New("clipping: segment has coincident endpoints")

// ErrSelfIntersectingContour is returned when a polygon ring intersects
// itself. Self-intersecting input is a client error: the engine assumes
// valid simple rings and does not attempt to repair them.
var ErrSelfIntersectingContour = errors.New("clipping: contour is self-intersecting")

// ErrEmptyContour is returned when a polygon ring has fewer than 3 vertices.
var ErrEmptyContour = errors.New("clipping: contour has fewer than 3 vertices")

// InvalidInputError wraps a validation failure with the operand index and
// the index of the offending segment, or of the polygon whose shell or hole
// failed, within that operand, so callers can report a
// precise location back to whatever produced the geometry.
type InvalidInputError struct {
	Operand int
	Index   int
	Err     error
}

func (e *InvalidInputError) Error() string {
	return e.Err.Error()
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
