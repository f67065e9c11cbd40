package clipping

import "math/big"

// BoundingBox is an axis-aligned bounding rectangle, used to short-circuit
// operations on operands that cannot possibly interact.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY *big.Rat
}

func boundingBoxFromPoints(points []Point) BoundingBox {
	box := BoundingBox{MinX: points[0].X, MaxX: points[0].X, MinY: points[0].Y, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X.Cmp(box.MinX) < 0 {
			box.MinX = p.X
		}
		if p.X.Cmp(box.MaxX) > 0 {
			box.MaxX = p.X
		}
		if p.Y.Cmp(box.MinY) < 0 {
			box.MinY = p.Y
		}
		if p.Y.Cmp(box.MaxY) > 0 {
			box.MaxY = p.Y
		}
	}
	return box
}

func boundingBoxFromMultisegment(segments Multisegment) BoundingBox {
	points := make([]Point, 0, 2*len(segments))
	for _, s := range segments {
		points = append(points, s.Start, s.End)
	}
	return boundingBoxFromPoints(points)
}

func boundingBoxFromContour(contour Contour) BoundingBox {
	return boundingBoxFromPoints(contour)
}

func boundingBoxFromMultipolygon(multipolygon Multipolygon) BoundingBox {
	points := make([]Point, 0)
	for _, polygon := range multipolygon {
		points = append(points, polygon.Shell...)
	}
	return boundingBoxFromPoints(points)
}

// disjoint reports whether two bounding boxes cannot overlap at all.
func (b BoundingBox) disjoint(other BoundingBox) bool {
	return b.MinX.Cmp(other.MaxX) > 0 || b.MaxX.Cmp(other.MinX) < 0 ||
		b.MinY.Cmp(other.MaxY) > 0 || b.MaxY.Cmp(other.MinY) < 0
}

// intersects reports whether two bounding boxes share at least a point.
func (b BoundingBox) intersects(other BoundingBox) bool {
	return !b.disjoint(other)
}

// couplesWithSegment reports whether a segment's bounding box can possibly intersect
// the given box (used to discard clearly non-interacting operand segments
// before sweeping, per the original implementation's bounding_box module).
func couplesWithSegment(box BoundingBox, s Segment) bool {
	segBox := boundingBoxFromPoints([]Point{s.Start, s.End})
	return box.intersects(segBox)
}

func couplesWithPolygon(box BoundingBox, p Polygon) bool {
	polyBox := boundingBoxFromContour(p.Shell)
	return box.intersects(polyBox)
}

// filterCoupledSegments discards segments whose bounding box cannot
// intersect box at all.
func filterCoupledSegments(box BoundingBox, segments Multisegment) Multisegment {
	result := make(Multisegment, 0, len(segments))
	for _, s := range segments {
		if couplesWithSegment(box, s) {
			result = append(result, s)
		}
	}
	return result
}

// filterCoupledPolygons discards polygons whose bounding box cannot
// intersect box at all.
func filterCoupledPolygons(box BoundingBox, multipolygon Multipolygon) Multipolygon {
	result := make(Multipolygon, 0, len(multipolygon))
	for _, p := range multipolygon {
		if couplesWithPolygon(box, p) {
			result = append(result, p)
		}
	}
	return result
}
