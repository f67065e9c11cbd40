package clipping

import (
	"math/big"
	"sort"
)

// reconstructAreal turns the sweep's selected events back into a
// Multipolygon: selected edges are oriented, threaded into simple closed
// contours by always taking the sharpest available right turn at each
// vertex (the standard way to trace the faces of a planar straight-line
// graph without a full doubly-connected-edge-list), classified into shells
// and holes by winding, and nested by point-in-polygon containment.
func reconstructAreal(arena *eventArena, selected []eventID) Multipolygon {
	edges := directedEdgesFrom(arena, selected)
	if len(edges) == 0 {
		return nil
	}

	sort.Slice(edges, func(i, j int) bool {
		if c := edges[i].from.Compare(edges[j].from); c != 0 {
			return c < 0
		}
		return edges[i].to.Compare(edges[j].to) < 0
	})

	outgoing := make(map[string][]*directedEdge)
	for i := range edges {
		outgoing[pointKey(edges[i].from)] = append(outgoing[pointKey(edges[i].from)], &edges[i])
	}

	var contours []Contour
	for i := range edges {
		start := &edges[i]
		if start.used {
			continue
		}
		contour := traceContour(start, outgoing)
		if len(contour) >= 3 {
			contours = append(contours, contour)
		}
	}

	return nestContours(contours)
}

type directedEdge struct {
	from, to Point
	used     bool
}

func directedEdgesFrom(arena *eventArena, selected []eventID) []directedEdge {
	edges := make([]directedEdge, 0, len(selected))
	for _, id := range selected {
		e := arena.get(id)
		other := arena.get(e.Other)
		from, to := e.Point, other.Point
		if e.ResultInOut {
			from, to = to, from
		}
		edges = append(edges, directedEdge{from: from, to: to})
	}
	return edges
}

// traceContour walks forward from start, at each vertex choosing the
// unused outgoing edge that makes the sharpest right turn relative to the
// direction just traveled, until it returns to the starting point.
func traceContour(start *directedEdge, outgoing map[string][]*directedEdge) Contour {
	contour := Contour{start.from}
	current := start
	for {
		current.used = true
		if current.to.Equal(start.from) {
			return contour
		}
		contour = append(contour, current.to)
		candidates := outgoing[pointKey(current.to)]
		next := pickSharpestRightTurn(current, candidates)
		if next == nil {
			return contour
		}
		current = next
	}
}

func pickSharpestRightTurn(arriving *directedEdge, candidates []*directedEdge) *directedEdge {
	inX := new(big.Rat).Sub(arriving.to.X, arriving.from.X)
	inY := new(big.Rat).Sub(arriving.to.Y, arriving.from.Y)
	refX, refY := new(big.Rat).Neg(inX), new(big.Rat).Neg(inY)

	var best *directedEdge
	for _, c := range candidates {
		if c.used {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		dx := new(big.Rat).Sub(c.to.X, c.from.X)
		dy := new(big.Rat).Sub(c.to.Y, c.from.Y)
		bx := new(big.Rat).Sub(best.to.X, best.from.X)
		by := new(big.Rat).Sub(best.to.Y, best.from.Y)
		if turnLess(refX, refY, dx, dy, bx, by) {
			best = c
		}
	}
	return best
}

// turnLess reports whether direction (ax,ay) has a strictly smaller
// counterclockwise angle from (refX,refY) than direction (bx,by) does.
func turnLess(refX, refY, ax, ay, bx, by *big.Rat) bool {
	ha, hb := angleHalf(refX, refY, ax, ay), angleHalf(refX, refY, bx, by)
	if ha != hb {
		return ha < hb
	}
	cross := new(big.Rat).Sub(new(big.Rat).Mul(ax, by), new(big.Rat).Mul(ay, bx))
	return cross.Sign() > 0
}

// angleHalf buckets direction v's counterclockwise angle from ref into one
// of four exact ranges: 0 (same direction as ref), 1 ((0,pi)), 2 (opposite
// direction), 3 ((pi,2pi)).
func angleHalf(refX, refY, vx, vy *big.Rat) int {
	cross := new(big.Rat).Sub(new(big.Rat).Mul(refX, vy), new(big.Rat).Mul(refY, vx))
	switch cross.Sign() {
	case 1:
		return 1
	case -1:
		return 3
	}
	dot := new(big.Rat).Add(new(big.Rat).Mul(refX, vx), new(big.Rat).Mul(refY, vy))
	if dot.Sign() > 0 {
		return 0
	}
	return 2
}

// nestContours classifies each traced contour by winding (shell if
// counterclockwise, hole if clockwise) and nests each hole inside the
// smallest-area shell whose boundary contains it.
func nestContours(contours []Contour) Multipolygon {
	type shellInfo struct {
		contour Contour
		area    *big.Rat
		holes   []Contour
	}

	var shells []*shellInfo
	var holes []Contour
	for _, c := range contours {
		if IsCounterClockwise(c) {
			shells = append(shells, &shellInfo{contour: c, area: absRat(SignedDoubleArea(c))})
		} else {
			holes = append(holes, c)
		}
	}

	for _, hole := range holes {
		var owner *shellInfo
		for _, s := range shells {
			if !containsContour(s.contour, hole) {
				continue
			}
			if owner == nil || s.area.Cmp(owner.area) < 0 {
				owner = s
			}
		}
		if owner != nil {
			owner.holes = append(owner.holes, hole)
		}
	}

	result := make(Multipolygon, 0, len(shells))
	for _, s := range shells {
		result = append(result, Polygon{Shell: s.contour, Holes: s.holes})
	}
	return result
}

func containsContour(shell, candidate Contour) bool {
	for _, p := range candidate {
		rel := PointInContour(p, shell)
		if rel == Outside {
			return false
		}
		if rel == Inside {
			return true
		}
	}
	return false
}

func absRat(r *big.Rat) *big.Rat {
	if r.Sign() < 0 {
		return new(big.Rat).Neg(r)
	}
	return r
}
