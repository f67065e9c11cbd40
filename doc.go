// Package clipping implements exact planar boolean set operations over
// multisegments and multipolygons: intersection, union, difference,
// symmetric difference, and their "complete" variants that also report the
// lower-dimensional residue the plain operation discards.
//
// Coordinates are arbitrary-precision rationals (math/big.Rat), so every
// geometric predicate the sweep relies on - orientation, segment
// intersection, point-in-polygon - is computed exactly. There is no
// tolerance or epsilon anywhere in this package; callers working with
// floating-point geometry are responsible for converting it to an exact
// rational representation first.
//
// Operands are assumed to already be individually valid: multisegments
// contain no degenerate (zero-length) segments, and polygon rings are
// simple (non-self-intersecting) with at least three vertices. Passing
// invalid operands returns an *InvalidInputError rather than attempting any
// repair.
package clipping
