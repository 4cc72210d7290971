// package common contains common types that are used throughout this viewer. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/chewxy/math32"

// Bounds is an axis-aligned bounding box in 3D space.
type Bounds struct {
	// Min is the minimum corner of the box.
	Min [3]float32

	// Max is the maximum corner of the box.
	Max [3]float32
}

// EmptyBounds returns a Bounds primed for accumulation: Min at +Inf and Max
// at -Inf, so the first ExtendPoint call establishes a real box.
//
// Returns:
//   - Bounds: an inverted box suitable as the identity for union operations
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box has never been extended (still inverted).
//
// Returns:
//   - bool: true if no point has been accumulated
func (b Bounds) IsEmpty() bool {
	return b.Min[0] > b.Max[0]
}

// ExtendPoint grows the box to include the given point.
//
// Parameters:
//   - p: the point as (x, y, z)
//
// Returns:
//   - Bounds: the extended box
func (b Bounds) ExtendPoint(p [3]float32) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Union grows the box to include another box. Empty operands are ignored.
//
// Parameters:
//   - other: the box to merge
//
// Returns:
//   - Bounds: the merged box
func (b Bounds) Union(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return b.ExtendPoint(other.Min).ExtendPoint(other.Max)
}

// Center returns the midpoint of the box. The zero vector is returned for an
// empty box.
//
// Returns:
//   - [3]float32: the box center as (x, y, z)
func (b Bounds) Center() [3]float32 {
	if b.IsEmpty() {
		return [3]float32{}
	}
	return [3]float32{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// Size returns the extents of the box along each axis. The zero vector is
// returned for an empty box.
//
// Returns:
//   - [3]float32: the box size as (x, y, z)
func (b Bounds) Size() [3]float32 {
	if b.IsEmpty() {
		return [3]float32{}
	}
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}

// Corners returns the eight corner points of the box.
//
// Returns:
//   - [8][3]float32: the corner points
func (b Bounds) Corners() [8][3]float32 {
	return [8][3]float32{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}
