// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "math"

// positionEpsilon is the relative tolerance used by Position.Equals.
const positionEpsilon = 0.000001

// Position is a 2D pointer coordinate in screen units (pixels or terminal cells).
// It is a plain value so every assignment is a copy; drag history snapshots never alias each other.
type Position struct {
	// X is the horizontal coordinate, increasing to the right.
	X float64
	// Y is the vertical coordinate, increasing downward.
	Y float64
}

// Sub returns the component-wise difference p - o.
//
// Parameters:
//   - o: the position to subtract
//
// Returns:
//   - Position: the difference vector
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Equals reports whether two positions are approximately equal. Each component is compared with
// a tolerance of 1e-6 scaled by the larger magnitude (minimum 1), so small sub-pixel jitter from
// high-resolution pointer devices still counts as "not moved".
//
// Parameters:
//   - o: the position to compare against
//
// Returns:
//   - bool: true if both components are within tolerance
func (p Position) Equals(o Position) bool {
	return approxEqual(p.X, o.X) && approxEqual(p.Y, o.Y)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= positionEpsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
