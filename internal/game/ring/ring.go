// Package ring implements the 2D position model: bounded coordinates,
// inter-fighter distance, and cornered/on-ropes classification.
//
// Distances are in feet on a square canvas ring. The model is geometry only;
// it holds no fighter state.
package ring

import "math"

// Position is a point inside the ring.
type Position struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance to other.
//
// Postcondition: Returns >= 0.
func (p Position) Distance(other Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Ring describes the canvas bounds and positional thresholds.
//
// Invariant: Size > 0; margins are non-negative and less than Size/2.
type Ring struct {
	// Size is the inside-the-ropes side length in feet.
	Size float64
	// CornerMargin is the max distance from BOTH axis edges to count as cornered.
	CornerMargin float64
	// RopesMargin is the max distance from EITHER axis edge to count as on the ropes.
	RopesMargin float64
	// Step is the base movement step per tick before footwork/speed scaling.
	Step float64
}

// New returns a Ring with the given dimensions.
//
// Precondition: size > 0.
func New(size, cornerMargin, ropesMargin, step float64) Ring {
	return Ring{Size: size, CornerMargin: cornerMargin, RopesMargin: ropesMargin, Step: step}
}

// Center returns the ring's center point.
func (r Ring) Center() Position {
	return Position{X: r.Size / 2, Y: r.Size / 2}
}

// Clamp returns p constrained to the ring bounds.
//
// Postcondition: both coordinates of the result are in [0, Size].
func (r Ring) Clamp(p Position) Position {
	return Position{
		X: math.Min(math.Max(p.X, 0), r.Size),
		Y: math.Min(math.Max(p.Y, 0), r.Size),
	}
}

// edgeDistances returns the distance from p to the nearest edge on each axis.
func (r Ring) edgeDistances(p Position) (dx, dy float64) {
	dx = math.Min(p.X, r.Size-p.X)
	dy = math.Min(p.Y, r.Size-p.Y)
	return dx, dy
}

// IsCornered reports whether p is within CornerMargin of an edge on BOTH axes.
func (r Ring) IsCornered(p Position) bool {
	dx, dy := r.edgeDistances(p)
	return dx <= r.CornerMargin && dy <= r.CornerMargin
}

// OnRopes reports whether p is within RopesMargin of an edge on EITHER axis.
// A cornered position is also on the ropes whenever RopesMargin >= CornerMargin
// is not assumed; callers should check IsCornered first when the distinction
// matters.
func (r Ring) OnRopes(p Position) bool {
	dx, dy := r.edgeDistances(p)
	return dx <= r.RopesMargin || dy <= r.RopesMargin
}

// MoveToward displaces from one scaled step toward target and clamps to
// bounds. scale multiplies the base step; callers derive it from footwork and
// speed. A non-positive or degenerate direction returns from unchanged.
//
// Postcondition: the result is inside the ring bounds.
func (r Ring) MoveToward(from, target Position, scale float64) Position {
	return r.move(from, target, scale)
}

// MoveAway displaces from one scaled step directly away from target, clamped
// to bounds.
//
// Postcondition: the result is inside the ring bounds.
func (r Ring) MoveAway(from, target Position, scale float64) Position {
	return r.move(from, target, -scale)
}

// Circle displaces from one scaled step perpendicular to the line toward
// target; clockwise selects the direction.
//
// Postcondition: the result is inside the ring bounds.
func (r Ring) Circle(from, target Position, scale float64, clockwise bool) Position {
	dx := target.X - from.X
	dy := target.Y - from.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return from
	}
	// Perpendicular unit vector.
	px, py := -dy/norm, dx/norm
	if clockwise {
		px, py = -px, -py
	}
	step := r.Step * scale
	return r.Clamp(Position{X: from.X + px*step, Y: from.Y + py*step})
}

func (r Ring) move(from, target Position, scale float64) Position {
	dx := target.X - from.X
	dy := target.Y - from.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return from
	}
	step := r.Step * scale
	return r.Clamp(Position{
		X: from.X + dx/norm*step,
		Y: from.Y + dy/norm*step,
	})
}
