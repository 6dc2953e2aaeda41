package internal

import "gonum.org/v1/gonum/spatial/r3"

// The predicates in this file are the only place signs are computed. All of
// them compare against exactly zero. There is no tolerance: a configuration is
// collinear (or coplanar) only if the floating point result is exactly zero.

// Direction is the turn made by three points in the plane.
type Direction int

const (
	Clockwise        Direction = -1
	Collinear        Direction = 0
	CounterClockwise Direction = 1
)

// Aliases in terms of turns, for readability at call sites that walk a chain
const (
	RightTurn = Clockwise
	LeftTurn  = CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "collinear"
}

// Orientation gives the sign of (p2-p1)x(p3-p1).
func Orientation(p1, p2, p3 Point) Direction {
	z := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	switch {
	case z > 0:
		return CounterClockwise
	case z < 0:
		return Clockwise
	}
	return Collinear
}

// Normal of the triangle's plane, anchored at P1. Zero for degenerate triangles.
func (t Triangle) Normal() Vec3 {
	return r3.Cross(t.P1.To(t.P2), t.P1.To(t.P3))
}

func (t Triangle) IsDegenerate() bool {
	return t.Normal() == Vec3{}
}

// PlaneSide gives the side of the triangle's plane that p lies on. Positive is
// inside, negative is strictly outside, and zero is coplanar, which callers
// treat as inside.
func PlaneSide(t Triangle, p Point3) int {
	return planeSide(t.P1, t.Normal(), p)
}

func planeSide(anchor Point3, normal Vec3, p Point3) int {
	d := r3.Dot(normal, anchor.To(p))
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

// Is p strictly outside the face?
func IsOutside(t Triangle, p Point3) bool {
	return PlaneSide(t, p) < 0
}

// Does q lie on the closed segment a-b? Assumes the three points are already
// known to be collinear.
func onSegment(a, b, q Point) bool {
	return q.X >= min(a.X, b.X) && q.X <= max(a.X, b.X) &&
		q.Y >= min(a.Y, b.Y) && q.Y <= max(a.Y, b.Y)
}

func distanceSquared(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
