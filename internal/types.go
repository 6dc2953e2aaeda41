package internal

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a point in the plane. The 2D algorithms only ever see this type, so
// equality is plain struct equality over both coordinates.
type Point struct {
	X float64
	Y float64
}

// Point3 is a point in space, as read from a point cloud.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 is a direction, not a position. It has no meaning as a point.
type Vec3 = r3.Vec

// Edge is an unordered pair of points. Two edges are equal regardless of the
// order their endpoints were given in.
type Edge struct {
	P1, P2 Point3
}

// A face of a 3D hull. The winding matters: the normal (P2-P1)x(P3-P1) points
// to the inside of the hull.
type Triangle struct {
	P1, P2, P3 Point3
}

type PointSet map[Point]struct{}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Flatten drops Z, giving the point's footprint on the XY plane.
func (p Point3) Flatten() Point {
	return Point{X: p.X, Y: p.Y}
}

// Vector from p to q
func (p Point3) To(q Point3) Vec3 {
	return Vec3{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z}
}

func FlattenAll(points []Point3) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = p.Flatten()
	}
	return result
}

func NewEdge(p1, p2 Point3) Edge {
	return Edge{P1: p1, P2: p2}
}

func (e Edge) Equal(other Edge) bool {
	return (e.P1 == other.P1 && e.P2 == other.P2) || (e.P1 == other.P2 && e.P2 == other.P1)
}

// Key orders the endpoints lexicographically, so that equal edges have equal
// keys and can be used in maps.
func (e Edge) Key() Edge {
	if Less3(e.P2, e.P1) {
		return Edge{P1: e.P2, P2: e.P1}
	}
	return e
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.P1, e.P2)
}

func (t Triangle) Points() [3]Point3 {
	return [3]Point3{t.P1, t.P2, t.P3}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.P1, t.P2}, {t.P2, t.P3}, {t.P3, t.P1}}
}

// Same face with the opposite winding
func (t Triangle) Flip() Triangle {
	return Triangle{P1: t.P1, P2: t.P3, P3: t.P2}
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.P1, t.P2, t.P3)
}

// Vertices of all the triangles, in order. Shared vertices are repeated.
func TrianglesToPoints(triangles []Triangle) []Point3 {
	points := make([]Point3, 0, len(triangles)*3)
	for _, t := range triangles {
		points = append(points, t.P1, t.P2, t.P3)
	}
	return points
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}
