package internal

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gift wrapping in 3D. Starting from a seed edge, the hull surface grows one
// face at a time: for each edge that is still missing a face on one side, find
// a third vertex such that every input point is on the inside of (or on) the
// plane through the edge and that vertex.
//
// Faces are tracked as directed half-edges. A face (a, b, c) owns a->b, b->c and
// c->a, and the face across a->b must own b->a. Each half-edge can be owned by
// one face only, so once an edge has its two faces it is never queued again.
// This is what makes the output a closed 2-manifold: a face that would claim an
// owned half-edge is an error, not a silent overlap.
//
// The side tests compare against exactly zero with no tolerance. Coordinates
// that are not exactly representable (0.1, 0.3, ...) can make nearly coplanar
// points land on the wrong side of a face through rounding, and the result can
// then leave such a point slightly outside the hull with no error reported.
//
// Each third vertex search validates up to n candidate faces against all n
// points, and there are O(n) edges, so this is O(n^3) in the worst case. Keep
// inputs small; Hull3D partitions large inputs for that reason.

type halfEdge struct {
	from, to Point3
}

func (e halfEdge) reversed() halfEdge {
	return halfEdge{from: e.to, to: e.from}
}

type hullBuilder3D struct {
	points    []Point3
	owned     map[halfEdge]struct{}
	queue     []halfEdge
	triangles []Triangle
}

func BuildHull3D(points []Point3) ([]Triangle, error) {
	sorted := make([]Point3, len(points))
	copy(sorted, points)
	SortPoints3(sorted)
	sorted = Dedup3(sorted)

	if len(sorted) < 3 {
		return nil, errors.Wrapf(ErrInsufficientInput, "3D hull needs at least 3 distinct points, got %d", len(sorted))
	}
	if err := checkSpansSpace(sorted); err != nil {
		return nil, err
	}

	b := &hullBuilder3D{
		points: sorted,
		owned:  make(map[halfEdge]struct{}),
	}
	// The seed edge only serves to find the first facet. It may not be an edge
	// of the hull itself, if there are points between its endpoints.
	seed, err := b.seedEdge()
	if err != nil {
		return nil, err
	}
	apex, normal, _ := b.findApex(seed)
	if err := b.emitFacet(seed, apex, normal); err != nil {
		return nil, err
	}

	for len(b.queue) > 0 {
		edge := b.queue[len(b.queue)-1]
		b.queue = b.queue[:len(b.queue)-1]
		if b.isOwned(edge) {
			continue
		}

		apex, normal, ok := b.findApex(edge)
		if !ok {
			return nil, errors.Wrapf(ErrDegenerate, "no third vertex for edge %v after %d faces", NewEdge(edge.from, edge.to), len(b.triangles))
		}
		if err := b.emitFacet(edge, apex, normal); err != nil {
			return nil, err
		}
		if !b.isOwned(edge) {
			return nil, errors.Wrapf(ErrDegenerate, "facet through %v does not contain it", NewEdge(edge.from, edge.to))
		}
	}

	debugf("3D hull: %d points wrapped in %d faces", len(sorted), len(b.triangles))
	return b.triangles, nil
}

// A closed hull needs four points that are not coplanar.
func checkSpansSpace(points []Point3) error {
	p0, p1 := points[0], points[1]
	var normal Vec3
	for _, p := range points[2:] {
		normal = r3.Cross(p0.To(p1), p0.To(p))
		if normal != (Vec3{}) {
			break
		}
	}
	if normal == (Vec3{}) {
		return errors.Wrapf(ErrDegenerate, "all %d points are collinear", len(points))
	}
	for _, p := range points {
		if planeSide(p0, normal, p) != 0 {
			return nil
		}
	}
	return errors.Wrapf(ErrDegenerate, "all %d points are coplanar", len(points))
}

// Scan pairs in sorted order for the first one that has a valid face on either
// side. The smallest point is always a hull vertex, so the scan usually ends
// within the first row.
func (b *hullBuilder3D) seedEdge() (halfEdge, error) {
	for i, p1 := range b.points {
		for _, p2 := range b.points[i+1:] {
			for _, edge := range []halfEdge{{p1, p2}, {p2, p1}} {
				if _, _, ok := b.findApex(edge); ok {
					return edge, nil
				}
			}
		}
	}
	return halfEdge{}, errors.Wrap(ErrDegenerate, "no seed edge")
}

func (b *hullBuilder3D) isOwned(edge halfEdge) bool {
	_, ok := b.owned[edge]
	return ok
}

// Find a point c such that the face (edge.from, edge.to, c) has every point on
// its inside. Returns the face's inward normal as well.
func (b *hullBuilder3D) findApex(edge halfEdge) (Point3, Vec3, bool) {
	for _, c := range b.points {
		if c == edge.from || c == edge.to {
			continue
		}
		normal := r3.Cross(edge.from.To(edge.to), edge.from.To(c))
		// Collinear with the edge. Every point would be "coplanar" with it.
		if normal == (Vec3{}) {
			continue
		}
		if b.allInside(edge, c, normal) {
			return c, normal, true
		}
	}
	return Point3{}, Vec3{}, false
}

// The face's own corners are on its plane by construction. Rounding in the
// side test must not push them outside.
func (b *hullBuilder3D) allInside(edge halfEdge, apex Point3, normal Vec3) bool {
	for _, p := range b.points {
		if p == edge.from || p == edge.to || p == apex {
			continue
		}
		if planeSide(edge.from, normal, p) < 0 {
			return false
		}
	}
	return true
}

// Emit the face found for edge. When more than three points lie on the
// supporting plane, the whole flat facet is emitted at once as a fan over its
// 2D hull. Triangulating a flat facet piecemeal from different edges could
// produce overlapping faces.
func (b *hullBuilder3D) emitFacet(edge halfEdge, apex Point3, normal Vec3) error {
	coplanar := []Point3{edge.from, edge.to, apex}
	for _, p := range b.points {
		if p == edge.from || p == edge.to || p == apex {
			continue
		}
		if planeSide(edge.from, normal, p) == 0 {
			coplanar = append(coplanar, p)
		}
	}
	if len(coplanar) == 3 {
		return b.emit(Triangle{P1: edge.from, P2: edge.to, P3: apex})
	}

	polygon, err := facetPolygon(coplanar, normal)
	if err != nil {
		return err
	}
	for i := 1; i+1 < len(polygon); i++ {
		tri := Triangle{P1: polygon[0], P2: polygon[i], P3: polygon[i+1]}
		if r3.Dot(tri.Normal(), normal) < 0 {
			tri = tri.Flip()
		}
		if err := b.emit(tri); err != nil {
			return err
		}
	}
	return nil
}

// The convex polygon bounding a set of coplanar points, in boundary order.
// Points are projected onto the axis plane the facet is most parallel to, which
// keeps them distinct, and hulled there. Collinear boundary points are dropped.
func facetPolygon(coplanar []Point3, normal Vec3) ([]Point3, error) {
	project := projectionFor(normal)
	byProjection := make(map[Point]Point3, len(coplanar))
	projected := make([]Point, 0, len(coplanar))
	for _, p := range coplanar {
		q := project(p)
		byProjection[q] = p
		projected = append(projected, q)
	}
	SortPoints(projected)
	hull, err := MonotoneChain(projected)
	if err != nil {
		return nil, err
	}
	if len(hull) < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "facet of %d points has only %d vertices", len(coplanar), len(hull))
	}

	polygon := make([]Point3, len(hull))
	for i, q := range hull {
		polygon[i] = byProjection[q]
	}
	return polygon, nil
}

// Drop the coordinate along which the normal is largest.
func projectionFor(normal Vec3) func(Point3) Point {
	ax, ay, az := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)
	switch {
	case az >= ax && az >= ay:
		return func(p Point3) Point { return Point{X: p.X, Y: p.Y} }
	case ay >= ax:
		return func(p Point3) Point { return Point{X: p.Z, Y: p.X} }
	}
	return func(p Point3) Point { return Point{X: p.Y, Y: p.Z} }
}

func (b *hullBuilder3D) emit(tri Triangle) error {
	edges := [3]halfEdge{{tri.P1, tri.P2}, {tri.P2, tri.P3}, {tri.P3, tri.P1}}
	for _, edge := range edges {
		if b.isOwned(edge) {
			return errors.Wrapf(ErrDegenerate, "edge %v already has a face on this side", NewEdge(edge.from, edge.to))
		}
	}
	for _, edge := range edges {
		b.owned[edge] = struct{}{}
	}
	for _, edge := range edges {
		if !b.isOwned(edge.reversed()) {
			b.queue = append(b.queue, edge.reversed())
		}
	}
	b.triangles = append(b.triangles, tri)
	if debugEnabled() {
		debugf("3D hull: face %s", tri.DbgName())
	}
	return nil
}
