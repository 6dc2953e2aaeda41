package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Helper to check that a 2D hull is valid. The rules are:
//  1. Every hull vertex is an input point, and no vertex is repeated.
//  2. The hull is strictly convex and counterclockwise, so no vertex is interior
//     to (or on an edge between) the others.
//  3. Every input point is inside or on the boundary.
func AssertValidHull2D(t *testing.T, points []Point, hull []Point) {
	t.Helper()
	inputs := NewPointSet(points)
	seen := make(PointSet)
	for _, p := range hull {
		require.True(t, inputs.Contains(p), "hull vertex %v is not an input point", p)
		require.False(t, seen.Contains(p), "hull vertex %v is repeated", p)
		seen.Add(p)
	}

	if len(hull) < 3 {
		// Degenerate hull. Everything must be on the segment.
		require.Len(t, hull, 2, "hull of distinct points has fewer than 2 vertices")
		for _, p := range points {
			require.Equal(t, Collinear, Orientation(hull[0], hull[1], p), "point %v is off the degenerate hull", p)
			require.True(t, onSegment(hull[0], hull[1], p), "point %v is beyond the degenerate hull", p)
		}
		return
	}

	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]
		c := hull[CircularIndex(i+2, len(hull))]
		require.Equal(t, CounterClockwise, Orientation(a, b, c), "hull is not strictly convex at %v", b)
		for _, p := range points {
			require.NotEqual(t, Clockwise, Orientation(a, b, p), "point %v is outside hull edge %v-%v", p, a, b)
		}
	}
}

// Helper to check that a 3D hull is valid. The rules are:
// 1. Every triangle vertex is an input point, and no triangle is degenerate.
// 2. Every input point is on the inside of (or on) every face.
// 3. Every edge borders exactly two faces, wound in opposite directions.
// 4. Euler's formula holds: V - E + F = 2.
func AssertValidHull3D(t *testing.T, points []Point3, triangles []Triangle) {
	t.Helper()
	require.NotEmpty(t, triangles)
	inputs := make(map[Point3]struct{}, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
	}
	vertices := make(map[Point3]struct{})
	for _, tri := range triangles {
		require.False(t, tri.IsDegenerate(), "degenerate face %v", tri)
		for _, p := range tri.Points() {
			_, ok := inputs[p]
			require.True(t, ok, "face vertex %v is not an input point", p)
			vertices[p] = struct{}{}
		}
		for _, p := range points {
			if p == tri.P1 || p == tri.P2 || p == tri.P3 {
				continue
			}
			require.False(t, IsOutside(tri, p), "point %v is outside face %v", p, tri)
		}
	}

	adjacency := NewEdgeAdjacency(triangles)
	require.NoError(t, adjacency.CheckManifold(triangles))
	require.Equal(t, 2, len(vertices)-len(adjacency)+len(triangles), "Euler characteristic")
}

// Same vertex set, in any order
func AssertSameVertices(t *testing.T, expected, actual []Point) {
	t.Helper()
	sortPoints := cmpopts.SortSlices(Less)
	if diff := cmp.Diff(expected, actual, sortPoints); diff != "" {
		t.Fatalf("vertex sets differ (-expected +actual):\n%s", diff)
	}
}

func AssertSameVertices3(t *testing.T, expected, actual []Triangle) {
	t.Helper()
	sortPoints := cmpopts.SortSlices(Less3)
	if diff := cmp.Diff(vertexSet3(expected), vertexSet3(actual), sortPoints); diff != "" {
		t.Fatalf("vertex sets differ (-expected +actual):\n%s", diff)
	}
}

func vertexSet3(triangles []Triangle) []Point3 {
	points := TrianglesToPoints(triangles)
	SortPoints3(points)
	return Dedup3(points)
}
