package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	origin := Point{0, 0}
	assert.Equal(t, CounterClockwise, Orientation(origin, Point{1, 0}, Point{1, 1}))
	assert.Equal(t, Clockwise, Orientation(origin, Point{1, 0}, Point{1, -1}))
	assert.Equal(t, Collinear, Orientation(origin, Point{1, 1}, Point{5, 5}))
	// Behind the start is still collinear
	assert.Equal(t, Collinear, Orientation(origin, Point{1, 1}, Point{-2, -2}))
	// Duplicate points are collinear with anything
	assert.Equal(t, Collinear, Orientation(origin, origin, Point{3, 7}))

	t.Run("reversing the last two points flips the sign", func(t *testing.T) {
		for _, p := range RandomCloud(1, 50) {
			a, b := Point{-3, 2}, Point{4, 1}
			assert.Equal(t, -Orientation(a, b, p), Orientation(a, p, b))
		}
	})

	t.Run("no tolerance", func(t *testing.T) {
		// Very nearly collinear is not collinear
		assert.Equal(t, CounterClockwise, Orientation(origin, Point{1, 0}, Point{2, 1e-300}))
	})
}

func TestPlaneSide(t *testing.T) {
	// Normal is (0,0,1): up is inside
	tri := Triangle{Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}}
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 1}, tri.Normal())
	assert.Equal(t, 1, PlaneSide(tri, Point3{0.2, 0.2, 5}))
	assert.Equal(t, -1, PlaneSide(tri, Point3{0.2, 0.2, -5}))
	assert.Equal(t, 0, PlaneSide(tri, Point3{7, -3, 0}))

	// Coplanar counts as inside
	assert.False(t, IsOutside(tri, Point3{7, -3, 0}))
	assert.True(t, IsOutside(tri, Point3{0, 0, -1e-9}))

	// Flipping the winding flips the sides
	assert.Equal(t, -1, PlaneSide(tri.Flip(), Point3{0.2, 0.2, 5}))
}

func TestTriangleIsDegenerate(t *testing.T) {
	assert.False(t, Triangle{Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}}.IsDegenerate())
	assert.True(t, Triangle{Point3{0, 0, 0}, Point3{1, 1, 1}, Point3{2, 2, 2}}.IsDegenerate())
	assert.True(t, Triangle{Point3{0, 0, 0}, Point3{0, 0, 0}, Point3{0, 1, 0}}.IsDegenerate())
}

func TestEdgeEqual(t *testing.T) {
	a, b, c := Point3{0, 0, 0}, Point3{1, 2, 3}, Point3{1, 2, 4}
	assert.True(t, NewEdge(a, b).Equal(NewEdge(b, a)))
	assert.True(t, NewEdge(a, b).Equal(NewEdge(a, b)))
	assert.False(t, NewEdge(a, b).Equal(NewEdge(a, c)))
	assert.Equal(t, NewEdge(a, b).Key(), NewEdge(b, a).Key())
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, Point{1, 2}, Point3{1, 2, 3}.Flatten())
	// Points that differ only in z are the same point in 2D
	assert.Equal(t, []Point{{1, 2}, {1, 2}}, FlattenAll([]Point3{{1, 2, 3}, {1, 2, -3}}))
}
