package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point sets. This is not a full (or
// even correct) svg parser. Each fixture has a polygon with id "points", which
// is the (unordered) input, and a polygon with id "hull", which is the expected
// hull vertex set. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Points []Point
	Hull   []Point
}

func LoadFixture(name string) Fixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := map[string][]Point{}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		polygons[polygonEl.Attributes["id"]] = parsePoints(polygonEl.Attributes["points"])
	}
	for _, id := range []string{"points", "hull"} {
		if _, ok := polygons[id]; !ok {
			log.Fatalf("No polygon with id %q in fixture %q", id, name)
		}
	}
	return Fixture{Points: polygons["points"], Hull: polygons["hull"]}
}

func parsePoints(pointString string) []Point {
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

// Uniform points in a square. Seeded, so the same every run.
func RandomCloud(seed int64, n int) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
	}
	return points
}

// Points in a disc, biased towards the center, plus some duplicates
func RandomDisc(seed int64, n int) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n+n/10)
	for i := 0; i < n; i++ {
		r := 50 * math.Sqrt(rng.Float64()) * rng.Float64()
		angle := 2 * math.Pi * rng.Float64()
		points = append(points, Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
	}
	for i := 0; i < n/10; i++ {
		points = append(points, points[rng.Intn(n)])
	}
	return points
}

func RandomCloud3(seed int64, n int) []Point3 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point3, n)
	for i := range points {
		points[i] = Point3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	}
	return points
}

// Points on and inside a sphere. Many of them are hull vertices.
func RandomBall(seed int64, n int) []Point3 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point3, n)
	for i := range points {
		// Normal deviates give a uniform direction
		v := Point3{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		length := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		r := 10.0
		if i%3 == 0 {
			r *= rng.Float64()
		}
		points[i] = Point3{X: r * v.X / length, Y: r * v.Y / length, Z: r * v.Z / length}
	}
	return points
}

func Tetrahedron() []Point3 {
	return []Point3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Octahedron() []Point3 {
	return []Point3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
		// Inside
		{0, 0, 0}, {0.1, 0.2, -0.3},
	}
}

// Unit cube corners
func Cube() []Point3 {
	var points []Point3
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				points = append(points, Point3{x, y, z})
			}
		}
	}
	return points
}

// Cube corners plus the center, face centers, and edge midpoints. Every face is
// a flat facet with extra coplanar points on its boundary and inside it.
func StuffedCube() []Point3 {
	var points []Point3
	for _, x := range []float64{0, 1, 2} {
		for _, y := range []float64{0, 1, 2} {
			for _, z := range []float64{0, 1, 2} {
				points = append(points, Point3{x, y, z})
			}
		}
	}
	return points
}
