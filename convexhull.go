// Convex hulls of 2D and 3D point sets.
//
// This package computes the boundary of the smallest convex region containing
// a set of points: an ordered polygon in 2D, and a closed triangulated surface
// in 3D. It is meant for point clouds, such as measuring the footprint and
// bounding volume of a plant after removing the ground points.
//
// Only the points themselves are ever used as vertices. Predicates compare
// against exactly zero, with no tolerance and no exact arithmetic.
package convexhull

import "github.com/osuushi/convexhull/advanced"

type Point = advanced.Point
type Point3 = advanced.Point3
type Triangle = advanced.Triangle
type Config = advanced.Config

var (
	ErrInsufficientInput  = advanced.ErrInsufficientInput
	ErrDegenerate         = advanced.ErrDegenerate
	ErrPartitionInvariant = advanced.ErrPartitionInvariant
)

func DefaultConfig() Config {
	return advanced.DefaultConfig()
}

// Read a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return advanced.LoadConfig(path)
}

// The hull of a set of points in the plane, as a polygon. The order of the
// input is irrelevant. The result is in boundary order, but callers should not
// rely on it being either clockwise or counterclockwise.
//
// Collinear input gives a two point hull. Fewer than two distinct points is an
// ErrInsufficientInput.
func Hull2D(points []Point) ([]Point, error) {
	return Hull2DWithConfig(points, DefaultConfig())
}

func Hull2DWithConfig(points []Point, cfg Config) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Hull2D(points, cfg)
}

// The hull of a set of points in space, as a closed surface of triangles. Each
// triangle is wound so that its normal, (P2-P1)x(P3-P1), points inward.
//
// Fewer than three distinct points is an ErrInsufficientInput. Points that are
// all collinear or all coplanar have no closed hull, and give ErrDegenerate.
//
// Without a tolerance, nearly coplanar points with inexact coordinates (such as
// a grid with a 0.1 spacing) may be left marginally outside a face by rounding.
// Integer and dyadic coordinates are exact.
func Hull3D(points []Point3) ([]Triangle, error) {
	return Hull3DWithConfig(points, DefaultConfig())
}

func Hull3DWithConfig(points []Point3, cfg Config) (result []Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Hull3D(points, cfg)
}

// The 2D hull of the points projected onto the XY plane, ignoring Z.
func Footprint(points []Point3) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Footprint(points, DefaultConfig())
}

// Area of a polygon whose vertices are in boundary order, such as the result
// of Hull2D.
func Area(hull []Point) float64 {
	return advanced.Area(hull)
}

// Area of the convex hull of points given in any order.
func AreaReorder(points []Point) float64 {
	return advanced.AreaReorder(points)
}
