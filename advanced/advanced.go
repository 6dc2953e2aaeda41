// Package advanced exposes the individual stages of the hull pipeline, for
// callers that want to drive them directly: for example, to gift wrap a set of
// sub-hulls they computed themselves, or to run the 3D builder without
// partitioning.
//
// Unlike the top level package, these functions may panic with a HullError on
// internal invariant violations. Use HandleHullPanicRecover to convert.
package advanced

import "github.com/osuushi/convexhull/internal"

type Point = internal.Point
type Point3 = internal.Point3
type Vec3 = internal.Vec3
type Edge = internal.Edge
type Triangle = internal.Triangle
type Direction = internal.Direction
type Config = internal.Config
type SubHullTier = internal.SubHullTier
type EdgeAdjacency = internal.EdgeAdjacency
type PointSet = internal.PointSet
type HullError = internal.HullError

const (
	Clockwise        = internal.Clockwise
	Collinear        = internal.Collinear
	CounterClockwise = internal.CounterClockwise
)

var (
	ErrInsufficientInput  = internal.ErrInsufficientInput
	ErrDegenerate         = internal.ErrDegenerate
	ErrPartitionInvariant = internal.ErrPartitionInvariant
)

var (
	Orientation = internal.Orientation
	PlaneSide   = internal.PlaneSide

	SortPoints  = internal.SortPoints
	SortPoints3 = internal.SortPoints3
	// Remove duplicates from a sorted slice, in place
	Dedup       = internal.Dedup
	Dedup3      = internal.Dedup3
	FlattenAll  = internal.FlattenAll
	NewEdge     = internal.NewEdge
	NewPointSet = internal.NewPointSet

	// Hull of lexicographically sorted points, O(n)
	MonotoneChain = internal.MonotoneChain
	// Jarvis march from points[0], which must be a hull vertex
	GiftWrap = internal.GiftWrap
	// Jarvis march from the smallest point
	Reorder     = internal.Reorder
	Area        = internal.Area
	AreaReorder = internal.AreaReorder
	Hull2D      = internal.Hull2D
	Footprint   = internal.Footprint

	BuildHull3D = internal.BuildHull3D
	Hull3D      = internal.Hull3D

	PartitionRange   = internal.PartitionRange
	NewEdgeAdjacency = internal.NewEdgeAdjacency

	DefaultConfig = internal.DefaultConfig
	LoadConfig    = internal.LoadConfig

	SetDebugOutput = internal.SetDebugOutput
	DrawHull2D     = internal.DrawHull2D
	SaveHull2D     = internal.SaveHull2D
	DbgDraw        = internal.DbgDraw

	HandleHullPanicRecover = internal.HandleHullPanicRecover
)
