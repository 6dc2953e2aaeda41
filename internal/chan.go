package internal

import "github.com/pkg/errors"

// Chan's algorithm, simplified: split the sorted points into a fixed number of
// contiguous partitions, hull each one with the monotone chain, then gift wrap
// the union of the sub-hulls. The monotone chains are O(n) in total, and they
// shrink the candidate set that the O(n*h) gift wrap has to scan.
//
// The partition count is a tuning knob and doesn't affect the result.
func Hull2D(points []Point, cfg Config) ([]Point, error) {
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrInsufficientInput, "2D hull needs at least 2 points, got %d", len(points))
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	SortPoints(sorted)
	sorted = Dedup(sorted)

	count := cfg.SubHullCount
	if count < 1 {
		count = DefaultSubHullCount
	}
	debugf("2D hull: %d points, %d sub-hulls, ~%d points per sub-hull", len(sorted), count, len(sorted)/count)

	subHulls, err := mapPartitions(len(sorted), count, cfg.Parallel, func(start, end int) ([]Point, error) {
		return subHull2D(sorted[start:end])
	})
	if err != nil {
		return nil, err
	}

	var candidates []Point
	for _, subHull := range subHulls {
		candidates = append(candidates, subHull...)
	}
	// The first partition's sub-hull starts with its smallest point, which is
	// the smallest point overall, so the gift wrap starts on a hull vertex.
	hull := GiftWrap(candidates)
	debugf("2D hull: %d candidates merged into %d vertices", len(candidates), len(hull))

	if len(hull) < 2 {
		return nil, errors.Wrapf(ErrInsufficientInput, "2D hull needs at least 2 distinct points, got %d", len(hull))
	}
	return hull, nil
}

// A partition too small for the monotone chain is its own hull.
func subHull2D(points []Point) ([]Point, error) {
	hull, err := MonotoneChain(points)
	if errors.Is(err, ErrInsufficientInput) {
		return points, nil
	}
	return hull, err
}

// Footprint is the 2D hull of the points' shadow on the XY plane, such as the
// ground area covered by a point cloud.
func Footprint(points []Point3, cfg Config) ([]Point, error) {
	return Hull2D(FlattenAll(points), cfg)
}
