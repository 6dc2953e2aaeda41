package internal

import "github.com/pkg/errors"

// Same shape as Hull2D, but both the sub-hulls and the merge use the 3D gift
// wrap. Because the builder is cubic in the worst case, the partition count
// grows with the input (see Config.SubHullTiers) to keep partitions small.
func Hull3D(points []Point3, cfg Config) ([]Triangle, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientInput, "3D hull needs at least 3 points, got %d", len(points))
	}

	sorted := make([]Point3, len(points))
	copy(sorted, points)
	SortPoints3(sorted)

	if len(cfg.SubHullTiers) == 0 {
		cfg.SubHullTiers = DefaultConfig().SubHullTiers
	}
	count := cfg.SubHullCount3D(len(sorted))
	if count < 1 {
		count = 1
	}
	debugf("3D hull: %d points, %d sub-hulls, ~%d points per sub-hull", len(sorted), count, len(sorted)/count)
	if count <= 1 {
		return BuildHull3D(sorted)
	}

	subHulls, err := mapPartitions(len(sorted), count, cfg.Parallel, func(start, end int) ([]Point3, error) {
		return subHull3D(sorted[start:end])
	})
	if err != nil {
		return nil, err
	}

	var candidates []Point3
	for _, subHull := range subHulls {
		candidates = append(candidates, subHull...)
	}
	debugf("3D hull: merging %d candidate points", len(candidates))
	return BuildHull3D(candidates)
}

// Vertices of the partition's hull, duplicates and all. A partition that can't
// be hulled on its own (too few points, or flat) contributes all its points,
// which is always safe, just slower to merge.
func subHull3D(points []Point3) ([]Point3, error) {
	triangles, err := BuildHull3D(points)
	if errors.Is(err, ErrInsufficientInput) || errors.Is(err, ErrDegenerate) {
		return points, nil
	}
	if err != nil {
		return nil, err
	}
	return TrianglesToPoints(triangles), nil
}
