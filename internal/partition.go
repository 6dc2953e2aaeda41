package internal

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// PartitionRange gives the half-open range [start, end) of partition i when n
// sorted points are split into count contiguous, near-equal partitions. Integer
// division makes consecutive ranges meet exactly, and the last range always
// ends at n.
func PartitionRange(n, i, count int) (start, end int) {
	start = i * n / count
	end = (i + 1) * n / count
	if i == count-1 || end > n {
		end = n
	}
	return start, end
}

// Apply build to every partition of n points, collecting the results in
// partition order. Empty partitions (more partitions than points) are skipped.
//
// In parallel mode, each partition gets its own goroutine, and each goroutine
// only writes its own result slot, so there is nothing to lock. A failing or
// panicking partition fails the whole run once every goroutine has finished.
func mapPartitions[T any](n, count int, parallel bool, build func(start, end int) (T, error)) ([]T, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrPartitionInvariant, "partition count must be positive, got %d", count)
	}

	type partition struct{ start, end int }
	partitions := make([]partition, 0, count)
	covered := 0
	for i := 0; i < count; i++ {
		start, end := PartitionRange(n, i, count)
		covered += end - start
		if end > start {
			partitions = append(partitions, partition{start, end})
		}
	}
	// Every point must be in exactly one partition. Silently losing points would
	// give a wrong hull, not a slow one.
	if covered != n {
		fatalf(ErrPartitionInvariant, "partitions cover %d of %d points", covered, n)
	}

	results := make([]T, len(partitions))
	if !parallel {
		for i, part := range partitions {
			result, err := build(part.start, part.end)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
		return results, nil
	}

	var group errgroup.Group
	for i, part := range partitions {
		i, part := i, part
		group.Go(func() error {
			return recoverTask(func() error {
				result, err := build(part.start, part.end)
				if err != nil {
					return err
				}
				results[i] = result
				return nil
			})
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
