package internal

import "github.com/pkg/errors"

// Geometric contract violations are returned as errors wrapping one of these
// sentinels, so that orchestrators can fall back to a coarser strategy. Only
// internal invariant violations (bugs) panic, and the public API recovers
// those into errors as well.

var (
	// Fewer points than the builder needs
	ErrInsufficientInput = errors.New("insufficient input")
	// Enough points, but collinear or coplanar so no valid face exists
	ErrDegenerate = errors.New("degenerate configuration")
	// Partition ranges did not cover the input exactly once
	ErrPartitionInvariant = errors.New("partition invariant violation")
)

// HullError is what fatalf panics with. Any other panic value, runtime errors
// included, is a bug and is not recovered by HandleHullPanicRecover.
type HullError struct {
	err error
}

func (e HullError) Error() string {
	return e.err.Error()
}

func (e HullError) Unwrap() error {
	return e.err
}

// Panic with a HullError.
func fatalf(err error, format string, args ...interface{}) {
	panic(HullError{err: errors.Wrapf(err, format, args...)})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.err
		}
		panic(r)
	}
	return nil
}

// Run fn, turning any panic (including foreign ones) into an error. This is for
// worker goroutines, where a panic would otherwise take down the process
// without the orchestrator getting a chance to report it.
func recoverTask(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if hullError, ok := r.(HullError); ok {
				err = hullError.err
				return
			}
			err = errors.Errorf("hull task panicked: %v", r)
		}
	}()
	return fn()
}
