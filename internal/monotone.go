package internal

import "github.com/pkg/errors"

// Andrew's monotone chain. The input must already be sorted lexicographically
// (see Less). The lower chain is built left to right and the upper chain right
// to left, each popping the last point while the last three points fail to make
// a strict left turn. Collinear points therefore never make it onto the hull.
//
// The result is counterclockwise, starting at the first input point. Each point
// is pushed and popped at most once per chain, so this is O(n).
func MonotoneChain(sorted []Point) ([]Point, error) {
	if len(sorted) < 2 {
		return nil, errors.Wrapf(ErrInsufficientInput, "monotone chain needs at least 2 points, got %d", len(sorted))
	}

	lower := make(PointStack, 0, len(sorted))
	for _, p := range sorted {
		pushChainPoint(&lower, p)
	}

	upper := make(PointStack, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		pushChainPoint(&upper, sorted[i])
	}

	// All points identical
	if lower.Len() == 1 {
		return []Point{lower[0]}, nil
	}

	// The last point of each chain is the first point of the other
	hull := make([]Point, 0, lower.Len()+upper.Len()-2)
	hull = append(hull, lower[:lower.Len()-1]...)
	hull = append(hull, upper[:upper.Len()-1]...)
	return hull, nil
}

func pushChainPoint(chain *PointStack, p Point) {
	// Adjacent duplicates are suppressed before they can be appended
	if top, ok := chain.Peek(); ok && top == p {
		return
	}
	for chain.Len() >= 2 {
		last, _ := chain.Peek()
		secondLast, _ := chain.PeekSecond()
		if Orientation(secondLast, last, p) != LeftTurn {
			chain.Pop()
		} else {
			break
		}
	}
	chain.Push(p)
}
