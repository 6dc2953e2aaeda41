package internal

// Jarvis march (gift wrapping) over an unordered set of points. This is the
// merge step of Chan's algorithm, where the input is the concatenation of the
// sub-hulls.
//
// The walk starts at points[0], which the caller must make sure is a hull
// vertex (the lexicographically smallest point always is; see Reorder). From
// each vertex, the next one is the candidate q such that every other point lies
// strictly to the left of current->q. A point collinear with current->q is only
// tolerated when it lies on the segment between them, so among collinear
// candidates the farthest wins and the nearer ones are rejected.
//
// The walk stops when it returns to the start, or when there is no next vertex,
// in which case whatever was built so far is returned. The result is
// counterclockwise. O(n*h) for h hull vertices.
func GiftWrap(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	start := points[0]
	result := []Point{start}
	visited := PointSet{start: {}}
	current := start
	for range points {
		next, ok := selectNext(points, current)
		if !ok || next == start {
			break
		}
		// Only possible if the start was not actually a hull vertex. We'd be
		// going around in circles.
		if visited.Contains(next) {
			break
		}
		visited.Add(next)
		result = append(result, next)
		current = next
	}
	return result
}

// Find the next hull vertex after current. Returns false if every point is
// equal to current.
func selectNext(points []Point, current Point) (Point, bool) {
	var candidate Point
	found := false
	for _, p := range points {
		if p == current {
			continue
		}
		if !found {
			candidate = p
			found = true
			continue
		}
		switch Orientation(current, candidate, p) {
		case RightTurn:
			// p is outside current->candidate, so the candidate can't be a hull edge
			candidate = p
		case Collinear:
			if !onSegment(current, candidate, p) && distanceSquared(current, p) > distanceSquared(current, candidate) {
				candidate = p
			}
		}
	}
	return candidate, found
}

// Reorder recovers boundary order for an unordered set of points by gift
// wrapping from the lexicographically smallest point, which is always a hull
// vertex.
func Reorder(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	ordered := make([]Point, len(points))
	copy(ordered, points)
	minIndex := 0
	for i, p := range ordered {
		if Less(p, ordered[minIndex]) {
			minIndex = i
		}
	}
	ordered[0], ordered[minIndex] = ordered[minIndex], ordered[0]
	return GiftWrap(ordered)
}
