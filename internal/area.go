package internal

import "math"

// Area of a polygon by the shoelace formula. The vertices must already be in
// boundary order, either clockwise or counterclockwise; the sign is discarded.
// Points out of order give a meaningless result. Use AreaReorder if the order
// is unknown.
func Area(hull []Point) float64 {
	var sum float64
	for i, p := range hull {
		next := hull[CircularIndex(i+1, len(hull))]
		sum += p.X*next.Y - p.Y*next.X
	}
	return math.Abs(sum / 2)
}

// Recover the boundary order by gift wrapping, then compute the area. Points
// inside the hull are dropped by the reorder.
func AreaReorder(points []Point) float64 {
	return Area(Reorder(points))
}
