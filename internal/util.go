package internal

import "sort"

// Lexicographic order: by X, then by Y. Sorting by X alone is not enough for
// the monotone chain, which needs vertical runs ordered too.
func Less(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Lexicographic order over all three coordinates
func Less3(a, b Point3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool { return Less(points[i], points[j]) })
}

func SortPoints3(points []Point3) {
	sort.Slice(points, func(i, j int) bool { return Less3(points[i], points[j]) })
}

// Remove adjacent duplicates in place. On a sorted slice this removes all
// duplicates.
func Dedup(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	result := points[:1]
	for _, p := range points[1:] {
		if p != result[len(result)-1] {
			result = append(result, p)
		}
	}
	return result
}

func Dedup3(points []Point3) []Point3 {
	if len(points) == 0 {
		return points
	}
	result := points[:1]
	for _, p := range points[1:] {
		if p != result[len(result)-1] {
			result = append(result, p)
		}
	}
	return result
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The element under the top of the stack
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s *PointStack) Len() int {
	return len(*s)
}
