package internal

import "github.com/pkg/errors"

// The 3D hull is a flat list of triangles with no adjacency. This rebuilds the
// adjacency from shared edges, for verifying the output rather than for use
// during construction.
type EdgeAdjacency map[Edge][]int

func NewEdgeAdjacency(triangles []Triangle) EdgeAdjacency {
	adjacency := make(EdgeAdjacency, len(triangles)*3/2)
	for i, tri := range triangles {
		for _, edge := range tri.Edges() {
			key := edge.Key()
			adjacency[key] = append(adjacency[key], i)
		}
	}
	return adjacency
}

// Every edge must border exactly two triangles, and those two triangles must
// traverse it in opposite directions (consistent winding).
func (adjacency EdgeAdjacency) CheckManifold(triangles []Triangle) error {
	for edge, faces := range adjacency {
		if len(faces) != 2 {
			return errors.Errorf("edge %v borders %d faces", edge, len(faces))
		}
		if traverses(triangles[faces[0]], edge) == traverses(triangles[faces[1]], edge) {
			return errors.Errorf("faces %v and %v wind edge %v the same way", triangles[faces[0]], triangles[faces[1]], edge)
		}
	}
	return nil
}

// Does the triangle go from edge.P1 to edge.P2 (as opposed to P2 to P1)?
func traverses(tri Triangle, edge Edge) bool {
	for _, e := range tri.Edges() {
		if e.P1 == edge.P1 && e.P2 == edge.P2 {
			return true
		}
	}
	return false
}
