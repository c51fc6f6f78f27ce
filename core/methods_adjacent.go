// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors, NeighborIDs.
// Determinism:
//   - Targets are ordered by vertex insertion Order, then by edge creation.

package core

import "slices"

// Neighbors returns the edges leaving id.
//
// Steps:
//  1. Validate the vertex (ErrVertexNotFound).
//  2. Collect target IDs and sort them by insertion Order.
//  3. Emit edges per target in creation order.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	targets, err := g.sortedTargetsLocked(id)
	if err != nil {
		return nil, err
	}

	out := make([]*Edge, 0, len(targets))
	for _, to := range targets {
		for _, eid := range g.adjacency[id][to] {
			out = append(out, g.edges[eid])
		}
	}

	return out, nil
}

// NeighborIDs returns the distinct vertex IDs adjacent from id, in
// insertion order.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedTargetsLocked(id)
}

// sortedTargetsLocked lists the targets of id by vertex Order.
func (g *Graph) sortedTargetsLocked(id string) ([]string, error) {
	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	targets := make([]string, 0, len(row))
	for to, ids := range row {
		if len(ids) > 0 {
			targets = append(targets, to)
		}
	}
	slices.SortFunc(targets, func(a, b string) int {
		return g.vertices[a].Order - g.vertices[b].Order
	})

	return targets, nil
}
