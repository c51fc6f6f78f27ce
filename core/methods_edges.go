// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"slices"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from → to and returns its ID.
// Missing endpoints are added as vertices (from first, then to).
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure endpoints exist.
//  3. Reject a parallel edge unless multi-edges are enabled.
//  4. Allocate the next edge ID, apply options, store and link adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge constraint
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link
	e := &Edge{From: from, To: to, Weight: weight}
	e.seq, e.ID = g.nextEdgeID()
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.adjacency[from][to] = append(g.adjacency[from][to], e.ID)

	return e.ID, nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns every edge in creation order.
// The returned pointers refer to live edges; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Edge) int { return compareSeq(a, b) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID reserves the next sequence number; the caller holds g.mu.
func (g *Graph) nextEdgeID() (uint64, string) {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return g.edgeSeq, string(buf)
}

func compareSeq(a, b *Edge) int {
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}
