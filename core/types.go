// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
type Vertex struct {
	// ID uniquely identifies the vertex (an element name in the KL digraph).
	ID string

	// Order is the 0-based insertion position, used for deterministic enumeration.
	Order int
}

// Edge is a directed connection From → To.
type Edge struct {
	// ID is "e<n>" with n the creation sequence number.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the multiplicity carried by the edge (zero in unweighted graphs).
	// In the KL digraph it is the coefficient of C_To in C_From·C_s at q = 1.
	Weight int64

	// Label is free-form provenance, e.g. the generator that produced the edge.
	Label string

	seq uint64 // creation sequence number behind ID
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures an individual edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeLabel attaches a provenance label to the edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the in-memory graph.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// configuration flags (immutable after NewGraph)
	weighted   bool
	allowMulti bool
	allowLoops bool

	// storage
	edgeSeq  uint64
	vertices map[string]*Vertex
	order    []string // vertex IDs in insertion order
	edges    map[string]*Edge

	// adjacency[from][to] = edge IDs in creation order
	adjacency map[string]map[string][]string
}

// NewGraph creates an empty directed Graph. By default it is unweighted,
// without loops and without parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
