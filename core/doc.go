// Package core provides the in-memory directed Graph used to hold derived
// relations between group elements, most notably the Kazhdan–Lusztig
// digraph whose reachability closure yields the right order on a Coxeter
// group.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted), e.g. the multiplicity
//     of C_y in C_x·C_s at q = 1
//   - Parallel edges (WithMultiEdges), e.g. one edge per generator realizing
//     the same pair of elements
//   - Self-loops (WithLoops), e.g. x → x when C_x·C_s = (q+q⁻¹)·C_x
//   - Per-edge labels (WithEdgeLabel) recording which generator produced it
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order. Callers that insert in
//     canonical (length, name) order get canonical enumeration back.
//   - Neighbors() and NeighborIDs() follow the insertion order of targets,
//     then Edge.ID creation order.
//   - Edge IDs are monotonic: "e1", "e2", …
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertices, edges and adjacency; all
//     methods are safe for concurrent use.
//
// Complexity:
//
//	AddVertex, HasVertex, HasEdge, AddEdge   O(1) amortized
//	Vertices, Edges                          O(V), O(E log E)
//	Neighbors(id), NeighborIDs(id)           O(d log d)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
