// Package dfs implements depth‑first search on core.Graph together with the
// reachability closure built on top of it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every vertex (WithFullTraversal)
//   - Closure: the reflexive-transitive reachability relation of a directed
//     graph as a matrix.Bool indexed by a caller-supplied vertex order.
//     R[i][j] is true iff order[i] is reachable from order[j].
//
// Why:
//   - A preorder given by generating edges (x → y when y occurs in some
//     product computed from x) is exactly the reachability relation of that
//     digraph; Closure turns the digraph into a comparison table.
//
// Key Types:
//
//   - Option: functional options for DFS and Closure (WithProgress is
//     Closure-only)
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:      Time O(V+E), Memory O(V)
//   - Closure:  Time O(V·(V+E)), Memory O(V²) for the result
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID (or a listed order ID) not in graph
//   - ErrDuplicateVertex      order lists a vertex twice
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
