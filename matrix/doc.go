// Package matrix provides small dense, row-major matrices used to report
// results over a finite index set, such as the elements of a Coxeter group
// in canonical order.
//
// What:
//
//   - Bool: an r×c boolean matrix, used for reachability relations
//     (R[i][j] == true iff i is reachable from j).
//   - Int:  an r×c matrix of arbitrary-precision integers, used for
//     change-of-basis and structure-constant tables evaluated at q = 1.
//
// Both types store elements in a flat slice and expose bounds-checked
// At/Set that return ErrOutOfRange instead of panicking.
//
// Complexity:
//
//   - NewBool, NewInt:  O(r*c) time and memory.
//   - At, Set:          O(1).
//   - Equal, String:    O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions  requested rows or cols ≤ 0.
//   - ErrOutOfRange         row or column outside the matrix.
//   - ErrDimensionMismatch  a row literal of the wrong width.
//   - ErrOverflow           an entry does not fit into int64 (Int64s).
package matrix
