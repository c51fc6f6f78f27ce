// Sentinel errors of the matrix package. Every message is prefixed with
// "matrix: "; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a row literal whose width differs from the first row.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOverflow indicates an Int entry that does not fit into int64.
	ErrOverflow = errors.New("matrix: entry overflows int64")
)

// indexErrorf wraps err with the method and coordinates that triggered it.
func indexErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}
