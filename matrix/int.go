package matrix

import (
	"math/big"
	"strings"
)

// Int is a row-major matrix of arbitrary-precision integers.
// Entries are owned by the matrix; At returns copies and Set copies in.
type Int struct {
	r, c int
	data []big.Int
}

// NewInt creates an r×c Int matrix with every entry zero.
// Complexity: O(r*c).
func NewInt(rows, cols int) (*Int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Int{r: rows, c: cols, data: make([]big.Int, rows*cols)}, nil
}

// IntFromRows builds an Int from int64 row literals.
func IntFromRows(rows [][]int64) (*Int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewInt(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.data[i*m.c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Int) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Int) Cols() int { return m.c }

func (m *Int) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, indexErrorf("Int", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the entry at (row, col).
func (m *Int) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(&m.data[idx]), nil
}

// Set stores a copy of v at (row, col); a nil v stores zero.
func (m *Int) Set(row, col int, v *big.Int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		m.data[idx].SetInt64(0)
		return nil
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt64 stores v at (row, col).
func (m *Int) SetInt64(row, col int, v int64) error {
	return m.Set(row, col, big.NewInt(v))
}

// Int64s converts the matrix into nested int64 slices.
// Returns ErrOverflow if any entry does not fit.
func (m *Int) Int64s() ([][]int64, error) {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		for j := 0; j < m.c; j++ {
			v := &m.data[i*m.c+j]
			if !v.IsInt64() {
				return nil, indexErrorf("Int", "Int64s", i, j, ErrOverflow)
			}
			out[i][j] = v.Int64()
		}
	}

	return out, nil
}

// Equal reports whether m and other have the same shape and entries.
func (m *Int) Equal(other *Int) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(&other.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders one row per line with right-aligned columns.
func (m *Int) String() string {
	cells := make([]string, len(m.data))
	width := 0
	for i := range m.data {
		cells[i] = m.data[i].String()
		width = max(width, len(cells[i]))
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := cells[i*m.c+j]
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
