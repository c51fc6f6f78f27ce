package matrix

import "strings"

// Bool is a row-major matrix of booleans.
type Bool struct {
	r, c int
	data []bool
}

// NewBool creates an r×c Bool matrix with every entry false.
// Complexity: O(r*c).
func NewBool(rows, cols int) (*Bool, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Bool{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// BoolFromRows builds a Bool from row literals; every row must have the
// width of the first.
func BoolFromRows(rows [][]bool) (*Bool, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewBool(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, ErrDimensionMismatch
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Bool) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Bool) Cols() int { return m.c }

func (m *Bool) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, indexErrorf("Bool", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col).
// Complexity: O(1).
func (m *Bool) At(row, col int) (bool, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Bool) Set(row, col int, v bool) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil if i is out of range.
func (m *Bool) Row(i int) []bool {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]bool, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Transpose returns a new c×r matrix with entries mirrored.
func (m *Bool) Transpose() *Bool {
	t := &Bool{r: m.c, c: m.r, data: make([]bool, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Count returns the number of true entries.
func (m *Bool) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}

// Equal reports whether m and other have the same shape and entries.
func (m *Bool) Equal(other *Bool) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders one row per line as "[1 0 1]".
func (m *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.data[i*m.c+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
