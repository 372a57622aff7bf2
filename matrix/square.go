// Package matrix provides the dense tables behind the shortest-path and
// tour solvers. Square is a concrete, row-major n×n matrix storing elements
// in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Square is a row-major n×n matrix of W values.
// n is the order and data holds n*n elements in row-major order.
type Square[W any] struct {
	n    int // order
	data []W // flat backing storage, length == n*n
}

// NewSquare creates an n×n matrix with every cell set to fill.
// n == 0 is valid and yields an empty matrix.
// Complexity: O(n²) time and memory.
func NewSquare[W any](n int, fill W) (*Square[W], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSquare(%d): %w", n, ErrBadShape)
	}

	data := make([]W, n*n)
	for i := range data {
		data[i] = fill
	}

	return &Square[W]{n: n, data: data}, nil
}

// NewSquareFromRows copies rows into a Square. Every row must have len(rows)
// entries, otherwise ErrNonSquare is returned.
// Complexity: O(n²).
func NewSquareFromRows[W any](rows [][]W) (*Square[W], error) {
	n := len(rows)
	data := make([]W, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewSquareFromRows: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		data = append(data, row...)
	}

	return &Square[W]{n: n, data: data}, nil
}

// Order returns n.
func (m *Square[W]) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Square[W]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Square[W]) At(row, col int) (W, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero W
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns w at (row, col).
// Complexity: O(1).
func (m *Square[W]) Set(row, col int, w W) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = w

	return nil
}

// Rows returns a deep copy of the matrix as a slice of rows.
// Complexity: O(n²).
func (m *Square[W]) Rows() [][]W {
	out := make([][]W, m.n)
	for i := range out {
		out[i] = make([]W, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(n²).
func (m *Square[W]) Clone() *Square[W] {
	data := make([]W, len(m.data))
	copy(data, m.data)

	return &Square[W]{n: m.n, data: data}
}

// String implements fmt.Stringer for debugging, one bracketed row per line.
func (m *Square[W]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
