package matrix

import "fmt"

// matrixErrorf wraps an underlying sentinel with method and index context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense, row-major grid of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order,
// so element (i, j) lives at data[i*c+j].
type Matrix[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New creates a rows×cols matrix with every element set to the zero value
// of T. Zero dimensions are legal and yield an empty matrix; negative
// dimensions return ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from a slice of rows. The result has
// len(rows) rows and as many columns as the longest input row; shorter
// rows are padded on the right with the zero value of T. The input
// slices are copied, never retained.
// Complexity: O(rows*cols) time and memory.
func FromRows[T any](rows [][]T) *Matrix[T] {
	r := len(rows)
	c := 0
	for _, row := range rows { // widest row fixes the column count
		if len(row) > c {
			c = len(row)
		}
	}
	m := &Matrix[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:i*c+len(row)], row) // tail stays at the zero value
	}

	return m
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.c
}

// Size returns the dimensions as (rows, cols).
// Complexity: O(1).
func (m *Matrix[T]) Size() (rows, cols int) {
	return m.r, m.c
}

// offset computes the flat index of (row, col) without bounds checking.
// Callers must have validated the indices.
func (m *Matrix[T]) offset(row, col int) int {
	return row*m.c + col
}

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped with call context) on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, matrixErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange (wrapped with call context) on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Transpose returns a new cols×rows matrix whose (j, i) element equals
// the receiver's (i, j). The receiver is unchanged.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := &Matrix[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: data}
}
