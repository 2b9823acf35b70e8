package matrix

import "fmt"

// Views are lightweight, read-only windows into a Matrix. Each view keeps
// a pointer to its base matrix plus a cursor; it never copies elements
// until ToMatrix materializes it into a fresh, independent Matrix.
// Stepping with Next is a single forward pass: once the cursor reaches
// the end the view is exhausted. ToMatrix ignores the cursor and always
// materializes the full extent of the view.

// RowView is a read-only view over one row of a Matrix.
type RowView[T any] struct {
	m   *Matrix[T]
	row int        // fixed row index, validated at construction
	cur int        // next column Next will yield
}

// RowView returns a view over row `row`.
// Returns ErrOutOfRange (wrapped with call context) if the index is invalid.
// Complexity: O(1); no elements are copied.
func (m *Matrix[T]) RowView(row int) (*RowView[T], error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Matrix.RowView(%d): %w", row, ErrOutOfRange)
	}

	return &RowView[T]{m: m, row: row}, nil
}

// Len returns the number of elements in the row.
// Complexity: O(1).
func (v *RowView[T]) Len() int {
	return v.m.c
}

// At retrieves the element at column col of the viewed row.
// Complexity: O(1).
func (v *RowView[T]) At(col int) (T, error) {
	return v.m.At(v.row, col)
}

// Next yields the next element of the row and reports whether one was
// available. After the last element it returns the zero value and false.
// Complexity: O(1) per step.
func (v *RowView[T]) Next() (T, bool) {
	if v.cur >= v.m.c {
		var zero T

		return zero, false
	}
	el := v.m.data[v.m.offset(v.row, v.cur)]
	v.cur++

	return el, true
}

// ToMatrix materializes the row as a new 1×cols matrix, independent of
// the base matrix and of the view's cursor position.
// Complexity: O(cols) time and memory.
func (v *RowView[T]) ToMatrix() *Matrix[T] {
	c := v.m.c
	out := &Matrix[T]{r: 1, c: c, data: make([]T, c)}
	copy(out.data, v.m.data[v.row*c:(v.row+1)*c])

	return out
}

// ColView is a read-only view over one column of a Matrix.
type ColView[T any] struct {
	m   *Matrix[T]
	col int        // fixed column index, validated at construction
	cur int        // next row Next will yield
}

// ColView returns a view over column `col`.
// Returns ErrOutOfRange (wrapped with call context) if the index is invalid.
// Complexity: O(1); no elements are copied.
func (m *Matrix[T]) ColView(col int) (*ColView[T], error) {
	if col < 0 || col >= m.c {
		return nil, fmt.Errorf("Matrix.ColView(%d): %w", col, ErrOutOfRange)
	}

	return &ColView[T]{m: m, col: col}, nil
}

// Len returns the number of elements in the column.
// Complexity: O(1).
func (v *ColView[T]) Len() int {
	return v.m.r
}

// At retrieves the element at row `row` of the viewed column.
// Complexity: O(1).
func (v *ColView[T]) At(row int) (T, error) {
	return v.m.At(row, v.col)
}

// Next yields the next element of the column and reports whether one was
// available. After the last element it returns the zero value and false.
// Complexity: O(1) per step.
func (v *ColView[T]) Next() (T, bool) {
	if v.cur >= v.m.r {
		var zero T

		return zero, false
	}
	el := v.m.data[v.m.offset(v.cur, v.col)]
	v.cur++

	return el, true
}

// ToMatrix materializes the column as a new rows×1 matrix, independent of
// the base matrix and of the view's cursor position.
// Complexity: O(rows) time and memory.
func (v *ColView[T]) ToMatrix() *Matrix[T] {
	r := v.m.r
	out := &Matrix[T]{r: r, c: 1, data: make([]T, r)}
	for i := 0; i < r; i++ {
		out.data[i] = v.m.data[v.m.offset(i, v.col)]
	}

	return out
}

// DiagView is a read-only view over the main diagonal of a square Matrix.
type DiagView[T any] struct {
	m   *Matrix[T]
	cur int        // next diagonal index Next will yield
}

// DiagView returns a view over the main diagonal.
// Returns ErrNonSquare (wrapped with call context) when rows != cols.
// Complexity: O(1); no elements are copied.
func (m *Matrix[T]) DiagView() (*DiagView[T], error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Matrix.DiagView: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return &DiagView[T]{m: m}, nil
}

// Len returns the number of diagonal elements.
// Complexity: O(1).
func (v *DiagView[T]) Len() int {
	return v.m.r
}

// At retrieves the k-th diagonal element, i.e. the base matrix's (k, k).
// Complexity: O(1).
func (v *DiagView[T]) At(k int) (T, error) {
	return v.m.At(k, k)
}

// Next yields the next diagonal element and reports whether one was
// available. After the last element it returns the zero value and false.
// Complexity: O(1) per step.
func (v *DiagView[T]) Next() (T, bool) {
	if v.cur >= v.m.r {
		var zero T

		return zero, false
	}
	el := v.m.data[v.m.offset(v.cur, v.cur)]
	v.cur++

	return el, true
}

// ToMatrix materializes the diagonal as a new n×n matrix whose diagonal
// holds the viewed elements and whose off-diagonal entries are the zero
// value of T. Independent of the base matrix and of the cursor position.
// Complexity: O(n²) time and memory.
func (v *DiagView[T]) ToMatrix() *Matrix[T] {
	n := v.m.r
	out := &Matrix[T]{r: n, c: n, data: make([]T, n*n)}
	for k := 0; k < n; k++ {
		out.data[out.offset(k, k)] = v.m.data[v.m.offset(k, k)]
	}

	return out
}

// Iter is a single-pass iterator over every element of a Matrix in
// row-major order.
type Iter[T any] struct {
	m   *Matrix[T]
	idx int        // next flat index Next will yield
}

// Iter returns an iterator over all elements, row by row.
// Complexity: O(1); no elements are copied.
func (m *Matrix[T]) Iter() *Iter[T] {
	return &Iter[T]{m: m}
}

// Next yields the next element in row-major order and reports whether one
// was available. After the last element it returns the zero value and false.
// Complexity: O(1) per step.
func (it *Iter[T]) Next() (T, bool) {
	if it.idx >= len(it.m.data) {
		var zero T

		return zero, false
	}
	el := it.m.data[it.idx]
	it.idx++

	return el, true
}
