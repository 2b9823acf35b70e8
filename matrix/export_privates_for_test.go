package matrix

// Test-only bridges exposing private indexing internals to matrix_test,
// so white-box invariants can be checked without widening the prod API.

// IndexOf_TestOnly forwards to the private bounds-checked index mapper.
func IndexOf_TestOnly[T any](m *Matrix[T], row, col int) (int, error) {
	return m.indexOf(row, col)
}

// Offset_TestOnly forwards to the private unchecked flat-offset computation.
func Offset_TestOnly[T any](m *Matrix[T], row, col int) int {
	return m.offset(row, col)
}

// DataLen_TestOnly reports the length of the flat backing slice.
func DataLen_TestOnly[T any](m *Matrix[T]) int {
	return len(m.data)
}
