package matrix

import "errors"

// Sentinel errors for the matrix package. Methods wrap them with call
// context via fmt.Errorf("...: %w", Err); callers match with errors.Is.
var (
	// ErrBadShape indicates a requested shape with a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")
	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
