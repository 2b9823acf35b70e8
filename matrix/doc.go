// Package matrix provides a generic, dense 2D container with lazy views
// over its rows, columns and diagonal, plus aligned table rendering.
//
// What:
//
//   - Matrix[T] stores rows×cols elements of any type T in one flat,
//     row-major slice; element (i, j) lives at index i*cols+j.
//   - New allocates a zero-filled matrix; FromRows adopts a [][]T,
//     padding short rows with T's zero value so construction is total.
//   - RowView, ColView, DiagView and Iter walk the data lazily, one
//     element per Next call, without copying.
//   - Each view materializes into an owned Matrix via ToMatrix:
//     a row becomes 1×cols, a column rows×1, a diagonal n×n.
//   - String renders a bordered table with right-aligned columns sized
//     to their widest element.
//
// Why:
//
//   - Game boards, heightmaps, tile worlds: any dense grid of values.
//   - Cheap row/column/diagonal scans without slicing or reshaping.
//   - One container for ints, strings or structs instead of one per type.
//
// Complexity:
//
//   - New, FromRows, Transpose, Clone: O(rows×cols).
//   - At, Set, view construction, each Next step: O(1).
//   - RowView.ToMatrix: O(cols); ColView.ToMatrix: O(rows);
//     DiagView.ToMatrix: O(n²).
//   - String: O(rows×cols) formatting passes.
//
// Errors:
//
//   - ErrBadShape: a requested dimension is negative.
//   - ErrOutOfRange: a row or column index is outside valid bounds.
//   - ErrNonSquare: DiagView requested on a non-square matrix.
//
// Matrices are mutable through Set; views read through to the base
// matrix and are meant to be consumed before it changes.
package matrix
