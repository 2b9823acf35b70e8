// Package gridmat is a small, generic toolkit for dense 2-D grids —
// matrices of any element type, lazy views over their rows, columns and
// diagonals, and a minimal shell for grid-based sliding games.
//
// 🚀 What is gridmat?
//
//	A compact, generics-first library that brings together:
//		• Matrix[T]: dense row-major storage for any element type
//		• Views: Row, Column, Diagonal & full-matrix iteration, all lazy
//		• Materialization: turn any view back into an owned Matrix
//		• Rendering: aligned, bordered table output via fmt.Stringer
//		• slidegame: a board/turn/score shell for 2048-style games
//
// ✨ Why choose gridmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – explicit sentinel errors, no panics on bad indices
//   - Pure Go – no cgo, no hidden deps
//   - Generic – one Matrix type for ints, strings, structs, anything
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    — the generic Matrix[T] container, its views & rendering
//	slidegame/ — board lifecycle, turns and scoring for sliding games
//
// Quick ASCII example:
//
//	| 1     2  3 |
//	| 4  -100  0 |
//	| 7     8  9 |
//
//	is how a 3×3 integer matrix renders: right-aligned columns sized to
//	their widest element, one bordered line per row.
//
// Dive into examples/ for runnable demos of construction, views and
// the game shell.
//
//	go get github.com/katavel/gridmat/matrix
package gridmat
