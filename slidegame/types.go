// Package slidegame defines the directions, collaborator interfaces and
// options for the sliding-game shell.
package slidegame

import "github.com/katavel/gridmat/matrix"

// Default board dimensions, the classic 4×4 of 2048-style games.
const (
	DefaultBoardRows = 4
	DefaultBoardCols = 4
)

// Direction enumerates the four slide directions on a board.
type Direction int

// Enum values (stable ordering).
const (
	Left Direction = iota
	Right
	Up
	Down
)

// String provides a readable identifier for logs and errors.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Slider carries the game's movement and merge rules. Each method reads
// the current board from src and writes the next board into dst, a
// zero-filled matrix of the same shape allocated by the Game. The Game
// adopts dst only when the call returns nil.
//
// Implementations decide everything rule-specific: how tiles compact,
// when equal tiles merge, what happens on a blocked move.
type Slider interface {
	// SlideLeft compacts the board towards the left edge.
	SlideLeft(src, dst *matrix.Matrix[int]) error
	// SlideRight compacts the board towards the right edge.
	SlideRight(src, dst *matrix.Matrix[int]) error
	// SlideUp compacts the board towards the top edge.
	SlideUp(src, dst *matrix.Matrix[int]) error
	// SlideDown compacts the board towards the bottom edge.
	SlideDown(src, dst *matrix.Matrix[int]) error
}

// Option configures behavior of a Game before creation.
type Option func(g *Game)

// WithBoardSize overrides the default 4×4 board dimensions.
func WithBoardSize(rows, cols int) Option {
	return func(g *Game) { g.rows, g.cols = rows, cols }
}
