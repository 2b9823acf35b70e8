package slidegame

import (
	"fmt"

	"github.com/katavel/gridmat/matrix"
)

// Game owns a tile board and the turn/score bookkeeping around it.
// Movement rules live behind the Slider interface, so the same shell
// drives any 2048-like variant.
type Game struct {
	rows, cols int
	board      *matrix.Matrix[int]
	slider     Slider
	turns      int
}

// New creates a Game with a zero-filled board and the given Slider.
// By default the board is DefaultBoardRows×DefaultBoardCols.
// Returns ErrNilSlider when s is nil; board allocation errors
// (e.g. a negative WithBoardSize) are passed through wrapped.
// Complexity: O(rows*cols).
func New(s Slider, opts ...Option) (*Game, error) {
	if s == nil {
		return nil, fmt.Errorf("slidegame.New: %w", ErrNilSlider)
	}
	g := &Game{rows: DefaultBoardRows, cols: DefaultBoardCols, slider: s}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	board, err := matrix.New[int](g.rows, g.cols)
	if err != nil {
		return nil, fmt.Errorf("slidegame.New: %w", err)
	}
	g.board = board

	return g, nil
}

// Board returns the live board. Writes through it change the game state;
// that is how callers seed starting tiles.
// Complexity: O(1).
func (g *Game) Board() *matrix.Matrix[int] {
	return g.board
}

// Turns reports how many slides have completed successfully.
// Complexity: O(1).
func (g *Game) Turns() int {
	return g.turns
}

// Score is the sum of every tile currently on the board.
// Complexity: O(rows*cols).
func (g *Game) Score() int {
	sum := 0
	it := g.board.Iter()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		sum += el
	}

	return sum
}

// Slide applies one move in the given direction. A fresh zero-filled
// board is handed to the Slider as dst; on success it becomes the
// current board and the turn counter advances. On any error, the board
// and the turn counter stay untouched.
// Returns ErrBadDirection for values outside Left..Down.
// Complexity: O(rows*cols) plus the Slider's own work.
func (g *Game) Slide(dir Direction) error {
	dst, err := matrix.New[int](g.rows, g.cols)
	if err != nil {
		return fmt.Errorf("slidegame.Slide(%s): %w", dir, err)
	}

	switch dir {
	case Left:
		err = g.slider.SlideLeft(g.board, dst)
	case Right:
		err = g.slider.SlideRight(g.board, dst)
	case Up:
		err = g.slider.SlideUp(g.board, dst)
	case Down:
		err = g.slider.SlideDown(g.board, dst)
	default:
		return fmt.Errorf("slidegame.Slide(%d): %w", int(dir), ErrBadDirection)
	}
	if err != nil {
		return fmt.Errorf("slidegame.Slide(%s): %w", dir, err)
	}

	// Adopt the new board only after a clean slide.
	g.board = dst
	g.turns++

	return nil
}
