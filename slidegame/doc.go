// Package slidegame is a rules-agnostic shell for sliding tile games in
// the 2048 family: it owns the board, the turn counter and the score,
// and delegates every move to a user-supplied Slider.
//
// What:
//
//   - Game wraps a matrix.Matrix[int] board (4×4 by default, tunable
//     via WithBoardSize) together with turn bookkeeping.
//   - Slide(dir) allocates the next board, hands (src, dst) to the
//     Slider method for that Direction, and adopts dst on success.
//   - Score sums every tile on the board; Turns counts clean slides.
//
// Why:
//
//   - Merge rules differ per game variant; keeping them behind the
//     Slider interface lets one shell drive all of them.
//   - The two-board handoff keeps moves transactional: a failed slide
//     leaves the game exactly as it was.
//
// Errors:
//
//   - ErrNilSlider: New called without a Slider implementation.
//   - ErrBadDirection: Slide called with a value outside Left..Down.
//
// See matrix for the board container and its rendering.
package slidegame
