package slidegame

import "errors"

var (
	// ErrNilSlider indicates that New was given no Slider implementation.
	ErrNilSlider = errors.New("slidegame: slider is nil")
	// ErrBadDirection indicates a Direction value outside Left..Down.
	ErrBadDirection = errors.New("slidegame: unknown direction")
)
