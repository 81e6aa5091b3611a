package bacteria

import "errors"

var (
	// ErrInvalidCount is returned when the circle count is not positive.
	ErrInvalidCount = errors.New("bacteria: circle count must be positive")

	// ErrEmptyPalette is returned when no colors are available for the circles.
	ErrEmptyPalette = errors.New("bacteria: palette must hold at least one color")

	// ErrInvalidSpeed is returned when the growth speed is negative.
	ErrInvalidSpeed = errors.New("bacteria: growth speed must not be negative")

	// ErrInvalidScale is returned when the render scale factor is not positive.
	ErrInvalidScale = errors.New("bacteria: scale must be positive")
)
