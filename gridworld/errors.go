package gridworld

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("gridworld: width and height must be positive")
	// ErrBadWeight indicates a non-positive edge weight option.
	ErrBadWeight = errors.New("gridworld: edge weight must be positive")
	// ErrOutOfBounds indicates cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridworld: cell coordinates out of bounds")
)
