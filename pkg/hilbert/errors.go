package hilbert

import "errors"

var (
	ErrNegativeIteration = errors.New("iteration must be a non-negative integer")
	ErrInvalidMove       = errors.New("invalid move")
	ErrIterationTooLarge = errors.New("iteration too large")
)
