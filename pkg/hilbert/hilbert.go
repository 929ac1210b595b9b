// Package hilbert generates the Hilbert space-filling curve as a sequence of
// unit moves and maps it onto integer grid coordinates.
//
// The curve of order n starts at (0, 0), ends at (2^n-1, 0) and visits every
// cell of the 2^n x 2^n grid exactly once. Its move sequence has 4^n-1 moves,
// so memory and rendering cost grow fast: order 10 already has over a
// million points.
package hilbert

import (
	"fmt"
	"strconv"
)

// MaxIteration is the largest order whose move count fits in an int.
const MaxIteration = (strconv.IntSize - 2) / 2

// Point is a cell of the curve's grid.
type Point struct {
	X, Y int
}

// Add returns p moved by other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Moves returns the move sequence of the curve of order iteration.
// Order 0 is the empty sequence.
func Moves(iteration int) ([]Move, error) {
	if iteration < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeIteration, iteration)
	}

	if iteration > MaxIteration {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrIterationTooLarge, iteration, MaxIteration)
	}

	return moves(iteration), nil
}

// moves substitutes the previous order into the four quarters of the grid:
// lower-left (mirrored), upper-left, upper-right and lower-right (mirrored),
// joined by an up, a right and a down step.
func moves(iteration int) []Move {
	if iteration == 0 {
		return []Move{}
	}

	previous := moves(iteration - 1)
	result := make([]Move, 0, 4*len(previous)+3)

	for _, m := range previous {
		result = append(result, m.TurnRight())
	}

	result = append(result, Up)
	result = append(result, previous...)
	result = append(result, Right)
	result = append(result, previous...)
	result = append(result, Down)

	for _, m := range previous {
		result = append(result, m.TurnLeft())
	}

	return result
}

// Coordinates walks moves from the origin and returns every visited point,
// the origin included.
func Coordinates(moves []Move) []Point {
	result := make([]Point, 1, len(moves)+1)
	for _, m := range moves {
		result = append(result, result[len(result)-1].Add(m.Delta()))
	}

	return result
}

// Curve returns the coordinates of the curve of order iteration.
func Curve(iteration int) ([]Point, error) {
	ms, err := Moves(iteration)
	if err != nil {
		return nil, err
	}

	return Coordinates(ms), nil
}

// Bounds returns the smallest and the largest coordinates of path.
// An empty path has zero bounds.
func Bounds(path []Point) (min, max Point) {
	if len(path) == 0 {
		return min, max
	}

	min, max = path[0], path[0]
	for _, p := range path[1:] {
		switch {
		case p.X < min.X:
			min.X = p.X
		case p.X > max.X:
			max.X = p.X
		}

		switch {
		case p.Y < min.Y:
			min.Y = p.Y
		case p.Y > max.Y:
			max.Y = p.Y
		}
	}

	return min, max
}
