package hilbert

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Move -linecomment

// Move is a single unit step along the curve.
type Move uint8

const (
	// Up - (0, +1)
	Up Move = iota // u
	// Right - (+1, 0)
	Right // r
	// Down - (0, -1)
	Down // d
	// Left - (-1, 0)
	Left // l
)

// MoveEnum maps the one-letter form of a move back to it.
var MoveEnum = func() map[string]Move {
	m := make(map[string]Move)
	for i := Up; i <= Left; i++ {
		m[i.String()] = i
	}
	return m
}()

var (
	turnRight = [...]Move{Up: Right, Right: Up, Down: Left, Left: Down}
	turnLeft  = [...]Move{Up: Left, Right: Down, Down: Right, Left: Up}
	deltas    = [...]Point{Up: {0, 1}, Right: {1, 0}, Down: {0, -1}, Left: {-1, 0}}
)

// TurnRight returns the orientation m takes in the first quarter of the next order.
// It mirrors m across the y = x diagonal.
func (m Move) TurnRight() Move {
	return turnRight[m]
}

// TurnLeft returns the orientation m takes in the last quarter of the next order.
// It mirrors m across the y = -x diagonal.
func (m Move) TurnLeft() Move {
	return turnLeft[m]
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	return (m + 2) % 4
}

// Delta returns the coordinate change caused by m.
func (m Move) Delta() Point {
	return deltas[m]
}

// Sequence is a printable move sequence.
type Sequence []Move

// String returns moves in their compact form, e.g. "urd".
func (ms Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(ms))
	for _, m := range ms {
		sb.WriteString(m.String())
	}

	return sb.String()
}

// ParseMoves parses the compact form produced by Sequence.String.
func ParseMoves(s string) ([]Move, error) {
	result := make([]Move, 0, len(s))
	for i, r := range s {
		m, ok := MoveEnum[string(r)]
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidMove, r, i)
		}

		result = append(result, m)
	}

	return result, nil
}
