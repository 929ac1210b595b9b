package gcb

import (
	"fmt"
)

// moveRel moves by p relative to the current position.
// NOTE: moveRel does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) moveRel(p BetterPoint[RelativePos]) *GCodeBuilder {
	target := b.currentP.Add(Redefine[HardwareAbsolutePos](p))
	if err := b.validateHwAbs(target); err != nil {
		return b.fail(err)
	}

	b.PushCommand(Command{
		Code: GCodeMove,
		Args: []Arg{
			{"X", p.X},
			{"Y", p.Y},
		},
		LineComment: fmt.Sprintf("move to x %f y %f", target.X, target.Y),
	})

	b.currentP = target

	return b
}

// Move moves to absolute position given
// NOTE: Move calls moveRel so does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) Move(p BetterPoint[AbsolutePos]) *GCodeBuilder {
	hw := b.translate(p)
	if err := b.validateHwAbs(hw); err != nil {
		return b.fail(err)
	}

	return b.moveRel(b.absToRel(hw))
}

// Comment writes comment to GCode.
func (b *GCodeBuilder) Comment(comment string) *GCodeBuilder {
	return b.PushCommand(Command{
		LineComment: comment,
	})
}

func (b *GCodeBuilder) Commentf(format string, args ...interface{}) *GCodeBuilder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Separator is for nice code layout
func (b *GCodeBuilder) Separator() *GCodeBuilder {
	b.Comment("")
	return b
}

// DrawLine draws a line from p0 to p1.
func (b *GCodeBuilder) DrawLine(p0, p1 BetterPoint[AbsolutePos]) *GCodeBuilder {
	return b.DrawLines(p0, p1)
}

// DrawLines draws a polyline through path with the pen down the whole way.
func (b *GCodeBuilder) DrawLines(path ...BetterPoint[AbsolutePos]) *GCodeBuilder {
	if len(path) == 0 {
		return b.fail(ErrEmptyPath)
	}

	b.Commentf("BEGIN DrawLines(%d points)", len(path))

	if !b.continousLine {
		// 1.1: go to the start
		b.Move(path[0])
		// 1.2: start drawing
		b.Down()
	} else if !path[0].Near(b.Current()) {
		return b.fail(fmt.Errorf("%w: %v != %v", ErrInvalidContinousLineContinuation, path[0], b.Current()))
	}

	// 1.3: draw
	for _, p := range path[1:] {
		b.Move(p)
	}

	// 1.4: stop drawing
	if !b.continousLine {
		b.Up()
	}

	b.Commentf("END DrawLines(%d points)", len(path))

	return b
}
