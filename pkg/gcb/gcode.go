// Package gcb provides a highly-abstracted way to generate GCode 2D engravings.
package gcb

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/hilbert/pkg/workspace"
)

type (
	// RelativePos is a position relative to currentX/currentY
	RelativePos float32
	// AbsolutePos describes position absolute on the drawing.
	// starts form 0,0
	AbsolutePos float32
	// HardwareAbsolutePos describes a coordinates on Hardware.
	// This is because our printer has an "offset" from real 0.0 that should be considered (see workspace.Workspace)
	// is AbsolutePos+MinX/MinY
	HardwareAbsolutePos float32
)

const preambleFormat = `;; BEGIN PREAMBUA
M413 S0 ; Disable power loss recovery
M107 ; Fan off
M104 S0 ; Set target temperature
G92 E0 ; Hotend reset
G90 ; Absolute positioning

G28 X Y ; Home X and Y axes

G0 X%d Y%d F5000.0 ; Move to start position (%s)

G91 ; Relative positioning

; START OF PRINT

M204 S2000 ; PRinting and travel speed in mm/s/s

;; END PREABUA

;; BEGIN BUA
`

const postamble = `;; END BUA

;; BEGIN POSTABUA
M84 X Y Z E ; Disable ALL motors
;; END POSTABUA
`

const (
	// BaseDepth is how far (mm) the head travels to put the pen down.
	BaseDepth = 20
)

// GCodeBuilder allows to build GCode. It implements several drawing methods.
// NOTE: all external API for this object uses AbsolutePos - position
// absolute to the drawing (so starting from 0,0 in the workspace corner).
//
// Errors are sticky: the first one stops the builder from emitting anything
// else and is reported by Err.
type GCodeBuilder struct {
	commands      []Command
	area          workspace.Workspace
	depth         RelativePos
	isDrawing     bool
	continousLine bool
	currentP      BetterPoint[HardwareAbsolutePos]
	lineComments  bool
	commentsAbove bool
	err           error
}

// NewGCodeBuilder creates new GCodeBuilder drawing inside area.
func NewGCodeBuilder(area workspace.Workspace) *GCodeBuilder {
	return &GCodeBuilder{
		area:         area,
		currentP:     BetterPt(HardwareAbsolutePos(area.MinX), HardwareAbsolutePos(area.MinY)),
		depth:        BaseDepth,
		lineComments: true,
	}
}

// SetDepth sets how deep the Head should go.
func (b *GCodeBuilder) SetDepth(depth RelativePos) *GCodeBuilder {
	b.depth = depth
	return b
}

// Comments sets whether line comments are printed and whether they go
// on a separate line above their command.
func (b *GCodeBuilder) Comments(lineComments, above bool) *GCodeBuilder {
	b.lineComments = lineComments
	b.commentsAbove = above

	return b
}

// Err returns the first error the builder ran into.
func (b *GCodeBuilder) Err() error {
	return b.err
}

func (b *GCodeBuilder) fail(err error) *GCodeBuilder {
	if b.err == nil {
		b.err = err
		glg.Debugf("gcode builder failed: %v", err)
	}

	return b
}

// PushCommand appends raw commands.
func (b *GCodeBuilder) PushCommand(cmds ...Command) *GCodeBuilder {
	if b.err != nil {
		return b
	}

	b.commands = append(b.commands, cmds...)

	return b
}

// Commands returns the commands pushed so far (without preamble/postamble).
func (b *GCodeBuilder) Commands() []Command {
	return b.commands
}

// Up stops active drawing
func (b *GCodeBuilder) Up() *GCodeBuilder {
	if !b.isDrawing {
		return b.fail(fmt.Errorf("%w: Up called, but not drawing", ErrCantChangeDrawingState))
	}

	b.PushCommand(Command{
		Code:        GCodeMove,
		Args:        []Arg{{"Z", b.depth}},
		LineComment: "stop drawing",
	})

	b.isDrawing = false

	return b
}

// Down starts drawing
func (b *GCodeBuilder) Down() *GCodeBuilder {
	if b.isDrawing {
		return b.fail(fmt.Errorf("%w: Down called, but already drawing", ErrCantChangeDrawingState))
	}

	b.PushCommand(Command{
		Code:        GCodeMove,
		Args:        []Arg{{"Z", -b.depth}},
		LineComment: "start drawing",
	})

	b.isDrawing = true

	return b
}

// BeginContinousLine starts drawing a continous line.
// Every draw command's starting point should be b.Current() (and this will be checked).
// Then, no Up()/Down() will be called automatically.
func (b *GCodeBuilder) BeginContinousLine() *GCodeBuilder {
	if b.continousLine {
		return b.fail(fmt.Errorf("%w: continous line already started", ErrCantChangeDrawingState))
	}

	b.Down()
	b.continousLine = true

	return b
}

// EndContinousLine stops drawing a continous line.
func (b *GCodeBuilder) EndContinousLine() *GCodeBuilder {
	if !b.continousLine {
		return b.fail(fmt.Errorf("%w: no continous line to end", ErrCantChangeDrawingState))
	}

	b.Up()
	b.continousLine = false

	return b
}

// Current returns current position.
func (b *GCodeBuilder) Current() BetterPoint[AbsolutePos] {
	return Redefine[AbsolutePos](b.currentP.Add(BetterPt(HardwareAbsolutePos(-b.area.MinX), HardwareAbsolutePos(-b.area.MinY))))
}

// String returns built GCode.
func (b *GCodeBuilder) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(preambleFormat, b.area.MinX, b.area.MinY, b.area.Name))
	for i := range b.commands {
		cmd := &b.commands[i]
		if b.commentsAbove && cmd.Code != "" && cmd.LineComment != "" && b.lineComments {
			sb.WriteString("; " + cmd.LineComment + "\n")
			sb.WriteString(cmd.String(false) + "\n")

			continue
		}

		if line := cmd.String(b.lineComments); line != "" {
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString(postamble)

	return sb.String()
}

// Dump prints the commands built so far to the debug log.
func (b *GCodeBuilder) Dump() {
	for i := range b.commands {
		glg.Debug(b.commands[i].String(true))
	}
}

func (b *GCodeBuilder) absToRel(p BetterPoint[HardwareAbsolutePos]) BetterPoint[RelativePos] {
	return Redefine[RelativePos](p.Add(b.currentP.Mul(-1)))
}

func (b *GCodeBuilder) validateHwAbs(p BetterPoint[HardwareAbsolutePos]) error {
	minX, minY := HardwareAbsolutePos(b.area.MinX)-samePosEpsilon, HardwareAbsolutePos(b.area.MinY)-samePosEpsilon
	maxX, maxY := HardwareAbsolutePos(b.area.MaxX)+samePosEpsilon, HardwareAbsolutePos(b.area.MaxY)+samePosEpsilon

	switch {
	case p.X < minX, p.X > maxX:
		return fmt.Errorf("%w %s: X must be within [%d, %d], got %f", ErrOutOfWorkspace, b.area.Name, b.area.MinX, b.area.MaxX, p.X)
	case p.Y < minY, p.Y > maxY:
		return fmt.Errorf("%w %s: Y must be within [%d, %d], got %f", ErrOutOfWorkspace, b.area.Name, b.area.MinY, b.area.MaxY, p.Y)
	}

	return nil
}

// translate converts AbsolutePos to HardwareAbsolutePos by adding MinX/Y
func (b *GCodeBuilder) translate(p BetterPoint[AbsolutePos]) BetterPoint[HardwareAbsolutePos] {
	return Redefine[HardwareAbsolutePos](p.Add(BetterPt(AbsolutePos(b.area.MinX), AbsolutePos(b.area.MinY))))
}
