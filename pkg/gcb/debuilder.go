package gcb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/hilbert/pkg/workspace"
)

// NewGCodeBuilderFromGCode parses GCode written by GCodeBuilder.
// Only relative-mode commands are kept; the preamble and everything else
// issued in absolute mode is skipped.
func NewGCodeBuilderFromGCode(gcode []byte) (*GCodeBuilder, error) {
	result := NewGCodeBuilder(workspace.Workspace{Name: "parsed"})
	lines := strings.Split(string(gcode), "\n")
	positioning := G90

	for n, line := range lines {
		splitted := strings.Split(line, ";")
		command := strings.TrimSpace(splitted[0])
		comment := strings.TrimSpace(strings.Join(splitted[1:], ";"))

		if command == "" {
			continue
		}

		commandParts := strings.Fields(command)
		code := GCode(commandParts[0])

		switch code {
		case G90, G91:
			positioning = code
			continue
		}

		if positioning == G90 {
			if code == G0 || code == G1 {
				glg.Warnf("line %d: got \"%s\" in absolute positioning mode which is not supported", n+1, code)
			}

			continue
		}

		args := make([]Arg, 0, len(commandParts)-1)
		for _, arg := range commandParts[1:] {
			if len(arg) <= 1 {
				continue
			}

			value, err := strconv.ParseFloat(arg[1:], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}

			args = append(args, Arg{Name: arg[0:1], Value: RelativePos(value)})
		}

		result.commands = append(result.commands, Command{
			Code:        code,
			LineComment: comment,
			Args:        args,
		})
	}

	return result, nil
}

// Trace follows the relative moves of cmds starting at (0,0) and returns
// the strokes drawn with the pen down. A negative Z puts the pen down,
// a positive one lifts it.
func Trace(cmds []Command) [][]BetterPoint[RelativePos] {
	var (
		strokes   [][]BetterPoint[RelativePos]
		current   BetterPoint[RelativePos]
		isDrawing bool
	)

	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Code != G0 && cmd.Code != G1 {
			continue
		}

		if z, ok := cmd.Arg("Z"); ok && z != 0 {
			isDrawing = z < 0
			if isDrawing {
				strokes = append(strokes, []BetterPoint[RelativePos]{current})
			}
		}

		x, okX := cmd.Arg("X")
		y, okY := cmd.Arg("Y")
		if !okX && !okY {
			continue
		}

		current = current.Add(BetterPt(x, y))
		if isDrawing {
			strokes[len(strokes)-1] = append(strokes[len(strokes)-1], current)
		}
	}

	return strokes
}
