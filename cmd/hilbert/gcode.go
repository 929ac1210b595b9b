package main

import (
	"math"
	"os"

	"github.com/gucio321/hilbert/pkg/gcb"
	"github.com/gucio321/hilbert/pkg/hilbert"
	"github.com/gucio321/hilbert/pkg/workspace"
)

// plotterPath scales path to the largest square that fits area and centers it there.
func plotterPath(path []hilbert.Point, area *workspace.Workspace) []gcb.BetterPoint[gcb.AbsolutePos] {
	side := math.Min(float64(area.Width()), float64(area.Height()))
	offX := (float64(area.Width()) - side) / 2
	offY := (float64(area.Height()) - side) / 2

	min, max := hilbert.Bounds(path)
	span := math.Max(float64(max.X-min.X), float64(max.Y-min.Y))

	result := make([]gcb.BetterPoint[gcb.AbsolutePos], len(path))
	for i, p := range path {
		x, y := side/2, side/2
		if span > 0 {
			x = float64(p.X-min.X) / span * side
			y = float64(p.Y-min.Y) / span * side
		}

		result[i] = gcb.BetterPt(gcb.AbsolutePos(offX+x), gcb.AbsolutePos(offY+y))
	}

	return result
}

func buildGCode(path []hilbert.Point, iteration int, area *workspace.Workspace) (*gcb.GCodeBuilder, error) {
	builder := gcb.NewGCodeBuilder(*area)
	builder.Commentf("Hilbert curve, iteration %d, %d points", iteration, len(path))
	builder.DrawLines(plotterPath(path, area)...)

	if err := builder.Err(); err != nil {
		builder.Dump()
		return nil, err
	}

	return builder, nil
}

func writeGCode(filename string, path []hilbert.Point, iteration int, area *workspace.Workspace) error {
	builder, err := buildGCode(path, iteration, area)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(builder.String()), 0o644)
}
