// Command hilbert draws the Hilbert curve of a given order into an image file
// and, optionally, into GCode for a pen plotter.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/hilbert/pkg/hilbert"
	"github.com/gucio321/hilbert/pkg/render"
	"github.com/gucio321/hilbert/pkg/workspace"
)

func main() {
	f, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		glg.Fatal(err)
	}

	if f.makePreset {
		out, err := f.Preset()
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if !f.Verbose {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	render.InkscapeVerbose = f.Verbose

	if err := f.Validate(); err != nil {
		glg.Fatal(err)
	}

	if err := run(f); err != nil {
		glg.Fatal(err)
	}
}

// run generates the curve and writes the outputs. Failing to write an
// output is logged and does not make run fail.
func run(f *Flags) error {
	if f.Iteration > largeIteration {
		glg.Warnf("iteration %d yields %s points; this will take a while", f.Iteration, pointCount(f.Iteration))
	}

	moves, err := hilbert.Moves(f.Iteration)
	if err != nil {
		return err
	}

	if f.ShowMoves {
		fmt.Println(hilbert.Sequence(moves))
	}

	path := hilbert.Coordinates(moves)
	glg.Debugf("generated %d moves for iteration %d", len(moves), f.Iteration)

	r, err := render.NewRenderer(f.RenderOptions())
	if err != nil {
		return err
	}

	if err := r.Save(f.OutputFilePath, render.FromCurve(path), f.Iteration); err != nil {
		glg.Errorf("Cannot save %s: %v", f.OutputFilePath, err)
	} else {
		glg.Infof("Saved %s", f.OutputFilePath)
	}

	if f.GCodeFilePath == "" {
		return nil
	}

	area, err := workspace.Get(f.Workspace)
	if err != nil {
		return err
	}

	if err := writeGCode(f.GCodeFilePath, path, f.Iteration, area); err != nil {
		glg.Errorf("Cannot write GCode %s: %v", f.GCodeFilePath, err)
	} else {
		glg.Infof("Saved %s", f.GCodeFilePath)
	}

	return nil
}

// pointCount formats 4^iteration, the number of points of the curve.
func pointCount(iteration int) string {
	return fmt.Sprintf("%.4g", math.Pow(4, float64(iteration)))
}
