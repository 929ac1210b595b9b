// Command justview renders the pen-down path of a GCode file written by
// hilbert into an image, so a plot can be checked before it is drawn.
package main

import (
	"flag"
	"math"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/hilbert/pkg/gcb"
	"github.com/gucio321/hilbert/pkg/render"
)

func main() {
	defaults := render.DefaultOptions()
	inputFile := flag.String("i", "", "Input file")
	outputFile := flag.String("o", "preview.png", "Output image")
	lineColor := flag.String("lc", defaults.LineColor, "line color (hex code, colorname or \"rainbow\")")
	side := flag.Float64("fs", defaults.Side, "side of a picture (inches)")
	dpi := flag.Int("dpi", defaults.DPI, "output resolution (dots per inch)")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	opts := defaults
	opts.LineColor = *lineColor
	opts.Side = *side
	opts.DPI = *dpi

	r, err := render.NewRenderer(opts)
	if err != nil {
		glg.Fatal(err)
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	builder, err := gcb.NewGCodeBuilderFromGCode(data)
	if err != nil {
		glg.Fatal(err)
	}

	path := previewPath(gcb.Trace(builder.Commands()))
	if len(path) == 0 {
		glg.Fatalf("%s draws nothing", *inputFile)
	}

	if err := r.Save(*outputFile, path, iterationOf(len(path))); err != nil {
		glg.Errorf("Cannot save %s: %v", *outputFile, err)
		return
	}

	glg.Infof("Saved %s", *outputFile)
}

// previewPath joins strokes into one path; pen-up travel between them is drawn too.
func previewPath(strokes [][]gcb.BetterPoint[gcb.RelativePos]) []render.Point {
	if len(strokes) > 1 {
		glg.Warnf("%d strokes found, travel moves between them will be drawn", len(strokes))
	}

	var result []render.Point
	for _, stroke := range strokes {
		for _, p := range stroke {
			result = append(result, render.Point{X: float64(p.X), Y: float64(p.Y)})
		}
	}

	return result
}

// iterationOf guesses the curve order from its number of points (4^n).
func iterationOf(points int) int {
	if points <= 1 {
		return 0
	}

	return int(math.Round(math.Log(float64(points)) / math.Log(4)))
}
