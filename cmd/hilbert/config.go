package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gucio321/hilbert/pkg/hilbert"
	"github.com/gucio321/hilbert/pkg/render"
	"github.com/gucio321/hilbert/pkg/workspace"
)

// largeIteration is where curves start to cost noticeable memory and render time.
const largeIteration = 10

var ErrInvalidConfig = errors.New("invalid configuration")

// Flags holds the whole command line. Exported fields also form the JSON preset.
type Flags struct {
	Iteration      int
	Side           float64
	DotColor       string
	LineColor      string
	OutputFilePath string
	DotScale       float64
	LineScale      float64
	DPI            int
	GCodeFilePath  string
	Workspace      string
	ShowMoves      bool
	Verbose        bool
	preset         string
	makePreset     bool
}

func parseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	defaults := render.DefaultOptions()
	f := &Flags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&f.Iteration, "i", 0, "number of iterations (non-negative integer)")
	fs.IntVar(&f.Iteration, "iteration", 0, "number of iterations (non-negative integer)")
	fs.Float64Var(&f.Side, "fs", defaults.Side, "side of a picture (inches)")
	fs.StringVar(&f.DotColor, "dc", defaults.DotColor, "dot color (hex code or colorname)")
	fs.StringVar(&f.LineColor, "lc", defaults.LineColor, "line color (hex code, colorname or \"rainbow\")")
	fs.StringVar(&f.OutputFilePath, "o", "hilbert_outp.png", "output filename")
	fs.StringVar(&f.OutputFilePath, "output", "hilbert_outp.png", "output filename")
	fs.Float64Var(&f.DotScale, "ds", defaults.DotScale, "dot size scale factor")
	fs.Float64Var(&f.LineScale, "lw", defaults.LineScale, "line width scale factor (larger is thinner)")
	fs.IntVar(&f.DPI, "dpi", defaults.DPI, "output resolution (dots per inch)")
	fs.StringVar(&f.GCodeFilePath, "gcode", "", "also write plotter GCode to this file")
	fs.StringVar(&f.Workspace, "workspace", workspace.Default, fmt.Sprintf("plotter workspace for -gcode %v", workspace.Names()))
	fs.BoolVar(&f.ShowMoves, "show-moves", false, "print the move sequence (u/r/d/l)")
	fs.BoolVar(&f.Verbose, "v", false, "verbose (debug) logging")
	fs.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	fs.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			return nil, fmt.Errorf("unable to read preset from %s: %w (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("unable to parse preset from %s: %w", f.preset, err)
		}
	}

	return f, nil
}

// Preset returns f as a JSON preset.
func (f *Flags) Preset() ([]byte, error) {
	return json.MarshalIndent(f, "", "\t")
}

// RenderOptions returns the plot settings.
func (f *Flags) RenderOptions() render.Options {
	return render.Options{
		Side:      f.Side,
		DotColor:  f.DotColor,
		LineColor: f.LineColor,
		DotScale:  f.DotScale,
		LineScale: f.LineScale,
		DPI:       f.DPI,
	}
}

// Validate reports the first setting that makes the run impossible.
func (f *Flags) Validate() error {
	if f.Iteration < 0 {
		return fmt.Errorf("%w: %w, got %d", ErrInvalidConfig, hilbert.ErrNegativeIteration, f.Iteration)
	}

	if f.Iteration > hilbert.MaxIteration {
		return fmt.Errorf("%w: %w: %d, at most %d", ErrInvalidConfig, hilbert.ErrIterationTooLarge, f.Iteration, hilbert.MaxIteration)
	}

	if f.OutputFilePath == "" {
		return fmt.Errorf("%w: output file path is empty", ErrInvalidConfig)
	}

	if _, err := render.NewRenderer(f.RenderOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if f.GCodeFilePath != "" {
		if _, err := workspace.Get(f.Workspace); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}
