package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/disintegration/imaging"
	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// JPEGQuality is used for .jpg/.jpeg outputs.
const JPEGQuality = 95

// InkscapeVerbose makes the inkscape shell echo its commands.
var InkscapeVerbose = false

// vectorFormats are exported from SVG by inkscape.
var vectorFormats = map[string]bool{
	"pdf": true,
	"eps": true,
	"ps":  true,
}

// Save writes path to filename, overwriting it if it exists.
// The format follows the extension: svg, pdf/eps/ps (requires inkscape)
// or any raster format known to imaging. No extension means PNG.
// On failure an existing filename is left untouched.
func (r *Renderer) Save(filename string, path []Point, iteration int) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	switch {
	case ext == "svg":
		return writeFile(filename, func(w io.Writer) error {
			return r.SVG(w, path, iteration)
		})
	case vectorFormats[ext]:
		return r.saveInkscape(filename, ext, path, iteration)
	}

	format := imaging.PNG
	if ext != "" {
		var err error
		if format, err = imaging.FormatFromExtension(ext); err != nil {
			return fmt.Errorf("cannot save %s: %w", filename, err)
		}
	}

	img, err := r.Raster(path, iteration)
	if err != nil {
		return err
	}

	return writeFile(filename, func(w io.Writer) error {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality))
	})
}

// writeFile writes into a temporary file next to filename and renames it
// over filename once write succeeded.
func writeFile(filename string, write func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+"-*")
	if err != nil {
		return err
	}

	defer os.Remove(f.Name())

	// CreateTemp makes the file private; outputs are meant to be shared
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), filename)
}

// saveInkscape writes a temporary SVG and lets inkscape convert it.
func (r *Renderer) saveInkscape(filename, ext string, path []Point, iteration int) error {
	src, err := os.CreateTemp("", "hilbert-*.svg")
	if err != nil {
		return err
	}

	defer os.Remove(src.Name())

	if err := r.SVG(src, path, iteration); err != nil {
		src.Close()
		return err
	}

	if err := src.Close(); err != nil {
		return err
	}

	// inkscape picks the export type from the target's extension as well
	dst, err := os.CreateTemp(filepath.Dir(filename), ".hilbert-*."+ext)
	if err != nil {
		return err
	}

	defer os.Remove(dst.Name())

	if err := dst.Chmod(0o644); err != nil {
		dst.Close()
		return err
	}

	if err := dst.Close(); err != nil {
		return err
	}

	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(InkscapeVerbose))
	if err := inkscapeProxy.Run(); err != nil {
		return fmt.Errorf("%w: cannot run inkscape: %v", ErrInkscape, err)
	}

	defer inkscapeProxy.Close()

	glg.Infof("running inkscape %s export", ext)

	if _, err := inkscapeProxy.RawCommands(
		fmt.Sprintf("file-open:%s", src.Name()),
		fmt.Sprintf("export-filename:%s", dst.Name()),
		fmt.Sprintf("export-type:%s", ext),
		"export-do",
		"file-close",
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInkscape, err)
	}

	if info, err := os.Stat(dst.Name()); err != nil || info.Size() == 0 {
		return fmt.Errorf("%w: %s was not written", ErrInkscape, filename)
	}

	return os.Rename(dst.Name(), filename)
}

// SVG writes path as an SVG document of the same size and look as Raster.
func (r *Renderer) SVG(w io.Writer, path []Point, iteration int) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	l := r.layout(path)
	size := r.opts.Pixels()
	lineWidth := LineWidth(iteration, r.opts.LineScale) * l.pxPerPoint
	lineStyle := func(c string) string {
		return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.3f;stroke-linecap:round;stroke-linejoin:round", c, lineWidth)
	}

	xs, ys := make([]int, len(path)), make([]int, len(path))
	for i, p := range path {
		x, y := l.project(p)
		xs[i], ys[i] = int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white")

	if len(path) > 1 {
		if r.rainbow {
			for i := 1; i < len(path); i++ {
				canvas.Line(xs[i-1], ys[i-1], xs[i], ys[i], lineStyle(hexString(r.segmentColor(i, len(path)))))
			}
		} else {
			canvas.Polyline(xs, ys, lineStyle(hexString(r.lineColor)))
		}
	}

	radius := int(math.Max(1, math.Round(math.Sqrt(MarkerSize(iteration, r.opts.DotScale))/2*l.pxPerPoint)))
	canvas.Gstyle(fmt.Sprintf("fill:%s", hexString(r.dotColor)))
	for i := range xs {
		canvas.Circle(xs[i], ys[i], radius)
	}

	canvas.Gend()

	fw := frameWidth * l.pxPerPoint
	canvas.Rect(0, 0, size, size, fmt.Sprintf("fill:none;stroke:black;stroke-width:%.3f", 2*fw))
	canvas.End()

	return nil
}
