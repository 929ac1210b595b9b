// Package render draws a curve as a line-and-scatter plot: a connected line
// through every point and a round marker on each of them, framed like a
// plot whose axis ticks are hidden.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/kpango/glg"

	"github.com/gucio321/hilbert/pkg/hilbert"
)

const (
	// pointsPerInch converts typographic points (line widths, marker sizes) to inches.
	pointsPerInch = 72.0
	// margin is the share of the data range left blank on every side.
	margin = 0.05
	// frameWidth is the width of the plot frame in points.
	frameWidth = 0.8
)

// Options configures the plot.
type Options struct {
	// Side is the side of the square picture in inches.
	Side      float64
	DotColor  string
	LineColor string
	// DotScale multiplies the marker area.
	DotScale float64
	// LineScale divides the line width.
	LineScale float64
	DPI       int
}

// DefaultOptions returns the options used when nothing else is given.
func DefaultOptions() Options {
	return Options{
		Side:      6,
		DotColor:  "#4f5152",
		LineColor: "violet",
		DotScale:  1.5,
		LineScale: 1.5,
		DPI:       300,
	}
}

// Validate reports the first option that cannot produce a picture.
func (o Options) Validate() error {
	switch {
	case !(o.Side > 0):
		return fmt.Errorf("%w: side must be positive, got %v", ErrInvalidOption, o.Side)
	case !(o.DotScale > 0):
		return fmt.Errorf("%w: dot scale must be positive, got %v", ErrInvalidOption, o.DotScale)
	case !(o.LineScale > 0):
		return fmt.Errorf("%w: line scale must be positive, got %v", ErrInvalidOption, o.LineScale)
	case o.DPI <= 0:
		return fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidOption, o.DPI)
	case o.Pixels() < 1:
		return fmt.Errorf("%w: %v in at %d dpi is less than one pixel", ErrInvalidOption, o.Side, o.DPI)
	}

	return nil
}

// Pixels returns the side of the picture in pixels.
func (o Options) Pixels() int {
	return int(math.Round(o.Side * float64(o.DPI)))
}

// sizeBase decays with the iteration so that denser curves get finer strokes.
func sizeBase(iteration int) float64 {
	return math.Pow(2, 1/float64(iteration+1))
}

// MarkerSize returns the marker area in square points.
func MarkerSize(iteration int, scale float64) float64 {
	return sizeBase(iteration) * scale
}

// LineWidth returns the line width in points.
func LineWidth(iteration int, scale float64) float64 {
	return sizeBase(iteration) / scale
}

// Point is a point in data space.
type Point struct {
	X, Y float64
}

// FromCurve converts grid coordinates into data space.
func FromCurve(path []hilbert.Point) []Point {
	result := make([]Point, len(path))
	for i, p := range path {
		result[i] = Point{float64(p.X), float64(p.Y)}
	}

	return result
}

// Renderer draws paths with resolved Options.
type Renderer struct {
	opts      Options
	dotColor  color.RGBA
	lineColor color.RGBA
	rainbow   bool
}

// NewRenderer resolves the colors of opts.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{opts: opts}

	var err error
	if r.dotColor, err = ParseColor(opts.DotColor); err != nil {
		return nil, fmt.Errorf("dot color: %w", err)
	}

	if opts.LineColor == Rainbow {
		r.rainbow = true
	} else if r.lineColor, err = ParseColor(opts.LineColor); err != nil {
		return nil, fmt.Errorf("line color: %w", err)
	}

	return r, nil
}

// Options returns the options r was created with.
func (r *Renderer) Options() Options {
	return r.opts
}

// segmentColor returns the color of the segment ending at point i of n.
func (r *Renderer) segmentColor(i, n int) color.RGBA {
	if !r.rainbow {
		return r.lineColor
	}

	if n < 3 {
		return GreenToRed(0)
	}

	return GreenToRed(float64(i-1) / float64(n-2))
}

// layout maps data space onto the square canvas. The frame is the whole
// canvas and data gets a margin inside it, y pointing up.
type layout struct {
	size       float64
	pxPerPoint float64
	minX, minY float64
	scale      float64
	offX, offY float64
}

func (r *Renderer) layout(path []Point) layout {
	l := layout{
		size:       float64(r.opts.Pixels()),
		pxPerPoint: float64(r.opts.DPI) / pointsPerInch,
	}

	l.minX, l.minY = path[0].X, path[0].Y
	maxX, maxY := l.minX, l.minY
	for _, p := range path[1:] {
		l.minX, maxX = math.Min(l.minX, p.X), math.Max(maxX, p.X)
		l.minY, maxY = math.Min(l.minY, p.Y), math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-l.minX, maxY-l.minY)
	if span == 0 {
		// a single point sits in the middle of a unit range
		span = 1
		l.minX, l.minY = l.minX-0.5, l.minY-0.5
		maxX, maxY = l.minX+1, l.minY+1
	}

	l.scale = l.size / (span * (1 + 2*margin))
	l.offX = (l.size - (maxX-l.minX)*l.scale) / 2
	l.offY = (l.size - (maxY-l.minY)*l.scale) / 2

	return l
}

func (l layout) project(p Point) (x, y float64) {
	return l.offX + (p.X-l.minX)*l.scale, l.size - (l.offY + (p.Y-l.minY)*l.scale)
}

// Raster draws path into a new image.
// iteration controls the marker size and the line width.
func (r *Renderer) Raster(path []Point, iteration int) (image.Image, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	l := r.layout(path)
	size := r.opts.Pixels()
	dc := gg.NewContext(size, size)

	dc.SetColor(color.White)
	dc.Clear()

	// 1.0: line
	dc.SetLineWidth(LineWidth(iteration, r.opts.LineScale) * l.pxPerPoint)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	if len(path) > 1 {
		if r.rainbow {
			for i := 1; i < len(path); i++ {
				x0, y0 := l.project(path[i-1])
				x1, y1 := l.project(path[i])
				dc.DrawLine(x0, y0, x1, y1)
				dc.SetColor(r.segmentColor(i, len(path)))
				dc.Stroke()
			}
		} else {
			for _, p := range path {
				dc.LineTo(l.project(p))
			}

			dc.SetColor(r.lineColor)
			dc.Stroke()
		}
	}

	// 2.0: markers; diameter in points is the square root of the area
	radius := math.Sqrt(MarkerSize(iteration, r.opts.DotScale)) / 2 * l.pxPerPoint
	for _, p := range path {
		x, y := l.project(p)
		dc.DrawCircle(x, y, radius)
	}

	dc.SetColor(r.dotColor)
	dc.Fill()

	// 3.0: frame without ticks
	fw := frameWidth * l.pxPerPoint
	dc.SetLineWidth(fw)
	dc.DrawRectangle(fw/2, fw/2, l.size-fw, l.size-fw)
	dc.SetColor(color.Black)
	dc.Stroke()

	glg.Debugf("rendered %d points on %dx%d px", len(path), size, size)

	return dc.Image(), nil
}
