package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gucio321/hilbert/pkg/hilbert"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Side = 1
	opts.DPI = 100

	return opts
}

func orderOne(t *testing.T) []Point {
	t.Helper()

	path, err := hilbert.Curve(1)
	if err != nil {
		t.Fatalf("hilbert.Curve(1): %v", err)
	}

	return FromCurve(path)
}

func TestSizes(t *testing.T) {
	tests := []struct {
		iteration    int
		scale        float64
		marker, line float64
	}{
		{0, 1, 2, 2},
		{0, 1.5, 3, 2 / 1.5},
		{1, 1.5, math.Sqrt2 * 1.5, math.Sqrt2 / 1.5},
		{3, 2, math.Pow(2, 0.25) * 2, math.Pow(2, 0.25) / 2},
	}

	for _, tt := range tests {
		if got := MarkerSize(tt.iteration, tt.scale); math.Abs(got-tt.marker) > 1e-9 {
			t.Errorf("MarkerSize(%d, %v) = %v, want %v", tt.iteration, tt.scale, got, tt.marker)
		}

		if got := LineWidth(tt.iteration, tt.scale); math.Abs(got-tt.line) > 1e-9 {
			t.Errorf("LineWidth(%d, %v) = %v, want %v", tt.iteration, tt.scale, got, tt.line)
		}
	}

	for n := 0; n < 10; n++ {
		if MarkerSize(n+1, 1) >= MarkerSize(n, 1) {
			t.Errorf("marker size does not shrink from iteration %d to %d", n, n+1)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions().Validate() = %v", err)
	}

	onePixel := Options{Side: 0.002, DPI: 300, DotScale: 1, LineScale: 1}
	if err := onePixel.Validate(); err != nil || onePixel.Pixels() != 1 {
		t.Fatalf("one pixel canvas: Validate() = %v, Pixels() = %d", err, onePixel.Pixels())
	}

	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero side", func(o *Options) { o.Side = 0 }},
		{"negative side", func(o *Options) { o.Side = -2 }},
		{"NaN side", func(o *Options) { o.Side = math.NaN() }},
		{"zero dot scale", func(o *Options) { o.DotScale = 0 }},
		{"negative line scale", func(o *Options) { o.LineScale = -1 }},
		{"zero dpi", func(o *Options) { o.DPI = 0 }},
		{"side below one pixel", func(o *Options) { o.Side = 0.001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(); !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Validate() = %v, want %v", err, ErrInvalidOption)
			}

			if _, err := NewRenderer(opts); !errors.Is(err, ErrInvalidOption) {
				t.Errorf("NewRenderer() = %v, want %v", err, ErrInvalidOption)
			}
		})
	}
}

func TestNewRendererColors(t *testing.T) {
	opts := smallOptions()
	opts.LineColor = "not-a-color"
	if _, err := NewRenderer(opts); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("NewRenderer with bad line color = %v, want %v", err, ErrInvalidColor)
	}

	opts = smallOptions()
	opts.DotColor = Rainbow
	if _, err := NewRenderer(opts); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("rainbow dot color = %v, want %v", err, ErrInvalidColor)
	}
}

func TestRasterSize(t *testing.T) {
	r, err := NewRenderer(smallOptions())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	img, err := r.Raster(orderOne(t), 1)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("raster bounds = %v, want 100x100", b)
	}

	if _, err := r.Raster(nil, 0); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Raster(nil) = %v, want %v", err, ErrEmptyPath)
	}
}

func TestRasterDrawsLineAndMarkers(t *testing.T) {
	r, err := NewRenderer(smallOptions())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	img, err := r.Raster(orderOne(t), 1)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}

	// (0,0)-(0,1) runs along x = 4.5 from y = 95.5 to y = 4.5.
	if got := rgba(img, 4, 50); !near(got, colornamesViolet, 16) {
		t.Errorf("line pixel = %v, want violet", got)
	}

	// marker on (0,0)
	if got := rgba(img, 4, 95); !near(got, color.RGBA{0x4f, 0x51, 0x52, 0xff}, 16) {
		t.Errorf("marker pixel = %v, want #4f5152", got)
	}

	// inside the curve's cells there is nothing but background
	if got := rgba(img, 50, 50); !near(got, color.RGBA{255, 255, 255, 255}, 0) {
		t.Errorf("background pixel = %v, want white", got)
	}

	// frame
	if got := rgba(img, 0, 50); got.R > 64 || got.G > 64 || got.B > 64 {
		t.Errorf("frame pixel = %v, want black", got)
	}
}

func TestRasterRainbow(t *testing.T) {
	opts := smallOptions()
	opts.LineColor = Rainbow

	r, err := NewRenderer(opts)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	img, err := r.Raster(orderOne(t), 1)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}

	if got := rgba(img, 4, 50); !near(got, color.RGBA{0, 255, 0, 255}, 16) {
		t.Errorf("first segment = %v, want green", got)
	}

	// (1,1)-(1,0) is the last segment, along x = 95.5
	if got := rgba(img, 95, 50); !near(got, color.RGBA{255, 0, 0, 255}, 16) {
		t.Errorf("last segment = %v, want red", got)
	}
}

func TestRasterSinglePoint(t *testing.T) {
	opts := smallOptions()
	opts.DotScale = 50

	r, err := NewRenderer(opts)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	img, err := r.Raster([]Point{{0, 0}}, 0)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}

	if got := rgba(img, 50, 50); !near(got, color.RGBA{0x4f, 0x51, 0x52, 0xff}, 16) {
		t.Errorf("center pixel = %v, want the marker color", got)
	}
}

var colornamesViolet = color.RGBA{0xee, 0x82, 0xee, 0xff}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func near(a, b color.RGBA, tolerance int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v <= tolerance && v >= -tolerance
	}

	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}
