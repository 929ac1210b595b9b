package render

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Rainbow is a line color that shades the curve from green at its start
// to red at its end.
const Rainbow = "rainbow"

// ParseColor resolves a hex code (#rgb, #rrggbb or #rrggbbaa) or an SVG color name.
func ParseColor(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}

	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if len(s) == 6 {
		s += "ff"
	}

	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}

	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// hexString formats c the way SVG style attributes expect it.
func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// GreenToRed maps v in [0, 1] onto the fully saturated hue ramp
// green (0) -> yellow (0.5) -> red (1).
func GreenToRed(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	r, g := 1.0, 1.0
	if v < 0.5 {
		r = 2 * v
	} else {
		g = 2 - 2*v
	}

	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		A: 255,
	}
}
