package render

import "errors"

var (
	ErrInvalidColor  = errors.New("invalid color (use a hex code or a color name)")
	ErrInkscape      = errors.New("inkscape export failed")
	ErrEmptyPath     = errors.New("nothing to render")
	ErrInvalidOption = errors.New("invalid render option")
)
