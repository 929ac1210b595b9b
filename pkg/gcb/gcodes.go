package gcb

// GCode represents a gcode (e.g. G0, G1, G91)
type GCode string

// list of gcodes. See https://marlinfw.org/docs/gcode/G005.html
// We point out only codes used in this project.
const (
	// G0 is a move command
	G0 GCode = "G0"
	// G1 is a move command too (ref does not point the difference)
	G1 GCode = "G1"
	// G28 homes the given axes
	G28 GCode = "G28"
	// G90 switches to absolute positioning
	G90 GCode = "G90"
	// G91 switches to relative positioning
	G91 GCode = "G91"

	GCodeMove = G0
)
