package gcb

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single line of GCode. A Command without Code is a comment line.
type Command struct {
	Code        GCode
	Args        []Arg
	LineComment string
}

// Arg returns the value of the argument called name.
func (c *Command) Arg(name string) (RelativePos, bool) {
	for _, arg := range c.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}

	return 0, false
}

func (c *Command) String(comments bool) string {
	if c.Code == "" {
		if !comments && c.LineComment != "" {
			return ""
		}

		return strings.TrimSpace("; " + c.LineComment)
	}

	result := string(c.Code)
	for _, arg := range c.Args {
		result += fmt.Sprintf(" %s%s", arg.Name, strconv.FormatFloat(float64(arg.Value), 'f', -1, 32))
	}

	if c.LineComment != "" && comments {
		result += fmt.Sprintf(" ; %v", c.LineComment)
	}

	return result
}

// Arg is a named argument of a Command, e.g. X10.
type Arg struct {
	Name  string
	Value RelativePos
}
