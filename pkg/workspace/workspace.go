// Package workspace describes the drawing areas of the pen plotters we export to.
package workspace

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed workspaces.json
var workspaces []byte

// Default is used when no workspace is requested.
const Default = "ender3"

var ErrUnknownWorkspace = errors.New("unknown workspace")

// Workspace represents our working area.
type Workspace struct {
	// MinX and MinY represent the point counting from printers (0,0)
	MinX, MinY,
	// MaxX and MaxY represent the point counting from printers (0,0)
	MaxX, MaxY int

	Name        string
	Description string
}

// Width of the area in mm.
func (w *Workspace) Width() int {
	return w.MaxX - w.MinX
}

// Height of the area in mm.
func (w *Workspace) Height() int {
	return w.MaxY - w.MinY
}

func decodeWorkspaces() ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get looks a workspace up by name.
func Get(name string) (*Workspace, error) {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil, err
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownWorkspace, name, Names())
}

// Names lists the known workspaces.
func Names() []string {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil
	}

	result := make([]string, len(workspaces))
	for i, w := range workspaces {
		result[i] = w.Name
	}

	return result
}
