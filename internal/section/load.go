package section

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/alexiusacademia/gorcfiber/internal/material"
)

// File is the JSON definition of a section, e.g.
//
//	{
//	  "name": "C1",
//	  "materials": {
//	    "concrete": {"type": "hognestad", "fpc": 5},
//	    "steel": {"type": "bilinear", "fy": 60, "Es": 29000}
//	  },
//	  "patches": [{"material": "concrete", "x": 0, "y": 0, "b": 12, "h": 20, "nx": 1, "ny": 40}],
//	  "bar_groups": [{"material": "steel", "x": 2, "y": 2, "b": 8, "h": 16, "nx": 2, "ny": 2, "area": 0.44, "perimeter_only": true}]
//	}
type File struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description,omitempty"`
	Rotate      float64                        `json:"rotate,omitempty"`
	Materials   map[string]material.Definition `json:"materials"`
	Patches     []PatchDef                     `json:"patches,omitempty"`
	Quads       []QuadDef                      `json:"quads,omitempty"`
	Bars        []BarDef                       `json:"bars,omitempty"`
	BarGroups   []BarGroupDef                  `json:"bar_groups,omitempty"`

	// Design data used by the interaction and check commands
	Design *DesignDef `json:"design,omitempty"`
}

// PatchDef is a meshed rectangle of patch fibers
type PatchDef struct {
	Material string  `json:"material"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	B        float64 `json:"b"`
	H        float64 `json:"h"`
	Nx       int     `json:"nx"`
	Ny       int     `json:"ny"`
	Color    string  `json:"color,omitempty"`
}

// QuadDef is a single patch fiber with explicit vertices
type QuadDef struct {
	Material string   `json:"material"`
	Vertices [4]Point `json:"vertices"`
	Color    string   `json:"color,omitempty"`
}

// BarDef is a single node fiber
type BarDef struct {
	Material string  `json:"material"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Area     float64 `json:"area"`
	Color    string  `json:"color,omitempty"`
}

// BarGroupDef is a rectangular array of node fibers
type BarGroupDef struct {
	Material      string  `json:"material"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	B             float64 `json:"b"`
	H             float64 `json:"h"`
	Nx            int     `json:"nx"`
	Ny            int     `json:"ny"`
	Area          float64 `json:"area"`
	PerimeterOnly bool    `json:"perimeter_only"`
	Color         string  `json:"color,omitempty"`
}

// DesignDef carries the code parameters for the interaction sweep
type DesignDef struct {
	Fpc        float64 `json:"fpc"`
	Fy         float64 `json:"fy"`
	Es         float64 `json:"Es"`
	Transverse string  `json:"transverse,omitempty"` // "tied" or "spiral"
}

// LoadFromFile loads a section definition from a JSON file and meshes it
func LoadFromFile(filepath string) (*Section, *File, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, nil, err
	}

	var def File
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, nil, err
	}

	s, err := def.Build()
	if err != nil {
		return nil, nil, err
	}
	return s, &def, nil
}

// Build constructs and meshes the section described by the file
func (d *File) Build() (*Section, error) {
	laws := make(map[string]material.Law, len(d.Materials))
	names := make([]string, 0, len(d.Materials))
	for name := range d.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		law, err := d.Materials[name].Build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		laws[name] = law
	}
	lookup := func(name string) (material.Law, error) {
		law, ok := laws[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return law, nil
	}

	s := New(d.Name)
	s.Description = d.Description

	for i, p := range d.Patches {
		law, err := lookup(p.Material)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
		first := s.NumPatches()
		if err := s.AddPatch(p.X, p.Y, p.B, p.H, p.Nx, p.Ny, law); err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
		s.recolor(PatchFiber, first, p.Color)
	}
	for i, q := range d.Quads {
		law, err := lookup(q.Material)
		if err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		first := s.NumPatches()
		if err := s.AddQuad(q.Vertices, law); err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		s.recolor(PatchFiber, first, q.Color)
	}
	for i, b := range d.Bars {
		law, err := lookup(b.Material)
		if err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		first := s.NumNodes()
		if err := s.AddBar(Point{X: b.X, Y: b.Y}, b.Area, law); err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		s.recolor(NodeFiber, first, b.Color)
	}
	for i, g := range d.BarGroups {
		law, err := lookup(g.Material)
		if err != nil {
			return nil, fmt.Errorf("bar group %d: %w", i, err)
		}
		first := s.NumNodes()
		if err := s.AddBarGroup(g.X, g.Y, g.B, g.H, g.Nx, g.Ny, g.Area, g.PerimeterOnly, law); err != nil {
			return nil, fmt.Errorf("bar group %d: %w", i, err)
		}
		s.recolor(NodeFiber, first, g.Color)
	}

	if err := s.Mesh(d.Rotate); err != nil {
		return nil, err
	}
	return s, nil
}

// recolor sets the color of every fiber of a kind from tag first onward
func (s *Section) recolor(kind Kind, first int, color string) {
	if color == "" {
		return
	}
	fibers := s.patches
	if kind == NodeFiber {
		fibers = s.nodes
	}
	for i := first; i < len(fibers); i++ {
		fibers[i].Color = color
	}
}
