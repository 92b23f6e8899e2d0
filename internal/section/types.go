package section

import (
	"slices"

	"github.com/alexiusacademia/gorcfiber/internal/material"
)

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind distinguishes area-bearing patch fibers from point node fibers
type Kind int

const (
	PatchFiber Kind = iota // polygon, typically concrete
	NodeFiber              // point with explicit area, typically rebar
)

func (k Kind) String() string {
	if k == NodeFiber {
		return "node"
	}
	return "patch"
}

// Fiber is a single discretized area element of a section.
//
// The section is defined in a local coordinate system where:
//   - Y-axis points upward (compression zone at top for positive moment)
//   - X-axis points to the right
//
// Depth and Ecc are set when the section is meshed.
type Fiber struct {
	Tag      int
	Kind     Kind
	Vertices [4]Point // patch fibers only, counter-clockwise
	Area     float64
	Centroid Point
	Material material.Law
	Color    string

	// Depth below the extreme top fiber of the section
	Depth float64
	// Eccentricity to the section centroid: X = x - cx, Y = cy - y
	Ecc Point
}

// Strain returns the fiber strain for curvature phi and neutral axis depth c
func (f *Fiber) Strain(phi, c float64) float64 {
	return phi * (f.Depth - c)
}

// State evaluates the fiber at curvature phi and neutral axis depth c
func (f *Fiber) State(phi, c float64) FiberState {
	strain := f.Strain(phi, c)
	stress := f.Material.StressAt(strain)
	force := stress * f.Area
	return FiberState{
		Strain:  strain,
		Stress:  stress,
		Force:   force,
		MomentX: force * f.Ecc.Y,
		MomentY: force * f.Ecc.X,
	}
}

// FiberState is the response of one fiber at one load step
type FiberState struct {
	Strain  float64
	Stress  float64
	Force   float64
	MomentX float64
	MomentY float64
}

// Section is an aggregate of patch and node fibers.
//
// Fibers are added with the Add methods, then Mesh freezes the geometry and
// computes the centroid and the per-fiber depth and eccentricity. Analyses
// require a meshed section. The most recent moment-curvature and interaction
// results are retained on the section; a new run replaces the previous one.
//
// A Section must not run two analyses concurrently.
type Section struct {
	Name        string
	Description string

	patches []Fiber
	nodes   []Fiber

	meshed   bool
	rotation float64
	area     float64
	centroid Point
	ymax     float64
	ymin     float64

	mk  *MomentCurvatureResult
	pm  *InteractionResult
	icr *CrackedInertia
}

// New returns an empty section
func New(name string) *Section {
	return &Section{Name: name}
}

// PatchFibers returns a copy of the patch fibers in tag order
func (s *Section) PatchFibers() []Fiber { return slices.Clone(s.patches) }

// NodeFibers returns a copy of the node fibers in tag order
func (s *Section) NodeFibers() []Fiber { return slices.Clone(s.nodes) }

// NumPatches returns the number of patch fibers
func (s *Section) NumPatches() int { return len(s.patches) }

// NumNodes returns the number of node fibers
func (s *Section) NumNodes() int { return len(s.nodes) }

// Meshed reports whether the geometry has been finalized
func (s *Section) Meshed() bool { return s.meshed }

// Rotation returns the counter-clockwise rotation applied by Mesh, in degrees
func (s *Section) Rotation() float64 { return s.rotation }

// Area returns the gross area, the total patch fiber area
func (s *Section) Area() float64 { return s.area }

// SteelArea returns the total node fiber area
func (s *Section) SteelArea() float64 {
	var ast float64
	for i := range s.nodes {
		ast += s.nodes[i].Area
	}
	return ast
}

// Centroid returns the area-weighted centroid of all fibers
func (s *Section) Centroid() Point { return s.centroid }

// YMax returns the extreme top coordinate
func (s *Section) YMax() float64 { return s.ymax }

// YMin returns the extreme bottom coordinate
func (s *Section) YMin() float64 { return s.ymin }

// Depth returns the overall depth ymax - ymin
func (s *Section) Depth() float64 { return s.ymax - s.ymin }

// Bounds returns the bounding box of all fiber geometry
func (s *Section) Bounds() (minPt, maxPt Point) {
	first := true
	visit := func(p Point) {
		if first {
			minPt, maxPt = p, p
			first = false
			return
		}
		minPt.X = min(minPt.X, p.X)
		minPt.Y = min(minPt.Y, p.Y)
		maxPt.X = max(maxPt.X, p.X)
		maxPt.Y = max(maxPt.Y, p.Y)
	}
	for i := range s.patches {
		for _, v := range s.patches[i].Vertices {
			visit(v)
		}
	}
	for i := range s.nodes {
		visit(s.nodes[i].Centroid)
	}
	return minPt, maxPt
}
