package section

import (
	"math"

	"github.com/alexiusacademia/gorcfiber/internal/material"
)

// Default display colors
const (
	DefaultPatchColor = "lightgray"
	DefaultNodeColor  = "black"
)

// AddPatch discretizes the rectangle with lower left corner (xo, yo), width b
// and height h into nx × ny patch fibers sharing the same law.
func (s *Section) AddPatch(xo, yo, b, h float64, nx, ny int, law material.Law) error {
	if s.meshed {
		return ErrSectionMeshed
	}
	if law == nil {
		return &FiberError{Kind: PatchFiber, Tag: len(s.patches), Reason: "material is required"}
	}
	if nx < 1 || ny < 1 {
		return &FiberError{Kind: PatchFiber, Tag: len(s.patches), Reason: "mesh density must be at least 1 in each direction"}
	}
	if !(b > 0) || !(h > 0) {
		return &FiberError{Kind: PatchFiber, Tag: len(s.patches), Reason: "width and height must be positive"}
	}

	dx := b / float64(nx)
	dy := h / float64(ny)
	added := make([]Fiber, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			xref := xo + float64(i)*dx
			yref := yo + float64(j)*dy
			f, err := newPatch(len(s.patches)+len(added), [4]Point{
				{xref, yref},
				{xref + dx, yref},
				{xref + dx, yref + dy},
				{xref, yref + dy},
			})
			if err != nil {
				return err
			}
			f.Material = law
			f.Color = DefaultPatchColor
			added = append(added, f)
		}
	}
	s.patches = append(s.patches, added...)
	return nil
}

// AddQuad adds a single patch fiber with arbitrary vertices. Clockwise input
// is reordered.
func (s *Section) AddQuad(vertices [4]Point, law material.Law) error {
	if s.meshed {
		return ErrSectionMeshed
	}
	if law == nil {
		return &FiberError{Kind: PatchFiber, Tag: len(s.patches), Reason: "material is required"}
	}
	f, err := newPatch(len(s.patches), vertices)
	if err != nil {
		return err
	}
	f.Material = law
	f.Color = DefaultPatchColor
	s.patches = append(s.patches, f)
	return nil
}

// AddBar adds a single node fiber at the given coordinate
func (s *Section) AddBar(at Point, area float64, law material.Law) error {
	if s.meshed {
		return ErrSectionMeshed
	}
	tag := len(s.nodes)
	switch {
	case law == nil:
		return &FiberError{Kind: NodeFiber, Tag: tag, Reason: "material is required"}
	case !(area > 0) || math.IsInf(area, 0):
		return &FiberError{Kind: NodeFiber, Tag: tag, Reason: "area must be positive"}
	case math.IsNaN(at.X) || math.IsNaN(at.Y) || math.IsInf(at.X, 0) || math.IsInf(at.Y, 0):
		return &FiberError{Kind: NodeFiber, Tag: tag, Reason: "coordinates must be finite"}
	}
	s.nodes = append(s.nodes, Fiber{
		Tag:      tag,
		Kind:     NodeFiber,
		Area:     area,
		Centroid: at,
		Material: law,
		Color:    DefaultNodeColor,
	})
	return nil
}

// AddBarGroup adds an nx × ny grid of bars spanning b × h from the lower left
// bar at (xo, yo). With perimeterOnly the interior bars are omitted.
func (s *Section) AddBarGroup(xo, yo, b, h float64, nx, ny int, area float64, perimeterOnly bool, law material.Law) error {
	if s.meshed {
		return ErrSectionMeshed
	}
	if nx < 1 || ny < 1 {
		return &FiberError{Kind: NodeFiber, Tag: len(s.nodes), Reason: "bar count must be at least 1 in each direction"}
	}

	var sx, sy float64
	if nx > 1 {
		sx = b / float64(nx-1)
	}
	if ny > 1 {
		sy = h / float64(ny-1)
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if perimeterOnly && i > 0 && i < nx-1 && j > 0 && j < ny-1 {
				continue
			}
			at := Point{X: xo + float64(i)*sx, Y: yo + float64(j)*sy}
			if err := s.AddBar(at, area, law); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetColor overrides the display color of a fiber
func (s *Section) SetColor(kind Kind, tag int, color string) error {
	fibers := s.patches
	if kind == NodeFiber {
		fibers = s.nodes
	}
	if tag < 0 || tag >= len(fibers) {
		return ErrFiberNotFound
	}
	fibers[tag].Color = color
	return nil
}
