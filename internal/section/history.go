package section

import (
	"fmt"
	"math"
)

// FiberHistory is the recorded response of one fiber over a
// moment-curvature run. States align with the run's Steps.
type FiberHistory struct {
	Kind     Kind
	Tag      int
	Material string
	Centroid Point
	Area     float64
	Depth    float64
	Ecc      Point
	Color    string

	Curvature []float64
	States    []FiberState
}

// Strains returns the strain at each recorded step
func (h *FiberHistory) Strains() []float64 {
	out := make([]float64, len(h.States))
	for i, st := range h.States {
		out[i] = st.Strain
	}
	return out
}

// Stresses returns the stress at each recorded step
func (h *FiberHistory) Stresses() []float64 {
	out := make([]float64, len(h.States))
	for i, st := range h.States {
		out[i] = st.Stress
	}
	return out
}

// Location selects a patch fiber for PatchFiberData
type Location struct {
	kind locKind
	at   Point
}

type locKind int

const (
	locTop locKind = iota
	locBottom
	locNear
)

var (
	// Top is the patch fiber with the highest centroid
	Top = Location{kind: locTop}
	// Bottom is the patch fiber with the lowest centroid
	Bottom = Location{kind: locBottom}
)

// Near selects the patch fiber whose centroid is closest to (x, y)
func Near(x, y float64) Location {
	return Location{kind: locNear, at: Point{X: x, Y: y}}
}

func (l Location) String() string {
	switch l.kind {
	case locTop:
		return "top"
	case locBottom:
		return "bottom"
	default:
		return fmt.Sprintf("near (%g, %g)", l.at.X, l.at.Y)
	}
}

// MomentCurvatureResult returns the stored result of the most recent run
func (s *Section) MomentCurvatureResult() (*MomentCurvatureResult, error) {
	if s.mk == nil {
		return nil, ErrNoAnalysis
	}
	return s.mk, nil
}

// InteractionResult returns the stored result of the most recent sweep
func (s *Section) InteractionResult() (*InteractionResult, error) {
	if s.pm == nil {
		return nil, ErrNoAnalysis
	}
	return s.pm, nil
}

// NodeFiberData returns the history of the node fiber with the given tag
func (s *Section) NodeFiberData(tag int) (*FiberHistory, error) {
	if s.mk == nil {
		return nil, ErrNoAnalysis
	}
	if tag < 0 || tag >= len(s.nodes) {
		return nil, fmt.Errorf("%w: node fiber %d", ErrFiberNotFound, tag)
	}
	return s.history(&s.nodes[tag]), nil
}

// PatchFiberData returns the history of the patch fiber at the location.
// Ties go to the lowest tag.
func (s *Section) PatchFiberData(loc Location) (*FiberHistory, error) {
	if s.mk == nil {
		return nil, ErrNoAnalysis
	}
	tag, err := s.FindPatch(loc)
	if err != nil {
		return nil, err
	}
	return s.history(&s.patches[tag]), nil
}

// FindPatch returns the tag of the patch fiber at the location
func (s *Section) FindPatch(loc Location) (int, error) {
	if len(s.patches) == 0 {
		return 0, fmt.Errorf("%w: section has no patch fibers", ErrFiberNotFound)
	}
	tag := 0
	best := math.Inf(1)
	for i := range s.patches {
		c := s.patches[i].Centroid
		var score float64
		switch loc.kind {
		case locTop:
			score = -c.Y
		case locBottom:
			score = c.Y
		default:
			score = math.Hypot(c.X-loc.at.X, c.Y-loc.at.Y)
		}
		if score < best {
			best = score
			tag = i
		}
	}
	return tag, nil
}

// AllFiberData returns the history of every fiber, patch fibers first
func (s *Section) AllFiberData() ([]FiberHistory, error) {
	if s.mk == nil {
		return nil, ErrNoAnalysis
	}
	out := make([]FiberHistory, 0, len(s.patches)+len(s.nodes))
	for i := range s.patches {
		out = append(out, *s.history(&s.patches[i]))
	}
	for i := range s.nodes {
		out = append(out, *s.history(&s.nodes[i]))
	}
	return out, nil
}

func (s *Section) history(f *Fiber) *FiberHistory {
	arena := s.mk.patchStates
	if f.Kind == NodeFiber {
		arena = s.mk.nodeStates
	}
	h := &FiberHistory{
		Kind:      f.Kind,
		Tag:       f.Tag,
		Material:  f.Material.Name(),
		Centroid:  f.Centroid,
		Area:      f.Area,
		Depth:     f.Depth,
		Ecc:       f.Ecc,
		Color:     f.Color,
		Curvature: s.mk.Curvatures(),
		States:    make([]FiberState, len(arena)),
	}
	for i := range arena {
		h.States[i] = arena[i][f.Tag]
	}
	return h
}

// CrackedInertiaResult returns the stored cracked inertia of the most recent
// moment-curvature run
func (s *Section) CrackedInertiaResult() (*CrackedInertia, error) {
	if s.icr == nil {
		return nil, ErrNoAnalysis
	}
	return s.icr, nil
}
