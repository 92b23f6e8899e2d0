package section

import (
	"fmt"
	"math"
)

// CrackedStep is the transformed cracked section at one load step
type CrackedStep struct {
	Step      int
	Curvature float64
	Icr       float64
	Ratio     float64 // Icr/Ig, at most 1
	Centroid  Point   // centroid of the transformed cracked section
}

// CrackedInertia holds Ig and the cracked moment of inertia of every
// recorded moment-curvature step
type CrackedInertia struct {
	Es, Ec float64
	Ig     float64
	Steps  []CrackedStep
}

// CrackedInertia computes the cracked moment of inertia about the major axis
// at each step of the stored moment-curvature run. All patch fibers are
// treated as concrete and all node fibers as bars transformed by Es/Ec. A
// patch fiber with zero stress at a step is considered cracked and dropped.
// Ig counts the patch fibers only; the origin step reports Ig.
func (s *Section) CrackedInertia(es, ec float64) (*CrackedInertia, error) {
	if s.mk == nil {
		return nil, ErrNoAnalysis
	}
	if !(es > 0) || !(ec > 0) {
		return nil, invalidOption("Es and Ec must be positive, got %g and %g", es, ec)
	}

	// gross moment of inertia (without node fibers)
	var ig float64
	for i := range s.patches {
		f := &s.patches[i]
		ig += secondMomentX(f.Vertices[:]) + f.Area*f.Ecc.Y*f.Ecc.Y
	}

	out := &CrackedInertia{Es: es, Ec: ec, Ig: ig, Steps: make([]CrackedStep, len(s.mk.Steps))}
	ns := es / ec
	for r, st := range s.mk.Steps {
		if st.Step == 0 {
			out.Steps[r] = CrackedStep{Step: 0, Icr: ig, Ratio: 1, Centroid: s.centroid}
			continue
		}

		// transformed area and first moments, relative to the section centroid
		var sumA, sumAx, sumAy float64
		var ys, as []float64
		add := func(f *Fiber, area float64) {
			sumA += area
			sumAx += area * f.Ecc.X
			sumAy += area * f.Ecc.Y
			ys = append(ys, f.Ecc.Y)
			as = append(as, area)
		}
		for i := range s.nodes {
			add(&s.nodes[i], s.nodes[i].Area*ns)
		}
		for i := range s.patches {
			if math.Abs(s.mk.patchStates[r][i].Stress) > 0 {
				add(&s.patches[i], s.patches[i].Area)
			}
		}
		if sumA == 0 {
			return nil, fmt.Errorf("%w: no uncracked area at step %d", ErrEmptySection, st.Step)
		}

		// Ecc.Y grows downward, so the cracked centroid sits at cy - ȳ
		ex, ey := sumAx/sumA, sumAy/sumA
		var icr float64
		for i := range as {
			dy := ys[i] - ey
			icr += as[i] * dy * dy
		}
		out.Steps[r] = CrackedStep{
			Step:      st.Step,
			Curvature: st.Curvature,
			Icr:       icr,
			Ratio:     math.Min(1, icr/ig),
			Centroid:  Point{X: s.centroid.X + ex, Y: s.centroid.Y - ey},
		}
	}

	s.icr = out
	return out, nil
}
