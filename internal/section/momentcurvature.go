package section

import (
	"fmt"
	"math"
)

// Solver defaults
const (
	DefaultMaxIterations  = 100
	DefaultForceTolerance = 1e-8
	DefaultMaxFailures    = 2

	// absolute floor on the force tolerance
	forceFloor = 1e-9
)

// MomentCurvatureOptions configures a moment-curvature run
type MomentCurvatureOptions struct {
	Axial          float64 // applied axial force, compression negative
	PhiTarget      float64 // final curvature, non-zero; negative reverses the bending
	Steps          int     // number of equal curvature increments, ≥ 1
	MaxIterations  int     // per root search (default 100)
	ForceTolerance float64 // relative to Σ A|σ| + |P| (default 1e-8)
	MaxFailures    int     // consecutive failed steps before stopping (default 2)

	// Progress, when set, is called after every recorded step
	Progress func(LoadStep)
}

func (o *MomentCurvatureOptions) normalize() error {
	switch {
	case o.PhiTarget == 0 || !isFinite(o.PhiTarget):
		return invalidOption("target curvature must be non-zero and finite, got %g", o.PhiTarget)
	case o.Steps < 1:
		return invalidOption("step count must be at least 1, got %d", o.Steps)
	case !isFinite(o.Axial):
		return invalidOption("axial force must be finite, got %g", o.Axial)
	case o.MaxIterations < 0:
		return invalidOption("max iterations must not be negative, got %d", o.MaxIterations)
	case o.ForceTolerance < 0 || math.IsNaN(o.ForceTolerance):
		return invalidOption("force tolerance must not be negative, got %g", o.ForceTolerance)
	case o.MaxFailures < 0:
		return invalidOption("max failures must not be negative, got %d", o.MaxFailures)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.ForceTolerance == 0 {
		o.ForceTolerance = DefaultForceTolerance
	}
	if o.MaxFailures == 0 {
		o.MaxFailures = DefaultMaxFailures
	}
	return nil
}

// LoadStep is one point of the moment-curvature trajectory
type LoadStep struct {
	Step        int     // curvature increment index, 0 is the unstrained origin
	Curvature   float64 // φ
	Moment      float64 // Mx about the section centroid
	MinorMoment float64 // My about the section centroid
	Axial       float64 // P, compression negative
	NeutralAxis float64 // c, depth below the extreme top fiber
	Slope       float64 // tangent dM/dφ from the previous recorded step
	Residual    float64 // force imbalance at the accepted c
	Iterations  int     // residual evaluations spent on the step
}

// StepFailure records a curvature step whose neutral axis was not found
type StepFailure struct {
	Step      int
	Curvature float64
	Reason    string
}

// Status of a moment-curvature run
type Status int

const (
	StatusCompleted Status = iota
	StatusTerminated
)

func (s Status) String() string {
	if s == StatusTerminated {
		return "terminated"
	}
	return "completed"
}

// MomentCurvatureResult is the trajectory of one run plus the fiber states
// of every recorded step
type MomentCurvatureResult struct {
	Axial     float64
	PhiTarget float64
	StepCount int
	Steps     []LoadStep
	Failures  []StepFailure
	Status    Status

	// arena indexed by [record][tag]
	patchStates [][]FiberState
	nodeStates  [][]FiberState

	stopped *ConvergenceError
}

// Err returns a *ConvergenceError when the run terminated early
func (r *MomentCurvatureResult) Err() error {
	if r.stopped == nil {
		return nil
	}
	return r.stopped
}

// Final returns the last recorded step
func (r *MomentCurvatureResult) Final() LoadStep {
	return r.Steps[len(r.Steps)-1]
}

// Curvatures returns φ of each recorded step
func (r *MomentCurvatureResult) Curvatures() []float64 {
	out := make([]float64, len(r.Steps))
	for i, st := range r.Steps {
		out[i] = st.Curvature
	}
	return out
}

// Moments returns Mx of each recorded step
func (r *MomentCurvatureResult) Moments() []float64 {
	out := make([]float64, len(r.Steps))
	for i, st := range r.Steps {
		out[i] = st.Moment
	}
	return out
}

// PeakMoment returns the recorded step with the largest |Mx|
func (r *MomentCurvatureResult) PeakMoment() LoadStep {
	peak := r.Steps[0]
	for _, st := range r.Steps[1:] {
		if math.Abs(st.Moment) > math.Abs(peak.Moment) {
			peak = st
		}
	}
	return peak
}

// StateAt returns every fiber state of a recorded step. record indexes Steps.
func (r *MomentCurvatureResult) StateAt(record int) (patches, nodes []FiberState, err error) {
	if record < 0 || record >= len(r.Steps) {
		return nil, nil, fmt.Errorf("%w: record %d of %d", ErrNoAnalysis, record, len(r.Steps))
	}
	return r.patchStates[record], r.nodeStates[record], nil
}

// MomentCurvature runs a moment-curvature analysis under a constant axial
// force. Curvature grows from 0 to PhiTarget in Steps equal increments; at
// each increment the neutral axis depth is found by a secant search on the
// force imbalance, warm-started from the previous converged depth, with a
// bracketing fallback. The neutral axis orientation is fixed; any minor-axis
// moment of an asymmetric section is reported, not eliminated.
//
// Non-convergent steps are skipped and reported. After MaxFailures
// consecutive failures the run stops with StatusTerminated and the steps
// converged so far. The result replaces any previous moment-curvature result
// stored on the section.
func (s *Section) MomentCurvature(opts MomentCurvatureOptions) (*MomentCurvatureResult, error) {
	if !s.meshed {
		return nil, ErrNotMeshed
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	res := &MomentCurvatureResult{
		Axial:     opts.Axial,
		PhiTarget: opts.PhiTarget,
		StepCount: opts.Steps,
		Status:    StatusCompleted,
	}

	// unstrained origin
	origin := LoadStep{Step: 0, Axial: opts.Axial}
	res.record(s, origin, 0, 0)
	if opts.Progress != nil {
		opts.Progress(origin)
	}

	depth := s.Depth()
	if !(depth > 0) {
		depth = 1
	}
	c := depth / 2
	consecutive := 0

	for k := 1; k <= opts.Steps; k++ {
		phi := float64(k) * opts.PhiTarget / float64(opts.Steps)

		root, err := s.solveNeutralAxis(phi, opts, c, depth)
		if err != nil {
			res.Failures = append(res.Failures, StepFailure{Step: k, Curvature: phi, Reason: err.Error()})
			consecutive++
			if consecutive >= opts.MaxFailures {
				first := res.Failures[len(res.Failures)-consecutive]
				res.Status = StatusTerminated
				res.stopped = &ConvergenceError{
					Step:      first.Step,
					Curvature: first.Curvature,
					Failures:  consecutive,
					Reason:    err.Error(),
				}
				break
			}
			continue
		}
		consecutive = 0
		c = root.c

		prev := res.Steps[len(res.Steps)-1]
		st := LoadStep{
			Step:        k,
			Curvature:   phi,
			Axial:       opts.Axial,
			NeutralAxis: root.c,
			Residual:    root.residual,
			Iterations:  root.iterations,
		}
		res.record(s, st, phi, root.c)
		st = res.Steps[len(res.Steps)-1]
		st.Slope = (st.Moment - prev.Moment) / (st.Curvature - prev.Curvature)
		res.Steps[len(res.Steps)-1] = st

		if opts.Progress != nil {
			opts.Progress(st)
		}
	}

	s.mk = res
	s.icr = nil
	return res, nil
}

// record evaluates every fiber at (phi, c), stores the states and appends
// the step with its moment sums
func (r *MomentCurvatureResult) record(s *Section, st LoadStep, phi, c float64) {
	patches := make([]FiberState, len(s.patches))
	nodes := make([]FiberState, len(s.nodes))
	var sumMx, sumMy float64
	for i := range s.patches {
		patches[i] = s.patches[i].State(phi, c)
		sumMx += patches[i].MomentX
		sumMy += patches[i].MomentY
	}
	for i := range s.nodes {
		nodes[i] = s.nodes[i].State(phi, c)
		sumMx += nodes[i].MomentX
		sumMy += nodes[i].MomentY
	}
	st.Moment = sumMx
	st.MinorMoment = sumMy

	r.Steps = append(r.Steps, st)
	r.patchStates = append(r.patchStates, patches)
	r.nodeStates = append(r.nodeStates, nodes)
}

// axialForce sums fiber forces at (phi, c). scale is Σ A|σ|.
func (s *Section) axialForce(phi, c float64) (sum, scale float64) {
	for i := range s.patches {
		f := &s.patches[i]
		sigma := f.Material.StressAt(f.Strain(phi, c))
		sum += sigma * f.Area
		scale += math.Abs(sigma) * f.Area
	}
	for i := range s.nodes {
		f := &s.nodes[i]
		sigma := f.Material.StressAt(f.Strain(phi, c))
		sum += sigma * f.Area
		scale += math.Abs(sigma) * f.Area
	}
	return sum, scale
}

// solveNeutralAxis finds c with Σ F(φ, c) = P. The secant search starts at
// the warm-start guess; on failure the root is bracketed about the guess and
// refined with Brent's method.
func (s *Section) solveNeutralAxis(phi float64, opts MomentCurvatureOptions, guess, depth float64) (rootResult, error) {
	evals := 0
	residual := func(c float64) (float64, float64) {
		evals++
		sum, scale := s.axialForce(phi, c)
		tol := max(opts.ForceTolerance*(scale+math.Abs(opts.Axial)), forceFloor)
		return sum - opts.Axial, tol
	}

	root, err := secant(residual, guess, guess+1e-3*depth, opts.MaxIterations, 1e4*depth)
	if err == nil {
		root.iterations = evals
		return root, nil
	}

	a, b, fa, fb, _, berr := bracket(residual, guess, depth/10, 1e6*depth)
	if berr != nil {
		return rootResult{}, fmt.Errorf("secant: %v; %w", err, berr)
	}
	root, err = brent(residual, a, b, fa, fb, 1e-12*depth, opts.MaxIterations)
	if err != nil {
		return rootResult{}, fmt.Errorf("brent: %w", err)
	}
	root.iterations = evals
	return root, nil
}
