package section

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
)

// Interaction defaults
const (
	DefaultInteractionPoints = 300
	DefaultMaxDepthFactor    = 10.0
	DefaultOrientationStep   = 15.0
	DefaultFiberEcu          = 0.004
)

// Method selects how fiber stresses are evaluated in the interaction sweep
type Method int

const (
	// MethodStressBlock replaces the fiber laws with the rectangular
	// stress block for patches and elastic-perfectly-plastic bars
	MethodStressBlock Method = iota
	// MethodFiber uses each fiber's own law with the extreme compression
	// fiber at the crushing strain Ecu
	MethodFiber
)

func (m Method) String() string {
	if m == MethodFiber {
		return "fiber"
	}
	return "stress-block"
}

// InteractionOptions configures a P-M interaction sweep
type InteractionOptions struct {
	Fpc float64 // concrete strength, ksi or MPa (inferred)
	Fy  float64 // bar yield strength
	Es  float64 // bar elastic modulus

	Orientations   []float64 // neutral axis orientations in degrees (default 0, 15, …, 345)
	Points         int       // neutral axis depths per orientation (default 300)
	MaxDepthFactor float64   // largest c as a multiple of the section depth (default 10)
	Transverse     aci.Transverse
	Method         Method
	Ecu            float64 // crushing strain for MethodFiber (default 0.004)
	Concurrency    int     // orientations evaluated in parallel (default GOMAXPROCS)
}

// DefaultOrientations returns 0 to 345 degrees in 15 degree steps
func DefaultOrientations() []float64 {
	out := make([]float64, 0, int(360/DefaultOrientationStep))
	for a := 0.0; a < 360; a += DefaultOrientationStep {
		out = append(out, a)
	}
	return out
}

func (o *InteractionOptions) normalize() error {
	switch {
	case !(o.Fpc > 0) || math.IsInf(o.Fpc, 0):
		return invalidOption("f'c must be positive, got %g", o.Fpc)
	case !(o.Fy > 0) || math.IsInf(o.Fy, 0):
		return invalidOption("fy must be positive, got %g", o.Fy)
	case !(o.Es > 0) || math.IsInf(o.Es, 0):
		return invalidOption("Es must be positive, got %g", o.Es)
	case o.Points < 0 || o.Points == 1:
		return invalidOption("points must be at least 2, got %d", o.Points)
	case o.MaxDepthFactor < 0 || math.IsNaN(o.MaxDepthFactor):
		return invalidOption("max depth factor must be positive, got %g", o.MaxDepthFactor)
	case o.Ecu < 0 || math.IsNaN(o.Ecu):
		return invalidOption("crushing strain must be positive, got %g", o.Ecu)
	case o.Concurrency < 0:
		return invalidOption("concurrency must not be negative, got %d", o.Concurrency)
	}
	for _, a := range o.Orientations {
		if !isFinite(a) {
			return invalidOption("orientation must be finite, got %g", a)
		}
	}
	if len(o.Orientations) == 0 {
		o.Orientations = DefaultOrientations()
	}
	if o.Points == 0 {
		o.Points = DefaultInteractionPoints
	}
	if o.MaxDepthFactor == 0 {
		o.MaxDepthFactor = DefaultMaxDepthFactor
	}
	if o.Ecu == 0 {
		o.Ecu = DefaultFiberEcu
	}
	if o.Concurrency == 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	return nil
}

// InteractionPoint is one (P, M) pair of the interaction surface.
// P is positive in compression. Mx and My are about the section centroid in
// the meshed axes; compression at the top gives positive Mx.
type InteractionPoint struct {
	Orientation float64
	NeutralAxis float64
	P           float64
	Mx          float64
	My          float64
	Phi         float64 // strength reduction factor
	PhiP        float64 // factored axial capacity, capped at φ·cap·Po
	PhiMx       float64
	PhiMy       float64
	StrainT     float64 // net tensile strain at the extreme bar, +Inf at c = 0
}

// InteractionCurve is the planar P-M curve of one orientation ordered by
// increasing neutral axis depth
type InteractionCurve struct {
	Orientation float64
	Points      []InteractionPoint
}

// InteractionResult holds one curve per orientation in the requested order
type InteractionResult struct {
	Fpc        float64
	Fy         float64
	Es         float64
	Beta1      float64
	Po         float64 // nominal pure compression strength
	Transverse aci.Transverse
	Method     Method
	Curves     []InteractionCurve
}

// Curve returns the curve of an orientation
func (r *InteractionResult) Curve(orientation float64) (*InteractionCurve, bool) {
	for i := range r.Curves {
		if r.Curves[i].Orientation == orientation {
			return &r.Curves[i], true
		}
	}
	return nil, false
}

// Points returns every point of every curve in order
func (r *InteractionResult) Points() []InteractionPoint {
	var n int
	for i := range r.Curves {
		n += len(r.Curves[i].Points)
	}
	out := make([]InteractionPoint, 0, n)
	for i := range r.Curves {
		out = append(out, r.Curves[i].Points...)
	}
	return out
}

// Interaction sweeps the neutral axis depth from 0 (pure tension) to
// MaxDepthFactor times the section depth for every orientation. An
// orientation θ rotates the section θ degrees counter-clockwise so that depth
// is measured from the new top; moments are reported in the meshed axes.
//
// Orientations are independent and evaluated concurrently into fixed slots,
// so the result does not depend on scheduling. The result replaces any
// previous interaction result stored on the section.
func (s *Section) Interaction(opts InteractionOptions) (*InteractionResult, error) {
	if !s.meshed {
		return nil, ErrNotMeshed
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	res := &InteractionResult{
		Fpc:        opts.Fpc,
		Fy:         opts.Fy,
		Es:         opts.Es,
		Beta1:      aci.Beta1(opts.Fpc),
		Po:         aci.NominalAxial(opts.Fpc, opts.Fy, s.area, s.SteelArea()),
		Transverse: opts.Transverse,
		Method:     opts.Method,
		Curves:     make([]InteractionCurve, len(opts.Orientations)),
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Concurrency)
	for i, angle := range opts.Orientations {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, angle float64) {
			defer wg.Done()
			defer func() { <-sem }()
			res.Curves[i] = s.sweep(angle, opts, res)
		}(i, angle)
	}
	wg.Wait()

	s.pm = res
	return res, nil
}

// sweep evaluates one orientation
func (s *Section) sweep(angle float64, opts InteractionOptions, res *InteractionResult) InteractionCurve {
	o := s.orient(angle)
	depths := floats.Span(make([]float64, opts.Points), 0, opts.MaxDepthFactor*o.depth)

	ecu := aci.EpsilonCU
	if opts.Method == MethodFiber {
		ecu = opts.Ecu
		// the fiber laws have no pure tension limit
		depths = depths[1:]
	}

	curve := InteractionCurve{Orientation: angle, Points: make([]InteractionPoint, 0, len(depths))}
	capP := aci.AxialCap(opts.Transverse) * res.Po
	for _, c := range depths {
		var sumF, sumMx, sumMy float64
		if opts.Method == MethodFiber {
			sumF, sumMx, sumMy = s.fiberResultant(o, c, ecu)
		} else {
			sumF, sumMx, sumMy = s.blockResultant(o, c, opts, res.Beta1)
		}

		et := math.Inf(1)
		if c > 0 {
			et = ecu * (o.deepestBar - c) / c
		}
		phi := aci.Phi(et, opts.Fy, opts.Es, opts.Transverse)
		p := -sumF
		curve.Points = append(curve.Points, InteractionPoint{
			Orientation: angle,
			NeutralAxis: c,
			P:           p,
			Mx:          sumMx,
			My:          sumMy,
			Phi:         phi,
			PhiP:        min(phi*p, phi*capP),
			PhiMx:       phi * sumMx,
			PhiMy:       phi * sumMy,
			StrainT:     et,
		})
	}
	return curve
}

// blockResultant sums forces and moments with the rectangular stress block.
// At c = 0 every bar is at +fy and the concrete carries nothing.
func (s *Section) blockResultant(o orientation, c float64, opts InteractionOptions, beta1 float64) (sumF, sumMx, sumMy float64) {
	add := func(f *Fiber, stress float64) {
		force := stress * f.Area
		sumF += force
		sumMx += force * f.Ecc.Y
		sumMy += force * f.Ecc.X
	}

	if c == 0 {
		for i := range s.nodes {
			add(&s.nodes[i], opts.Fy)
		}
		return sumF, sumMx, sumMy
	}

	a := beta1 * c
	block := aci.BlockFactor * opts.Fpc
	for i := range s.patches {
		if o.patchDepths[i] <= a {
			add(&s.patches[i], -block)
		}
	}
	for i := range s.nodes {
		d := o.nodeDepths[i]
		strain := aci.EpsilonCU * (d - c) / c
		stress := math.Max(math.Min(strain*opts.Es, opts.Fy), -opts.Fy)
		if strain < 0 && d <= a {
			// displaced concrete
			stress += block
		}
		add(&s.nodes[i], stress)
	}
	return sumF, sumMx, sumMy
}

// fiberResultant sums forces and moments with the fiber laws, curvature
// ecu/c about the rotated neutral axis
func (s *Section) fiberResultant(o orientation, c, ecu float64) (sumF, sumMx, sumMy float64) {
	phi := ecu / c
	sum := func(f *Fiber, depth float64) {
		force := f.Material.StressAt(phi*(depth-c)) * f.Area
		sumF += force
		sumMx += force * f.Ecc.Y
		sumMy += force * f.Ecc.X
	}
	for i := range s.patches {
		sum(&s.patches[i], o.patchDepths[i])
	}
	for i := range s.nodes {
		sum(&s.nodes[i], o.nodeDepths[i])
	}
	return sumF, sumMx, sumMy
}
