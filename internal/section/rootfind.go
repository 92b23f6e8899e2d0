package section

import (
	"errors"
	"math"
)

var (
	errFlatResidual  = errors.New("flat residual")
	errNotBracketed  = errors.New("neutral axis could not be bracketed")
	errMaxIter       = errors.New("maximum iterations exceeded")
	errNonFinite     = errors.New("non-finite residual")
	errDiverged      = errors.New("secant search diverged")
	errDiscontinuous = errors.New("bracket collapsed on a residual jump")
)

const eps = 2.220446049250313e-16

// residualFunc returns the force imbalance at neutral axis depth c and the
// tolerance it must fall within
type residualFunc func(c float64) (r, tol float64)

// rootResult is the outcome of a neutral axis search
type rootResult struct {
	c          float64
	residual   float64
	iterations int
}

// secant runs the secant method from x0, x1. Steps further than maxStep from
// x0 are treated as divergence.
func secant(f residualFunc, x0, x1 float64, maxIter int, maxStep float64) (rootResult, error) {
	f0, tol0 := f(x0)
	if !isFinite(f0) {
		return rootResult{}, errNonFinite
	}
	if math.Abs(f0) <= tol0 {
		return rootResult{c: x0, residual: f0, iterations: 1}, nil
	}

	origin := x0
	for i := 1; i <= maxIter; i++ {
		f1, tol1 := f(x1)
		if !isFinite(f1) {
			return rootResult{}, errNonFinite
		}
		if math.Abs(f1) <= tol1 {
			return rootResult{c: x1, residual: f1, iterations: i + 1}, nil
		}
		if f1 == f0 {
			return rootResult{}, errFlatResidual
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if !isFinite(x2) || math.Abs(x2-origin) > maxStep {
			return rootResult{}, errDiverged
		}
		x0, f0 = x1, f1
		x1 = x2
	}
	return rootResult{}, errMaxIter
}

// bracket expands geometrically about guess until the residual changes sign.
// The step starts at h and doubles up to maxH.
func bracket(f residualFunc, guess, h, maxH float64) (a, b, fa, fb float64, evals int, err error) {
	fg, tol := f(guess)
	evals++
	if math.Abs(fg) <= tol {
		return guess, guess, fg, fg, evals, nil
	}
	for ; h <= maxH; h *= 2 {
		lo, hi := guess-h, guess+h
		flo, _ := f(lo)
		fhi, _ := f(hi)
		evals += 2
		switch {
		case opposite(flo, fg):
			return lo, guess, flo, fg, evals, nil
		case opposite(fg, fhi):
			return guess, hi, fg, fhi, evals, nil
		}
	}
	return 0, 0, 0, 0, evals, errNotBracketed
}

// brent refines a bracketed root (inverse quadratic interpolation with
// bisection safeguard). It stops when the residual is within tolerance. A
// bracket that collapses to xtol with the residual still out of tolerance
// straddles a jump, not a root, and fails with errDiscontinuous.
func brent(f residualFunc, a, b, fa, fb, xtol float64, maxIter int) (rootResult, error) {
	if a == b {
		return settle(f, a, fa, 0)
	}
	if !opposite(fa, fb) {
		return rootResult{}, errNotBracketed
	}
	c, fc := a, fa
	d, e := b-a, b-a
	for i := 1; i <= maxIter; i++ {
		if fb*fc > 0 {
			c, fc = a, fa
			d, e = b-a, b-a
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*xtol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return settle(f, b, fb, i)
		}
		var p, q float64
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			if a != c && fa != fc {
				// Inverse quadratic
				r := fb / fc
				t := fa / fc
				p = s * (2*xm*t*(t-r) - (b-a)*(r-1))
				q = (t - 1) * (r - 1) * (s - 1)
			} else {
				// Secant
				p = 2 * xm * s
				q = 1 - s
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e, d = d, p/q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		var tolb float64
		fb, tolb = f(b)
		if !isFinite(fb) {
			return rootResult{}, errNonFinite
		}
		if math.Abs(fb) <= tolb {
			return rootResult{c: b, residual: fb, iterations: i}, nil
		}
	}
	return rootResult{}, errMaxIter
}

// settle accepts x only if its residual fx is within the tolerance at x
func settle(f residualFunc, x, fx float64, iterations int) (rootResult, error) {
	res := rootResult{c: x, residual: fx, iterations: iterations}
	if _, tol := f(x); math.Abs(fx) > tol {
		return res, errDiscontinuous
	}
	return res, nil
}

func opposite(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
