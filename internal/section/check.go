package section

import (
	"math"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
)

// MomentCapacity returns the factored moment capacity φMn of the curve at a
// factored axial force pu (compression positive). The moment is the
// magnitude of (φMx, φMy) interpolated where φPn crosses pu; when several
// segments cross, the largest moment is returned. ok is false when pu is
// outside the curve's axial range.
func (c *InteractionCurve) MomentCapacity(pu float64) (phiMn float64, ok bool) {
	pts := c.Points
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1].PhiP, pts[i].PhiP
		lo, hi := math.Min(p0, p1), math.Max(p0, p1)
		if pu < lo || pu > hi {
			continue
		}
		m0 := math.Hypot(pts[i-1].PhiMx, pts[i-1].PhiMy)
		m1 := math.Hypot(pts[i].PhiMx, pts[i].PhiMy)
		var m float64
		if p1 != p0 {
			m = m0 + (m1-m0)*(pu-p0)/(p1-p0)
		} else {
			m = math.Max(m0, m1)
		}
		if !ok || m > phiMn {
			phiMn = m
		}
		ok = true
	}
	return phiMn, ok
}

// MaxAxial returns the largest factored axial capacity of the curve
func (c *InteractionCurve) MaxAxial() float64 {
	best := math.Inf(-1)
	for _, p := range c.Points {
		best = math.Max(best, p.PhiP)
	}
	return best
}

// DemandCheck compares one factored demand with the curve capacity
type DemandCheck struct {
	Demand   aci.Demand
	Capacity float64 // φMn at Pu
	Ratio    float64 // |Mu| / φMn
	OK       bool
	Message  string
}

// CheckDemands checks each factored demand against the curve
func (c *InteractionCurve) CheckDemands(demands []aci.Demand) []DemandCheck {
	out := make([]DemandCheck, 0, len(demands))
	for _, d := range demands {
		chk := DemandCheck{Demand: d}
		capacity, ok := c.MomentCapacity(d.Pu)
		switch {
		case !ok:
			chk.Ratio = math.Inf(1)
			chk.Message = "axial demand outside interaction curve"
		case capacity <= 0:
			chk.Capacity = capacity
			chk.Ratio = math.Inf(1)
			chk.OK = math.Abs(d.Mu) == 0
			chk.Message = "no moment capacity at this axial force"
			if chk.OK {
				chk.Ratio = 0
				chk.Message = "OK"
			}
		default:
			chk.Capacity = capacity
			chk.Ratio = math.Abs(d.Mu) / capacity
			chk.OK = chk.Ratio <= 1
			chk.Message = "OK"
			if !chk.OK {
				chk.Message = "moment demand exceeds capacity"
			}
		}
		out = append(out, chk)
	}
	return out
}
