package aci

import (
	"math"

	"github.com/alexiusacademia/gorcfiber/internal/material"
)

// ACI 318-19 / NSCP 2015 constants

const (
	// Beta1 factors for the equivalent rectangular stress block
	// ACI 318-19 Table 22.2.2.4.3 / NSCP Section 422.2.2.4.3
	Beta1Max = 0.85
	Beta1Min = 0.65

	// Ultimate concrete strain (Section 422.2.2.1)
	EpsilonCU = 0.003

	// Strength reduction factors (Table 421.2.2)
	PhiTension       = 0.90 // tension-controlled
	PhiCompression   = 0.65 // compression-controlled, tied
	PhiCompressionSp = 0.75 // compression-controlled, spiral

	// Maximum axial strength as a fraction of Po (Table 422.4.2.1)
	AxialCapTied   = 0.80
	AxialCapSpiral = 0.85

	// Stress block intensity
	BlockFactor = 0.85
)

// Transverse is the kind of transverse reinforcement of a column
type Transverse int

const (
	Tied Transverse = iota
	Spiral
)

func (t Transverse) String() string {
	if t == Spiral {
		return "spiral"
	}
	return "tied"
}

// ParseTransverse reads "tied" or "spiral"; anything else is tied
func ParseTransverse(s string) Transverse {
	if s == "spiral" || s == "Spiral" {
		return Spiral
	}
	return Tied
}

// Beta1 calculates the factor for the equivalent rectangular stress block.
// f'c above material.SIThreshold is read as MPa, otherwise ksi.
func Beta1(fpc float64) float64 {
	if material.IsSI(fpc) {
		if fpc <= 28 {
			return Beta1Max
		}
		// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
		return math.Max(Beta1Max-0.05*(fpc-28)/7, Beta1Min)
	}
	if fpc <= 4 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 4) for f'c > 4 ksi
	return math.Max(Beta1Max-0.05*(fpc-4), Beta1Min)
}

// Phi calculates the strength reduction factor from the net tensile strain
// at the extreme tension steel. epsilonT may be +Inf (pure tension).
// Table 421.2.2
func Phi(epsilonT, fy, es float64, t Transverse) float64 {
	lower := PhiCompression
	if t == Spiral {
		lower = PhiCompressionSp
	}
	epsilonTY := fy / es

	if epsilonT >= epsilonTY+EpsilonCU {
		// Tension-controlled
		return PhiTension
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return lower
	}
	// Transition zone
	return lower + (PhiTension-lower)*(epsilonT-epsilonTY)/EpsilonCU
}

// AxialCap returns the factor on Po limiting the design axial strength
func AxialCap(t Transverse) float64 {
	if t == Spiral {
		return AxialCapSpiral
	}
	return AxialCapTied
}

// NominalAxial returns Po = 0.85f'c(Ag - Ast) + fy·Ast
func NominalAxial(fpc, fy, ag, ast float64) float64 {
	return BlockFactor*fpc*(ag-ast) + fy*ast
}
