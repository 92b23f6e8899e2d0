package material

import "math"

// Ramberg-Osgood solver limits
const (
	RambergOsgoodTolerance = 1e-12 // strain residual
	RambergOsgoodMaxIter   = 100
)

// Bilinear is a symmetric elastic / linear-hardening steel law
// (Rex & Easterling, 1996).
//
//	|ε| ≤ ey:        σ = Es·ε
//	ey < |ε| ≤ emax: σ = ±(fy + (fu-fy)/(emax-ey)·(|ε|-ey))
//	|ε| > emax:      σ = 0 (fracture)
type Bilinear struct {
	fy, fu, es, ey, emax float64
}

// BilinearConfig configures a Bilinear law. Zero Fu, Ey and Emax take
// the defaults fy, fy/Es and 0.1.
type BilinearConfig struct {
	Fy   float64
	Es   float64
	Fu   float64
	Ey   float64
	Emax float64
}

// NewBilinear builds a Bilinear law
func NewBilinear(cfg BilinearConfig) (*Bilinear, error) {
	const name = "Bilinear"
	if err := firstError(requirePositive(name, "fy", cfg.Fy), requirePositive(name, "Es", cfg.Es)); err != nil {
		return nil, err
	}
	b := &Bilinear{fy: cfg.Fy, fu: cfg.Fu, es: cfg.Es, ey: cfg.Ey, emax: cfg.Emax}
	if b.fu == 0 {
		b.fu = b.fy
	}
	if b.ey == 0 {
		b.ey = b.fy / b.es
	}
	if b.emax == 0 {
		b.emax = 0.1
	}
	err := firstError(
		requirePositive(name, "fu", b.fu),
		requirePositive(name, "ey", b.ey),
		requireGreater(name, "emax", b.emax, b.ey, "ey"),
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bilinear) Name() string { return "Bilinear" }
func (b *Bilinear) law()         {}

// YieldStrength returns fy
func (b *Bilinear) YieldStrength() float64 { return b.fy }

// ElasticModulus returns Es
func (b *Bilinear) ElasticModulus() float64 { return b.es }

// StressAt returns the stress at a given strain
func (b *Bilinear) StressAt(strain float64) float64 {
	e := math.Abs(strain)
	if e > b.emax {
		return 0
	}
	stress := b.es * e
	if stress > b.fy {
		stress = b.fy + (b.fu-b.fy)/(b.emax-b.ey)*(e-b.ey)
	}
	return math.Copysign(stress, strain)
}

// Multilinear traces the six-segment reinforcing steel curve of
// Rex & Easterling (1996): elastic, yield plateau, four hardening and
// softening lines, then fracture beyond Strain4.
type Multilinear struct {
	fy, fu, es float64
	ey1, ey2   float64
	strains    [4]float64
	stresses   [4]float64
}

// MultilinearConfig configures a Multilinear law. Stress1..4 are fractions
// of fu. Zero values take the rebar defaults.
type MultilinearConfig struct {
	Fy, Fu, Es float64
	Ey1, Ey2   float64
	Strain1    float64
	Strain2    float64
	Strain3    float64
	Strain4    float64
	Stress1    float64
	Stress2    float64
	Stress3    float64
	Stress4    float64
}

// NewMultilinear builds a Multilinear law
func NewMultilinear(cfg MultilinearConfig) (*Multilinear, error) {
	const name = "Multilinear"
	err := firstError(
		requirePositive(name, "fy", cfg.Fy),
		requirePositive(name, "fu", cfg.Fu),
		requirePositive(name, "Es", cfg.Es),
	)
	if err != nil {
		return nil, err
	}
	orDefault := func(v, d float64) float64 {
		if v == 0 {
			return d
		}
		return v
	}
	m := &Multilinear{
		fy:  cfg.Fy,
		fu:  cfg.Fu,
		es:  cfg.Es,
		ey1: orDefault(cfg.Ey1, cfg.Fy/cfg.Es),
		ey2: orDefault(cfg.Ey2, 0.008),
		strains: [4]float64{
			orDefault(cfg.Strain1, 0.03),
			orDefault(cfg.Strain2, 0.07),
			orDefault(cfg.Strain3, 0.10),
			orDefault(cfg.Strain4, 0.16),
		},
		stresses: [4]float64{
			orDefault(cfg.Stress1, 0.83) * cfg.Fu,
			orDefault(cfg.Stress2, 0.98) * cfg.Fu,
			orDefault(cfg.Stress3, 1.00) * cfg.Fu,
			orDefault(cfg.Stress4, 0.84) * cfg.Fu,
		},
	}

	err = firstError(
		requirePositive(name, "ey1", m.ey1),
		requireGreater(name, "ey2", m.ey2, m.ey1, "ey1"),
		requireGreater(name, "strain1", m.strains[0], m.ey2, "ey2"),
		requireGreater(name, "strain2", m.strains[1], m.strains[0], "strain1"),
		requireGreater(name, "strain3", m.strains[2], m.strains[1], "strain2"),
		requireGreater(name, "strain4", m.strains[3], m.strains[2], "strain3"),
	)
	if err != nil {
		return nil, err
	}
	for i, s := range m.stresses {
		if err := requirePositive(name, "stress"+string(rune('1'+i)), s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Multilinear) Name() string { return "Multilinear" }
func (m *Multilinear) law()         {}

// StressAt returns the stress at a given strain
func (m *Multilinear) StressAt(strain float64) float64 {
	e := math.Abs(strain)
	var stress float64
	switch {
	case e <= m.ey1:
		stress = m.es * e
	case e <= m.ey2:
		stress = m.fy
	case e <= m.strains[3]:
		x0, y0 := m.ey2, m.fy
		for i := range m.strains {
			x1, y1 := m.strains[i], m.stresses[i]
			if e <= x1 {
				stress = y0 + (y1-y0)/(x1-x0)*(e-x0)
				break
			}
			x0, y0 = x1, y1
		}
	default:
		stress = 0
	}
	return math.Copysign(stress, strain)
}

// RambergOsgood is the smooth power law with 0.2% offset,
//
//	ε = σ/Es + 0.002·(σ/fy)^n
//
// solved for σ at every query.
type RambergOsgood struct {
	fy, es, n, emax float64
}

// RambergOsgoodConfig configures a RambergOsgood law. Zero Emax means 0.16.
type RambergOsgoodConfig struct {
	Fy, Es, N, Emax float64
}

// NewRambergOsgood builds a RambergOsgood law
func NewRambergOsgood(cfg RambergOsgoodConfig) (*RambergOsgood, error) {
	const name = "RambergOsgood"
	r := &RambergOsgood{fy: cfg.Fy, es: cfg.Es, n: cfg.N, emax: cfg.Emax}
	if r.emax == 0 {
		r.emax = 0.16
	}
	err := firstError(
		requirePositive(name, "fy", r.fy),
		requirePositive(name, "Es", r.es),
		requirePositive(name, "n", r.n),
		requirePositive(name, "emax", r.emax),
	)
	if err != nil {
		return nil, err
	}
	if r.n < 1 {
		return nil, &ConfigError{Law: name, Param: "n", Value: r.n, Reason: "must be at least 1"}
	}
	return r, nil
}

func (r *RambergOsgood) Name() string { return "RambergOsgood" }
func (r *RambergOsgood) law()         {}

// StressAt returns the stress at a given strain.
//
// The implicit equation is solved by Newton iteration starting at zero,
// kept inside the bracket [0, Es·|ε|] where the residual changes sign.
// Steps that leave the bracket fall back to bisection. Iteration stops at
// a strain residual of RambergOsgoodTolerance or RambergOsgoodMaxIter
// iterations, whichever comes first.
func (r *RambergOsgood) StressAt(strain float64) float64 {
	e := math.Abs(strain)
	if e == 0 || e > r.emax {
		return 0
	}
	residual := func(s float64) float64 {
		return s/r.es + 0.002*math.Pow(s/r.fy, r.n) - e
	}
	lo, hi := 0.0, r.es*e
	s := 0.0
	for i := 0; i < RambergOsgoodMaxIter; i++ {
		f := residual(s)
		if math.Abs(f) <= RambergOsgoodTolerance {
			break
		}
		if f < 0 {
			lo = s
		} else {
			hi = s
		}
		df := 1/r.es + 0.002*r.n/r.fy*math.Pow(s/r.fy, r.n-1)
		next := s - f/df
		if !(next > lo && next < hi) {
			next = 0.5 * (lo + hi)
		}
		s = next
		if hi-lo <= RambergOsgoodTolerance*r.fy {
			break
		}
	}
	return math.Copysign(s, strain)
}

// MenegottoPinto is the explicit smooth steel law
//
//	σ = fy·(b·ε* + (1-b)·ε* / (1 + ε*^n)^(1/n)),  ε* = |ε|/ey
//
// No iteration is needed per query.
type MenegottoPinto struct {
	fy, es, b, n, emax float64
}

// MenegottoPintoConfig configures a MenegottoPinto law. B is the ratio of
// final to initial tangent stiffness. Zero Emax means 0.16.
type MenegottoPintoConfig struct {
	Fy, Es, B, N, Emax float64
}

// NewMenegottoPinto builds a MenegottoPinto law
func NewMenegottoPinto(cfg MenegottoPintoConfig) (*MenegottoPinto, error) {
	const name = "MenegottoPinto"
	m := &MenegottoPinto{fy: cfg.Fy, es: cfg.Es, b: cfg.B, n: cfg.N, emax: cfg.Emax}
	if m.emax == 0 {
		m.emax = 0.16
	}
	err := firstError(
		requirePositive(name, "fy", m.fy),
		requirePositive(name, "Es", m.es),
		requirePositive(name, "n", m.n),
		requireNonNegative(name, "b", m.b),
		requirePositive(name, "emax", m.emax),
	)
	if err != nil {
		return nil, err
	}
	if m.b >= 1 {
		return nil, &ConfigError{Law: name, Param: "b", Value: m.b, Reason: "must be below 1"}
	}
	return m, nil
}

func (m *MenegottoPinto) Name() string { return "MenegottoPinto" }
func (m *MenegottoPinto) law()         {}

// StressAt returns the stress at a given strain
func (m *MenegottoPinto) StressAt(strain float64) float64 {
	e := math.Abs(strain)
	if e > m.emax {
		return 0
	}
	x := e / (m.fy / m.es)
	stress := (m.b*x + (1-m.b)*x/math.Pow(1+math.Pow(x, m.n), 1/m.n)) * m.fy
	return math.Copysign(stress, strain)
}
