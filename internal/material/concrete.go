package material

import "math"

// Unit inference threshold for f'c. Values above it are taken as MPa,
// values at or below it as ksi.
const SIThreshold = 15.0

// DefaultConcreteEmax is the crushing strain of plain unconfined concrete.
const DefaultConcreteEmax = 0.0038

// DefaultRuptureStrain is the tensile strain at which concrete cracks
const DefaultRuptureStrain = 0.00015

// IsSI reports whether f'c is interpreted in MPa
func IsSI(fpc float64) bool {
	return fpc > SIThreshold
}

// DefaultEc returns the elastic modulus of concrete from f'c.
//   - ksi: 57000·√(1000·f'c)/1000
//   - MPa: 4700·√f'c
func DefaultEc(fpc float64) float64 {
	if IsSI(fpc) {
		return 4700 * math.Sqrt(fpc)
	}
	return 57000 * math.Sqrt(fpc*1000) / 1000
}

// DefaultFr returns the modulus of rupture from f'c.
//   - ksi: 7.5·√(1000·f'c)/1000
//   - MPa: 0.62·√f'c
func DefaultFr(fpc float64) float64 {
	if IsSI(fpc) {
		return 0.62 * math.Sqrt(fpc)
	}
	return 7.5 * math.Sqrt(fpc*1000) / 1000
}

// ConcreteConfig holds the parameters shared by the concrete laws.
// All values are positive magnitudes; zero means "use the default".
type ConcreteConfig struct {
	Fpc         float64 // cylinder strength
	Ec          float64 // elastic modulus (default from f'c)
	Eo          float64 // strain at peak stress
	Emax        float64 // crushing strain
	Alpha       float64 // residual stress beyond Emax as a fraction of peak
	TakeTension bool    // linear tension branch up to Er
	Fr          float64 // modulus of rupture (default from f'c)
	Er          float64 // rupture strain (default 0.00015)
}

// concrete carries the resolved parameters. Strains and peak stress are
// stored with their compressive (negative) sign.
type concrete struct {
	fpc         float64
	ec          float64
	eo          float64
	emax        float64
	fo          float64
	alpha       float64
	takeTension bool
	fr          float64
	er          float64
}

func (c *concrete) Strength() float64       { return c.fpc }
func (c *concrete) ElasticModulus() float64 { return c.ec }

// RuptureModulus returns fr
func (c *concrete) RuptureModulus() float64 { return c.fr }

// PeakStrain returns the (negative) strain at peak stress
func (c *concrete) PeakStrain() float64 { return c.eo }

// tension evaluates the tension branch shared by all concrete laws
func (c *concrete) tension(strain float64) float64 {
	if !c.takeTension || strain > c.er {
		return 0
	}
	return c.ec * strain
}

func resolveConcrete(name string, cfg ConcreteConfig, peakRatio, eoFactor float64, needEo bool) (concrete, error) {
	if err := requirePositive(name, "fpc", cfg.Fpc); err != nil {
		return concrete{}, err
	}
	c := concrete{
		fpc:         cfg.Fpc,
		ec:          cfg.Ec,
		fr:          cfg.Fr,
		er:          cfg.Er,
		alpha:       cfg.Alpha,
		takeTension: cfg.TakeTension,
		fo:          -peakRatio * cfg.Fpc,
	}
	if c.ec == 0 {
		c.ec = DefaultEc(cfg.Fpc)
	}
	if c.fr == 0 {
		c.fr = DefaultFr(cfg.Fpc)
	}
	if c.er == 0 {
		c.er = DefaultRuptureStrain
	}

	eo := cfg.Eo
	if eo == 0 {
		if needEo {
			return concrete{}, &ConfigError{Law: name, Param: "eo", Value: 0, Reason: "is required"}
		}
		eo = eoFactor * peakRatio * cfg.Fpc / c.ec
	}
	emax := cfg.Emax
	if emax == 0 {
		if needEo {
			return concrete{}, &ConfigError{Law: name, Param: "emax", Value: 0, Reason: "is required"}
		}
		emax = DefaultConcreteEmax
	}

	err := firstError(
		requirePositive(name, "Ec", c.ec),
		requirePositive(name, "fr", c.fr),
		requirePositive(name, "er", c.er),
		requirePositive(name, "eo", eo),
		requireGreater(name, "emax", emax, eo, "eo"),
		requireNonNegative(name, "alpha", c.alpha),
	)
	if err != nil {
		return concrete{}, err
	}
	if c.alpha > 1 {
		return concrete{}, &ConfigError{Law: name, Param: "alpha", Value: c.alpha, Reason: "must not exceed 1"}
	}

	c.eo = -eo
	c.emax = -emax
	return c, nil
}

// Hognestad is the modified Hognestad parabola with a linear descending
// branch (Wight & MacGregor, ch. 3.5).
//
//	fo = -0.9 f'c, default eo = 1.8·0.9f'c/Ec
//	eo ≤ ε < 0:    σ = fo(2X - X²), X = ε/eo
//	emax ≤ ε < eo: σ = fo + 0.15fo(eo-ε)/(emax-eo)
//	ε < emax:      σ = alpha·fo
type Hognestad struct {
	concrete
}

// NewHognestad builds a Hognestad law
func NewHognestad(cfg ConcreteConfig) (*Hognestad, error) {
	c, err := resolveConcrete("Hognestad", cfg, 0.9, 1.8, false)
	if err != nil {
		return nil, err
	}
	return &Hognestad{concrete: c}, nil
}

func (h *Hognestad) Name() string { return "Hognestad" }
func (h *Hognestad) law()         {}

// StressAt returns the stress at a given strain
func (h *Hognestad) StressAt(strain float64) float64 {
	switch {
	case strain >= 0:
		return h.tension(strain)
	case strain >= h.eo:
		x := strain / h.eo
		return h.fo * (2*x - x*x)
	case strain >= h.emax:
		return h.fo + 0.15*h.fo/(h.emax-h.eo)*(h.eo-strain)
	default:
		return h.alpha * h.fo
	}
}

// Todeschini is the single-expression curve of Todeschini et al. (1964).
//
//	fo = -0.9 f'c, default eo = 1.71·0.9f'c/Ec
//	emax ≤ ε < 0: σ = 2·fo·X/(1 + X²), X = ε/eo
//	ε < emax:     σ = alpha·fo
type Todeschini struct {
	concrete
}

// NewTodeschini builds a Todeschini law
func NewTodeschini(cfg ConcreteConfig) (*Todeschini, error) {
	c, err := resolveConcrete("Todeschini", cfg, 0.9, 1.71, false)
	if err != nil {
		return nil, err
	}
	return &Todeschini{concrete: c}, nil
}

func (t *Todeschini) Name() string { return "Todeschini" }
func (t *Todeschini) law()         {}

// StressAt returns the stress at a given strain
func (t *Todeschini) StressAt(strain float64) float64 {
	switch {
	case strain >= 0:
		return t.tension(strain)
	case strain >= t.emax:
		x := strain / t.eo
		return 2 * t.fo * x / (1 + x*x)
	default:
		return t.alpha * t.fo
	}
}

// Mander is the confined concrete model of Mander et al. (1988).
// Unlike the other concrete laws the peak stress is the full f'c and both
// eo and emax are required.
//
//	r = Ec / (Ec - fo/eo)
//	emax ≤ ε < 0: σ = fo·X·r / (r - 1 + X^r)
//	ε < emax:     σ = alpha·fo
type Mander struct {
	concrete
	r float64
}

// NewMander builds a Mander law. Ec must exceed the secant modulus f'c/eo.
func NewMander(cfg ConcreteConfig) (*Mander, error) {
	c, err := resolveConcrete("Mander", cfg, 1.0, 0, true)
	if err != nil {
		return nil, err
	}
	esec := c.fo / c.eo
	if c.ec <= esec {
		return nil, &ConfigError{Law: "Mander", Param: "Ec", Value: c.ec, Reason: "must exceed the secant modulus f'c/eo"}
	}
	return &Mander{concrete: c, r: c.ec / (c.ec - esec)}, nil
}

func (m *Mander) Name() string { return "Mander" }
func (m *Mander) law()         {}

// CurveFit returns the confinement-dependent coefficient r
func (m *Mander) CurveFit() float64 { return m.r }

// StressAt returns the stress at a given strain
func (m *Mander) StressAt(strain float64) float64 {
	switch {
	case strain >= 0:
		return m.tension(strain)
	case strain >= m.emax:
		x := strain / m.eo
		return m.fo * x * m.r / (m.r - 1 + math.Pow(x, m.r))
	default:
		return m.alpha * m.fo
	}
}
