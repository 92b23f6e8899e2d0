package material

// CustomTrilinear is a user-defined curve through three points on each
// side of the origin. Tension points have positive strains, compression
// points negative strains. Beyond the third point the stress is zero.
type CustomTrilinear struct {
	pos [3]point
	neg [3]point
}

type point struct {
	strain, stress float64
}

// TrilinearConfig configures a CustomTrilinear law. The compression
// side (N suffix) defaults to the tension side mirrored through the origin
// when every compression strain is zero.
type TrilinearConfig struct {
	Strain1P, Strain2P, Strain3P float64
	Stress1P, Stress2P, Stress3P float64
	Strain1N, Strain2N, Strain3N float64
	Stress1N, Stress2N, Stress3N float64
}

// NewCustomTrilinear builds a CustomTrilinear law
func NewCustomTrilinear(cfg TrilinearConfig) (*CustomTrilinear, error) {
	const name = "CustomTrilinear"
	t := &CustomTrilinear{
		pos: [3]point{
			{cfg.Strain1P, cfg.Stress1P},
			{cfg.Strain2P, cfg.Stress2P},
			{cfg.Strain3P, cfg.Stress3P},
		},
	}
	if cfg.Strain1N == 0 && cfg.Strain2N == 0 && cfg.Strain3N == 0 {
		for i, p := range t.pos {
			t.neg[i] = point{-p.strain, -p.stress}
		}
	} else {
		t.neg = [3]point{
			{cfg.Strain1N, cfg.Stress1N},
			{cfg.Strain2N, cfg.Stress2N},
			{cfg.Strain3N, cfg.Stress3N},
		}
	}

	err := firstError(
		requirePositive(name, "strain1p", t.pos[0].strain),
		requireGreater(name, "strain2p", t.pos[1].strain, t.pos[0].strain, "strain1p"),
		requireGreater(name, "strain3p", t.pos[2].strain, t.pos[1].strain, "strain2p"),
		requirePositive(name, "strain1n", -t.neg[0].strain),
		requireGreater(name, "strain2n", -t.neg[1].strain, -t.neg[0].strain, "strain1n"),
		requireGreater(name, "strain3n", -t.neg[2].strain, -t.neg[1].strain, "strain2n"),
		requirePositive(name, "stress1p", t.pos[0].stress),
		requirePositive(name, "stress1n", -t.neg[0].stress),
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *CustomTrilinear) Name() string { return "CustomTrilinear" }
func (t *CustomTrilinear) law()         {}

// StressAt returns the stress at a given strain
func (t *CustomTrilinear) StressAt(strain float64) float64 {
	pts := &t.pos
	e := strain
	if strain < 0 {
		pts = &t.neg
		e = -strain
	}
	prev := point{}
	for _, p := range pts {
		pe := p.strain
		if strain < 0 {
			pe = -pe
		}
		if e <= pe {
			pre := prev.strain
			if strain < 0 {
				pre = -pre
			}
			return prev.stress + (p.stress-prev.stress)/(pe-pre)*(e-pre)
		}
		prev = p
	}
	return 0
}
