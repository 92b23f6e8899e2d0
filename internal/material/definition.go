package material

import (
	"fmt"
	"strings"
)

// Definition is the JSON form of a material law, e.g.
//
//	{"type": "hognestad", "fpc": 4, "take_tension": true}
//	{"type": "bilinear", "fy": 60, "Es": 29000}
//
// Only the fields relevant to the selected type are read. Zero values take
// the law's defaults.
type Definition struct {
	Type string `json:"type"`

	// Concrete
	Fpc         float64 `json:"fpc,omitempty"`
	Ec          float64 `json:"Ec,omitempty"`
	Eo          float64 `json:"eo,omitempty"`
	Alpha       float64 `json:"alpha,omitempty"`
	TakeTension bool    `json:"take_tension,omitempty"`
	Fr          float64 `json:"fr,omitempty"`
	Er          float64 `json:"er,omitempty"`

	// Steel
	Fy  float64 `json:"fy,omitempty"`
	Fu  float64 `json:"fu,omitempty"`
	Es  float64 `json:"Es,omitempty"`
	Ey  float64 `json:"ey,omitempty"`
	Ey2 float64 `json:"ey2,omitempty"`
	N   float64 `json:"n,omitempty"`
	B   float64 `json:"b,omitempty"`

	// Shared
	Emax float64 `json:"emax,omitempty"`

	// Multilinear control points (stresses as fractions of fu) and
	// custom trilinear points (strain, stress pairs with sign).
	Strains  []float64 `json:"strains,omitempty"`
	Stresses []float64 `json:"stresses,omitempty"`

	// Custom trilinear compression side
	StrainsN  []float64 `json:"strains_n,omitempty"`
	StressesN []float64 `json:"stresses_n,omitempty"`
}

// Build constructs the law described by the definition
func (d Definition) Build() (Law, error) {
	concreteCfg := ConcreteConfig{
		Fpc:         d.Fpc,
		Ec:          d.Ec,
		Eo:          d.Eo,
		Emax:        d.Emax,
		Alpha:       d.Alpha,
		TakeTension: d.TakeTension,
		Fr:          d.Fr,
		Er:          d.Er,
	}

	switch normalizeType(d.Type) {
	case "hognestad":
		return build[*Hognestad](NewHognestad(concreteCfg))
	case "todeschini":
		return build[*Todeschini](NewTodeschini(concreteCfg))
	case "mander":
		return build[*Mander](NewMander(concreteCfg))
	case "bilinear":
		return build[*Bilinear](NewBilinear(BilinearConfig{Fy: d.Fy, Es: d.Es, Fu: d.Fu, Ey: d.Ey, Emax: d.Emax}))
	case "multilinear":
		cfg := MultilinearConfig{Fy: d.Fy, Fu: d.Fu, Es: d.Es, Ey1: d.Ey, Ey2: d.Ey2}
		if err := fill4(d.Strains, &cfg.Strain1, &cfg.Strain2, &cfg.Strain3, &cfg.Strain4); err != nil {
			return nil, fmt.Errorf("multilinear strains: %w", err)
		}
		if err := fill4(d.Stresses, &cfg.Stress1, &cfg.Stress2, &cfg.Stress3, &cfg.Stress4); err != nil {
			return nil, fmt.Errorf("multilinear stresses: %w", err)
		}
		return build[*Multilinear](NewMultilinear(cfg))
	case "rambergosgood":
		return build[*RambergOsgood](NewRambergOsgood(RambergOsgoodConfig{Fy: d.Fy, Es: d.Es, N: d.N, Emax: d.Emax}))
	case "menegottopinto":
		return build[*MenegottoPinto](NewMenegottoPinto(MenegottoPintoConfig{Fy: d.Fy, Es: d.Es, B: d.B, N: d.N, Emax: d.Emax}))
	case "customtrilinear", "trilinear":
		if len(d.Strains) != 3 || len(d.Stresses) != 3 {
			return nil, &ConfigError{Law: "CustomTrilinear", Param: "strains", Value: float64(len(d.Strains)), Reason: "three strains and three stresses are required"}
		}
		cfg := TrilinearConfig{
			Strain1P: d.Strains[0], Strain2P: d.Strains[1], Strain3P: d.Strains[2],
			Stress1P: d.Stresses[0], Stress2P: d.Stresses[1], Stress3P: d.Stresses[2],
		}
		if len(d.StrainsN) > 0 {
			if len(d.StrainsN) != 3 || len(d.StressesN) != 3 {
				return nil, &ConfigError{Law: "CustomTrilinear", Param: "strains_n", Value: float64(len(d.StrainsN)), Reason: "three strains and three stresses are required"}
			}
			cfg.Strain1N, cfg.Strain2N, cfg.Strain3N = d.StrainsN[0], d.StrainsN[1], d.StrainsN[2]
			cfg.Stress1N, cfg.Stress2N, cfg.Stress3N = d.StressesN[0], d.StressesN[1], d.StressesN[2]
		}
		return build[*CustomTrilinear](NewCustomTrilinear(cfg))
	default:
		return nil, fmt.Errorf("material: unknown type %q", d.Type)
	}
}

// build keeps a failed constructor from yielding a non-nil Law holding a nil pointer
func build[T Law](l T, err error) (Law, error) {
	if err != nil {
		return nil, err
	}
	return l, nil
}

func normalizeType(t string) string {
	t = strings.ToLower(t)
	t = strings.NewReplacer("_", "", "-", "", " ", "").Replace(t)
	return t
}

// fill4 copies up to four optional values; an empty slice keeps defaults
func fill4(src []float64, dst ...*float64) error {
	if len(src) == 0 {
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("expected %d values, got %d", len(dst), len(src))
	}
	for i, v := range src {
		*dst[i] = v
	}
	return nil
}
