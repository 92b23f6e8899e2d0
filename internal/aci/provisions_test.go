package aci_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
)

func TestBeta1(t *testing.T) {
	cases := []struct {
		name string
		fpc  float64
		want float64
	}{
		{"ksi low", 3, 0.85},
		{"ksi at 4", 4, 0.85},
		{"ksi 5", 5, 0.80},
		{"ksi 6", 6, 0.75},
		{"ksi floor", 10, 0.65},
		{"MPa 21", 21, 0.85},
		{"MPa 35", 35, 0.80},
		{"MPa floor", 70, 0.65},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, aci.Beta1(tc.fpc), 1e-12)
		})
	}
}

func TestPhi(t *testing.T) {
	const fy, es = 60.0, 29000.0
	ety := fy / es

	assert.Equal(t, aci.PhiTension, aci.Phi(math.Inf(1), fy, es, aci.Tied))
	assert.Equal(t, aci.PhiTension, aci.Phi(ety+0.003, fy, es, aci.Tied))
	assert.Equal(t, aci.PhiCompression, aci.Phi(ety, fy, es, aci.Tied))
	assert.Equal(t, aci.PhiCompression, aci.Phi(-0.002, fy, es, aci.Tied))
	assert.Equal(t, aci.PhiCompressionSp, aci.Phi(-0.002, fy, es, aci.Spiral))

	assert.InDelta(t, 0.775, aci.Phi(ety+0.0015, fy, es, aci.Tied), 1e-12)
	assert.InDelta(t, 0.825, aci.Phi(ety+0.0015, fy, es, aci.Spiral), 1e-12)
}

func TestAxialCapAndPo(t *testing.T) {
	assert.Equal(t, 0.80, aci.AxialCap(aci.Tied))
	assert.Equal(t, 0.85, aci.AxialCap(aci.Spiral))
	assert.InDelta(t, 0.85*4*(240-2)+60*2, aci.NominalAxial(4, 60, 240, 2), 1e-9)
	assert.Equal(t, aci.Spiral, aci.ParseTransverse("spiral"))
	assert.Equal(t, aci.Tied, aci.ParseTransverse("other"))
}

func TestDemands(t *testing.T) {
	axial := aci.Effect{Dead: 100, Live: 50}
	moment := aci.Effect{Dead: 20, Live: 10, Earthquake: 40}

	demands := aci.Demands(axial, moment, aci.LoadCombinations)
	assert.Len(t, demands, len(aci.LoadCombinations))
	assert.InDelta(t, 140, demands[0].Pu, 1e-9)
	assert.InDelta(t, 28, demands[0].Mu, 1e-9)
	assert.InDelta(t, 1.2*100+1.6*50, demands[1].Pu, 1e-9)

	mu, combo := aci.GoverningMoment(moment, aci.LoadCombinations)
	assert.InDelta(t, 1.2*20+10+40, mu, 1e-9)
	assert.Equal(t, "5", combo.ID)
}
