package section_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

func diamondCurve() *section.InteractionCurve {
	return &section.InteractionCurve{Points: []section.InteractionPoint{
		{PhiP: -100, PhiMx: 0},
		{PhiP: 0, PhiMx: 200},
		{PhiP: 300, PhiMx: 400},
		{PhiP: 600, PhiMx: 0},
	}}
}

func TestMomentCapacity(t *testing.T) {
	c := diamondCurve()

	m, ok := c.MomentCapacity(150)
	require.True(t, ok)
	assert.InDelta(t, 300, m, 1e-9)

	m, ok = c.MomentCapacity(-50)
	require.True(t, ok)
	assert.InDelta(t, 100, m, 1e-9)

	_, ok = c.MomentCapacity(700)
	assert.False(t, ok)
	assert.Equal(t, 600.0, c.MaxAxial())
}

func TestCheckDemands(t *testing.T) {
	c := diamondCurve()
	checks := c.CheckDemands([]aci.Demand{
		{Pu: 150, Mu: 250},
		{Pu: 150, Mu: -350},
		{Pu: 900, Mu: 10},
	})
	require.Len(t, checks, 3)

	assert.True(t, checks[0].OK)
	assert.InDelta(t, 250.0/300, checks[0].Ratio, 1e-12)
	assert.False(t, checks[1].OK)
	assert.False(t, checks[2].OK)
	assert.True(t, math.IsInf(checks[2].Ratio, 1))
}

// TestCheckDemands_Beam checks combinations against a computed curve
func TestCheckDemands_Beam(t *testing.T) {
	_, res := beamInteraction(t, section.InteractionOptions{Orientations: []float64{0}})
	curve := &res.Curves[0]

	demands := aci.Demands(aci.Effect{Dead: 20, Live: 10}, aci.Effect{Dead: 200, Live: 100}, aci.LoadCombinations)
	for _, chk := range curve.CheckDemands(demands) {
		assert.True(t, chk.OK, "combination %s ratio %.3f", chk.Demand.Combination.ID, chk.Ratio)
	}
}
