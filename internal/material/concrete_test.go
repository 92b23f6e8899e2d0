package material_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/material"
)

// TestDefaults_UnitHeuristic covers both constant sets and the threshold.
func TestDefaults_UnitHeuristic(t *testing.T) {
	cases := []struct {
		name   string
		fpc    float64
		ec, fr float64
	}{
		{"ksi", 4, 57000 * math.Sqrt(4000) / 1000, 7.5 * math.Sqrt(4000) / 1000},
		{"ksiAtThreshold", 15, 57000 * math.Sqrt(15000) / 1000, 7.5 * math.Sqrt(15000) / 1000},
		{"MPa", 28, 4700 * math.Sqrt(28), 0.62 * math.Sqrt(28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.ec, material.DefaultEc(tc.fpc), 1e-9)
			assert.InDelta(t, tc.fr, material.DefaultFr(tc.fpc), 1e-9)
		})
	}
	assert.False(t, material.IsSI(15))
	assert.True(t, material.IsSI(15.01))
}

// TestHognestad_Branches samples the parabola, the descent and the residual.
func TestHognestad_Branches(t *testing.T) {
	law, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4})
	require.NoError(t, err)

	ec := material.DefaultEc(4)
	eo := 1.8 * 0.9 * 4 / ec
	fo := -0.9 * 4

	assert.Equal(t, 0.0, law.StressAt(0.0001), "no tension by default")
	assert.InDelta(t, fo, law.StressAt(-eo), 1e-12)
	x := 0.5
	assert.InDelta(t, fo*(2*x-x*x), law.StressAt(-0.5*eo), 1e-12)
	assert.InDelta(t, 0.85*fo, law.StressAt(-0.0038), 1e-9)
	assert.Equal(t, 0.0, law.StressAt(-0.004))

	// initial tangent of the parabola is 2fo/eo
	assert.InDelta(t, 2*fo/-eo, law.StressAt(-1e-8)/-1e-8, ec*1e-4)
}

// TestHognestad_TensionAndResidual checks the optional branches.
func TestHognestad_TensionAndResidual(t *testing.T) {
	law, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4, TakeTension: true, Alpha: 0.2})
	require.NoError(t, err)
	ec := law.ElasticModulus()

	assert.InDelta(t, ec*0.0001, law.StressAt(0.0001), 1e-12)
	assert.InDelta(t, ec*0.00015, law.StressAt(0.00015), 1e-12)
	assert.Equal(t, 0.0, law.StressAt(0.00016))
	assert.InDelta(t, 0.2*-3.6, law.StressAt(-0.01), 1e-12)
}

// TestTodeschini_Peak checks the peak occurs at eo with 0.9f'c.
func TestTodeschini_Peak(t *testing.T) {
	law, err := material.NewTodeschini(material.ConcreteConfig{Fpc: 4})
	require.NoError(t, err)
	eo := 1.71 * 0.9 * 4 / material.DefaultEc(4)

	assert.InDelta(t, -3.6, law.StressAt(-eo), 1e-12)
	assert.Less(t, law.StressAt(-eo), law.StressAt(-0.9*eo))
	assert.Less(t, law.StressAt(-eo), law.StressAt(-1.1*eo))
	assert.Equal(t, 0.0, law.StressAt(-0.0039))
}

// TestMander_Peak checks the peak stress f'c at eo and the r coefficient.
func TestMander_Peak(t *testing.T) {
	law, err := material.NewMander(material.ConcreteConfig{Fpc: 6, Eo: 0.006, Emax: 0.023})
	require.NoError(t, err)

	ec := material.DefaultEc(6)
	r := ec / (ec - 6/0.006)
	assert.InDelta(t, r, law.CurveFit(), 1e-12)
	assert.InDelta(t, -6, law.StressAt(-0.006), 1e-9)
	assert.Less(t, law.StressAt(-0.006), law.StressAt(-0.02))
	assert.Equal(t, 0.0, law.StressAt(-0.024))
}

// TestConcrete_SIUnits checks the MPa defaults flow into the curve.
func TestConcrete_SIUnits(t *testing.T) {
	law, err := material.NewHognestad(material.ConcreteConfig{Fpc: 28})
	require.NoError(t, err)
	assert.InDelta(t, 4700*math.Sqrt(28), law.ElasticModulus(), 1e-9)
	assert.InDelta(t, 28, law.Strength(), 0)
}

// TestConcrete_ConfigErrors checks invalid parameters are rejected.
func TestConcrete_ConfigErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		param string
	}{
		{"NoFpc", func() error { _, err := material.NewHognestad(material.ConcreteConfig{}); return err }, "fpc"},
		{"NegativeFpc", func() error { _, err := material.NewTodeschini(material.ConcreteConfig{Fpc: -4}); return err }, "fpc"},
		{"EmaxBelowEo", func() error {
			_, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4, Eo: 0.004, Emax: 0.003})
			return err
		}, "emax"},
		{"ManderNeedsEo", func() error { _, err := material.NewMander(material.ConcreteConfig{Fpc: 6, Emax: 0.02}); return err }, "eo"},
		{"ManderSecant", func() error {
			_, err := material.NewMander(material.ConcreteConfig{Fpc: 6, Eo: 0.001, Emax: 0.02, Ec: 5000})
			return err
		}, "Ec"},
		{"AlphaAboveOne", func() error { _, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4, Alpha: 2}); return err }, "alpha"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			var ce *material.ConfigError
			require.True(t, errors.As(err, &ce), "want ConfigError, got %v", err)
			assert.Equal(t, tc.param, ce.Param)
			assert.Contains(t, ce.Error(), tc.param)
		})
	}
}

// TestDefinition_Build builds each law type from its JSON form.
func TestDefinition_Build(t *testing.T) {
	cases := []struct {
		def  material.Definition
		name string
	}{
		{material.Definition{Type: "hognestad", Fpc: 4}, "Hognestad"},
		{material.Definition{Type: "Todeschini", Fpc: 4}, "Todeschini"},
		{material.Definition{Type: "mander", Fpc: 6, Eo: 0.006, Emax: 0.023}, "Mander"},
		{material.Definition{Type: "bilinear", Fy: 60, Es: 29000}, "Bilinear"},
		{material.Definition{Type: "multilinear", Fy: 60, Fu: 90, Es: 29000}, "Multilinear"},
		{material.Definition{Type: "ramberg_osgood", Fy: 60, Es: 29000, N: 25}, "RambergOsgood"},
		{material.Definition{Type: "menegotto-pinto", Fy: 60, Es: 29000, B: 0.0043, N: 5}, "MenegottoPinto"},
		{material.Definition{Type: "custom_trilinear", Strains: []float64{0.002, 0.1, 0.16}, Stresses: []float64{60, 90, 75}}, "CustomTrilinear"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			law, err := tc.def.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.name, law.Name())
		})
	}

	_, err := material.Definition{Type: "unobtainium"}.Build()
	require.Error(t, err)

	law, err := material.Definition{Type: "bilinear", Fy: 0, Es: 29000}.Build()
	require.Error(t, err)
	assert.Nil(t, law)
}
