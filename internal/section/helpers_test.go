package section_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

// beamSection builds the 12×20 validation beam: f'c = 5 ksi Hognestad
// concrete without tension and two #6 bars top and bottom at 2 in cover.
func beamSection(t *testing.T) *section.Section {
	t.Helper()
	concrete, err := material.NewHognestad(material.ConcreteConfig{Fpc: 5})
	require.NoError(t, err)
	steel, err := material.NewBilinear(material.BilinearConfig{Fy: 60, Es: 29000})
	require.NoError(t, err)

	s := section.New("beam")
	require.NoError(t, s.AddPatch(0, 0, 12, 20, 1, 40, concrete))
	require.NoError(t, s.AddBarGroup(2, 2, 8, 16, 2, 2, 0.44, true, steel))
	require.NoError(t, s.Mesh(0))
	return s
}

// elasticSection is a 10×20 rectangle of linear elastic patches
func elasticSection(t *testing.T) *section.Section {
	t.Helper()
	law, err := material.NewBilinear(material.BilinearConfig{Fy: 1e6, Es: 29000})
	require.NoError(t, err)
	s := section.New("elastic")
	require.NoError(t, s.AddPatch(0, 0, 10, 20, 1, 20, law))
	require.NoError(t, s.Mesh(0))
	return s
}

// cornerBarSection is a 12×20 plain concrete rectangle meshed in one column
// of strips with a single #8 bar in the bottom left corner, so the bar and
// the concrete resultants sit 4 in apart horizontally
func cornerBarSection(t *testing.T) *section.Section {
	t.Helper()
	concrete, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4})
	require.NoError(t, err)
	steel, err := material.NewBilinear(material.BilinearConfig{Fy: 60, Es: 29000})
	require.NoError(t, err)

	s := section.New("corner bar")
	require.NoError(t, s.AddPatch(0, 0, 12, 20, 1, 40, concrete))
	require.NoError(t, s.AddBar(section.Point{X: 2, Y: 2}, 0.79, steel))
	require.NoError(t, s.Mesh(0))
	return s
}

// columnSection is a 12×20 column with a 6×20 patch grid and four corner
// bars, meshed after rotating rotate degrees
func columnSection(t *testing.T, rotate float64) *section.Section {
	t.Helper()
	concrete, err := material.NewHognestad(material.ConcreteConfig{Fpc: 5})
	require.NoError(t, err)
	steel, err := material.NewBilinear(material.BilinearConfig{Fy: 60, Es: 29000})
	require.NoError(t, err)

	s := section.New("column")
	require.NoError(t, s.AddPatch(0, 0, 12, 20, 6, 20, concrete))
	require.NoError(t, s.AddBarGroup(2, 2, 8, 16, 2, 2, 0.79, true, steel))
	require.NoError(t, s.Mesh(rotate))
	return s
}
