package diagram_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

func column(t *testing.T) (*section.Section, material.Law, material.Law) {
	t.Helper()
	concrete, err := material.NewHognestad(material.ConcreteConfig{Fpc: 4})
	require.NoError(t, err)
	steel, err := material.NewBilinear(material.BilinearConfig{Fy: 60, Es: 29000})
	require.NoError(t, err)

	s := section.New("C1")
	require.NoError(t, s.AddPatch(0, 0, 12, 12, 6, 12, concrete))
	require.NoError(t, s.AddBarGroup(2, 2, 8, 8, 2, 2, 0.6, true, steel))
	require.NoError(t, s.Mesh(0))
	return s, concrete, steel
}

func TestSectionMap_Plain(t *testing.T) {
	s, _, _ := column(t)
	out := diagram.SectionMap(s, nil, 0, 24, 12)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12+3)
	assert.Equal(t, 4, strings.Count(strings.Join(lines[1:13], "\n"), "●"))
	assert.NotContains(t, out, "N.A.")
	// every interior cell of a solid rectangle is a patch or a bar
	for _, line := range lines[1:13] {
		assert.NotContains(t, line, "│ ")
		assert.Equal(t, 24+4, utf8.RuneCountInString(line))
	}
}

func TestSectionMap_State(t *testing.T) {
	s, _, _ := column(t)
	res, err := s.MomentCurvature(section.MomentCurvatureOptions{PhiTarget: 0.0005, Steps: 5})
	require.NoError(t, err)

	patches, _, err := res.StateAt(len(res.Steps) - 1)
	require.NoError(t, err)
	final := res.Final()
	out := diagram.SectionMap(s, patches, final.NeutralAxis, 24, 12)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "░", "top row is in compression")
	assert.NotContains(t, lines[12], "░", "bottom row is cracked")
	assert.Contains(t, out, "N.A.")
}

func TestSectionMap_TooSmall(t *testing.T) {
	s, _, _ := column(t)
	assert.Empty(t, diagram.SectionMap(s, nil, 0, 1, 1))
}

func TestGraphs(t *testing.T) {
	s, concrete, _ := column(t)
	res, err := s.MomentCurvature(section.MomentCurvatureOptions{PhiTarget: 0.0005, Steps: 10})
	require.NoError(t, err)

	g := diagram.MomentCurvatureGraph(res, 40, 8)
	assert.Contains(t, g, "M vs step")
	assert.GreaterOrEqual(t, strings.Count(g, "\n"), 8)

	g = diagram.StressStrainGraph(concrete, -0.004, 0, 40, 8)
	assert.Contains(t, g, "Hognestad")
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("RESULT", []string{"M = 100", "φ = 0.0005"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestNamedColor(t *testing.T) {
	assert.Equal(t, diagram.NamedColor("lightgray"), diagram.NamedColor("Light Gray"))
	assert.Equal(t, diagram.NamedColor("gray"), diagram.NamedColor("no-such-color"))
}

func TestExportImages(t *testing.T) {
	s, concrete, steel := column(t)
	res, err := s.MomentCurvature(section.MomentCurvatureOptions{PhiTarget: 0.0005, Steps: 5})
	require.NoError(t, err)
	pm, err := s.Interaction(section.InteractionOptions{Fpc: 4, Fy: 60, Es: 29000, Orientations: []float64{0, 45}, Points: 30})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "plots")
	mk := filepath.Join(dir, "mk.png")
	require.NoError(t, diagram.ExportMomentCurvature(res, "", mk))
	assert.FileExists(t, mk)

	require.NoError(t, diagram.ExportInteraction(pm, true, filepath.Join(dir, "pm.svg")))
	assert.FileExists(t, filepath.Join(dir, "pm.svg"))

	require.NoError(t, diagram.ExportStressStrain([]diagram.Law{{Law: concrete}, {Label: "rebar", Law: steel}}, -0.004, 0.004, filepath.Join(dir, "ss")))
	assert.FileExists(t, filepath.Join(dir, "ss.png"))

	require.NoError(t, diagram.ExportSectionState(s, res, len(res.Steps)-1, filepath.Join(dir, "state.png")))
	assert.FileExists(t, filepath.Join(dir, "state.png"))

	assert.Error(t, diagram.ExportSectionState(s, res, 99, filepath.Join(dir, "bad.png")))
	assert.Error(t, diagram.ExportStressStrain(nil, 0, 1, filepath.Join(dir, "none.png")))
}

// TestAxisMoment checks opposite orientations land on opposite sides
func TestAxisMoment(t *testing.T) {
	assert.Equal(t, 120.0, diagram.AxisMoment(0, 120, 5))
	assert.Equal(t, -120.0, diagram.AxisMoment(180, -120, 5))
	assert.InDelta(t, -7, diagram.AxisMoment(90, 120, 7), 1e-12)
	assert.InDelta(t, 7, diagram.AxisMoment(270, 120, -7), 1e-12)
	assert.InDelta(t, diagram.AxisMoment(30, 3, 4), diagram.AxisMoment(-150, 3, 4), 1e-12)
	assert.InDelta(t, (3-4)/math.Sqrt2, diagram.AxisMoment(45, 3, 4), 1e-12)

	s, _, _ := column(t)
	pm, err := s.Interaction(section.InteractionOptions{Fpc: 4, Fy: 60, Es: 29000, Orientations: []float64{0, 180}, Points: 30})
	require.NoError(t, err)
	up, ok := pm.Curve(0)
	require.True(t, ok)
	down, ok := pm.Curve(180)
	require.True(t, ok)
	var right, left float64
	for i := range up.Points {
		right = math.Max(right, diagram.AxisMoment(0, up.Points[i].Mx, up.Points[i].My))
		left = math.Min(left, diagram.AxisMoment(180, down.Points[i].Mx, down.Points[i].My))
	}
	assert.Greater(t, right, 0.0)
	assert.InEpsilon(t, right, -left, 1e-9)
}
