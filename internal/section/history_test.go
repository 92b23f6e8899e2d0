package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/section"
)

func analyzedBeam(t *testing.T) (*section.Section, *section.MomentCurvatureResult) {
	t.Helper()
	s := beamSection(t)
	res, err := s.MomentCurvature(section.MomentCurvatureOptions{PhiTarget: 0.0005, Steps: 10})
	require.NoError(t, err)
	require.NoError(t, res.Err())
	return s, res
}

// TestFiberData_BeforeAnalysis checks lookups need a run
func TestFiberData_BeforeAnalysis(t *testing.T) {
	s := beamSection(t)
	_, err := s.NodeFiberData(0)
	assert.ErrorIs(t, err, section.ErrNoAnalysis)
	_, err = s.PatchFiberData(section.Top)
	assert.ErrorIs(t, err, section.ErrNoAnalysis)
	_, err = s.AllFiberData()
	assert.ErrorIs(t, err, section.ErrNoAnalysis)
}

// TestNodeFiberData checks the history of a bottom bar
func TestNodeFiberData(t *testing.T) {
	s, res := analyzedBeam(t)

	h, err := s.NodeFiberData(0)
	require.NoError(t, err)
	assert.Equal(t, section.NodeFiber, h.Kind)
	assert.Equal(t, "Bilinear", h.Material)
	assert.Equal(t, section.Point{X: 2, Y: 2}, h.Centroid)
	require.Len(t, h.States, len(res.Steps))

	for i, st := range res.Steps {
		want := st.Curvature * (h.Depth - st.NeutralAxis)
		assert.InDelta(t, want, h.States[i].Strain, 1e-15)
		assert.InDelta(t, h.States[i].Stress*h.Area, h.States[i].Force, 1e-12)
		assert.InDelta(t, h.States[i].Force*h.Ecc.Y, h.States[i].MomentX, 1e-12)
	}
	// bottom bar is in tension
	assert.Positive(t, h.States[len(h.States)-1].Strain)

	_, err = s.NodeFiberData(4)
	assert.ErrorIs(t, err, section.ErrFiberNotFound)
	_, err = s.NodeFiberData(-1)
	assert.ErrorIs(t, err, section.ErrFiberNotFound)
}

// TestPatchFiberData_Locations checks top, bottom and nearest lookups
func TestPatchFiberData_Locations(t *testing.T) {
	s, _ := analyzedBeam(t)

	top, err := s.PatchFiberData(section.Top)
	require.NoError(t, err)
	assert.InDelta(t, 19.75, top.Centroid.Y, 1e-12)
	assert.Negative(t, top.States[len(top.States)-1].Strain)

	bottom, err := s.PatchFiberData(section.Bottom)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, bottom.Centroid.Y, 1e-12)
	assert.Zero(t, bottom.States[len(bottom.States)-1].Stress, "cracked concrete")

	near, err := s.PatchFiberData(section.Near(6, 10.1))
	require.NoError(t, err)
	assert.InDelta(t, 10.25, near.Centroid.Y, 1e-12)
	assert.Equal(t, "patch_20", near.Label())
}

// TestAllFiberData checks every fiber is returned in order
func TestAllFiberData(t *testing.T) {
	s, res := analyzedBeam(t)
	all, err := s.AllFiberData()
	require.NoError(t, err)
	require.Len(t, all, s.NumPatches()+s.NumNodes())
	assert.Equal(t, section.PatchFiber, all[0].Kind)
	assert.Equal(t, section.NodeFiber, all[len(all)-1].Kind)
	for _, h := range all {
		assert.Len(t, h.Rows(), len(res.Steps))
	}
}

// TestRecords checks headers and rows have matching widths
func TestRecords(t *testing.T) {
	_, res := analyzedBeam(t)
	assert.Len(t, res.Steps[1].Row(), len(section.LoadStepHeader()))
	assert.Len(t, section.InteractionPoint{}.Row(), len(section.InteractionHeader()))
	assert.Len(t, section.CrackedStep{}.Row(), len(section.CrackedHeader()))
	assert.Equal(t, float64(res.Steps[1].Step), res.Steps[1].Row()[0])
}
