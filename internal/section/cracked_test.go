package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

// TestCrackedInertia_Beam checks Ig and the cracked response of the beam
func TestCrackedInertia_Beam(t *testing.T) {
	s, res := analyzedBeam(t)

	_, err := s.CrackedInertia(0, 4000)
	assert.ErrorIs(t, err, section.ErrInvalidOptions)

	ec := material.DefaultEc(5)
	icr, err := s.CrackedInertia(29000, ec)
	require.NoError(t, err)

	assert.InEpsilon(t, 12*20*20*20/12.0, icr.Ig, 1e-9)
	require.Len(t, icr.Steps, len(res.Steps))
	assert.Equal(t, icr.Ig, icr.Steps[0].Icr)
	assert.Equal(t, 1.0, icr.Steps[0].Ratio)

	final := icr.Steps[len(icr.Steps)-1]
	assert.Less(t, final.Icr, icr.Ig)
	assert.Positive(t, final.Ratio)
	assert.Less(t, final.Ratio, 0.5)
	// cracked centroid moves toward the compression face
	assert.Greater(t, final.Centroid.Y, s.Centroid().Y)
	assert.InDelta(t, s.Centroid().X, final.Centroid.X, 1e-9)

	stored, err := s.CrackedInertiaResult()
	require.NoError(t, err)
	assert.Same(t, icr, stored)

	// a new run clears the stored cracked inertia
	_, err = s.MomentCurvature(section.MomentCurvatureOptions{PhiTarget: 1e-4, Steps: 2})
	require.NoError(t, err)
	_, err = s.CrackedInertiaResult()
	assert.ErrorIs(t, err, section.ErrNoAnalysis)
}

// TestCrackedInertia_NoRun checks a run is required
func TestCrackedInertia_NoRun(t *testing.T) {
	_, err := beamSection(t).CrackedInertia(29000, 4000)
	assert.ErrorIs(t, err, section.ErrNoAnalysis)
}
