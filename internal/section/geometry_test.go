package section_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

func steel(t *testing.T) material.Law {
	t.Helper()
	law, err := material.NewBilinear(material.BilinearConfig{Fy: 60, Es: 29000})
	require.NoError(t, err)
	return law
}

// TestAddPatch_AreaAndCentroid checks a single rectangular patch
func TestAddPatch_AreaAndCentroid(t *testing.T) {
	cases := []struct {
		name         string
		xo, yo, b, h float64
	}{
		{"origin", 0, 0, 12, 20},
		{"offset", 3, -4, 2.5, 7},
		{"negative", -10, -10, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := section.New(tc.name)
			require.NoError(t, s.AddPatch(tc.xo, tc.yo, tc.b, tc.h, 1, 1, steel(t)))
			f := s.PatchFibers()[0]
			assert.InDelta(t, tc.b*tc.h, f.Area, 1e-12)
			assert.InDelta(t, tc.xo+tc.b/2, f.Centroid.X, 1e-12)
			assert.InDelta(t, tc.yo+tc.h/2, f.Centroid.Y, 1e-12)
		})
	}
}

// TestAddPatch_Tags checks tags are sequential across calls
func TestAddPatch_Tags(t *testing.T) {
	s := section.New("tags")
	require.NoError(t, s.AddPatch(0, 0, 10, 10, 2, 3, steel(t)))
	require.NoError(t, s.AddPatch(0, 10, 10, 10, 1, 1, steel(t)))
	for i, f := range s.PatchFibers() {
		assert.Equal(t, i, f.Tag)
		assert.Equal(t, section.PatchFiber, f.Kind)
	}
	assert.Equal(t, 7, s.NumPatches())
}

// TestAddQuad_Winding checks clockwise input is stored counter-clockwise
func TestAddQuad_Winding(t *testing.T) {
	s := section.New("quad")
	cw := [4]section.Point{{0, 0}, {0, 2}, {4, 2}, {4, 0}}
	require.NoError(t, s.AddQuad(cw, steel(t)))

	f := s.PatchFibers()[0]
	assert.InDelta(t, 8, f.Area, 1e-12)
	assert.Equal(t, section.Point{X: 2, Y: 1}, f.Centroid)

	v := f.Vertices
	var signed float64
	for i := range v {
		j := (i + 1) % 4
		signed += v[i].X*v[j].Y - v[j].X*v[i].Y
	}
	assert.Positive(t, signed)
}

// TestAddQuad_Degenerate checks collinear vertices are rejected
func TestAddQuad_Degenerate(t *testing.T) {
	s := section.New("flat")
	err := s.AddQuad([4]section.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, steel(t))
	var fe *section.FiberError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, section.PatchFiber, fe.Kind)
	assert.Equal(t, 0, s.NumPatches())
}

// TestAddBar_Invalid checks bar validation
func TestAddBar_Invalid(t *testing.T) {
	s := section.New("bars")
	var fe *section.FiberError
	require.True(t, errors.As(s.AddBar(section.Point{}, 0, steel(t)), &fe))
	require.True(t, errors.As(s.AddBar(section.Point{}, 1, nil), &fe))
	assert.Equal(t, 0, s.NumNodes())
}

// TestAddBarGroup_Layout checks the grid and perimeter modes
func TestAddBarGroup_Layout(t *testing.T) {
	full := section.New("full")
	require.NoError(t, full.AddBarGroup(0, 0, 10, 10, 4, 4, 1, false, steel(t)))
	assert.Equal(t, 16, full.NumNodes())

	perimeter := section.New("perimeter")
	require.NoError(t, perimeter.AddBarGroup(0, 0, 10, 10, 4, 4, 1, true, steel(t)))
	assert.Equal(t, 12, perimeter.NumNodes())

	single := section.New("single")
	require.NoError(t, single.AddBarGroup(5, 6, 0, 0, 1, 1, 1, true, steel(t)))
	require.Equal(t, 1, single.NumNodes())
	assert.Equal(t, section.Point{X: 5, Y: 6}, single.NodeFibers()[0].Centroid)
}

// TestMesh_Properties checks centroid, depth and fiber locations
func TestMesh_Properties(t *testing.T) {
	s := beamSection(t)

	assert.InDelta(t, 240, s.Area(), 1e-9)
	assert.InDelta(t, 1.76, s.SteelArea(), 1e-12)
	assert.InDelta(t, 6, s.Centroid().X, 1e-9)
	assert.InDelta(t, 10, s.Centroid().Y, 1e-9)
	assert.InDelta(t, 20, s.YMax(), 1e-12)
	assert.InDelta(t, 0, s.YMin(), 1e-12)
	assert.InDelta(t, 20, s.Depth(), 1e-12)

	for _, f := range s.NodeFibers() {
		assert.InDelta(t, 20-f.Centroid.Y, f.Depth, 1e-12)
		assert.InDelta(t, 10-f.Centroid.Y, f.Ecc.Y, 1e-9)
		assert.InDelta(t, f.Centroid.X-6, f.Ecc.X, 1e-9)
	}
}

// TestMesh_CentroidWeightsAllFibers checks bars pull the centroid
func TestMesh_CentroidWeightsAllFibers(t *testing.T) {
	s := section.New("heavy")
	require.NoError(t, s.AddPatch(0, 0, 2, 2, 1, 1, steel(t)))
	require.NoError(t, s.AddBar(section.Point{X: 1, Y: 5}, 4, steel(t)))
	require.NoError(t, s.Mesh(0))

	assert.InDelta(t, (4*1+4*5)/8.0, s.Centroid().Y, 1e-12)
	assert.InDelta(t, 4, s.Area(), 1e-12)
	assert.InDelta(t, 5, s.YMax(), 1e-12)
}

// TestMesh_Rotation checks a quarter turn swaps the axes
func TestMesh_Rotation(t *testing.T) {
	s := section.New("rotated")
	require.NoError(t, s.AddPatch(0, 0, 12, 20, 2, 2, steel(t)))
	require.NoError(t, s.Mesh(90))

	assert.InDelta(t, 12, s.Depth(), 1e-9)
	assert.InDelta(t, -10, s.Centroid().X, 1e-9)
	assert.InDelta(t, 6, s.Centroid().Y, 1e-9)
	assert.Equal(t, 90.0, s.Rotation())
}

// TestMesh_Frozen checks geometry cannot change after meshing
func TestMesh_Frozen(t *testing.T) {
	s := beamSection(t)
	assert.ErrorIs(t, s.AddPatch(0, 0, 1, 1, 1, 1, steel(t)), section.ErrSectionMeshed)
	assert.ErrorIs(t, s.AddBar(section.Point{}, 1, steel(t)), section.ErrSectionMeshed)
	assert.ErrorIs(t, s.Mesh(0), section.ErrSectionMeshed)
}

// TestMesh_Empty checks an empty section is rejected
func TestMesh_Empty(t *testing.T) {
	assert.ErrorIs(t, section.New("empty").Mesh(0), section.ErrEmptySection)
}
