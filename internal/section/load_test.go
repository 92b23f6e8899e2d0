package section_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/section"
)

const beamJSON = `{
  "name": "B1",
  "description": "12x20 beam",
  "materials": {
    "concrete": {"type": "hognestad", "fpc": 5},
    "steel": {"type": "bilinear", "fy": 60, "Es": 29000}
  },
  "patches": [{"material": "concrete", "x": 0, "y": 0, "b": 12, "h": 20, "nx": 1, "ny": 40}],
  "bars": [{"material": "steel", "x": 6, "y": 10, "area": 0.2, "color": "red"}],
  "bar_groups": [{"material": "steel", "x": 2, "y": 2, "b": 8, "h": 16, "nx": 2, "ny": 2, "area": 0.44, "perimeter_only": true}],
  "design": {"fpc": 5, "fy": 60, "Es": 29000, "transverse": "spiral"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadFromFile builds and meshes a section from JSON
func TestLoadFromFile(t *testing.T) {
	s, def, err := section.LoadFromFile(writeFile(t, "beam.json", beamJSON))
	require.NoError(t, err)

	assert.Equal(t, "B1", s.Name)
	assert.Equal(t, "12x20 beam", s.Description)
	assert.True(t, s.Meshed())
	assert.Equal(t, 40, s.NumPatches())
	assert.Equal(t, 5, s.NumNodes())
	assert.InDelta(t, 240, s.Area(), 1e-9)
	assert.Equal(t, "red", s.NodeFibers()[0].Color)
	assert.Equal(t, section.DefaultNodeColor, s.NodeFibers()[1].Color)

	require.NotNil(t, def.Design)
	assert.Equal(t, "spiral", def.Design.Transverse)
}

// TestLoadFromFile_Errors checks bad files are reported
func TestLoadFromFile_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `{"name": `, "unexpected end"},
		{"unknown material", `{"materials": {}, "bars": [{"material": "steel", "x": 0, "y": 0, "area": 1}]}`, `unknown material "steel"`},
		{"bad law", `{"materials": {"c": {"type": "hognestad"}}, "patches": [{"material": "c", "b": 1, "h": 1, "nx": 1, "ny": 1}]}`, `material "c"`},
		{"empty", `{"materials": {}}`, "no fibers"},
		{"bad patch", `{"materials": {"c": {"type": "hognestad", "fpc": 4}}, "patches": [{"material": "c", "b": 0, "h": 1, "nx": 1, "ny": 1}]}`, "patch 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := section.LoadFromFile(writeFile(t, "bad.json", tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, _, err := section.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
