package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
	"github.com/alexiusacademia/gorcfiber/internal/config"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

const columnJSON = `{
  "name": "C1",
  "materials": {
    "concrete": {"type": "hognestad", "fpc": 5},
    "steel": {"type": "bilinear", "fy": 60, "Es": 29000}
  },
  "patches": [{"material": "concrete", "x": 0, "y": 0, "b": 12, "h": 12, "nx": 4, "ny": 24}],
  "bar_groups": [{"material": "steel", "x": 2, "y": 2, "b": 8, "h": 8, "nx": 2, "ny": 2, "area": 0.6, "perimeter_only": true}],
  "design": {"fpc": 5, "fy": 60, "Es": 29000}
}`

// execute runs the command tree with output files under a temporary directory
func execute(t *testing.T, args ...string) (file, outDir string) {
	t.Helper()
	dir := t.TempDir()
	file = filepath.Join(dir, "column.json")
	require.NoError(t, os.WriteFile(file, []byte(columnJSON), 0o644))
	outDir = filepath.Join(dir, "out")
	t.Setenv(config.EnvOutputDir, outDir)

	resetFlags(t, rootCmd)
	rootCmd.SetArgs(append(append([]string{}, args...), "--file", file))
	require.NoError(t, rootCmd.Execute())
	return file, outDir
}

// resetFlags restores every flag in the command tree to its default. The
// tree and the flag variables are package globals shared by every run.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue), "flag %s", f.Name)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func TestExecute_ResetsFlags(t *testing.T) {
	execute(t, "mk", "--phi", "0.0008", "--steps", "4", "--max-iter", "50", "--graph", "--cracked")
	require.True(t, mkGraph)
	require.Equal(t, 50, mkMaxIter)

	execute(t, "mk", "--phi", "0.0008", "--steps", "4")
	assert.False(t, mkGraph)
	assert.False(t, mkCracked)
	assert.False(t, mkCmd.Flags().Changed("max-iter"))

	execute(t, "pm", "--angles", "0,90", "--points", "20")
	require.Equal(t, []float64{0, 90}, pmAngles)
	execute(t, "pm", "--points", "20")
	assert.Empty(t, pmAngles)
}

func TestMomentCurvatureCommand(t *testing.T) {
	_, out := execute(t, "mk", "--phi", "0.0008", "--steps", "10", "--axial", "-50",
		"--cracked", "--csv", "mk.csv", "--xlsx", "mk.xlsx", "--output", "mk.png", "--graph", "--map")
	assert.FileExists(t, filepath.Join(out, "mk.csv"))
	assert.FileExists(t, filepath.Join(out, "mk.xlsx"))
	assert.FileExists(t, filepath.Join(out, "mk.png"))
	assert.Equal(t, out, cfg.OutputDir)
}

func TestInteractionCommand(t *testing.T) {
	_, out := execute(t, "pm", "--angles", "0,90", "--points", "40", "--csv", "pm.csv", "--all")
	assert.FileExists(t, filepath.Join(out, "pm.csv"))
}

func TestCheckCommand(t *testing.T) {
	execute(t, "check", "--pd", "100", "--pl", "50", "--md", "30", "--ml", "20")
}

func TestCheckSummary(t *testing.T) {
	moment := aci.Effect{Dead: 20, Live: 10, Earthquake: 40}
	demands := aci.Demands(aci.Effect{Dead: 100}, moment, aci.LoadCombinations)

	gov := section.DemandCheck{Demand: demands[0], Capacity: 100, Ratio: 0.28, OK: true}
	lines := checkSummary(gov, moment)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Governing combination: 1")
	assert.Equal(t, "Largest Mu: 74.00 under 5 (1.2D + 1.0E + 1.0L)", lines[3])

	// no extra line when the governing check is also the largest moment
	gov.Demand = demands[4]
	assert.Len(t, checkSummary(gov, moment), 3)
	assert.Len(t, checkSummary(gov, aci.Effect{}), 3)
}

func TestSectionCommands(t *testing.T) {
	execute(t, "section", "info", "--fibers")
	_, out := execute(t, "section", "fiber", "--phi", "0.0005", "--steps", "5", "--at", "top", "--csv", "top.csv")
	assert.FileExists(t, filepath.Join(out, "top.csv"))
}

func TestMaterialCommand(t *testing.T) {
	_, out := execute(t, "material", "--output", "laws.svg")
	assert.FileExists(t, filepath.Join(out, "laws.svg"))
}

func TestParseLocation(t *testing.T) {
	loc, err := parseLocation("top")
	require.NoError(t, err)
	assert.Equal(t, "top", loc.String())

	loc, err = parseLocation(" 6, 10.5")
	require.NoError(t, err)
	assert.Equal(t, "near (6, 10.5)", loc.String())

	_, err = parseLocation("middle")
	assert.Error(t, err)
	_, err = parseLocation("a,b")
	assert.Error(t, err)
}
