package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Inspect fiber sections and fiber histories",
	Long: `Inspect fiber sections defined in JSON files.

Subcommands:
  info   - Geometry, fibers and an ASCII map of a section
  fiber  - Stress-strain history of one fiber over a moment-curvature run

Example JSON file structure:
{
  "name": "C1",
  "rotate": 0,
  "materials": {
    "concrete": {"type": "hognestad", "fpc": 5},
    "steel": {"type": "bilinear", "fy": 60, "Es": 29000}
  },
  "patches": [
    {"material": "concrete", "x": 0, "y": 0, "b": 12, "h": 20, "nx": 4, "ny": 40}
  ],
  "bar_groups": [
    {"material": "steel", "x": 2, "y": 2, "b": 8, "h": 16, "nx": 2, "ny": 3,
     "area": 0.44, "perimeter_only": true}
  ],
  "design": {"fpc": 5, "fy": 60, "Es": 29000, "transverse": "tied"}
}

Material types: hognestad, todeschini, mander, bilinear, multilinear,
ramberg_osgood, menegotto_pinto, custom_trilinear.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
