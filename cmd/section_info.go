package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	sectionInfoFile   string
	sectionInfoFibers bool
	sectionInfoCols   int
	sectionInfoRows   int
)

var sectionInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show geometry and fibers of a section",
	Long: `Load and mesh a section from a JSON file and print its geometric
properties, materials and an ASCII map of the fibers.

Examples:
  gorcfiber section info --file column.json
  gorcfiber section info -f column.json --fibers`,
	Run: runSectionInfo,
}

func init() {
	sectionCmd.AddCommand(sectionInfoCmd)

	sectionInfoCmd.Flags().StringVarP(&sectionInfoFile, "file", "f", "", "Path to section JSON file [required]")
	sectionInfoCmd.MarkFlagRequired("file")
	sectionInfoCmd.Flags().BoolVar(&sectionInfoFibers, "fibers", false, "List every fiber")
	sectionInfoCmd.Flags().IntVar(&sectionInfoCols, "cols", 40, "Map width in characters")
	sectionInfoCmd.Flags().IntVar(&sectionInfoRows, "rows", 20, "Map height in characters")
}

func runSectionInfo(cmd *cobra.Command, args []string) {
	sec, def, ok := loadSection(sectionInfoFile, "FIBER SECTION")
	if !ok {
		return
	}
	printGeometry(sec)

	printHeading("MATERIALS:")
	w := newTable()
	fmt.Fprintf(w, "  Name\tLaw\tPatches\tNodes\n")
	fmt.Fprintf(w, "  ────\t───\t───────\t─────\n")
	for _, name := range slices.Sorted(maps.Keys(def.Materials)) {
		fmt.Fprintf(w, "  %s\t%s\t%d\t%d\n", name, def.Materials[name].Type, countUses(def, name, true), countUses(def, name, false))
	}
	w.Flush()
	fmt.Println()

	if sectionInfoFibers {
		printFibers("PATCH FIBERS:", sec.PatchFibers())
		printFibers("NODE FIBERS:", sec.NodeFibers())
	}

	printHeading("SECTION MAP:")
	fmt.Println(diagram.SectionMap(sec, nil, 0, sectionInfoCols, sectionInfoRows))
}

func printFibers(heading string, fibers []section.Fiber) {
	if len(fibers) == 0 {
		return
	}
	printHeading(heading)
	w := newTable()
	fmt.Fprintf(w, "  Tag\tMaterial\tArea\tCentroid\tDepth\tColor\n")
	fmt.Fprintf(w, "  ───\t────────\t────\t────────\t─────\t─────\n")
	for _, f := range fibers {
		fmt.Fprintf(w, "  %d\t%s\t%.4g\t(%.4g, %.4g)\t%.4g\t%s\n",
			f.Tag, f.Material.Name(), f.Area, f.Centroid.X, f.Centroid.Y, f.Depth, f.Color)
	}
	w.Flush()
	fmt.Println()
}

// countUses counts the definitions in the file that reference a material
func countUses(def *section.File, name string, patches bool) int {
	n := 0
	if patches {
		for _, p := range def.Patches {
			if p.Material == name {
				n++
			}
		}
		for _, q := range def.Quads {
			if q.Material == name {
				n++
			}
		}
		return n
	}
	for _, b := range def.Bars {
		if b.Material == name {
			n++
		}
	}
	for _, g := range def.BarGroups {
		if g.Material == name {
			n++
		}
	}
	return n
}
