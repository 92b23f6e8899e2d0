package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	materialFile     string
	materialFrom     float64
	materialTo       float64
	materialSamples  int
	materialGraph    bool
	materialPlotFile string
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Tabulate and plot the material laws of a section file",
	Long: `Build every material law defined in a section JSON file, tabulate
stresses at sample strains and compare the curves.

Strains and stresses are positive in tension.

Examples:
  gorcfiber material --file beam.json --from -0.004 --to 0.01
  gorcfiber material -f beam.json --graph -o materials.png`,
	Run: runMaterial,
}

func init() {
	rootCmd.AddCommand(materialCmd)

	materialCmd.Flags().StringVarP(&materialFile, "file", "f", "", "Path to section JSON file [required]")
	materialCmd.MarkFlagRequired("file")
	materialCmd.Flags().Float64Var(&materialFrom, "from", -0.004, "Smallest strain")
	materialCmd.Flags().Float64Var(&materialTo, "to", 0.01, "Largest strain")
	materialCmd.Flags().IntVar(&materialSamples, "samples", 9, "Strains in the table")
	materialCmd.Flags().BoolVar(&materialGraph, "graph", false, "Show ASCII stress-strain graph per material")
	materialCmd.Flags().StringVarP(&materialPlotFile, "output", "o", "", "Export stress-strain comparison plot (png, svg, pdf)")
}

func runMaterial(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(materialFile)
	if err != nil {
		fmt.Printf("Error loading materials: %v\n", err)
		return
	}
	var def section.File
	if err := json.Unmarshal(data, &def); err != nil {
		fmt.Printf("Error loading materials: %v\n", err)
		return
	}
	if !(materialTo > materialFrom) {
		fmt.Printf("Error: --to (%g) must exceed --from (%g)\n", materialTo, materialFrom)
		return
	}

	var laws []diagram.Law
	for _, name := range slices.Sorted(maps.Keys(def.Materials)) {
		law, err := def.Materials[name].Build()
		if err != nil {
			fmt.Printf("Error in material %q: %v\n", name, err)
			return
		}
		laws = append(laws, diagram.Law{Label: name, Law: law})
	}
	if len(laws) == 0 {
		fmt.Println("Error: no materials defined")
		return
	}

	printTitle("MATERIAL LAWS")
	printHeading("STRESS AT SAMPLE STRAINS:")
	strains, _ := material.Curve(laws[0].Law, materialFrom, materialTo, materialSamples)
	w := newTable()
	fmt.Fprintf(w, "  Strain")
	for _, l := range laws {
		fmt.Fprintf(w, "\t%s (%s)", l.Label, l.Law.Name())
	}
	fmt.Fprintln(w)
	for _, e := range strains {
		fmt.Fprintf(w, "  %.5f", e)
		for _, l := range laws {
			fmt.Fprintf(w, "\t%.4g", l.Law.StressAt(e))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	if materialGraph {
		for _, l := range laws {
			fmt.Println(diagram.StressStrainGraph(l.Law, materialFrom, materialTo, 60, 12))
			fmt.Println()
		}
	}

	if materialPlotFile != "" {
		path := outputPath(materialPlotFile)
		if err := diagram.ExportStressStrain(laws, materialFrom, materialTo, path); err != nil {
			log.Printf("error exporting diagram: %v", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", path)
		}
	}
}
