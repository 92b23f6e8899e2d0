package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/export"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	fiberFile    string
	fiberNode    int
	fiberAt      string
	fiberPhi     float64
	fiberSteps   int
	fiberAxial   float64
	fiberCSVFile string
)

var sectionFiberCmd = &cobra.Command{
	Use:   "fiber",
	Short: "Stress-strain history of one fiber",
	Long: `Run a moment-curvature analysis and print the strain, stress and
force history of one fiber.

Select a bar with --node TAG, or a patch fiber with --at top, --at bottom
or --at x,y (the patch whose centroid is nearest).

Examples:
  gorcfiber section fiber -f beam.json --phi 0.0005 --node 0
  gorcfiber section fiber -f beam.json --phi 0.0005 --at top --csv top.csv`,
	Run: runSectionFiber,
}

func init() {
	sectionCmd.AddCommand(sectionFiberCmd)

	sectionFiberCmd.Flags().StringVarP(&fiberFile, "file", "f", "", "Path to section JSON file [required]")
	sectionFiberCmd.Flags().Float64VarP(&fiberPhi, "phi", "p", 0, "Target curvature [required]")
	sectionFiberCmd.MarkFlagRequired("file")
	sectionFiberCmd.MarkFlagRequired("phi")
	sectionFiberCmd.Flags().IntVarP(&fiberSteps, "steps", "n", 50, "Number of curvature increments")
	sectionFiberCmd.Flags().Float64VarP(&fiberAxial, "axial", "P", 0, "Applied axial force (compression negative)")
	sectionFiberCmd.Flags().IntVar(&fiberNode, "node", -1, "Node fiber tag")
	sectionFiberCmd.Flags().StringVar(&fiberAt, "at", "", "Patch fiber location: top, bottom or x,y")
	sectionFiberCmd.Flags().StringVar(&fiberCSVFile, "csv", "", "Export the fiber history to CSV")
	sectionFiberCmd.MarkFlagsMutuallyExclusive("node", "at")
	sectionFiberCmd.MarkFlagsOneRequired("node", "at")
}

func runSectionFiber(cmd *cobra.Command, args []string) {
	sec, _, ok := loadSection(fiberFile, "FIBER HISTORY")
	if !ok {
		return
	}

	_, err := sec.MomentCurvature(section.MomentCurvatureOptions{
		Axial:          fiberAxial,
		PhiTarget:      fiberPhi,
		Steps:          fiberSteps,
		MaxIterations:  cfg.MaxIterations,
		ForceTolerance: cfg.ForceTolerance,
		MaxFailures:    cfg.MaxFailures,
	})
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	var h *section.FiberHistory
	if fiberAt != "" {
		loc, perr := parseLocation(fiberAt)
		if perr != nil {
			fmt.Printf("Error: %v\n", perr)
			return
		}
		h, err = sec.PatchFiberData(loc)
	} else {
		h, err = sec.NodeFiberData(fiberNode)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeading("FIBER:")
	w := newTable()
	fmt.Fprintf(w, "  Fiber:\t%s\n", h.Label())
	fmt.Fprintf(w, "  Material:\t%s\n", h.Material)
	fmt.Fprintf(w, "  Centroid:\t(%.4g, %.4g)\n", h.Centroid.X, h.Centroid.Y)
	fmt.Fprintf(w, "  Area:\t%.4g\n", h.Area)
	fmt.Fprintf(w, "  Depth from top:\t%.4g\n", h.Depth)
	w.Flush()
	fmt.Println()

	printHeading("HISTORY:")
	w = newTable()
	fmt.Fprintf(w, "  Curvature\tStrain\tStress\tForce\n")
	fmt.Fprintf(w, "  ─────────\t──────\t──────\t─────\n")
	for i, st := range h.States {
		fmt.Fprintf(w, "  %.6g\t%.6f\t%.5g\t%.5g\n", h.Curvature[i], st.Strain, st.Stress, st.Force)
	}
	w.Flush()
	fmt.Println()

	if fiberCSVFile != "" {
		path := outputPath(fiberCSVFile)
		if err := export.SaveCSV(path, export.FiberHistory(h)); err != nil {
			log.Printf("error exporting CSV: %v", err)
		} else {
			fmt.Printf("Fiber history exported to: %s\n", path)
		}
	}
}
