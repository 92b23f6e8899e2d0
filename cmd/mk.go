package cmd

import (
	"fmt"
	"log"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/export"
	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	mkFile        string
	mkAxial       float64
	mkPhi         float64
	mkSteps       int
	mkMaxIter     int
	mkTolerance   float64
	mkMaxFailures int
	mkRows        int
	mkProgress    bool
	mkGraph       bool
	mkMap         bool
	mkPlotFile    string
	mkStateFile   string
	mkCSVFile     string
	mkXLSXFile    string
	mkCracked     bool
	mkEs          float64
	mkEc          float64
)

var mkCmd = &cobra.Command{
	Use:   "mk",
	Short: "Moment-curvature analysis of a fiber section",
	Long: `Run a moment-curvature analysis of a fiber section defined in a JSON
file under a constant axial force.

Curvature grows from zero to the target in equal increments. At each
increment the neutral axis depth is found from axial equilibrium of the
fibers, starting from the previous converged depth. Steps that fail to
converge are reported; the run stops after repeated consecutive failures.

Axial force is negative in compression.

Examples:
  gorcfiber mk --file beam.json --phi 0.0005 --steps 50
  gorcfiber mk -f column.json --axial -200 --phi 0.001 --graph --map
  gorcfiber mk -f beam.json --phi 0.0005 --csv mk.csv --xlsx mk.xlsx --cracked --es 29000`,
	Run: runMomentCurvature,
}

func init() {
	rootCmd.AddCommand(mkCmd)

	mkCmd.Flags().StringVarP(&mkFile, "file", "f", "", "Path to section JSON file [required]")
	mkCmd.Flags().Float64VarP(&mkPhi, "phi", "p", 0, "Target curvature [required]")
	mkCmd.Flags().IntVarP(&mkSteps, "steps", "n", 100, "Number of curvature increments")
	mkCmd.Flags().Float64VarP(&mkAxial, "axial", "P", 0, "Applied axial force (compression negative)")
	mkCmd.MarkFlagRequired("file")
	mkCmd.MarkFlagRequired("phi")

	// Solver options, defaulting to the environment configuration
	mkCmd.Flags().IntVar(&mkMaxIter, "max-iter", 0, "Iteration cap per neutral axis search (default from GORCFIBER_MAX_ITERATIONS)")
	mkCmd.Flags().Float64Var(&mkTolerance, "tol", 0, "Relative force tolerance (default from GORCFIBER_FORCE_TOLERANCE)")
	mkCmd.Flags().IntVar(&mkMaxFailures, "max-failures", 0, "Consecutive failed steps before stopping (default from GORCFIBER_MAX_FAILURES)")

	// Report options
	mkCmd.Flags().IntVar(&mkRows, "rows", 20, "Maximum load step rows in the report (0 for all)")
	mkCmd.Flags().BoolVar(&mkProgress, "progress", false, "Print each step as it converges")
	mkCmd.Flags().BoolVar(&mkGraph, "graph", false, "Show ASCII moment-curvature graph")
	mkCmd.Flags().BoolVar(&mkMap, "map", false, "Show ASCII map of the final section state")

	// Export options
	mkCmd.Flags().StringVarP(&mkPlotFile, "output", "o", "", "Export moment-curvature plot (png, svg, pdf)")
	mkCmd.Flags().StringVar(&mkStateFile, "state", "", "Export final section state plot (png, svg, pdf)")
	mkCmd.Flags().StringVar(&mkCSVFile, "csv", "", "Export load steps to CSV")
	mkCmd.Flags().StringVar(&mkXLSXFile, "xlsx", "", "Export load steps, fiber histories and cracked inertia to XLSX")

	// Cracked inertia
	mkCmd.Flags().BoolVar(&mkCracked, "cracked", false, "Compute the cracked moment of inertia per step")
	mkCmd.Flags().Float64Var(&mkEs, "es", 0, "Bar elastic modulus for cracked inertia (default from design block)")
	mkCmd.Flags().Float64Var(&mkEc, "ec", 0, "Concrete elastic modulus for cracked inertia (default from the concrete law)")
}

func runMomentCurvature(cmd *cobra.Command, args []string) {
	sec, def, ok := loadSection(mkFile, "FIBER SECTION MOMENT-CURVATURE ANALYSIS")
	if !ok {
		return
	}
	printGeometry(sec)

	opts := section.MomentCurvatureOptions{
		Axial:          mkAxial,
		PhiTarget:      mkPhi,
		Steps:          mkSteps,
		MaxIterations:  cfg.MaxIterations,
		ForceTolerance: cfg.ForceTolerance,
		MaxFailures:    cfg.MaxFailures,
	}
	if cmd.Flags().Changed("max-iter") {
		opts.MaxIterations = mkMaxIter
	}
	if cmd.Flags().Changed("tol") {
		opts.ForceTolerance = mkTolerance
	}
	if cmd.Flags().Changed("max-failures") {
		opts.MaxFailures = mkMaxFailures
	}
	if mkProgress {
		opts.Progress = func(st section.LoadStep) {
			fmt.Printf("  step %4d  φ = %.6g  M = %.6g  c = %.5g  (%d it)\n",
				st.Step, st.Curvature, st.Moment, st.NeutralAxis, st.Iterations)
		}
	}

	printHeading("ANALYSIS PARAMETERS:")
	w := newTable()
	fmt.Fprintf(w, "  Axial force (P):\t%.4g\n", opts.Axial)
	fmt.Fprintf(w, "  Target curvature:\t%.6g\n", opts.PhiTarget)
	fmt.Fprintf(w, "  Increments:\t%d\n", opts.Steps)
	fmt.Fprintf(w, "  Max iterations:\t%d\n", opts.MaxIterations)
	fmt.Fprintf(w, "  Force tolerance:\t%.3g\n", opts.ForceTolerance)
	fmt.Fprintf(w, "  Max failures:\t%d\n", opts.MaxFailures)
	w.Flush()
	fmt.Println()

	res, err := sec.MomentCurvature(opts)
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}
	if mkProgress {
		fmt.Println()
	}

	printLoadSteps(res.Steps, mkRows)
	if len(res.Failures) > 0 {
		printHeading("FAILED STEPS:")
		w = newTable()
		fmt.Fprintf(w, "  Step\tCurvature\tReason\n")
		fmt.Fprintf(w, "  ────\t─────────\t──────\n")
		for _, f := range res.Failures {
			fmt.Fprintf(w, "  %d\t%.6g\t%s\n", f.Step, f.Curvature, f.Reason)
		}
		w.Flush()
		fmt.Println()
	}

	peak := res.PeakMoment()
	final := res.Final()
	fmt.Print(diagram.DrawSummaryBox("MOMENT-CURVATURE RESULT", []string{
		fmt.Sprintf("Status:           %s", res.Status),
		fmt.Sprintf("Recorded steps:   %d of %d", len(res.Steps)-1, res.StepCount),
		fmt.Sprintf("Peak moment:      %.4g at φ = %.6g", peak.Moment, peak.Curvature),
		fmt.Sprintf("Final moment:     %.4g at φ = %.6g", final.Moment, final.Curvature),
		fmt.Sprintf("Final N.A. depth: %.4g", final.NeutralAxis),
	}))
	fmt.Println()
	if err := res.Err(); err != nil {
		log.Printf("warning: %v", err)
	}

	if mkGraph {
		fmt.Println(diagram.MomentCurvatureGraph(res, 60, 15))
		fmt.Println()
	}
	if mkMap {
		patches, _, err := res.StateAt(len(res.Steps) - 1)
		if err == nil {
			printHeading("FINAL SECTION STATE:")
			fmt.Println(diagram.SectionMap(sec, patches, final.NeutralAxis, 40, 20))
		}
	}

	var cracked *section.CrackedInertia
	if mkCracked {
		cracked = runCracked(sec, def)
	}

	exportMomentCurvature(sec, res, cracked)
}

// printLoadSteps prints at most maxRows evenly spaced steps, always
// including the first and last
func printLoadSteps(steps []section.LoadStep, maxRows int) {
	printHeading("LOAD STEPS:")
	stride := 1
	if maxRows > 1 && len(steps) > maxRows {
		stride = int(math.Ceil(float64(len(steps)-1) / float64(maxRows-1)))
	}
	w := newTable()
	fmt.Fprintf(w, "  Step\tCurvature\tMoment\tMinor M\tN.A. depth\tSlope\tIter\n")
	fmt.Fprintf(w, "  ────\t─────────\t──────\t───────\t──────────\t─────\t────\n")
	for i, st := range steps {
		if i%stride != 0 && i != len(steps)-1 {
			continue
		}
		fmt.Fprintf(w, "  %d\t%.6g\t%.5g\t%.4g\t%.5g\t%.5g\t%d\n",
			st.Step, st.Curvature, st.Moment, st.MinorMoment, st.NeutralAxis, st.Slope, st.Iterations)
	}
	w.Flush()
	fmt.Println()
}

func runCracked(sec *section.Section, def *section.File) *section.CrackedInertia {
	es, ec := mkEs, mkEc
	if es == 0 && def.Design != nil {
		es = def.Design.Es
	}
	if ec == 0 {
		for _, f := range sec.PatchFibers() {
			if c, ok := f.Material.(material.Concrete); ok {
				ec = c.ElasticModulus()
				break
			}
		}
	}

	ci, err := sec.CrackedInertia(es, ec)
	if err != nil {
		fmt.Printf("Error computing cracked inertia: %v\n", err)
		return nil
	}

	printHeading("CRACKED MOMENT OF INERTIA:")
	w := newTable()
	fmt.Fprintf(w, "  Es / Ec:\t%.4g / %.4g (n = %.3g)\n", ci.Es, ci.Ec, ci.Es/ci.Ec)
	fmt.Fprintf(w, "  Gross inertia (Ig):\t%.5g\n", ci.Ig)
	w.Flush()
	fmt.Println()

	last := ci.Steps[len(ci.Steps)-1]
	w = newTable()
	fmt.Fprintf(w, "  Step\tCurvature\tIcr\tIcr/Ig\tCentroid Y\n")
	fmt.Fprintf(w, "  ────\t─────────\t───\t──────\t──────────\n")
	for _, st := range []section.CrackedStep{ci.Steps[0], ci.Steps[len(ci.Steps)/2], last} {
		fmt.Fprintf(w, "  %d\t%.6g\t%.5g\t%.4f\t%.4g\n", st.Step, st.Curvature, st.Icr, st.Ratio, st.Centroid.Y)
	}
	w.Flush()
	fmt.Println()
	return ci
}

func exportMomentCurvature(sec *section.Section, res *section.MomentCurvatureResult, cracked *section.CrackedInertia) {
	if mkPlotFile != "" {
		path := outputPath(mkPlotFile)
		if err := diagram.ExportMomentCurvature(res, sec.Name, path); err != nil {
			log.Printf("error exporting diagram: %v", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", path)
		}
	}
	if mkStateFile != "" {
		path := outputPath(mkStateFile)
		if err := diagram.ExportSectionState(sec, res, len(res.Steps)-1, path); err != nil {
			log.Printf("error exporting section state: %v", err)
		} else {
			fmt.Printf("Section state exported to: %s\n", path)
		}
	}
	if mkCSVFile != "" {
		path := outputPath(mkCSVFile)
		if err := export.SaveCSV(path, export.LoadSteps(res.Steps)); err != nil {
			log.Printf("error exporting CSV: %v", err)
		} else {
			fmt.Printf("Load steps exported to: %s\n", path)
		}
	}
	if mkXLSXFile != "" {
		tables := []export.Table{export.LoadSteps(res.Steps)}
		if all, err := sec.AllFiberData(); err == nil {
			tables = append(tables, export.Fibers(all))
		}
		if cracked != nil {
			tables = append(tables, export.Cracked(cracked))
		}
		path := outputPath(mkXLSXFile)
		if err := export.SaveXLSX(path, tables...); err != nil {
			log.Printf("error exporting workbook: %v", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", path)
		}
	}
}
