package cmd

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/export"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	pmFile     string
	pmFpc      float64
	pmFy       float64
	pmEs       float64
	pmSpiral   bool
	pmAngles   []float64
	pmStep     float64
	pmPoints   int
	pmDepth    float64
	pmMethod   string
	pmEcu      float64
	pmWorkers  int
	pmShowAll  bool
	pmPlotFile string
	pmNominal  bool
	pmCSVFile  string
	pmXLSXFile string
)

var pmCmd = &cobra.Command{
	Use:   "pm",
	Short: "P-M interaction surface of a fiber section",
	Long: `Compute the axial force-moment interaction surface of a fiber section
defined in a JSON file.

For each neutral axis orientation the neutral axis depth is swept from
zero to a multiple of the section depth. Concrete patches use the ACI 318 /
NSCP 2015 rectangular stress block and bars are elastic-perfectly-plastic.
Strength reduction factors follow the net tensile strain of the extreme
bar; the axial capacity is capped at 0.80 φPo (tied) or 0.85 φPo (spiral).

Material strengths come from the file's "design" block unless given as
flags. Axial force P is positive in compression.

Examples:
  gorcfiber pm --file column.json
  gorcfiber pm -f column.json --angles 0,90 --spiral --plot pm.png
  gorcfiber pm -f column.json --method fiber --xlsx pm.xlsx`,
	Run: runInteraction,
}

func init() {
	rootCmd.AddCommand(pmCmd)

	pmCmd.Flags().StringVarP(&pmFile, "file", "f", "", "Path to section JSON file [required]")
	pmCmd.MarkFlagRequired("file")

	// Design parameters
	addDesignFlags(pmCmd, &pmFpc, &pmFy, &pmEs, &pmSpiral)

	// Sweep options
	pmCmd.Flags().Float64SliceVar(&pmAngles, "angles", nil, "Neutral axis orientations in degrees (default 0 to 345 by --step)")
	pmCmd.Flags().Float64Var(&pmStep, "step", section.DefaultOrientationStep, "Orientation increment in degrees when --angles is not given")
	pmCmd.Flags().IntVar(&pmPoints, "points", section.DefaultInteractionPoints, "Neutral axis depths per orientation")
	pmCmd.Flags().Float64Var(&pmDepth, "depth-factor", section.DefaultMaxDepthFactor, "Largest neutral axis depth as a multiple of the section depth")
	pmCmd.Flags().StringVar(&pmMethod, "method", "block", "Stress evaluation: block (ACI stress block) or fiber (fiber laws)")
	pmCmd.Flags().Float64Var(&pmEcu, "ecu", section.DefaultFiberEcu, "Crushing strain for --method fiber")
	pmCmd.Flags().IntVar(&pmWorkers, "workers", 0, "Orientations evaluated in parallel (default from GORCFIBER_WORKERS)")

	// Report and export options
	pmCmd.Flags().BoolVarP(&pmShowAll, "all", "a", false, "Show every point instead of a summary per orientation")
	pmCmd.Flags().StringVarP(&pmPlotFile, "output", "o", "", "Export interaction plot (png, svg, pdf)")
	pmCmd.Flags().BoolVar(&pmNominal, "nominal", false, "Plot nominal instead of factored curves")
	pmCmd.Flags().StringVar(&pmCSVFile, "csv", "", "Export interaction points to CSV")
	pmCmd.Flags().StringVar(&pmXLSXFile, "xlsx", "", "Export interaction points to XLSX")
}

// addDesignFlags registers the code parameter flags shared by pm and check
func addDesignFlags(c *cobra.Command, fpc, fy, es *float64, spiral *bool) {
	c.Flags().Float64Var(fpc, "fpc", 0, "Concrete strength f'c (default from design block)")
	c.Flags().Float64Var(fy, "fy", 0, "Bar yield strength fy (default from design block)")
	c.Flags().Float64Var(es, "es", 0, "Bar elastic modulus Es (default from design block)")
	c.Flags().BoolVar(spiral, "spiral", false, "Spirally reinforced member (default tied or from design block)")
}

// interactionOptions merges flags over the file's design block
func interactionOptions(def *section.File, fpc, fy, es float64, spiral bool) (section.InteractionOptions, error) {
	opts := section.InteractionOptions{Fpc: fpc, Fy: fy, Es: es, Concurrency: cfg.Workers}
	if d := def.Design; d != nil {
		if opts.Fpc == 0 {
			opts.Fpc = d.Fpc
		}
		if opts.Fy == 0 {
			opts.Fy = d.Fy
		}
		if opts.Es == 0 {
			opts.Es = d.Es
		}
		opts.Transverse = aci.ParseTransverse(d.Transverse)
	}
	if spiral {
		opts.Transverse = aci.Spiral
	}
	if opts.Fpc == 0 || opts.Fy == 0 || opts.Es == 0 {
		return opts, fmt.Errorf("f'c, fy and Es are required (flags or \"design\" block)")
	}
	return opts, nil
}

func runInteraction(cmd *cobra.Command, args []string) {
	sec, def, ok := loadSection(pmFile, "FIBER SECTION P-M INTERACTION - ACI 318 / NSCP 2015")
	if !ok {
		return
	}
	printGeometry(sec)

	opts, err := interactionOptions(def, pmFpc, pmFy, pmEs, pmSpiral)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	opts.Points = pmPoints
	opts.MaxDepthFactor = pmDepth
	opts.Ecu = pmEcu
	if cmd.Flags().Changed("workers") {
		opts.Concurrency = pmWorkers
	}
	switch strings.ToLower(pmMethod) {
	case "block", "stress-block":
		opts.Method = section.MethodStressBlock
	case "fiber":
		opts.Method = section.MethodFiber
	default:
		fmt.Printf("Error: unknown method %q (use block or fiber)\n", pmMethod)
		return
	}
	opts.Orientations = pmAngles
	if len(opts.Orientations) == 0 {
		if !(pmStep > 0) {
			fmt.Printf("Error: orientation step must be positive, got %g\n", pmStep)
			return
		}
		for a := 0.0; a < 360; a += pmStep {
			opts.Orientations = append(opts.Orientations, a)
		}
	}

	res, err := sec.Interaction(opts)
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	printHeading("MATERIAL PROPERTIES:")
	w := newTable()
	fmt.Fprintf(w, "  f'c:\t%.4g\n", res.Fpc)
	fmt.Fprintf(w, "  fy:\t%.4g\n", res.Fy)
	fmt.Fprintf(w, "  Es:\t%.4g\n", res.Es)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", res.Beta1)
	fmt.Fprintf(w, "  Po:\t%.5g\n", res.Po)
	fmt.Fprintf(w, "  Transverse:\t%s (cap %.2f φPo)\n", res.Transverse, aci.AxialCap(res.Transverse))
	fmt.Fprintf(w, "  Method:\t%s\n", res.Method)
	w.Flush()
	fmt.Println()

	if pmShowAll {
		printInteractionPoints(res)
	} else {
		printInteractionSummary(res)
	}

	exportInteraction(res)
}

// printInteractionSummary prints the pure compression, balanced and pure
// tension points of every orientation
func printInteractionSummary(res *section.InteractionResult) {
	printHeading("INTERACTION SUMMARY:")
	w := newTable()
	fmt.Fprintf(w, "  Angle\tφPn,max\tφPn,min\tφMn,max\tat φPn\tc\n")
	fmt.Fprintf(w, "  ─────\t───────\t───────\t───────\t──────\t─\n")
	for _, curve := range res.Curves {
		minP := math.Inf(1)
		var best section.InteractionPoint
		bestM := -1.0
		for _, p := range curve.Points {
			minP = math.Min(minP, p.PhiP)
			if m := math.Hypot(p.PhiMx, p.PhiMy); m > bestM {
				bestM, best = m, p
			}
		}
		fmt.Fprintf(w, "  %g°\t%.5g\t%.5g\t%.5g\t%.5g\t%.4g\n",
			curve.Orientation, curve.MaxAxial(), minP, bestM, best.PhiP, best.NeutralAxis)
	}
	w.Flush()
	fmt.Println()
}

func printInteractionPoints(res *section.InteractionResult) {
	printHeading("INTERACTION POINTS:")
	w := newTable()
	fmt.Fprintf(w, "  Angle\tc\tP\tMx\tMy\tφ\tφPn\tφMnx\tφMny\tεt\n")
	fmt.Fprintf(w, "  ─────\t─\t─\t──\t──\t─\t───\t────\t────\t──\n")
	for _, p := range res.Points() {
		fmt.Fprintf(w, "  %g°\t%.4g\t%.5g\t%.5g\t%.5g\t%.3f\t%.5g\t%.5g\t%.5g\t%.5f\n",
			p.Orientation, p.NeutralAxis, p.P, p.Mx, p.My, p.Phi, p.PhiP, p.PhiMx, p.PhiMy, p.StrainT)
	}
	w.Flush()
	fmt.Println()
}

func exportInteraction(res *section.InteractionResult) {
	if pmPlotFile != "" {
		path := outputPath(pmPlotFile)
		if err := diagram.ExportInteraction(res, !pmNominal, path); err != nil {
			log.Printf("error exporting diagram: %v", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", path)
		}
	}
	if pmCSVFile != "" {
		path := outputPath(pmCSVFile)
		if err := export.SaveCSV(path, export.Interaction(res)); err != nil {
			log.Printf("error exporting CSV: %v", err)
		} else {
			fmt.Printf("Interaction points exported to: %s\n", path)
		}
	}
	if pmXLSXFile != "" {
		path := outputPath(pmXLSXFile)
		if err := export.SaveXLSX(path, export.Interaction(res)); err != nil {
			log.Printf("error exporting workbook: %v", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", path)
		}
	}
}
