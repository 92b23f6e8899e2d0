package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/aci"
	"github.com/alexiusacademia/gorcfiber/internal/diagram"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	checkFile        string
	checkOrientation float64
	checkFpc         float64
	checkFy          float64
	checkEs          float64
	checkSpiral      bool

	// Unfactored axial forces (compression positive) and moments
	checkAxial  aci.Effect
	checkMoment aci.Effect
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check factored load combinations against the interaction curve",
	Long: `Check a fiber section against NSCP 2015 strength load combinations.

Provide unfactored axial forces and moments for each load type. Every
combination gives a factored pair (Pu, Mu) which is compared with the
factored moment capacity φMn of the interaction curve at Pu for the
chosen neutral axis orientation.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Axial forces are positive in compression.

Examples:
  # Gravity loads on a column
  gorcfiber check -f column.json --pd 120 --pl 80 --md 40 --ml 25

  # With earthquake moment about the weak axis
  gorcfiber check -f column.json --orientation 90 --pd 120 --md 40 --me 60`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to section JSON file [required]")
	checkCmd.MarkFlagRequired("file")
	checkCmd.Flags().Float64Var(&checkOrientation, "orientation", 0, "Neutral axis orientation in degrees")
	addDesignFlags(checkCmd, &checkFpc, &checkFy, &checkEs, &checkSpiral)

	// Axial force flags
	checkCmd.Flags().Float64Var(&checkAxial.Dead, "pd", 0, "Axial force due to dead load")
	checkCmd.Flags().Float64Var(&checkAxial.Live, "pl", 0, "Axial force due to live load")
	checkCmd.Flags().Float64Var(&checkAxial.Roof, "plr", 0, "Axial force due to roof live load")
	checkCmd.Flags().Float64Var(&checkAxial.Wind, "pw", 0, "Axial force due to wind load")
	checkCmd.Flags().Float64Var(&checkAxial.Earthquake, "pe", 0, "Axial force due to earthquake load")
	checkCmd.Flags().Float64Var(&checkAxial.Rain, "pr", 0, "Axial force due to rain load")

	// Moment flags
	checkCmd.Flags().Float64Var(&checkMoment.Dead, "md", 0, "Moment due to dead load")
	checkCmd.Flags().Float64Var(&checkMoment.Live, "ml", 0, "Moment due to live load")
	checkCmd.Flags().Float64Var(&checkMoment.Roof, "mlr", 0, "Moment due to roof live load")
	checkCmd.Flags().Float64Var(&checkMoment.Wind, "mw", 0, "Moment due to wind load")
	checkCmd.Flags().Float64Var(&checkMoment.Earthquake, "me", 0, "Moment due to earthquake load")
	checkCmd.Flags().Float64Var(&checkMoment.Rain, "mr", 0, "Moment due to rain load")
}

func runCheck(cmd *cobra.Command, args []string) {
	if checkAxial == (aci.Effect{}) && checkMoment == (aci.Effect{}) {
		fmt.Println("Error: Please provide at least one unfactored axial force or moment.")
		fmt.Println("Use 'gorcfiber check --help' for usage information.")
		return
	}

	sec, def, ok := loadSection(checkFile, "LOAD COMBINATION CHECK - NSCP 2015")
	if !ok {
		return
	}

	opts, err := interactionOptions(def, checkFpc, checkFy, checkEs, checkSpiral)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	opts.Orientations = []float64{checkOrientation}

	res, err := sec.Interaction(opts)
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}
	curve := &res.Curves[0]

	printHeading("CAPACITY:")
	w := newTable()
	fmt.Fprintf(w, "  Orientation:\t%g°\n", curve.Orientation)
	fmt.Fprintf(w, "  Transverse:\t%s\n", res.Transverse)
	fmt.Fprintf(w, "  φPn,max:\t%.5g\n", curve.MaxAxial())
	if m, ok := curve.MomentCapacity(0); ok {
		fmt.Fprintf(w, "  φMn (P = 0):\t%.5g\n", m)
	}
	w.Flush()
	fmt.Println()

	demands := aci.Demands(checkAxial, checkMoment, aci.LoadCombinations)
	checks := curve.CheckDemands(demands)

	printHeading("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	governing := 0
	for i, c := range checks {
		if c.Ratio > checks[governing].Ratio {
			governing = i
		}
	}
	w = newTable()
	fmt.Fprintf(w, "  #\tCombination\tPu\tMu\tφMn\tRatio\tStatus\n")
	fmt.Fprintf(w, "  ─\t───────────\t──\t──\t───\t─────\t──────\n")
	for i, c := range checks {
		marker := ""
		if i == governing {
			marker = " ← GOVERNS"
		}
		status := "✓"
		if !c.OK {
			status = "✗ " + c.Message
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.3f\t%s%s\n",
			c.Demand.Combination.ID, c.Demand.Combination.Description,
			c.Demand.Pu, c.Demand.Mu, c.Capacity, c.Ratio, status, marker)
	}
	w.Flush()
	fmt.Println()

	gov := checks[governing]
	verdict := "ADEQUATE"
	if !allOK(checks) {
		verdict = "NOT ADEQUATE"
		log.Printf("combination %s exceeds capacity: %s", gov.Demand.Combination.ID, gov.Message)
	}
	fmt.Print(diagram.DrawSummaryBox("SECTION "+verdict, checkSummary(gov, checkMoment)))
	fmt.Println()
}

// checkSummary lists the governing check, then the combination with the
// largest factored moment when it differs
func checkSummary(gov section.DemandCheck, moment aci.Effect) []string {
	lines := []string{
		fmt.Sprintf("Governing combination: %s (%s)", gov.Demand.Combination.ID, gov.Demand.Combination.Description),
		fmt.Sprintf("Pu = %.2f   Mu = %.2f", gov.Demand.Pu, gov.Demand.Mu),
		fmt.Sprintf("φMn = %.2f   ratio = %.3f", gov.Capacity, gov.Ratio),
	}
	mu, combo := aci.GoverningMoment(moment, aci.LoadCombinations)
	if combo.ID != "" && combo.ID != gov.Demand.Combination.ID {
		lines = append(lines, fmt.Sprintf("Largest Mu: %.2f under %s (%s)", mu, combo.ID, combo.Description))
	}
	return lines
}

func allOK(checks []section.DemandCheck) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}
