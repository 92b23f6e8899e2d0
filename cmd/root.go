package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/config"
	"github.com/alexiusacademia/gorcfiber/internal/version"
)

var (
	envFile string

	// cfg holds the environment defaults, loaded before any command runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gorcfiber",
	Short: "Fiber section analysis for reinforced concrete",
	Long: `gorcfiber - Go Reinforced Concrete Fiber Section Analysis

A CLI tool for the analysis of reinforced concrete sections discretized
into fibers. Sections are defined in JSON files with material laws,
meshed concrete patches and reinforcing bars.

This tool performs:
  - Moment-curvature analysis under constant axial load
  - P-M interaction surfaces (ACI 318 / NSCP 2015 stress block)
  - Cracked moment of inertia per load step
  - Factored load combination checks against the interaction curve

Defaults for the solver and output directory are read from GORCFIBER_*
environment variables and an optional .env file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		files := []string{}
		if envFile != "" {
			if _, err := os.Stat(envFile); err != nil {
				return fmt.Errorf("env file: %w", err)
			}
			files = append(files, envFile)
		}
		loaded, err := config.Load(files...)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcfiber v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Fiber Section Analysis           ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Fiber-based analysis of reinforced concrete sections of")
		fmt.Println("  arbitrary shape with nonlinear material laws.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Moment-curvature with warm-started secant neutral axis search")
		fmt.Println("    • Biaxial P-M interaction swept over orientations")
		fmt.Println("    • Fiber stress/strain histories and cracked inertia")
		fmt.Println("    • CSV/XLSX export and PNG/SVG/PDF diagrams")
		fmt.Println()
		fmt.Println("  Use 'gorcfiber --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("gorcfiber: ")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Path to a .env file (default: ./.env when present)")
}
