package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcfiber/internal/section"
)

const rule = "───────────────────────────────────────────────────────────────"

func printTitle(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printHeading(heading string) {
	fmt.Println(heading)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// loadSection loads and meshes a JSON section file and prints its header
func loadSection(path, title string) (*section.Section, *section.File, bool) {
	sec, def, err := section.LoadFromFile(path)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return nil, nil, false
	}

	printTitle(title)
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()
	return sec, def, true
}

func printGeometry(sec *section.Section) {
	printHeading("SECTION GEOMETRY:")
	lo, hi := sec.Bounds()
	c := sec.Centroid()
	w := newTable()
	fmt.Fprintf(w, "  Patch fibers:\t%d\n", sec.NumPatches())
	fmt.Fprintf(w, "  Node fibers:\t%d\n", sec.NumNodes())
	fmt.Fprintf(w, "  Gross area:\t%.4g\n", sec.Area())
	fmt.Fprintf(w, "  Steel area:\t%.4g\n", sec.SteelArea())
	fmt.Fprintf(w, "  Centroid:\t(%.4g, %.4g)\n", c.X, c.Y)
	fmt.Fprintf(w, "  Bounds:\t(%.4g, %.4g) to (%.4g, %.4g)\n", lo.X, lo.Y, hi.X, hi.Y)
	fmt.Fprintf(w, "  Depth:\t%.4g\n", sec.Depth())
	if sec.Rotation() != 0 {
		fmt.Fprintf(w, "  Rotation:\t%g°\n", sec.Rotation())
	}
	w.Flush()
	fmt.Println()
}

// outputPath places bare file names under the configured output directory
func outputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

// parseLocation reads "top", "bottom" or "x,y"
func parseLocation(s string) (section.Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return section.Top, nil
	case "bottom":
		return section.Bottom, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return section.Location{}, fmt.Errorf("location %q: want top, bottom or x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return section.Location{}, fmt.Errorf("location %q: coordinates must be numbers", s)
	}
	return section.Near(x, y), nil
}
