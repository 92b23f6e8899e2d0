package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

// MomentCurvatureGraph renders moment against load step as a terminal graph.
// Steps are equal curvature increments, so the x axis is proportional to
// curvature except where failed steps were skipped.
func MomentCurvatureGraph(res *section.MomentCurvatureResult, width, height int) string {
	moments := res.Moments()
	if len(moments) < 2 {
		return ""
	}
	final := res.Final()
	return asciigraph.Plot(moments,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("M vs step (φ = 0 .. %.4g)", final.Curvature)),
	)
}

// StressStrainGraph renders a material law sampled over [from, to]
func StressStrainGraph(l material.Law, from, to float64, width, height int) string {
	_, stresses := material.Curve(l, from, to, width)
	return asciigraph.Plot(stresses,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s stress, strain %.4g .. %.4g", l.Name(), from, to)),
	)
}

// Section map cell markers
const (
	mapEmpty       = ' '
	mapPatch       = '·'
	mapCompression = '░'
	mapTension     = '▒'
	mapBar         = '●'
)

// SectionMap draws the meshed section on a character grid. With fiber
// states, stressed patches are shaded by sign and the neutral axis row is
// marked; otherwise every patch is drawn plain. neutralAxis is the depth
// from the top fiber and is ignored when not positive.
func SectionMap(s *section.Section, patchStates []section.FiberState, neutralAxis float64, cols, rows int) string {
	lo, hi := s.Bounds()
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if cols < 2 || rows < 2 || !(w > 0) || !(h > 0) {
		return ""
	}

	patches := s.PatchFibers()
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(mapEmpty), cols))
		y := hi.Y - (float64(r)+0.5)*h/float64(rows)
		for col := range grid[r] {
			x := lo.X + (float64(col)+0.5)*w/float64(cols)
			for i := range patches {
				if !inside(patches[i].Vertices[:], x, y) {
					continue
				}
				grid[r][col] = mapPatch
				if patchStates != nil {
					switch st := patchStates[i].Stress; {
					case st < 0:
						grid[r][col] = mapCompression
					case st > 0:
						grid[r][col] = mapTension
					}
				}
				break
			}
		}
	}

	for _, n := range s.NodeFibers() {
		col := int((n.Centroid.X - lo.X) / w * float64(cols))
		r := int((hi.Y - n.Centroid.Y) / h * float64(rows))
		grid[clamp(r, rows)][clamp(col, cols)] = mapBar
	}

	naRow := -1
	if neutralAxis > 0 && neutralAxis < h {
		naRow = clamp(int(neutralAxis/h*float64(rows)), rows)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for r, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if r == naRow {
			sb.WriteString(fmt.Sprintf(" ◄─ N.A. (c = %.3g)", neutralAxis))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  %c patch  %c compression  %c tension  %c bar\n", mapPatch, mapCompression, mapTension, mapBar))
	return sb.String()
}

// inside is the even-odd ray casting test
func inside(vs []section.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func clamp(i, n int) int {
	return int(math.Max(0, math.Min(float64(i), float64(n-1))))
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
