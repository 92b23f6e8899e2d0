package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcfiber/internal/material"
	"github.com/alexiusacademia/gorcfiber/internal/section"
)

var (
	compressionColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	tensionColor     = color.RGBA{R: 205, G: 92, B: 92, A: 255}
	axisColor        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportMomentCurvature plots moment against curvature and marks the peak
func ExportMomentCurvature(res *section.MomentCurvatureResult, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	if p.Title.Text == "" {
		p.Title.Text = "Moment-Curvature"
	}
	p.X.Label.Text = "Curvature"
	p.Y.Label.Text = "Moment"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.Steps))
	for i, st := range res.Steps {
		pts[i] = plotter.XY{X: st.Curvature, Y: st.Moment}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	peak := res.PeakMoment()
	mark, err := plotter.NewScatter(plotter.XYs{{X: peak.Curvature, Y: peak.Moment}})
	if err != nil {
		return err
	}
	mark.GlyphStyle.Color = axisColor
	mark.GlyphStyle.Radius = vg.Points(4)
	mark.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(mark)
	p.Legend.Add(fmt.Sprintf("peak M = %.4g", peak.Moment), mark)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportInteraction plots axial force against the signed moment of every
// orientation of the sweep. Factored curves are drawn when factored is set.
// Opposite orientations share a moment axis, so a uniaxial sweep at 0 and
// 180 degrees draws the full envelope on both sides of the P axis.
func ExportInteraction(res *section.InteractionResult, factored bool, filename string) error {
	p := plot.New()
	p.Title.Text = "P-M Interaction"
	if factored {
		p.Title.Text = "Factored P-M Interaction"
	}
	p.X.Label.Text = "M"
	p.Y.Label.Text = "P (compression positive)"
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, curve := range res.Curves {
		pts := make(plotter.XYs, len(curve.Points))
		for i, pt := range curve.Points {
			if factored {
				pts[i] = plotter.XY{X: AxisMoment(curve.Orientation, pt.PhiMx, pt.PhiMy), Y: pt.PhiP}
			} else {
				pts[i] = plotter.XY{X: AxisMoment(curve.Orientation, pt.Mx, pt.My), Y: pt.P}
			}
		}
		lines = append(lines, fmt.Sprintf("%g°", curve.Orientation), pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// AxisMoment projects (Mx, My) on the moment axis of an orientation. The axis
// is the x axis turned by the orientation modulo 180 degrees, so θ and θ+180
// give moments of opposite sign.
func AxisMoment(orientation, mx, my float64) float64 {
	axis := math.Mod(orientation, 180)
	if axis < 0 {
		axis += 180
	}
	sin, cos := math.Sincos(axis * math.Pi / 180)
	return cos*mx - sin*my
}

// Law is a named material law for comparison plots
type Law struct {
	Label string
	Law   material.Law
}

// ExportStressStrain plots several material laws over the same strain range
func ExportStressStrain(laws []Law, from, to float64, filename string) error {
	if len(laws) == 0 {
		return fmt.Errorf("diagram: no material laws to plot")
	}
	p := plot.New()
	p.Title.Text = "Stress-Strain"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Stress"
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, l := range laws {
		strains, stresses := material.Curve(l.Law, from, to, 500)
		pts := make(plotter.XYs, len(strains))
		for i := range strains {
			pts[i] = plotter.XY{X: strains[i], Y: stresses[i]}
		}
		label := l.Label
		if label == "" {
			label = l.Law.Name()
		}
		lines = append(lines, label, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	p.Legend.Top = true
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionState draws the meshed section at one recorded step of a
// moment-curvature run. Stressed patch fibers are shaded by stress and the
// rest keep their own color. Node fibers are colored by the sign of their
// stress and the neutral axis is drawn dashed.
func ExportSectionState(s *section.Section, res *section.MomentCurvatureResult, record int, filename string) error {
	patchStates, nodeStates, err := res.StateAt(record)
	if err != nil {
		return err
	}
	step := res.Steps[record]

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  step %d  φ = %.4g  M = %.4g", s.Name, step.Step, step.Curvature, step.Moment)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var peak float64
	for _, st := range patchStates {
		peak = math.Max(peak, math.Abs(st.Stress))
	}

	for i, f := range s.PatchFibers() {
		pts := make(plotter.XYs, len(f.Vertices))
		for j, v := range f.Vertices {
			pts[j] = plotter.XY{X: v.X, Y: v.Y}
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = stressShade(patchStates[i].Stress, peak, f.Color)
		poly.LineStyle.Color = color.Gray{Y: 90}
		poly.LineStyle.Width = vg.Points(0.3)
		p.Add(poly)
	}

	nodes := s.NodeFibers()
	if len(nodes) > 0 {
		var tension, compression plotter.XYs
		for i, f := range nodes {
			xy := plotter.XY{X: f.Centroid.X, Y: f.Centroid.Y}
			if nodeStates[i].Stress >= 0 {
				tension = append(tension, xy)
			} else {
				compression = append(compression, xy)
			}
		}
		for _, group := range []struct {
			pts   plotter.XYs
			color color.Color
			label string
		}{
			{tension, tensionColor, "tension"},
			{compression, compressionColor, "compression"},
		} {
			if len(group.pts) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(group.pts)
			if err != nil {
				return err
			}
			sc.GlyphStyle.Color = group.color
			sc.GlyphStyle.Radius = vg.Points(4)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add(group.label+" bars", sc)
		}
	}

	if record > 0 {
		lo, hi := s.Bounds()
		naY := s.YMax() - step.NeutralAxis
		na, err := plotter.NewLine(plotter.XYs{{X: lo.X, Y: naY}, {X: hi.X, Y: naY}})
		if err != nil {
			return err
		}
		na.LineStyle.Width = vg.Points(1.5)
		na.LineStyle.Color = axisColor
		na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(na)
		p.Legend.Add(fmt.Sprintf("N.A. c = %.3g", step.NeutralAxis), na)
	}

	p.Legend.Top = true
	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// stressShade blends toward the compression or tension color with the stress
// magnitude. Unstressed fibers use their named color.
func stressShade(stress, peak float64, name string) color.Color {
	if stress == 0 || peak == 0 {
		return NamedColor(name)
	}
	t := math.Min(1, math.Abs(stress)/peak)
	target := compressionColor
	if stress > 0 {
		target = tensionColor
	}
	mix := func(c uint8) uint8 { return uint8(255 - t*(255-float64(c))) }
	return color.RGBA{R: mix(target.R), G: mix(target.G), B: mix(target.B), A: 255}
}

// NamedColor resolves an SVG color name such as "lightgray". Unknown names
// give gray.
func NamedColor(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(name, " ", ""))]; ok {
		return c
	}
	return colornames.Gray
}

// save writes the plot in the format implied by the extension (.png, .svg,
// .pdf); any other extension gets .png appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
