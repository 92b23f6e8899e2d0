package section

import "strconv"

// Header and Row expose the records as ordered named numeric fields for
// export.

// LoadStepHeader names the fields of LoadStep.Row
func LoadStepHeader() []string {
	return []string{"Step", "Curvature", "Moment", "MinorAxisMoment", "Axial", "NeutralAxis", "Slope", "Residual", "Iterations"}
}

// Row returns the step fields in LoadStepHeader order
func (s LoadStep) Row() []float64 {
	return []float64{float64(s.Step), s.Curvature, s.Moment, s.MinorMoment, s.Axial, s.NeutralAxis, s.Slope, s.Residual, float64(s.Iterations)}
}

// InteractionHeader names the fields of InteractionPoint.Row
func InteractionHeader() []string {
	return []string{"Orientation", "NeutralAxis", "P", "Mx", "My", "Phi", "P_factored", "Mx_factored", "My_factored", "StrainT"}
}

// Row returns the point fields in InteractionHeader order
func (p InteractionPoint) Row() []float64 {
	return []float64{p.Orientation, p.NeutralAxis, p.P, p.Mx, p.My, p.Phi, p.PhiP, p.PhiMx, p.PhiMy, p.StrainT}
}

// FiberStateHeader names the fields of FiberState.Row
func FiberStateHeader() []string {
	return []string{"Curvature", "Strain", "Stress", "Force", "MomentX", "MomentY"}
}

// Rows returns one row per recorded step in FiberStateHeader order
func (h *FiberHistory) Rows() [][]float64 {
	out := make([][]float64, len(h.States))
	for i, st := range h.States {
		out[i] = []float64{h.Curvature[i], st.Strain, st.Stress, st.Force, st.MomentX, st.MomentY}
	}
	return out
}

// Label identifies the fiber, e.g. "patch_12"
func (h *FiberHistory) Label() string {
	return h.Kind.String() + "_" + strconv.Itoa(h.Tag)
}

// CrackedHeader names the fields of CrackedStep.Row
func CrackedHeader() []string {
	return []string{"Step", "Curvature", "Icr", "Icr/Ig", "CentroidX", "CentroidY"}
}

// Row returns the cracked step fields in CrackedHeader order
func (c CrackedStep) Row() []float64 {
	return []float64{float64(c.Step), c.Curvature, c.Icr, c.Ratio, c.Centroid.X, c.Centroid.Y}
}
