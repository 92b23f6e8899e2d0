// Package export writes analysis records as CSV files or XLSX workbooks.
package export

import (
	"fmt"

	"github.com/alexiusacademia/gorcfiber/internal/section"
)

// Table is a named block of numeric rows. Labels, when set, is a leading
// text column with one entry per row.
type Table struct {
	Name        string
	LabelHeader string
	Labels      []string
	Header      []string
	Rows        [][]float64
}

// Columns returns the full header including the label column
func (t Table) Columns() []string {
	if t.Labels == nil {
		return t.Header
	}
	return append([]string{t.LabelHeader}, t.Header...)
}

func (t Table) validate() error {
	if t.Labels != nil && len(t.Labels) != len(t.Rows) {
		return fmt.Errorf("export: table %q has %d labels for %d rows", t.Name, len(t.Labels), len(t.Rows))
	}
	for i, r := range t.Rows {
		if len(r) != len(t.Header) {
			return fmt.Errorf("export: table %q row %d has %d values, header has %d", t.Name, i, len(r), len(t.Header))
		}
	}
	return nil
}

// LoadSteps tabulates a moment-curvature run
func LoadSteps(steps []section.LoadStep) Table {
	t := Table{Name: "moment_curvature", Header: section.LoadStepHeader()}
	for _, s := range steps {
		t.Rows = append(t.Rows, s.Row())
	}
	return t
}

// Interaction tabulates every curve of an interaction sweep
func Interaction(res *section.InteractionResult) Table {
	t := Table{Name: "interaction", Header: section.InteractionHeader()}
	for _, p := range res.Points() {
		t.Rows = append(t.Rows, p.Row())
	}
	return t
}

// FiberHistory tabulates the recorded states of one fiber
func FiberHistory(h *section.FiberHistory) Table {
	return Table{Name: h.Label(), Header: section.FiberStateHeader(), Rows: h.Rows()}
}

// Fibers tabulates several fiber histories in one long table keyed by label
func Fibers(hs []section.FiberHistory) Table {
	t := Table{Name: "fibers", LabelHeader: "Fiber", Labels: []string{}, Header: section.FiberStateHeader()}
	for i := range hs {
		label := hs[i].Label()
		for _, r := range hs[i].Rows() {
			t.Labels = append(t.Labels, label)
			t.Rows = append(t.Rows, r)
		}
	}
	return t
}

// Cracked tabulates the cracked moment of inertia per step
func Cracked(ci *section.CrackedInertia) Table {
	t := Table{Name: "cracked_inertia", Header: section.CrackedHeader()}
	for _, s := range ci.Steps {
		t.Rows = append(t.Rows, s.Row())
	}
	return t
}
