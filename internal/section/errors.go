package section

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySection   = errors.New("section: no fibers or zero total area")
	ErrSectionMeshed  = errors.New("section: geometry is frozen after Mesh")
	ErrNotMeshed      = errors.New("section: Mesh must be called before analysis")
	ErrInvalidOptions = errors.New("section: invalid analysis options")
	ErrNoAnalysis     = errors.New("section: no analysis results available")
	ErrFiberNotFound  = errors.New("section: fiber not found")
)

// FiberError reports a fiber with invalid geometry
type FiberError struct {
	Kind   Kind
	Tag    int
	Reason string
}

func (e *FiberError) Error() string {
	return fmt.Sprintf("section: %s fiber %d: %s", e.Kind, e.Tag, e.Reason)
}

// ConvergenceError describes where a moment-curvature run stopped
type ConvergenceError struct {
	Step      int     // first failed step of the final failure streak
	Curvature float64 // curvature of that step
	Failures  int     // consecutive failures that ended the run
	Reason    string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("section: moment-curvature terminated at step %d (phi = %.4e) after %d consecutive failures: %s",
		e.Step, e.Curvature, e.Failures, e.Reason)
}

func invalidOption(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}
