package material

import (
	"fmt"
	"math"
)

// Law is a monotonic stress-strain relationship attached to a fiber.
//
// Sign convention: tension is positive, compression is negative, for both
// strain and stress. StressAt is a pure function of strain and returns a
// finite value for every finite strain, including strains beyond rupture
// or crushing.
//
// The set of laws is closed: every implementation lives in this package.
type Law interface {
	StressAt(strain float64) float64
	Name() string
	law()
}

// Concrete is implemented by the concrete-type laws so callers can read the
// parameters that code provisions and cracked-section calculations need.
type Concrete interface {
	Law
	Strength() float64       // f'c (positive)
	ElasticModulus() float64 // Ec
}

// ConfigError reports an invalid material parameter at construction time
type ConfigError struct {
	Law    string
	Param  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("material %s: invalid %s = %g: %s", e.Law, e.Param, e.Value, e.Reason)
}

func requirePositive(law, param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &ConfigError{Law: law, Param: param, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}

func requireNonNegative(law, param string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &ConfigError{Law: law, Param: param, Value: v, Reason: "must be zero or positive"}
	}
	return nil
}

func requireGreater(law, param string, v, lower float64, lowerName string) error {
	if !(v > lower) {
		return &ConfigError{Law: law, Param: param, Value: v, Reason: "must exceed " + lowerName}
	}
	return nil
}

// firstError returns the first non-nil error
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Curve samples a law at n evenly spaced strains in [from, to].
// Used for plotting and comparing laws.
func Curve(l Law, from, to float64, n int) (strains, stresses []float64) {
	if n < 2 {
		n = 2
	}
	strains = make([]float64, n)
	stresses = make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range strains {
		strains[i] = from + float64(i)*step
		stresses[i] = l.StressAt(strains[i])
	}
	return strains, stresses
}
