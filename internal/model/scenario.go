package model

import (
	"fmt"
	"math"
)

// ProbabilityTolerance bounds how far the demand probabilities may sum from 1.
const ProbabilityTolerance = 1e-6

// Scenario is the full decision problem: candidate order quantities and the
// demand levels they are evaluated against. Probabilities is parallel to Demands.
type Scenario struct {
	Orders        []int
	Demands       []int
	Probabilities []float64
}

// DefaultScenario is the built-in five-by-five scenario.
func DefaultScenario() Scenario {
	return Scenario{
		Orders:        []int{100, 150, 200, 250, 300},
		Demands:       []int{100, 150, 200, 250, 300},
		Probabilities: []float64{0.1, 0.15, 0.25, 0.3, 0.2},
	}
}

// Validate checks the preconditions the expected-value semantics rely on.
// Empty order or demand lists are allowed; the pipeline degenerates to an
// empty table instead of failing.
func (s Scenario) Validate() error {
	if len(s.Probabilities) != len(s.Demands) {
		return fmt.Errorf("%w: %d probabilities for %d demand levels",
			ErrDimensionMismatch, len(s.Probabilities), len(s.Demands))
	}
	for i, q := range s.Orders {
		if q < 0 {
			return fmt.Errorf("%w: orders[%d]=%d must be >= 0", ErrInvalidQuantity, i, q)
		}
	}
	for j, d := range s.Demands {
		if d < 0 {
			return fmt.Errorf("%w: demands[%d]=%d must be >= 0", ErrInvalidQuantity, j, d)
		}
	}
	if len(s.Demands) == 0 {
		return nil
	}
	sum := 0.0
	for j, p := range s.Probabilities {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: probabilities[%d]=%v must be in [0, 1]", ErrInvalidProbability, j, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v, expected 1", ErrInvalidProbability, sum)
	}
	return nil
}

// Empty reports whether there is nothing to decide between.
func (s Scenario) Empty() bool {
	return len(s.Orders) == 0 || len(s.Demands) == 0
}
