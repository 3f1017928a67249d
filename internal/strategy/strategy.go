package strategy

import (
	"fmt"

	"order-decision/internal/model"
)

// Input is what every criterion sees: the candidates, the profit matrix built
// for them and the demand probabilities.
type Input struct {
	Orders        []int
	Profit        model.Matrix
	Probabilities []float64
}

// Decision is the order a criterion picks and the score it maximized or
// minimized. Score units are dollars for every built-in criterion.
type Decision struct {
	Criterion string
	Index     int
	Order     int
	Score     float64
}

// Criterion is a rule for picking one order quantity from a profit matrix.
type Criterion interface {
	Name() string
	Description() string
	Choose(in Input) (Decision, error)
}

// All returns the built-in criteria, expected value first.
func All() []Criterion {
	return []Criterion{
		ExpectedValue{},
		Maximin{},
		Maximax{},
		MinimaxRegret{},
	}
}

func ByName(name string) (Criterion, error) {
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unsupported criterion: %q", name)
}

func (in Input) validate() error {
	if in.Profit.Rows() != len(in.Orders) {
		return fmt.Errorf("%w: %d profit rows for %d orders", model.ErrDimensionMismatch, in.Profit.Rows(), len(in.Orders))
	}
	if len(in.Orders) == 0 || in.Profit.Cols() == 0 {
		return fmt.Errorf("%w: profit matrix is %dx%d", model.ErrEmptyInput, in.Profit.Rows(), in.Profit.Cols())
	}
	for i, row := range in.Profit {
		if len(row) != in.Profit.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, want %d", model.ErrDimensionMismatch, i, len(row), in.Profit.Cols())
		}
	}
	return nil
}

// pick returns the first index whose score is best under better.
func pick(scores []float64, better func(a, b float64) bool) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if better(scores[i], scores[best]) {
			best = i
		}
	}
	return best
}
