package analysis

import (
	"fmt"

	"order-decision/internal/model"

	"gonum.org/v1/gonum/floats"
)

// PerfectInformation is the expected profit of a decision maker who learns the
// demand before ordering: for every demand level the best candidate order is
// chosen, then weighted by that level's probability.
//
// Only the provided candidates are considered, so this is an upper bound on
// SelectOptimal's value, not on every possible order quantity.
func PerfectInformation(profit model.Matrix, probabilities []float64) (float64, error) {
	if profit.Rows() == 0 || len(probabilities) == 0 {
		return 0, fmt.Errorf("%w: profit matrix is %dx%d", model.ErrEmptyInput, profit.Rows(), len(probabilities))
	}
	for i, row := range profit {
		if len(row) != len(probabilities) {
			return 0, fmt.Errorf("%w: row %d has %d columns, %d probabilities",
				model.ErrDimensionMismatch, i, len(row), len(probabilities))
		}
	}
	total := 0.0
	for j, p := range probabilities {
		total += p * floats.Max(profit.Column(j))
	}
	return total, nil
}

// ValueOfPerfectInformation is PerfectInformation minus the best expected profit.
func ValueOfPerfectInformation(profit model.Matrix, probabilities []float64, best Choice) (float64, error) {
	ev, err := PerfectInformation(profit, probabilities)
	if err != nil {
		return 0, err
	}
	return ev - best.ExpectedProfit, nil
}
