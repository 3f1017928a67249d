package analysis

import (
	"fmt"

	"order-decision/internal/model"

	"gonum.org/v1/gonum/floats"
)

// BuildExpectedValueMatrix scales column j of profit by probabilities[j].
// Every row must be exactly len(probabilities) wide.
func BuildExpectedValueMatrix(profit model.Matrix, probabilities []float64) (model.Matrix, error) {
	out := make(model.Matrix, len(profit))
	for i, row := range profit {
		if len(row) != len(probabilities) {
			return nil, fmt.Errorf("%w: row %d has %d columns, %d probabilities",
				model.ErrDimensionMismatch, i, len(row), len(probabilities))
		}
		scaled := make([]float64, len(row))
		floats.MulTo(scaled, row, probabilities)
		out[i] = scaled
	}
	return out, nil
}

// SumExpectedProfits reduces each row of the expected-value matrix to its sum.
func SumExpectedProfits(expected model.Matrix) []float64 {
	out := make([]float64, len(expected))
	for i, row := range expected {
		out[i] = floats.Sum(row)
	}
	return out
}
