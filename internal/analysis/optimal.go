package analysis

import (
	"fmt"

	"order-decision/internal/model"

	"gonum.org/v1/gonum/floats"
)

// Choice is the order quantity with the highest expected profit.
type Choice struct {
	Index          int
	Order          int
	ExpectedProfit float64
}

// SelectOptimal scans expectedProfits for its maximum. Ties resolve to the
// lowest index. An empty input has no solution and returns ErrEmptyInput.
func SelectOptimal(expectedProfits []float64, orders []int) (Choice, error) {
	if len(expectedProfits) != len(orders) {
		return Choice{}, fmt.Errorf("%w: %d expected profits for %d orders",
			model.ErrDimensionMismatch, len(expectedProfits), len(orders))
	}
	if len(orders) == 0 {
		return Choice{}, fmt.Errorf("%w: no order candidates", model.ErrEmptyInput)
	}
	idx := floats.MaxIdx(expectedProfits)
	return Choice{
		Index:          idx,
		Order:          orders[idx],
		ExpectedProfit: expectedProfits[idx],
	}, nil
}
