package analysis

import (
	"fmt"
	"sort"

	"order-decision/internal/model"
)

type RankedOrder struct {
	Rank           int
	Index          int
	Order          int
	ExpectedProfit float64
	// GapToBest is how much expected profit is given up versus the top candidate.
	GapToBest float64
}

// RankOrders sorts candidates descending by expected profit. Equal profits keep
// their input order, so rank 1 always matches SelectOptimal.
func RankOrders(orders []int, expectedProfits []float64) ([]RankedOrder, error) {
	if len(expectedProfits) != len(orders) {
		return nil, fmt.Errorf("%w: %d expected profits for %d orders",
			model.ErrDimensionMismatch, len(expectedProfits), len(orders))
	}
	out := make([]RankedOrder, len(orders))
	for i := range orders {
		out[i] = RankedOrder{Index: i, Order: orders[i], ExpectedProfit: expectedProfits[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedProfit > out[j].ExpectedProfit
	})
	for i := range out {
		out[i].Rank = i + 1
		out[i].GapToBest = out[0].ExpectedProfit - out[i].ExpectedProfit
	}
	return out, nil
}
