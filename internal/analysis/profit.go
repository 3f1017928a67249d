package analysis

import "order-decision/internal/model"

// ComputeProfit evaluates the default two-tier pricing for one order/demand pair.
func ComputeProfit(orderQty, demandQty int) float64 {
	return model.DefaultPricing().Profit(orderQty, demandQty)
}

// BuildProfitMatrix computes ComputeProfit for every (order, demand) pair.
func BuildProfitMatrix(orders, demands []int) model.Matrix {
	return BuildPricedProfitMatrix(model.DefaultPricing(), orders, demands)
}

// BuildPricedProfitMatrix is BuildProfitMatrix with explicit pricing.
// Cell [i][j] holds the profit of ordering orders[i] when demands[j] is realized.
func BuildPricedProfitMatrix(p model.Pricing, orders, demands []int) model.Matrix {
	out := make(model.Matrix, len(orders))
	for i, q := range orders {
		row := make([]float64, len(demands))
		for j, d := range demands {
			row[j] = p.Profit(q, d)
		}
		out[i] = row
	}
	return out
}
