package strategy

import (
	"order-decision/internal/analysis"

	"gonum.org/v1/gonum/floats"
)

// ExpectedValue picks the order with the highest probability-weighted profit.
type ExpectedValue struct{}

func (ExpectedValue) Name() string { return "expected_value" }

func (ExpectedValue) Description() string {
	return "Maximize expected profit over the demand distribution."
}

func (c ExpectedValue) Choose(in Input) (Decision, error) {
	if err := in.validate(); err != nil {
		return Decision{}, err
	}
	expected, err := analysis.BuildExpectedValueMatrix(in.Profit, in.Probabilities)
	if err != nil {
		return Decision{}, err
	}
	best, err := analysis.SelectOptimal(analysis.SumExpectedProfits(expected), in.Orders)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Criterion: c.Name(), Index: best.Index, Order: best.Order, Score: best.ExpectedProfit}, nil
}

// Maximin picks the order whose worst-case profit is highest. Probabilities are ignored.
type Maximin struct{}

func (Maximin) Name() string { return "maximin" }

func (Maximin) Description() string {
	return "Pessimistic: maximize the worst-case profit across demand levels."
}

func (c Maximin) Choose(in Input) (Decision, error) {
	if err := in.validate(); err != nil {
		return Decision{}, err
	}
	worst := make([]float64, len(in.Orders))
	for i, row := range in.Profit {
		worst[i] = floats.Min(row)
	}
	idx := pick(worst, func(a, b float64) bool { return a > b })
	return Decision{Criterion: c.Name(), Index: idx, Order: in.Orders[idx], Score: worst[idx]}, nil
}

// Maximax picks the order whose best-case profit is highest. Probabilities are ignored.
type Maximax struct{}

func (Maximax) Name() string { return "maximax" }

func (Maximax) Description() string {
	return "Optimistic: maximize the best-case profit across demand levels."
}

func (c Maximax) Choose(in Input) (Decision, error) {
	if err := in.validate(); err != nil {
		return Decision{}, err
	}
	best := make([]float64, len(in.Orders))
	for i, row := range in.Profit {
		best[i] = floats.Max(row)
	}
	idx := pick(best, func(a, b float64) bool { return a > b })
	return Decision{Criterion: c.Name(), Index: idx, Order: in.Orders[idx], Score: best[idx]}, nil
}

// MinimaxRegret picks the order whose largest regret is smallest. Regret for a
// cell is the column's best profit minus the cell's profit.
type MinimaxRegret struct{}

func (MinimaxRegret) Name() string { return "minimax_regret" }

func (MinimaxRegret) Description() string {
	return "Minimize the largest shortfall versus the best order for the realized demand."
}

func (c MinimaxRegret) Choose(in Input) (Decision, error) {
	if err := in.validate(); err != nil {
		return Decision{}, err
	}
	cols := in.Profit.Cols()
	colBest := make([]float64, cols)
	for j := 0; j < cols; j++ {
		colBest[j] = floats.Max(in.Profit.Column(j))
	}
	maxRegret := make([]float64, len(in.Orders))
	regret := make([]float64, cols)
	for i, row := range in.Profit {
		floats.SubTo(regret, colBest, row)
		maxRegret[i] = floats.Max(regret)
	}
	idx := pick(maxRegret, func(a, b float64) bool { return a < b })
	return Decision{Criterion: c.Name(), Index: idx, Order: in.Orders[idx], Score: maxRegret[idx]}, nil
}
