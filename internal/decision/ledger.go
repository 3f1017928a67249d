package decision

import (
	"order-decision/internal/analysis"
	"order-decision/internal/model"
	"order-decision/internal/strategy"
)

// LedgerRow is one (order, demand) cell of the analysis, flattened.
// Rows are ordered by order index, then demand index.
type LedgerRow struct {
	OrderIndex  int
	DemandIndex int

	Order  int
	Demand int

	Outcome model.Outcome

	UnitsSold    int
	UnitsSurplus int

	Probability   float64
	Profit        float64
	ExpectedValue float64
	// CumExpectedProfit is the running row sum; on the last demand of a row it
	// matches that order's expected profit up to rounding.
	CumExpectedProfit float64
}

type Result struct {
	Scenario model.Scenario
	Pricing  model.Pricing

	ProfitMatrix    model.Matrix
	ExpectedValues  model.Matrix
	ExpectedProfits []float64
	Rankings        []analysis.RankedOrder
	Ledger          []LedgerRow

	// Optimal is meaningful only when HasOptimal is set.
	Optimal    analysis.Choice
	HasOptimal bool

	// PerfectInformation and EVPI are zero unless HasOptimal is set.
	PerfectInformation float64
	EVPI               float64

	// Decisions holds one entry per strategy.All criterion, in that order.
	// Empty when HasOptimal is false.
	Decisions []strategy.Decision
}
