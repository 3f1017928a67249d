package decision

import (
	"fmt"

	"order-decision/internal/analysis"
	"order-decision/internal/model"
	"order-decision/internal/strategy"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Pricing model.Pricing
}

func New(p model.Pricing) *Engine { return &Engine{Pricing: p} }

// Run validates the scenario and executes the full pipeline: profit matrix,
// expected values, expected profits, then selection. A scenario without orders
// or without demand levels is not an error; the result simply has HasOptimal unset.
func (e *Engine) Run(s model.Scenario) (*Result, error) {
	if err := e.Pricing.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario invalid: %w", err)
	}

	profit := analysis.BuildPricedProfitMatrix(e.Pricing, s.Orders, s.Demands)
	expected, err := analysis.BuildExpectedValueMatrix(profit, s.Probabilities)
	if err != nil {
		return nil, err
	}
	expectedProfits := analysis.SumExpectedProfits(expected)

	rankings, err := analysis.RankOrders(s.Orders, expectedProfits)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Scenario:        s,
		Pricing:         e.Pricing,
		ProfitMatrix:    profit,
		ExpectedValues:  expected,
		ExpectedProfits: expectedProfits,
		Rankings:        rankings,
		Ledger:          buildLedger(s, profit, expected),
	}

	// No orders or no demand levels: there is nothing to choose between.
	if s.Empty() {
		log.Debug().Int("orders", len(s.Orders)).Int("demands", len(s.Demands)).Msg("empty scenario, no optimal order")
		return res, nil
	}
	best, err := analysis.SelectOptimal(expectedProfits, s.Orders)
	if err != nil {
		return nil, err
	}
	res.Optimal = best
	res.HasOptimal = true

	evpi, err := analysis.ValueOfPerfectInformation(profit, s.Probabilities, best)
	if err != nil {
		return nil, err
	}
	res.EVPI = evpi
	res.PerfectInformation = best.ExpectedProfit + evpi

	in := strategy.Input{Orders: s.Orders, Profit: profit, Probabilities: s.Probabilities}
	for _, c := range strategy.All() {
		d, err := c.Choose(in)
		if err != nil {
			return nil, fmt.Errorf("criterion %s: %w", c.Name(), err)
		}
		res.Decisions = append(res.Decisions, d)
	}

	log.Debug().
		Int("orders", len(s.Orders)).
		Int("demands", len(s.Demands)).
		Int("optimal_order", best.Order).
		Float64("expected_profit", best.ExpectedProfit).
		Msg("analysis complete")
	return res, nil
}

func buildLedger(s model.Scenario, profit, expected model.Matrix) []LedgerRow {
	ledger := make([]LedgerRow, 0, len(s.Orders)*len(s.Demands))
	for i, q := range s.Orders {
		cum := 0.0
		for j, d := range s.Demands {
			cum += expected[i][j]
			ledger = append(ledger, LedgerRow{
				OrderIndex:        i,
				DemandIndex:       j,
				Order:             q,
				Demand:            d,
				Outcome:           model.OutcomeFor(q, d),
				UnitsSold:         min(q, d),
				UnitsSurplus:      max(0, q-d),
				Probability:       s.Probabilities[j],
				Profit:            profit[i][j],
				ExpectedValue:     expected[i][j],
				CumExpectedProfit: cum,
			})
		}
	}
	return ledger
}
