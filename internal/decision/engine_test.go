package decision

import (
	"errors"
	"math"
	"testing"

	"order-decision/internal/model"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestRunDefaultScenario(t *testing.T) {
	res, err := New(model.DefaultPricing()).Run(model.DefaultScenario())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.HasOptimal || res.Optimal.Order != 250 || !approx(res.Optimal.ExpectedProfit, 4_555_000) {
		t.Fatalf("optimal = %+v (has=%v), expected order 250 at 4555000", res.Optimal, res.HasOptimal)
	}
	if res.ProfitMatrix.Rows() != 5 || res.ExpectedValues.Cols() != 5 || len(res.ExpectedProfits) != 5 {
		t.Fatalf("unexpected shapes: %dx%d, %d profits", res.ProfitMatrix.Rows(), res.ExpectedValues.Cols(), len(res.ExpectedProfits))
	}

	// Order 200 is the probability-weighted sum of its profits.
	want200 := 0.0
	for j, d := range res.Scenario.Demands {
		want200 += res.Scenario.Probabilities[j] * res.Pricing.Profit(200, d)
	}
	if !approx(res.ExpectedProfits[2], want200) {
		t.Fatalf("expected profit for 200 = %.2f, expected %.2f", res.ExpectedProfits[2], want200)
	}

	if !approx(res.EVPI, 665_000) || !approx(res.PerfectInformation, 5_220_000) {
		t.Fatalf("EVPI = %.2f, EVwPI = %.2f", res.EVPI, res.PerfectInformation)
	}
	if res.Rankings[0].Order != 250 || res.Rankings[4].Order != 100 {
		t.Fatalf("rankings = %+v", res.Rankings)
	}
	if len(res.Decisions) != 4 || res.Decisions[0].Order != res.Optimal.Order {
		t.Fatalf("decisions = %+v", res.Decisions)
	}
}

func TestRunLedger(t *testing.T) {
	res, err := New(model.DefaultPricing()).Run(model.DefaultScenario())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Ledger) != 25 {
		t.Fatalf("ledger rows = %d, expected 25", len(res.Ledger))
	}
	r := res.Ledger[15] // order 250, demand 100
	if r.Order != 250 || r.Demand != 100 || r.Outcome != model.OutcomeSurplus || r.UnitsSold != 100 || r.UnitsSurplus != 150 {
		t.Fatalf("row 15 = %+v", r)
	}
	last := res.Ledger[19] // order 250, demand 300
	if last.Outcome != model.OutcomeShortage || !approx(last.CumExpectedProfit, res.ExpectedProfits[3]) {
		t.Fatalf("row 19 = %+v, expected cumulative %.2f", last, res.ExpectedProfits[3])
	}
}

func TestRunValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		pricing model.Pricing
		s       model.Scenario
		want    error
	}{
		{
			name:    "probability length mismatch",
			pricing: model.DefaultPricing(),
			s:       model.Scenario{Orders: []int{1}, Demands: []int{1, 2, 3}, Probabilities: []float64{0.5, 0.5}},
			want:    model.ErrDimensionMismatch,
		},
		{
			name:    "bad probabilities",
			pricing: model.DefaultPricing(),
			s:       model.Scenario{Orders: []int{1}, Demands: []int{1, 2}, Probabilities: []float64{0.7, 0.7}},
			want:    model.ErrInvalidProbability,
		},
		{
			name:    "negative pricing",
			pricing: model.Pricing{FirstHalfPrice: -1},
			s:       model.DefaultScenario(),
			want:    model.ErrInvalidPricing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pricing).Run(tt.s)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestRunEmptyOrders(t *testing.T) {
	s := model.Scenario{Demands: []int{100, 200}, Probabilities: []float64{0.5, 0.5}}
	res, err := New(model.DefaultPricing()).Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.HasOptimal {
		t.Fatalf("expected no optimal order, got %+v", res.Optimal)
	}
	if res.ProfitMatrix.Rows() != 0 || len(res.ExpectedProfits) != 0 || len(res.Ledger) != 0 || len(res.Decisions) != 0 {
		t.Fatalf("expected an empty result, got %+v", res)
	}
}

func TestRunEmptyDemands(t *testing.T) {
	s := model.Scenario{Orders: []int{10, 20}}
	res, err := New(model.DefaultPricing()).Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ProfitMatrix.Rows() != 2 || res.ProfitMatrix.Cols() != 0 {
		t.Fatalf("shape = %dx%d, expected 2x0", res.ProfitMatrix.Rows(), res.ProfitMatrix.Cols())
	}
	if len(res.ExpectedProfits) != 2 {
		t.Fatalf("expected profits = %v, expected one zero per order", res.ExpectedProfits)
	}
	if res.HasOptimal {
		t.Fatalf("expected no optimal order without demand levels, got %+v", res.Optimal)
	}
	if res.EVPI != 0 || len(res.Decisions) != 0 {
		t.Fatalf("EVPI = %v, decisions = %v; expected none without demand levels", res.EVPI, res.Decisions)
	}
}
