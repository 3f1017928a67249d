package model

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultPricingProfit(t *testing.T) {
	p := DefaultPricing()
	tests := []struct {
		name          string
		order, demand int
		want          float64
	}{
		{"matched", 100, 100, 2_400_000},
		{"surplus liquidated", 300, 100, 400_000},
		{"shortage", 100, 300, 2_400_000},
		{"nothing ordered", 0, 250, 0},
		{"no demand", 200, 0, -2_000_000},
		{"one unit", 1, 1, 24_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Profit(tt.order, tt.demand)
			if got != tt.want {
				t.Errorf("Profit(%d, %d) = %.2f, expected %.2f", tt.order, tt.demand, got, tt.want)
			}
		})
	}
}

func TestProfitMatchesFormula(t *testing.T) {
	p := DefaultPricing()
	for q := 0; q <= 400; q += 25 {
		for d := 0; d <= 400; d += 25 {
			want := 49000*float64(min(q, d)) + 15000*float64(max(0, q-d)) - 25000*float64(q)
			if got := p.Profit(q, d); got != want {
				t.Fatalf("Profit(%d, %d) = %.2f, expected %.2f", q, d, got, want)
			}
		}
	}
}

func TestProfitCustomPricing(t *testing.T) {
	p := Pricing{FirstHalfPrice: 10.5, SecondHalfPrice: 2.25, UnitCost: 4}
	// 10.5*3 + 2.25*2 - 4*5
	if got, want := p.Profit(5, 3), 16.0; got != want {
		t.Errorf("Profit(5, 3) = %v, expected %v", got, want)
	}
}

func TestPricingValidate(t *testing.T) {
	if err := DefaultPricing().Validate(); err != nil {
		t.Fatalf("default pricing invalid: %v", err)
	}
	bad := []Pricing{
		{FirstHalfPrice: -1},
		{SecondHalfPrice: -1},
		{UnitCost: -0.01},
		{FirstHalfPrice: math.Inf(1)},
		{SecondHalfPrice: math.Inf(-1)},
		{UnitCost: math.NaN()},
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPricing) {
			t.Errorf("Validate(%+v) = %v, expected ErrInvalidPricing", p, err)
		}
	}
}

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		order, demand int
		want          Outcome
	}{
		{100, 150, OutcomeShortage},
		{150, 150, OutcomeMatched},
		{200, 150, OutcomeSurplus},
	}
	for _, tt := range tests {
		if got := OutcomeFor(tt.order, tt.demand); got != tt.want {
			t.Errorf("OutcomeFor(%d, %d) = %s, expected %s", tt.order, tt.demand, got, tt.want)
		}
	}
}
