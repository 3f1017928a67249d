package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Pricing defines the two-tier revenue model and the linear cost model.
// Units:
// - FirstHalfPrice: $/unit for units sold up to realized demand
// - SecondHalfPrice: $/unit for surplus units liquidated above demand
// - UnitCost: $/unit ordered, paid whether or not the unit sells
type Pricing struct {
	FirstHalfPrice  float64
	SecondHalfPrice float64
	UnitCost        float64
}

func DefaultPricing() Pricing {
	return Pricing{
		FirstHalfPrice:  49000,
		SecondHalfPrice: 15000,
		UnitCost:        25000,
	}
}

func (p Pricing) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"FirstHalfPrice", p.FirstHalfPrice},
		{"SecondHalfPrice", p.SecondHalfPrice},
		{"UnitCost", p.UnitCost},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidPricing, f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidPricing, f.name)
		}
	}
	return nil
}

// Profit returns revenue minus total cost for ordering orderQty units when
// demandQty units are demanded. Units up to demand earn FirstHalfPrice, the
// surplus earns SecondHalfPrice.
//
// Negative quantities are not rejected here; Scenario.Validate guards them.
// Non-finite prices panic, so validate p first.
func (p Pricing) Profit(orderQty, demandQty int) float64 {
	sold := min(orderQty, demandQty)
	surplus := max(0, orderQty-demandQty)

	revenue := decimal.NewFromFloat(p.FirstHalfPrice).Mul(decimal.NewFromInt(int64(sold))).
		Add(decimal.NewFromFloat(p.SecondHalfPrice).Mul(decimal.NewFromInt(int64(surplus))))
	totalCost := decimal.NewFromFloat(p.UnitCost).Mul(decimal.NewFromInt(int64(orderQty)))

	return revenue.Sub(totalCost).InexactFloat64()
}
