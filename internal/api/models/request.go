package models

// AnalysisRequest is the body of POST /api/v1/analysis.
// Omitting scenario entirely runs the built-in scenario.
type AnalysisRequest struct {
	Scenario      ScenarioInput   `json:"scenario"`
	Pricing       PricingInput    `json:"pricing,omitempty"`
	PricingPreset string          `json:"pricing_preset,omitempty"` // file name under PRICING_DIR, without .yaml
	Options       AnalysisOptions `json:"options,omitempty"`
}

// ScenarioInput lists candidates and demand levels; probabilities parallel demands.
type ScenarioInput struct {
	Orders        []int     `json:"orders"`
	Demands       []int     `json:"demands"`
	Probabilities []float64 `json:"probabilities"`
}

// PricingInput overrides individual prices; omitted fields keep the default,
// an explicit 0 is used as given.
type PricingInput struct {
	Name            string   `json:"name,omitempty"`
	FirstHalfPrice  *float64 `json:"first_half_price,omitempty"`
	SecondHalfPrice *float64 `json:"second_half_price,omitempty"`
	UnitCost        *float64 `json:"unit_cost,omitempty"`
}

type AnalysisOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// CompareRequest evaluates one scenario under several pricing variations.
type CompareRequest struct {
	Scenario   ScenarioInput      `json:"scenario"`
	Variations []PricingVariation `json:"variations" binding:"required,min=1,dive"`
}

type PricingVariation struct {
	Name    string       `json:"name" binding:"required"`
	Pricing PricingInput `json:"pricing,omitempty"`
	Preset  string       `json:"preset,omitempty"`
}

// TableQuery selects the cached matrix and output format for GET /analysis/:id/table.
type TableQuery struct {
	Matrix string `form:"matrix"` // "profit" (default) or "expected"
	Format string `form:"format"` // "text" (default), "csv", "json"
}
