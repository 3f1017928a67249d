package models

// AnalysisResponse represents the response from an analysis run
type AnalysisResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"` // "completed" or "no_solution"
	Summary         AnalysisSummary `json:"summary"`
	Orders          []int           `json:"orders"`
	Demands         []int           `json:"demands"`
	Probabilities   []float64       `json:"probabilities"`
	ProfitMatrix    [][]float64     `json:"profit_matrix"`
	ExpectedValues  [][]float64     `json:"expected_values"`
	ExpectedProfits []float64       `json:"expected_profits"`
	Rankings        []Ranking       `json:"rankings"`
	Ledger          []LedgerRow     `json:"ledger,omitempty"`
}

// AnalysisSummary holds the decision. Money fields are rounded to cents.
type AnalysisSummary struct {
	HasOptimal            bool        `json:"has_optimal"`
	OptimalOrder          *int        `json:"optimal_order"`
	OptimalExpectedProfit *float64    `json:"optimal_expected_profit"`
	PerfectInformation    float64     `json:"expected_profit_perfect_information"`
	EVPI                  float64     `json:"expected_value_of_perfect_information"`
	Pricing               PricingInfo `json:"pricing"`
	Criteria              []Criterion `json:"criteria,omitempty"`
}

// Criterion is the order a decision rule picks and the score it optimized
type Criterion struct {
	Name  string  `json:"name"`
	Order int     `json:"order"`
	Score float64 `json:"score"`
}

// CriterionInfo describes an available decision rule
type CriterionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PricingInfo struct {
	Name            string  `json:"name,omitempty"`
	FirstHalfPrice  float64 `json:"first_half_price"`
	SecondHalfPrice float64 `json:"second_half_price"`
	UnitCost        float64 `json:"unit_cost"`
}

// Ranking represents one ranked order candidate
type Ranking struct {
	Rank           int     `json:"rank"`
	Order          int     `json:"order"`
	ExpectedProfit float64 `json:"expected_profit"`
	GapToBest      float64 `json:"gap_to_best"`
}

// LedgerRow represents one (order, demand) cell of the analysis
type LedgerRow struct {
	Order             int     `json:"order"`
	Demand            int     `json:"demand"`
	Outcome           string  `json:"outcome"` // "SHORTAGE", "MATCHED", "SURPLUS"
	UnitsSold         int     `json:"units_sold"`
	UnitsSurplus      int     `json:"units_surplus"`
	Probability       float64 `json:"probability"`
	Profit            float64 `json:"profit"`
	ExpectedValue     float64 `json:"expected_value"`
	CumExpectedProfit float64 `json:"cum_expected_profit"`
}

type LedgerResponse struct {
	ID     string      `json:"id"`
	Ledger []LedgerRow `json:"ledger"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation; Error is set instead
// of Summary when the variation could not be evaluated.
type ComparisonResult struct {
	Name    string           `json:"name"`
	ID      string           `json:"id,omitempty"`
	Summary *AnalysisSummary `json:"summary,omitempty"`
	Error   *ErrorDetail     `json:"error,omitempty"`
}

// PricingPreset represents a pricing file available to requests
type PricingPreset struct {
	ID      string      `json:"id"`
	File    string      `json:"file"`
	Pricing PricingInfo `json:"pricing"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
