package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"order-decision/internal/api/middleware"
	"order-decision/internal/api/models"
	"order-decision/internal/config"
	"order-decision/internal/decision"
	"order-decision/internal/model"
	"order-decision/internal/store"
	"order-decision/internal/table"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AnalysisHandler handles analysis-related requests
type AnalysisHandler struct {
	cache   *store.ResultCache
	pricing *PricingHandler
}

// NewAnalysisHandler creates a new analysis handler. Results are kept in cache
// and pricing presets are resolved through pricing.
func NewAnalysisHandler(cache *store.ResultCache, pricing *PricingHandler) *AnalysisHandler {
	return &AnalysisHandler{cache: cache, pricing: pricing}
}

// RunAnalysis handles POST /api/v1/analysis
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := h.analyze(req.Scenario, req.Pricing, req.PricingPreset)
	if err != nil {
		abortWithAnalysisError(c, err)
		return
	}
	id := h.cache.Put(res)

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("analysis_id", id).
		Int("orders", len(res.Scenario.Orders)).
		Int("demands", len(res.Scenario.Demands)).
		Bool("has_optimal", res.HasOptimal).
		Msg("analysis stored")

	c.JSON(http.StatusOK, buildResponse(id, res, req.Options.IncludeLedger))
}

// GetLedger handles GET /api/v1/analysis/:id/ledger
func (h *AnalysisHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("analysis %q not found or expired", id))
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, models.LedgerResponse{ID: id, Ledger: ledgerRows(res.Ledger)})
	case "csv":
		var buf bytes.Buffer
		if err := decision.EncodeLedgerCSV(&buf, res.Ledger); err != nil {
			abortWithError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
			return
		}
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	default:
		abortWithError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be json or csv")
	}
}

// GetTable handles GET /api/v1/analysis/:id/table
func (h *AnalysisHandler) GetTable(c *gin.Context) {
	var q models.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("analysis %q not found or expired", id))
		return
	}

	var t table.Table
	switch q.Matrix {
	case "", "profit":
		t = res.ProfitTable()
	case "expected":
		t = res.ExpectedTable()
	default:
		abortWithError(c, http.StatusBadRequest, "INVALID_MATRIX", "matrix must be profit or expected")
		return
	}

	rnd, err := table.ForFormat(q.Format)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := rnd.Render(&buf, t); err != nil {
		abortWithError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}
	c.Data(http.StatusOK, contentType(rnd), buf.Bytes())
}

// CompareAnalyses handles POST /api/v1/analysis/compare
func (h *AnalysisHandler) CompareAnalyses(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		res, err := h.analyze(req.Scenario, v.Pricing, v.Preset)
		if err != nil {
			detail := errorDetail(err)
			comparison = append(comparison, models.ComparisonResult{Name: v.Name, Error: &detail})
			continue
		}
		summary := buildSummary(res)
		comparison = append(comparison, models.ComparisonResult{
			Name:    v.Name,
			ID:      h.cache.Put(res),
			Summary: &summary,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *AnalysisHandler) analyze(s models.ScenarioInput, p models.PricingInput, preset string) (*decision.Result, error) {
	cfg, err := h.buildConfig(s, p, preset)
	if err != nil {
		return nil, err
	}
	return decision.New(cfg.Pricing.ToModel()).Run(cfg.Scenario.ToModel())
}

func (h *AnalysisHandler) buildConfig(s models.ScenarioInput, p models.PricingInput, preset string) (*config.Config, error) {
	cfg := &config.Config{
		Pricing: config.PricingConfig{
			Name:            p.Name,
			FirstHalfPrice:  p.FirstHalfPrice,
			SecondHalfPrice: p.SecondHalfPrice,
			UnitCost:        p.UnitCost,
		},
		Scenario: config.ScenarioConfig{
			Orders:        s.Orders,
			Demands:       s.Demands,
			Probabilities: s.Probabilities,
		},
	}
	if preset != "" {
		base, _, err := h.pricing.Load(preset)
		if err != nil {
			return nil, fmt.Errorf("%w: preset %q: %v", model.ErrInvalidPricing, preset, err)
		}
		cfg.Pricing = config.MergePricing(base, cfg.Pricing)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildResponse(id string, res *decision.Result, includeLedger bool) models.AnalysisResponse {
	status := "completed"
	if !res.HasOptimal {
		status = "no_solution"
	}
	rankings := make([]models.Ranking, len(res.Rankings))
	for i, r := range res.Rankings {
		rankings[i] = models.Ranking{
			Rank:           r.Rank,
			Order:          r.Order,
			ExpectedProfit: r.ExpectedProfit,
			GapToBest:      r.GapToBest,
		}
	}

	out := models.AnalysisResponse{
		ID:              id,
		Status:          status,
		Summary:         buildSummary(res),
		Orders:          nonNilInts(res.Scenario.Orders),
		Demands:         nonNilInts(res.Scenario.Demands),
		Probabilities:   nonNilFloats(res.Scenario.Probabilities),
		ProfitMatrix:    matrixValues(res.ProfitMatrix),
		ExpectedValues:  matrixValues(res.ExpectedValues),
		ExpectedProfits: nonNilFloats(res.ExpectedProfits),
		Rankings:        rankings,
	}
	if includeLedger {
		out.Ledger = ledgerRows(res.Ledger)
	}
	return out
}

func buildSummary(res *decision.Result) models.AnalysisSummary {
	s := models.AnalysisSummary{
		HasOptimal: res.HasOptimal,
		Pricing: models.PricingInfo{
			FirstHalfPrice:  res.Pricing.FirstHalfPrice,
			SecondHalfPrice: res.Pricing.SecondHalfPrice,
			UnitCost:        res.Pricing.UnitCost,
		},
	}
	if !res.HasOptimal {
		return s
	}
	order := res.Optimal.Order
	profit := roundCents(res.Optimal.ExpectedProfit)
	s.OptimalOrder = &order
	s.OptimalExpectedProfit = &profit
	s.PerfectInformation = roundCents(res.PerfectInformation)
	s.EVPI = roundCents(res.EVPI)
	for _, d := range res.Decisions {
		s.Criteria = append(s.Criteria, models.Criterion{
			Name:  d.Criterion,
			Order: d.Order,
			Score: roundCents(d.Score),
		})
	}
	return s
}

func ledgerRows(ledger []decision.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, r := range ledger {
		out[i] = models.LedgerRow{
			Order:             r.Order,
			Demand:            r.Demand,
			Outcome:           string(r.Outcome),
			UnitsSold:         r.UnitsSold,
			UnitsSurplus:      r.UnitsSurplus,
			Probability:       r.Probability,
			Profit:            r.Profit,
			ExpectedValue:     r.ExpectedValue,
			CumExpectedProfit: r.CumExpectedProfit,
		}
	}
	return out
}

func pricingInfo(p config.PricingConfig) models.PricingInfo {
	m := p.ToModel()
	return models.PricingInfo{
		Name:            p.Name,
		FirstHalfPrice:  m.FirstHalfPrice,
		SecondHalfPrice: m.SecondHalfPrice,
		UnitCost:        m.UnitCost,
	}
}

func contentType(r table.Renderer) string {
	switch r.Name() {
	case "csv":
		return "text/csv; charset=utf-8"
	case "json":
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func roundCents(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

func matrixValues(m model.Matrix) [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	return m
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func nonNilFloats(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
