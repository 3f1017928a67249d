package handlers

import (
	"net/http"

	"order-decision/internal/api/models"
	"order-decision/internal/model"

	"github.com/gin-gonic/gin"
)

// errorDetail maps a validation failure onto the API error shape.
func errorDetail(err error) models.ErrorDetail {
	kind := model.KindOf(err)
	code := "ANALYSIS_ERROR"
	switch kind {
	case model.KindDimensionMismatch:
		code = "DIMENSION_MISMATCH"
	case model.KindEmptyInput:
		code = "EMPTY_INPUT"
	case model.KindInvalidProbability, model.KindInvalidQuantity:
		code = "INVALID_SCENARIO"
	case model.KindInvalidPricing:
		code = "INVALID_PRICING"
	}
	return models.ErrorDetail{
		Code:    code,
		Message: err.Error(),
		Details: map[string]interface{}{"kind": string(kind)},
	}
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

func abortWithAnalysisError(c *gin.Context, err error) {
	status := http.StatusUnprocessableEntity
	if model.KindOf(err) == model.KindUnknown {
		status = http.StatusBadRequest
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: errorDetail(err)})
}
