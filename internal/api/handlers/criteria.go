package handlers

import (
	"net/http"

	"order-decision/internal/api/models"
	"order-decision/internal/strategy"

	"github.com/gin-gonic/gin"
)

// ListCriteria handles GET /api/v1/criteria
func ListCriteria(c *gin.Context) {
	all := strategy.All()
	criteria := make([]models.CriterionInfo, 0, len(all))
	for _, cr := range all {
		criteria = append(criteria, models.CriterionInfo{
			Name:        cr.Name(),
			Description: cr.Description(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"criteria": criteria})
}
