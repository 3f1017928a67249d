package api

import (
	"net/http"
	"time"

	"order-decision/internal/api/handlers"
	"order-decision/internal/api/middleware"
	"order-decision/internal/store"
	"order-decision/internal/table"

	"github.com/gin-gonic/gin"
)

// Options configures NewRouter. Zero values are usable.
type Options struct {
	AllowedOrigins []string
	PricingDir     string
	CacheTTL       time.Duration
}

// NewRouter wires middleware and routes. The returned engine owns its own
// result cache.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(opts.AllowedOrigins...))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	pricingHandler := handlers.NewPricingHandler(opts.PricingDir)
	analysisHandler := handlers.NewAnalysisHandler(store.NewResultCache(opts.CacheTTL), pricingHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analysis", analysisHandler.RunAnalysis)
		api.POST("/analysis/compare", analysisHandler.CompareAnalyses)
		api.GET("/analysis/:id/ledger", analysisHandler.GetLedger)
		api.GET("/analysis/:id/table", analysisHandler.GetTable)

		api.GET("/pricing", pricingHandler.ListPresets)
		api.GET("/criteria", handlers.ListCriteria)
		api.GET("/formats", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"formats": table.Formats()})
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
