package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"order-decision/internal/api"
	"order-decision/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("API_ENV") != "production")

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ttl := time.Hour
	if s := os.Getenv("RESULT_CACHE_TTL"); s != "" {
		if parsed, err := time.ParseDuration(s); err == nil {
			ttl = parsed
		} else {
			log.Warn().Err(err).Str("value", s).Msg("ignoring invalid RESULT_CACHE_TTL")
		}
	}

	router := api.NewRouter(api.Options{
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		PricingDir:     os.Getenv("PRICING_DIR"),
		CacheTTL:       ttl,
	})

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Dur("cache_ttl", ttl).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
