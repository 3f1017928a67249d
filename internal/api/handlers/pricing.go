package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"order-decision/internal/api/models"
	"order-decision/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PricingHandler serves the pricing presets found in a directory of YAML files.
type PricingHandler struct {
	dir string
}

// NewPricingHandler creates a pricing handler rooted at dir. An empty dir
// falls back to PRICING_DIR, then ./examples/pricing.
func NewPricingHandler(dir string) *PricingHandler {
	if dir == "" {
		dir = os.Getenv("PRICING_DIR")
	}
	if dir == "" {
		dir = filepath.Join(".", "examples", "pricing")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Debug().Str("dir", dir).Msg("pricing presets directory")
	return &PricingHandler{dir: dir}
}

// ListPresets handles GET /api/v1/pricing
func (h *PricingHandler) ListPresets(c *gin.Context) {
	presets := []models.PricingPreset{}

	entries, err := os.ReadDir(h.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", h.dir).Msg("cannot read pricing directory")
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		p, path, err := h.Load(id)
		if err != nil {
			log.Warn().Err(err).Str("preset", id).Msg("skipping invalid pricing preset")
			continue
		}
		presets = append(presets, models.PricingPreset{
			ID:      id,
			File:    path,
			Pricing: pricingInfo(p),
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// Load reads preset id, merged over the default pricing.
// Ids are plain file names; anything that could escape the directory is rejected.
func (h *PricingHandler) Load(id string) (config.PricingConfig, string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return config.PricingConfig{}, "", fmt.Errorf("invalid pricing preset %q", id)
	}
	path := filepath.Join(h.dir, id+".yaml")
	loaded, err := config.LoadPricingFile(path)
	if err != nil {
		return config.PricingConfig{}, "", err
	}
	merged := config.MergePricing(config.Default().Pricing, loaded)
	if merged.Name == "default" {
		merged.Name = id
	}
	return merged, path, nil
}
