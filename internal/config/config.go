package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"order-decision/internal/model"
	"order-decision/internal/table"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load pricing from a separate YAML (e.g. examples/pricing/*.yaml).
	// If both PricingFile and Pricing are provided, fields set in Pricing override PricingFile.
	PricingFile string         `yaml:"pricing_file"`
	Pricing     PricingConfig  `yaml:"pricing"`
	Scenario    ScenarioConfig `yaml:"scenario"`
	Output      OutputConfig   `yaml:"output"`
}

// PricingConfig holds optional price overrides. A nil field is unset; an
// explicit 0 (e.g. surplus with no salvage value) is kept.
type PricingConfig struct {
	Name            string   `yaml:"name"`
	FirstHalfPrice  *float64 `yaml:"first_half_price"`
	SecondHalfPrice *float64 `yaml:"second_half_price"`
	UnitCost        *float64 `yaml:"unit_cost"`
}

type ScenarioConfig struct {
	Orders        []int     `yaml:"orders"`
	Demands       []int     `yaml:"demands"`
	Probabilities []float64 `yaml:"probabilities"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default mirrors the built-in scenario and pricing.
func Default() *Config {
	p := model.DefaultPricing()
	s := model.DefaultScenario()
	return &Config{
		Pricing: PricingConfig{
			Name:            "default",
			FirstHalfPrice:  Float(p.FirstHalfPrice),
			SecondHalfPrice: Float(p.SecondHalfPrice),
			UnitCost:        Float(p.UnitCost),
		},
		Scenario: ScenarioConfig{
			Orders:        s.Orders,
			Demands:       s.Demands,
			Probabilities: s.Probabilities,
		},
		Output: OutputConfig{Format: "text"},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.PricingFile != "" {
		pricingPath := c.PricingFile
		if !filepath.IsAbs(pricingPath) {
			// Relative to the config file first, then relative to cwd.
			cand := filepath.Join(filepath.Dir(path), pricingPath)
			if _, err := os.Stat(cand); err == nil {
				pricingPath = cand
			}
		}
		loaded, err := LoadPricingFile(pricingPath)
		if err != nil {
			return nil, err
		}
		c.Pricing = MergePricing(loaded, c.Pricing)
	}
	return &c, nil
}

// ApplyDefaults fills whatever the file left out from Default. A scenario is
// taken from the defaults only when all three of its lists are missing.
func (c *Config) ApplyDefaults() {
	def := Default()
	c.Pricing = MergePricing(def.Pricing, c.Pricing)
	if c.Scenario.Orders == nil && c.Scenario.Demands == nil && c.Scenario.Probabilities == nil {
		c.Scenario = def.Scenario
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Pricing.ToModel().Validate(); err != nil {
		return fmt.Errorf("pricing config invalid: %w", err)
	}
	if err := c.Scenario.ToModel().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if _, err := table.ForFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output config invalid: %w", err)
	}
	return nil
}

// ToModel reads unset fields as 0; call ApplyDefaults first to fill them.
func (p PricingConfig) ToModel() model.Pricing {
	return model.Pricing{
		FirstHalfPrice:  deref(p.FirstHalfPrice),
		SecondHalfPrice: deref(p.SecondHalfPrice),
		UnitCost:        deref(p.UnitCost),
	}
}

// Float returns a pointer to v, for building PricingConfig literals.
func Float(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (s ScenarioConfig) ToModel() model.Scenario {
	return model.Scenario{
		Orders:        s.Orders,
		Demands:       s.Demands,
		Probabilities: s.Probabilities,
	}
}

type pricingFileWrapper struct {
	Pricing PricingConfig `yaml:"pricing"`
}

// LoadPricingFile reads a file holding a single top-level `pricing:` block.
func LoadPricingFile(path string) (PricingConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PricingConfig{}, err
	}
	var w pricingFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PricingConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Pricing, nil
}

// MergePricing overlays the fields set in override onto base.
func MergePricing(base, override PricingConfig) PricingConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.FirstHalfPrice != nil {
		out.FirstHalfPrice = override.FirstHalfPrice
	}
	if override.SecondHalfPrice != nil {
		out.SecondHalfPrice = override.SecondHalfPrice
	}
	if override.UnitCost != nil {
		out.UnitCost = override.UnitCost
	}
	return out
}
