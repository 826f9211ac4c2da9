// Package config provides engine configuration with layered overrides:
// defaults first, then an optional YAML file, then environment variables,
// then CLI flags applied by the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default values for the selection targets and document paths.
const (
	DefaultTargetOutfits   = 250
	DefaultQuotaRefined    = 0.40
	DefaultQuotaCrossover  = 0.35
	DefaultQuotaAdventurer = 0.25
	DefaultMinComboScore   = 0.35
	DefaultWardrobePath    = "data/wardrobe.json"
	DefaultOutfitsPath     = "data/outfits.json"
)

// Config holds the engine's runtime configuration.
type Config struct {
	// Paths
	WardrobePath string `yaml:"wardrobe_path"` // wardrobe catalog JSON document
	OutfitsPath  string `yaml:"outfits_path"`  // outfit corpus JSON document

	// Selection targets
	TargetOutfits   int     `yaml:"target_outfits"`   // total outfits aimed for, existing plus new
	QuotaRefined    float64 `yaml:"quota_refined"`    // pass-1 share reserved for Refined
	QuotaCrossover  float64 `yaml:"quota_crossover"`  // pass-1 share reserved for Crossover
	QuotaAdventurer float64 `yaml:"quota_adventurer"` // pass-1 share reserved for Adventurer

	// Generation
	// MinComboScore is the score floor for the candidate pool. A YAML value
	// of zero reads as unset; use MIN_COMBO_SCORE or --min-score for an
	// explicit zero or negative floor.
	MinComboScore float64 `yaml:"min_combo_score"`

	// Behavior
	Verbose     bool   `yaml:"verbose"`
	DatabaseURL string `yaml:"database_url"` // switches persistence to PostgreSQL when set
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		WardrobePath:    DefaultWardrobePath,
		OutfitsPath:     DefaultOutfitsPath,
		TargetOutfits:   DefaultTargetOutfits,
		QuotaRefined:    DefaultQuotaRefined,
		QuotaCrossover:  DefaultQuotaCrossover,
		QuotaAdventurer: DefaultQuotaAdventurer,
		MinComboScore:   DefaultMinComboScore,
	}
}

// Load builds a Config from defaults, an optional YAML file, and the
// environment, in that order. An empty path skips the file layer entirely;
// a non-empty path that does not exist is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.Merge(file)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file. Returns nil (not an error) if the file
// does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays the non-zero fields of file onto c. Bool fields are not
// merged; CLI flags always win for those. Safe to call with a nil file.
func (c *Config) Merge(file *Config) {
	if file == nil {
		return
	}

	if file.WardrobePath != "" {
		c.WardrobePath = file.WardrobePath
	}
	if file.OutfitsPath != "" {
		c.OutfitsPath = file.OutfitsPath
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
	}
	if file.TargetOutfits != 0 {
		c.TargetOutfits = file.TargetOutfits
	}
	if file.QuotaRefined != 0 {
		c.QuotaRefined = file.QuotaRefined
	}
	if file.QuotaCrossover != 0 {
		c.QuotaCrossover = file.QuotaCrossover
	}
	if file.QuotaAdventurer != 0 {
		c.QuotaAdventurer = file.QuotaAdventurer
	}
	if file.MinComboScore != 0 {
		c.MinComboScore = file.MinComboScore
	}
}

// ApplyEnv overrides fields from environment variables:
//
//   - TARGET_OUTFITS: total outfits aimed for (default 250)
//   - QUOTA_REFINED: pass-1 Refined share (default 0.40)
//   - QUOTA_CROSSOVER: pass-1 Crossover share (default 0.35)
//   - QUOTA_ADVENTURER: pass-1 Adventurer share (default 0.25)
//   - MIN_COMBO_SCORE: candidate score floor (default 0.35)
//   - DATABASE_URL: PostgreSQL connection URL
//
// Returns an error if any variable has an unparseable value.
func (c *Config) ApplyEnv() error {
	if err := parseEnvInt("TARGET_OUTFITS", &c.TargetOutfits); err != nil {
		return err
	}
	if err := parseEnvFloat("QUOTA_REFINED", &c.QuotaRefined); err != nil {
		return err
	}
	if err := parseEnvFloat("QUOTA_CROSSOVER", &c.QuotaCrossover); err != nil {
		return err
	}
	if err := parseEnvFloat("QUOTA_ADVENTURER", &c.QuotaAdventurer); err != nil {
		return err
	}
	if err := parseEnvFloat("MIN_COMBO_SCORE", &c.MinComboScore); err != nil {
		return err
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c Config) Validate() error {
	if c.TargetOutfits <= 0 {
		return fmt.Errorf("config error: 'target_outfits' must be positive (got %d)", c.TargetOutfits)
	}
	if c.WardrobePath == "" {
		return fmt.Errorf("config error: 'wardrobe_path' must not be empty")
	}
	if c.OutfitsPath == "" {
		return fmt.Errorf("config error: 'outfits_path' must not be empty")
	}

	quotas := map[string]float64{
		"quota_refined":    c.QuotaRefined,
		"quota_crossover":  c.QuotaCrossover,
		"quota_adventurer": c.QuotaAdventurer,
	}
	for name, q := range quotas {
		if q < 0.0 || q > 1.0 {
			return fmt.Errorf("config error: '%s' must be between 0.0 and 1.0 (got %.2f)", name, q)
		}
	}
	if sum := c.QuotaRefined + c.QuotaCrossover + c.QuotaAdventurer; sum > 1.0+1e-9 {
		return fmt.Errorf("config error: capsule quotas must not sum above 1.0 (got %.2f)", sum)
	}
	return nil
}

// parseEnvInt parses an int from an environment variable.
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

// parseEnvFloat parses a float from an environment variable.
func parseEnvFloat(key string, dest *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
