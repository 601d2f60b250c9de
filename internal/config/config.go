package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level tillbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Rounding RoundingConfig `yaml:"rounding"`
	Drawer   DrawerConfig   `yaml:"drawer"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the shop.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// RoundingConfig controls the tolerance used by balance checks.
type RoundingConfig struct {
	// Epsilon is the currency-rounding tolerance for trial balance and
	// balance sheet verification.
	Epsilon float64 `yaml:"epsilon"`
}

// EpsilonDecimal returns the rounding tolerance as a decimal.
func (r RoundingConfig) EpsilonDecimal() decimal.Decimal {
	return decimal.NewFromFloat(r.Epsilon)
}

// DrawerConfig holds cash drawer defaults.
type DrawerConfig struct {
	DefaultFloat float64 `yaml:"default_float"`
}

// DefaultFloatDecimal returns the default drawer float as a decimal.
func (d DrawerConfig) DefaultFloatDecimal() decimal.Decimal {
	return decimal.NewFromFloat(d.DefaultFloat)
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tillbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new shop.
func Default(businessName, currency string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: currency,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Rounding: RoundingConfig{
			Epsilon: 0.01,
		},
		Drawer: DrawerConfig{
			DefaultFloat: 0,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tillbook",
			AuthorEmail: "books@tillbook.dev",
		},
	}
}
