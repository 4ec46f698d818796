package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/report"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "budget.yaml"

// Config represents the top-level budget.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig locates the ledger file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code, e.g. "USD"
}

// Load reads a budget.yaml file from disk. Fields left out of the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Validate checks that the storage path is set and the currency is known.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("storage.path must not be empty")
	}
	if _, err := report.NewFormatter(c.Display.Currency); err != nil {
		return fmt.Errorf("display.currency: %w", err)
	}
	return nil
}

// Default returns a Config matching the program's built-in behavior.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: ledger.DefaultFile,
		},
		Display: DisplayConfig{
			Currency: report.DefaultCurrency,
		},
	}
}
