package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside a ledger directory.
const FileName = "ledgertree.yaml"

// Config represents the top-level ledgertree.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Files   FilesConfig   `yaml:"files"`
	Strict  bool          `yaml:"strict"` // abort on any malformed record
}

// LedgerConfig identifies the ledger.
type LedgerConfig struct {
	Name string `yaml:"name"`
}

// DisplayConfig controls how aggregated amounts are presented.
type DisplayConfig struct {
	PrimaryCommodity string `yaml:"primary_commodity"`
	HideClosed       bool   `yaml:"hide_closed"`
	HideZero         bool   `yaml:"hide_zero"`
}

// FilesConfig names the data files, relative to the ledger directory.
type FilesConfig struct {
	Accounts string `yaml:"accounts"`
	Journal  string `yaml:"journal"`
	Budgets  string `yaml:"budgets"`
	Prices   string `yaml:"prices"`
}

// Load reads a ledgertree.yaml file from disk. Missing file names are
// filled with their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Files = cfg.Files.withDefaults()
	return &cfg, nil
}

// LoadDir reads ledgertree.yaml from a ledger directory, falling back to
// the defaults when the directory has none.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(filepath.Base(dir), ""), nil
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

// Default returns a Config with sensible defaults for a new ledger.
func Default(ledgerName, primaryCommodity string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			Name: ledgerName,
		},
		Display: DisplayConfig{
			PrimaryCommodity: primaryCommodity,
		},
		Files: FilesConfig{}.withDefaults(),
	}
}

func (f FilesConfig) withDefaults() FilesConfig {
	if f.Accounts == "" {
		f.Accounts = "accounts.csv"
	}
	if f.Journal == "" {
		f.Journal = "journal.csv"
	}
	if f.Budgets == "" {
		f.Budgets = "budgets.csv"
	}
	if f.Prices == "" {
		f.Prices = "prices.csv"
	}
	return f
}
