package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"StockSeer/internal/model"
)

// Instrument configures one forecast target.
type Instrument struct {
	Name       string            `yaml:"name"`
	CSVPath    string            `yaml:"csv_path"`
	DateLayout string            `yaml:"date_layout"`
	Delimiter  string            `yaml:"delimiter"`
	Engine     string            `yaml:"engine"`
	Model      model.ModelConfig `yaml:"model"`
}

// Config holds all application configuration.
type Config struct {
	Instruments []Instrument `yaml:"instruments"`
	OutputDir   string       `yaml:"output_dir"`
	Database    struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults for operational paths only. Model knobs never default:
	// a run with an unset knob must fail validation, not train silently.
	if cfg.OutputDir == "" {
		cfg.OutputDir = "out"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and every model knob was
// explicitly provided.
func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument is required")
	}
	seen := make(map[string]bool)
	for i, inst := range c.Instruments {
		if inst.Name == "" {
			return fmt.Errorf("instruments[%d]: name is required", i)
		}
		if seen[inst.Name] {
			return fmt.Errorf("instruments[%d]: duplicate name %q", i, inst.Name)
		}
		seen[inst.Name] = true
		if inst.CSVPath == "" {
			return fmt.Errorf("instrument %s: csv_path is required", inst.Name)
		}
		if len(inst.Delimiter) > 1 {
			return fmt.Errorf("instrument %s: delimiter must be a single character", inst.Name)
		}
		if err := inst.Model.Validate(); err != nil {
			return fmt.Errorf("instrument %s: %w", inst.Name, err)
		}
	}
	return nil
}

// DelimiterRune returns the instrument's delimiter as a rune, or 0 when unset.
func (i Instrument) DelimiterRune() rune {
	if i.Delimiter == "" {
		return 0
	}
	return rune(i.Delimiter[0])
}
