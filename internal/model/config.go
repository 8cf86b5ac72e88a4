package model

import "fmt"

// ModelConfig carries the per-instrument training knobs. Every field is
// required: there are no implicit defaults, so a zero value never trains.
type ModelConfig struct {
	WindowLength   int     `yaml:"window_length"`
	TestProportion float64 `yaml:"test_proportion"`
	HiddenUnits    int     `yaml:"hidden_units"`
	Epochs         int     `yaml:"epochs"`
	BatchSize      int     `yaml:"batch_size"`
}

// Validate checks that every knob has been explicitly set to a usable value.
func (c ModelConfig) Validate() error {
	if c.WindowLength <= 0 {
		return fmt.Errorf("window_length must be positive, got %d", c.WindowLength)
	}
	if c.TestProportion <= 0 || c.TestProportion >= 1 {
		return fmt.Errorf("test_proportion must be in (0,1), got %g", c.TestProportion)
	}
	if c.HiddenUnits <= 0 {
		return fmt.Errorf("hidden_units must be positive, got %d", c.HiddenUnits)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	return nil
}
