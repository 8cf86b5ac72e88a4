package forecast

import (
	"errors"
	"fmt"
)

// ErrNotTrained is returned by Evaluate when no trained model is held yet.
var ErrNotTrained = errors.New("no trained model: call Train first")

// LoadError reports an unreadable or empty data source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InsufficientDataError reports a series too short for the configured window.
type InsufficientDataError struct {
	Rows   int
	Window int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("series has %d rows, need more than window length %d to produce samples", e.Rows, e.Window)
}

// ConfigurationError reports an unusable configuration value.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// SequenceError reports a lifecycle operation invoked out of order.
type SequenceError struct {
	Op       string
	Current  State
	Required State
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s requires state %s, model is %s", e.Op, e.Required, e.Current)
}

// TrainingError wraps a failure surfaced by the sequence-learning engine.
type TrainingError struct {
	Engine string
	Err    error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("engine %s: training failed: %v", e.Engine, e.Err)
}

func (e *TrainingError) Unwrap() error { return e.Err }
