package engine

import (
	"fmt"

	"StockSeer/internal/model"
)

// Engine is a sequence-learning capability. Fit trains on a set of windowed
// samples with their paired indicators and returns an opaque trained model.
// Internals (cell type, optimizer, architecture) are the engine's business.
type Engine interface {
	Fit(set *model.TrainingSet, cfg model.ModelConfig) (Model, error)
	Name() string
}

// Model is a trained model handle that produces point predictions for a
// batch of inputs, in the same normalized units it was trained on.
type Model interface {
	Predict(batch *model.InputBatch) ([]float64, error)
}

// New returns the engine registered under the given name.
func New(name string) (Engine, error) {
	switch name {
	case "persistence":
		return &PersistenceEngine{}, nil
	case "linear", "":
		return NewLinearEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}
