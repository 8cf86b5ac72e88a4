package engine

import (
	"errors"

	"StockSeer/internal/model"
)

// PersistenceEngine is the naive forecasting baseline: it predicts that the
// next value equals the last target-field value in the window. It learns
// nothing from Fit and ignores the indicator branch, which makes it a useful
// floor to compare real engines against.
type PersistenceEngine struct{}

func (e *PersistenceEngine) Name() string { return "persistence" }

func (e *PersistenceEngine) Fit(set *model.TrainingSet, _ model.ModelConfig) (Model, error) {
	if set == nil || len(set.Windows) == 0 {
		return nil, errors.New("persistence: empty training set")
	}
	return persistenceModel{}, nil
}

type persistenceModel struct{}

func (persistenceModel) Predict(batch *model.InputBatch) ([]float64, error) {
	if batch == nil || len(batch.Windows) == 0 {
		return nil, errors.New("persistence: empty input batch")
	}
	out := make([]float64, len(batch.Windows))
	for i, w := range batch.Windows {
		if len(w) == 0 {
			return nil, errors.New("persistence: empty window in batch")
		}
		last := w[len(w)-1]
		if model.TargetField >= len(last) {
			return nil, errors.New("persistence: window narrower than target field")
		}
		out[i] = last[model.TargetField]
	}
	return out, nil
}
