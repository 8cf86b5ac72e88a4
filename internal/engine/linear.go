package engine

import (
	"errors"
	"fmt"
	"log"

	"StockSeer/internal/model"
)

// LinearEngine fits a linear regression over the flattened window plus the
// indicator branch, trained with mini-batch gradient descent. It honors the
// epochs and batch_size knobs; hidden_units has no meaning for a linear
// model and is ignored.
type LinearEngine struct {
	LearningRate float64
}

// NewLinearEngine returns a LinearEngine with the default learning rate.
func NewLinearEngine() *LinearEngine {
	return &LinearEngine{LearningRate: 0.05}
}

func (e *LinearEngine) Name() string { return "linear" }

func (e *LinearEngine) Fit(set *model.TrainingSet, cfg model.ModelConfig) (Model, error) {
	if set == nil || len(set.Windows) == 0 {
		return nil, errors.New("linear: empty training set")
	}
	if len(set.Windows) != len(set.Indicators) || len(set.Windows) != len(set.Targets) {
		return nil, errors.New("linear: training set branches not aligned")
	}
	if cfg.Epochs <= 0 || cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("linear: invalid training config (epochs=%d batch_size=%d)", cfg.Epochs, cfg.BatchSize)
	}

	features := make([][]float64, len(set.Windows))
	for i := range set.Windows {
		features[i] = flatten(set.Windows[i], set.Indicators[i])
	}
	nFeatures := len(features[0])
	for i, f := range features {
		if len(f) != nFeatures {
			return nil, fmt.Errorf("linear: sample %d has %d features, expected %d", i, len(f), nFeatures)
		}
	}

	m := &linearModel{weights: make([]float64, nFeatures+1)} // +1 for bias
	lr := e.LearningRate
	if lr <= 0 {
		lr = 0.05
	}

	n := len(features)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for start := 0; start < n; start += cfg.BatchSize {
			end := start + cfg.BatchSize
			if end > n {
				end = n
			}
			m.step(features[start:end], set.Targets[start:end], lr)
		}
	}

	if loss := m.loss(features, set.Targets); loss > 1 {
		log.Printf("[WARN] linear engine finished with high training loss %.4f", loss)
	}
	return m, nil
}

type linearModel struct {
	weights []float64 // weights[0] is the bias term
}

func (m *linearModel) Predict(batch *model.InputBatch) ([]float64, error) {
	if batch == nil || len(batch.Windows) == 0 {
		return nil, errors.New("linear: empty input batch")
	}
	if len(batch.Windows) != len(batch.Indicators) {
		return nil, errors.New("linear: batch branches not aligned")
	}
	out := make([]float64, len(batch.Windows))
	for i := range batch.Windows {
		f := flatten(batch.Windows[i], batch.Indicators[i])
		if len(f) != len(m.weights)-1 {
			return nil, fmt.Errorf("linear: sample %d has %d features, model expects %d", i, len(f), len(m.weights)-1)
		}
		out[i] = m.predictOne(f)
	}
	return out, nil
}

func (m *linearModel) predictOne(features []float64) float64 {
	pred := m.weights[0]
	for i, f := range features {
		pred += m.weights[i+1] * f
	}
	return pred
}

// step applies one gradient-descent update over a mini batch.
func (m *linearModel) step(features [][]float64, targets []float64, lr float64) {
	n := float64(len(features))
	grads := make([]float64, len(m.weights))
	for i, f := range features {
		err := m.predictOne(f) - targets[i]
		grads[0] += err
		for j, x := range f {
			grads[j+1] += err * x
		}
	}
	for j := range m.weights {
		m.weights[j] -= lr * grads[j] / n
	}
}

func (m *linearModel) loss(features [][]float64, targets []float64) float64 {
	sum := 0.0
	for i, f := range features {
		d := m.predictOne(f) - targets[i]
		sum += d * d
	}
	return sum / float64(len(features))
}

// flatten concatenates a window's rows and appends the indicator value,
// giving both input branches to the same weight vector.
func flatten(window [][]float64, indicator float64) []float64 {
	size := 1
	for _, row := range window {
		size += len(row)
	}
	out := make([]float64, 0, size)
	for _, row := range window {
		out = append(out, row...)
	}
	return append(out, indicator)
}
