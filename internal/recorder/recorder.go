package recorder

import (
	"time"

	"StockSeer/internal/model"
)

// RunRecord holds everything worth keeping about one forecast run.
type RunRecord struct {
	Symbol         string
	Engine         string
	WindowLength   int
	TestProportion float64
	HiddenUnits    int
	Epochs         int
	BatchSize      int
	Rows           int
	Samples        int
	TrainSize      int
	TestSize       int
	MSE            float64
	R2             float64
	Duration       time.Duration
	ChartPath      string
}

// Recorder persists forecast run history for later analysis.
type Recorder interface {
	// RecordRun stores a run summary and returns its id.
	RecordRun(run *RunRecord) (int64, error)
	// RecordPoints stores a run's per-point actual/predicted pairs.
	RecordPoints(runID int64, res *model.ForecastResult) error
	Close() error
}
