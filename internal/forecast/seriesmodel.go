package forecast

import (
	"fmt"
	"log"
	"math"
	"time"

	"StockSeer/internal/calculator"
	"StockSeer/internal/engine"
	"StockSeer/internal/loader"
	"StockSeer/internal/model"
	"StockSeer/internal/scaler"
)

// SeriesModel owns one instrument's data end to end: raw load, normalized
// windowed samples, the paired window-mean indicator, the chronological
// train/test split, delegated training, and forecast evaluation.
//
// The lifecycle is Unloaded → Loaded → SamplesPrepared → IndicatorsPrepared
// → Split → Trained → Evaluated. Each operation requires the model to have
// reached the preceding state; re-running an operation recomputes its output
// deterministically and invalidates everything downstream. Load may be
// called at any time and rewinds the model to Loaded.
type SeriesModel struct {
	symbol string
	cfg    model.ModelConfig
	eng    engine.Engine

	state State

	raw          *model.RawSeries
	fieldScalers []*scaler.MinMax
	normalized   [][]float64
	samples      []model.WindowedSample
	indicators   []float64
	indScaler    *scaler.MinMax
	split        *model.TrainTestSplit
	trained      engine.Model
	result       *model.ForecastResult
}

// NewSeriesModel creates a model for one instrument. The engine is the
// external sequence-learning collaborator used by Train.
func NewSeriesModel(symbol string, cfg model.ModelConfig, eng engine.Engine) *SeriesModel {
	return &SeriesModel{symbol: symbol, cfg: cfg, eng: eng, state: Unloaded}
}

// Symbol returns the instrument name this model was created for.
func (m *SeriesModel) Symbol() string { return m.symbol }

// State returns the model's current lifecycle state.
func (m *SeriesModel) State() State { return m.state }

// Series returns the loaded raw series, or nil before Load.
func (m *SeriesModel) Series() *model.RawSeries { return m.raw }

// Samples returns the prepared windowed samples.
func (m *SeriesModel) Samples() []model.WindowedSample { return m.samples }

// Indicators returns the normalized per-sample indicator values.
func (m *SeriesModel) Indicators() []float64 { return m.indicators }

// SplitResult returns the train/test partition.
func (m *SeriesModel) SplitResult() *model.TrainTestSplit { return m.split }

// Load reads the raw series from the given source. It is the only operation
// allowed in any state: re-loading replaces the series and discards all
// derived state, returning the model to Loaded.
func (m *SeriesModel) Load(src loader.Source) error {
	records, err := src.Records()
	if err != nil {
		return &LoadError{Source: src.Name(), Err: err}
	}
	if len(records) == 0 {
		return &LoadError{Source: src.Name(), Err: fmt.Errorf("no rows survived loading")}
	}

	m.raw = &model.RawSeries{Symbol: m.symbol, Records: records, LoadedAt: time.Now()}
	m.reset(Loaded)
	log.Printf("[INFO] %s: loaded %d records (%s .. %s)", m.symbol, len(records),
		records[0].Date.Format("2006-01-02"), records[len(records)-1].Date.Format("2006-01-02"))
	return nil
}

// reset discards everything derived from the raw series and sets the state.
func (m *SeriesModel) reset(to State) {
	m.fieldScalers = nil
	m.normalized = nil
	m.samples = nil
	m.indicators = nil
	m.indScaler = nil
	m.split = nil
	m.trained = nil
	m.result = nil
	m.state = to
}

// require checks that the lifecycle has reached the given state.
func (m *SeriesModel) require(op string, s State) error {
	if m.state < s {
		return &SequenceError{Op: op, Current: m.state, Required: s}
	}
	return nil
}

// PrepareSamples fits a min-max scaler per field over the entire raw series,
// normalizes it, and slides a window of the configured length across it with
// stride 1, producing len(series) - window_length samples. The scalers are
// deliberately fitted before the split, matching the behavior this tool
// reproduces; see DESIGN.md for the look-ahead caveat.
func (m *SeriesModel) PrepareSamples() error {
	if err := m.require("PrepareSamples", Loaded); err != nil {
		return err
	}
	w := m.cfg.WindowLength
	if w <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("window_length must be positive, got %d", w)}
	}
	if m.raw.Len() <= w {
		return &InsufficientDataError{Rows: m.raw.Len(), Window: w}
	}

	matrix := m.raw.Matrix()
	scalers, err := scaler.FitColumns(matrix, model.FieldCount)
	if err != nil {
		return fmt.Errorf("fit field scalers: %w", err)
	}
	normalized := scaler.TransformRows(matrix, scalers)

	n := m.raw.Len() - w
	samples := make([]model.WindowedSample, n)
	for i := 0; i < n; i++ {
		samples[i] = model.WindowedSample{
			Window:    normalized[i : i+w],
			Target:    normalized[i+w][model.TargetField],
			RawTarget: m.raw.Records[i+w].Close,
			Date:      m.raw.Records[i+w].Date,
		}
	}

	m.fieldScalers = scalers
	m.normalized = normalized
	m.samples = samples
	m.indicators = nil
	m.indScaler = nil
	m.split = nil
	m.trained = nil
	m.result = nil
	m.state = SamplesPrepared
	return nil
}

// PrepareIndicators computes the window mean of the target field for each
// sample, then min-max normalizes the indicator values across all samples
// with a second, independent scaler.
func (m *SeriesModel) PrepareIndicators() error {
	if err := m.require("PrepareIndicators", SamplesPrepared); err != nil {
		return err
	}

	raw := make([]float64, len(m.samples))
	for i, s := range m.samples {
		mean, err := calculator.WindowMean(s.Window, model.TargetField)
		if err != nil {
			return fmt.Errorf("indicator for sample %d: %w", i, err)
		}
		raw[i] = mean
	}

	ind := &scaler.MinMax{}
	if err := ind.Fit(raw); err != nil {
		return fmt.Errorf("fit indicator scaler: %w", err)
	}

	m.indicators = ind.TransformAll(raw)
	m.indScaler = ind
	m.split = nil
	m.trained = nil
	m.result = nil
	m.state = IndicatorsPrepared
	return nil
}

// Split partitions samples and indicators chronologically: the leading
// floor(N*(1-test_proportion)) samples train, the rest test. No shuffling.
func (m *SeriesModel) Split() error {
	if err := m.require("Split", IndicatorsPrepared); err != nil {
		return err
	}
	p := m.cfg.TestProportion
	if p <= 0 || p >= 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("test_proportion must be in (0,1), got %g", p)}
	}

	n := len(m.samples)
	cut := int(math.Floor(float64(n) * (1 - p)))
	if cut == 0 || cut == n {
		return &ConfigurationError{Reason: fmt.Sprintf("test_proportion %g on %d samples leaves an empty partition", p, n)}
	}

	m.split = &model.TrainTestSplit{
		TrainSamples:    m.samples[:cut],
		TestSamples:     m.samples[cut:],
		TrainIndicators: m.indicators[:cut],
		TestIndicators:  m.indicators[cut:],
	}
	m.trained = nil
	m.result = nil
	m.state = Split
	log.Printf("[INFO] %s: split %d samples into %d train / %d test", m.symbol, n, cut, n-cut)
	return nil
}

// Train hands the train partition to the engine. The engine call blocks
// until training finishes; a failure is surfaced unmodified, wrapped so the
// caller can tell which stage and engine produced it.
func (m *SeriesModel) Train() error {
	if err := m.require("Train", Split); err != nil {
		return err
	}

	set := &model.TrainingSet{
		Windows:    make([][][]float64, len(m.split.TrainSamples)),
		Indicators: m.split.TrainIndicators,
		Targets:    make([]float64, len(m.split.TrainSamples)),
	}
	for i, s := range m.split.TrainSamples {
		set.Windows[i] = s.Window
		set.Targets[i] = s.Target
	}

	log.Printf("[INFO] %s: training %s engine on %d samples (epochs=%d batch=%d)",
		m.symbol, m.eng.Name(), len(set.Windows), m.cfg.Epochs, m.cfg.BatchSize)
	start := time.Now()
	trained, err := m.eng.Fit(set, m.cfg)
	if err != nil {
		return &TrainingError{Engine: m.eng.Name(), Err: err}
	}
	log.Printf("[INFO] %s: training finished in %s", m.symbol, time.Since(start).Round(time.Millisecond))

	m.trained = trained
	m.result = nil
	m.state = Trained
	return nil
}

// Evaluate predicts the test partition, inverse-transforms predictions to
// original units with the scaler fitted in PrepareSamples, and computes MSE
// and R² against the test partition's original-unit targets.
func (m *SeriesModel) Evaluate() (*model.ForecastResult, error) {
	if m.trained == nil {
		return nil, ErrNotTrained
	}

	batch := &model.InputBatch{
		Windows:    make([][][]float64, len(m.split.TestSamples)),
		Indicators: m.split.TestIndicators,
	}
	for i, s := range m.split.TestSamples {
		batch.Windows[i] = s.Window
	}

	normPreds, err := m.trained.Predict(batch)
	if err != nil {
		return nil, &TrainingError{Engine: m.eng.Name(), Err: err}
	}
	if len(normPreds) != len(m.split.TestSamples) {
		return nil, fmt.Errorf("engine returned %d predictions for %d test samples", len(normPreds), len(m.split.TestSamples))
	}

	target := m.fieldScalers[model.TargetField]
	predicted := target.InverseAll(normPreds)

	actual := make([]float64, len(m.split.TestSamples))
	dates := make([]time.Time, len(m.split.TestSamples))
	for i, s := range m.split.TestSamples {
		actual[i] = s.RawTarget
		dates[i] = s.Date
	}

	mse, err := calculator.MeanSquaredError(actual, predicted)
	if err != nil {
		return nil, fmt.Errorf("compute mse: %w", err)
	}
	r2, err := calculator.RSquared(actual, predicted)
	if err != nil {
		log.Printf("[WARN] %s: r-squared not computable: %v", m.symbol, err)
		r2 = 0
	}

	m.result = &model.ForecastResult{
		Symbol:    m.symbol,
		Dates:     dates,
		Actual:    actual,
		Predicted: predicted,
		MSE:       mse,
		R2:        r2,
	}
	m.state = Evaluated
	return m.result, nil
}

// Run executes the full lifecycle against the given source and returns the
// forecast result.
func (m *SeriesModel) Run(src loader.Source) (*model.ForecastResult, error) {
	if err := m.Load(src); err != nil {
		return nil, err
	}
	if err := m.PrepareSamples(); err != nil {
		return nil, err
	}
	if err := m.PrepareIndicators(); err != nil {
		return nil, err
	}
	if err := m.Split(); err != nil {
		return nil, err
	}
	if err := m.Train(); err != nil {
		return nil, err
	}
	return m.Evaluate()
}
