package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"StockSeer/internal/config"
	"StockSeer/internal/engine"
	"StockSeer/internal/forecast"
	"StockSeer/internal/loader"
	"StockSeer/internal/model"
	"StockSeer/internal/plotter"
	"StockSeer/internal/recorder"
	"StockSeer/internal/report"
)

// Runner executes the configured instruments sequentially: each one runs its
// full load/prepare/split/train/evaluate lifecycle before the next begins.
// With a cron expression it repeats the whole batch on schedule.
type Runner struct {
	Cfg      *config.Config
	Recorder recorder.Recorder
	Cron     *cron.Cron
	Ctx      context.Context
}

// NewRunner creates a Runner.
func NewRunner(ctx context.Context, cfg *config.Config, rec recorder.Recorder) *Runner {
	return &Runner{
		Cfg:      cfg,
		Recorder: rec,
		Cron:     cron.New(cron.WithSeconds()),
		Ctx:      ctx,
	}
}

// RunAll processes every configured instrument in order. A failing
// instrument is logged and does not stop the rest of the batch; RunAll
// returns an error only when no instrument succeeds.
func (r *Runner) RunAll() error {
	start := time.Now()
	var results []*model.ForecastResult
	failures := 0

	for _, inst := range r.Cfg.Instruments {
		select {
		case <-r.Ctx.Done():
			log.Println("[WARN] batch interrupted")
			return r.Ctx.Err()
		default:
		}

		res, err := r.RunInstrument(inst)
		if err != nil {
			log.Printf("[ERROR] %s: %v", inst.Name, err)
			failures++
			continue
		}
		results = append(results, res)
	}

	fmt.Print(report.FormatBatchSummary(results, failures, time.Since(start)))
	if len(results) == 0 {
		return fmt.Errorf("all %d instruments failed", failures)
	}
	return nil
}

// RunInstrument runs the full forecast lifecycle for one instrument,
// prints its report, writes the chart, and records the run.
func (r *Runner) RunInstrument(inst config.Instrument) (*model.ForecastResult, error) {
	eng, err := engine.New(inst.Engine)
	if err != nil {
		return nil, err
	}

	src := &loader.CSVFile{
		Path:       inst.CSVPath,
		DateLayout: inst.DateLayout,
		Delimiter:  inst.DelimiterRune(),
	}

	m := forecast.NewSeriesModel(inst.Name, inst.Model, eng)
	start := time.Now()
	res, err := m.Run(src)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	fmt.Print(report.FormatRunReport(res, inst.Model, eng.Name()))

	chartPath, err := plotter.WritePNG(r.Cfg.OutputDir, res)
	if err != nil {
		log.Printf("[WARN] %s: chart not written: %v", inst.Name, err)
	} else {
		log.Printf("[INFO] %s: chart written to %s", inst.Name, chartPath)
	}

	sp := m.SplitResult()
	runID, err := r.Recorder.RecordRun(&recorder.RunRecord{
		Symbol:         inst.Name,
		Engine:         eng.Name(),
		WindowLength:   inst.Model.WindowLength,
		TestProportion: inst.Model.TestProportion,
		HiddenUnits:    inst.Model.HiddenUnits,
		Epochs:         inst.Model.Epochs,
		BatchSize:      inst.Model.BatchSize,
		Rows:           m.Series().Len(),
		Samples:        len(m.Samples()),
		TrainSize:      len(sp.TrainSamples),
		TestSize:       len(sp.TestSamples),
		MSE:            res.MSE,
		R2:             res.R2,
		Duration:       elapsed,
		ChartPath:      chartPath,
	})
	if err != nil {
		log.Printf("[ERROR] %s: record run: %v", inst.Name, err)
	} else if err := r.Recorder.RecordPoints(runID, res); err != nil {
		log.Printf("[ERROR] %s: record points: %v", inst.Name, err)
	}

	return res, nil
}

// Schedule registers the batch on the given cron expression.
func (r *Runner) Schedule(spec string) error {
	if _, err := r.Cron.AddFunc(spec, func() {
		if err := r.RunAll(); err != nil {
			log.Printf("[ERROR] scheduled batch: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register batch schedule: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Runner) Start() {
	r.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (r *Runner) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
