package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"StockSeer/internal/config"
	"StockSeer/internal/model"
	"StockSeer/internal/recorder"
)

func writeSeriesCSV(t *testing.T, rows int) string {
	t.Helper()
	content := "Date,Open,High,Low,Close,Volume\n"
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		c := 100 + float64(i)
		content += fmt.Sprintf("%s,%.2f,%.2f,%.2f,%.2f,%d\n",
			base.AddDate(0, 0, i).Format("2006-01-02"), c-0.5, c+1, c-1, c, 1000+i)
	}
	path := filepath.Join(t.TempDir(), "series.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func batchConfig(t *testing.T, csvPath string) *config.Config {
	cfg := &config.Config{OutputDir: t.TempDir()}
	cfg.Instruments = []config.Instrument{{
		Name:    "TEST",
		CSVPath: csvPath,
		Engine:  "persistence",
		Model: model.ModelConfig{
			WindowLength:   5,
			TestProportion: 0.2,
			HiddenUnits:    4,
			Epochs:         1,
			BatchSize:      4,
		},
	}}
	return cfg
}

func TestRunInstrument_EndToEnd(t *testing.T) {
	cfg := batchConfig(t, writeSeriesCSV(t, 30))
	r := NewRunner(context.Background(), cfg, recorder.NewNoopRecorder())

	res, err := r.RunInstrument(cfg.Instruments[0])
	if err != nil {
		t.Fatalf("run instrument: %v", err)
	}
	if res.Symbol != "TEST" {
		t.Errorf("unexpected symbol %q", res.Symbol)
	}
	if len(res.Actual) == 0 {
		t.Error("expected evaluation points")
	}

	// The chart must have landed in the output dir.
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 chart file, found %d", len(entries))
	}
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	cfg := batchConfig(t, writeSeriesCSV(t, 30))
	broken := cfg.Instruments[0]
	broken.Name = "BROKEN"
	broken.CSVPath = filepath.Join(t.TempDir(), "missing.csv")
	cfg.Instruments = append([]config.Instrument{broken}, cfg.Instruments...)

	r := NewRunner(context.Background(), cfg, recorder.NewNoopRecorder())
	if err := r.RunAll(); err != nil {
		t.Fatalf("batch with one survivor should succeed, got %v", err)
	}
}

func TestRunAll_AllFailed(t *testing.T) {
	cfg := batchConfig(t, filepath.Join(t.TempDir(), "missing.csv"))
	r := NewRunner(context.Background(), cfg, recorder.NewNoopRecorder())
	if err := r.RunAll(); err == nil {
		t.Fatal("expected error when every instrument fails")
	}
}

func TestRunAll_BackToBackBatches(t *testing.T) {
	// One Runner serves both the startup batch and later scheduled ones;
	// each batch must finish before the next begins, so running two in a
	// row on the same Runner leaves exactly one chart per batch.
	cfg := batchConfig(t, writeSeriesCSV(t, 30))
	r := NewRunner(context.Background(), cfg, recorder.NewNoopRecorder())

	if err := r.RunAll(); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if err := r.RunAll(); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 chart files after 2 batches, found %d", len(entries))
	}
}

func TestSchedule_BadExpression(t *testing.T) {
	cfg := batchConfig(t, writeSeriesCSV(t, 30))
	r := NewRunner(context.Background(), cfg, recorder.NewNoopRecorder())
	if err := r.Schedule("not a cron spec"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if err := r.Schedule("0 0 18 * * 1-5"); err != nil {
		t.Fatalf("valid cron expression rejected: %v", err)
	}
}
