package report

import (
	"strings"
	"testing"
	"time"

	"StockSeer/internal/model"
)

func testResult() *model.ForecastResult {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.ForecastResult{
		Symbol:    "AAPL",
		Dates:     []time.Time{base, base.AddDate(0, 0, 1)},
		Actual:    []float64{117, 118},
		Predicted: []float64{116, 117},
		MSE:       1,
		R2:        0.5,
	}
}

func TestFormatRunReport(t *testing.T) {
	cfg := model.ModelConfig{WindowLength: 5, TestProportion: 0.2, HiddenUnits: 8, Epochs: 10, BatchSize: 4}
	out := FormatRunReport(testResult(), cfg, "persistence")
	for _, want := range []string{"AAPL", "persistence", "MSE: 1.000000", "window: 5", "2024-03-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatBatchSummary(t *testing.T) {
	out := FormatBatchSummary([]*model.ForecastResult{testResult()}, 2, 1500*time.Millisecond)
	if !strings.Contains(out, "AAPL") {
		t.Errorf("summary missing symbol:\n%s", out)
	}
	if !strings.Contains(out, "2 instrument(s) failed") {
		t.Errorf("summary missing failure count:\n%s", out)
	}
}
