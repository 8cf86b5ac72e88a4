package report

import (
	"fmt"
	"strings"
	"time"

	"StockSeer/internal/model"
)

// FormatRunReport formats one instrument's forecast outcome for the console.
func FormatRunReport(res *model.ForecastResult, cfg model.ModelConfig, engineName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s forecast | %s ===\n", res.Symbol, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("engine: %s | window: %d | test: %.0f%% | epochs: %d | batch: %d\n",
		engineName, cfg.WindowLength, cfg.TestProportion*100, cfg.Epochs, cfg.BatchSize))
	b.WriteString(fmt.Sprintf("test points: %d\n", len(res.Actual)))
	b.WriteString(fmt.Sprintf("MSE: %.6f\n", res.MSE))
	b.WriteString(fmt.Sprintf("R²:  %.6f\n", res.R2))

	if n := len(res.Actual); n > 0 {
		b.WriteString("last points (actual vs predicted):\n")
		start := n - 5
		if start < 0 {
			start = 0
		}
		for i := start; i < n; i++ {
			b.WriteString(fmt.Sprintf("  %s  %10.4f  %10.4f\n",
				res.Dates[i].Format("2006-01-02"), res.Actual[i], res.Predicted[i]))
		}
	}
	return b.String()
}

// FormatBatchSummary formats the closing summary of a batch run.
func FormatBatchSummary(results []*model.ForecastResult, failures int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== batch finished in %s ===\n", elapsed.Round(time.Millisecond)))
	for _, r := range results {
		b.WriteString(fmt.Sprintf("  %-10s MSE %.6f  R² %+.4f\n", r.Symbol, r.MSE, r.R2))
	}
	if failures > 0 {
		b.WriteString(fmt.Sprintf("  %d instrument(s) failed, see log above\n", failures))
	}
	return b.String()
}
