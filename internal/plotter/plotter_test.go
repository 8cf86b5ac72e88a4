package plotter

import (
	"os"
	"testing"
	"time"

	"StockSeer/internal/model"
)

func sampleResult() *model.ForecastResult {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.ForecastResult{
		Symbol:    "TEST",
		Dates:     []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)},
		Actual:    []float64{117, 118, 119},
		Predicted: []float64{116, 117, 118},
		MSE:       1,
		R2:        -0.5,
	}
}

func TestRenderForecast(t *testing.T) {
	img, err := RenderForecast(sampleResult())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(img) == 0 {
		t.Fatal("expected non-empty PNG bytes")
	}
}

func TestRenderForecast_Empty(t *testing.T) {
	if _, err := RenderForecast(&model.ForecastResult{}); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestRenderForecast_Misaligned(t *testing.T) {
	res := sampleResult()
	res.Predicted = res.Predicted[:2]
	if _, err := RenderForecast(res); err == nil {
		t.Fatal("expected error for misaligned slices")
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePNG(dir, sampleResult())
	if err != nil {
		t.Fatalf("write png: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}
