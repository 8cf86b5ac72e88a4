package plotter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vicanso/go-charts/v2"

	"StockSeer/internal/model"
)

// RenderForecast draws the test partition's actual and predicted values as a
// two-series line chart and returns the PNG bytes.
func RenderForecast(res *model.ForecastResult) ([]byte, error) {
	if res == nil || len(res.Actual) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}
	if len(res.Actual) != len(res.Predicted) || len(res.Actual) != len(res.Dates) {
		return nil, fmt.Errorf("result slices not aligned")
	}

	labels := make([]string, len(res.Dates))
	for i, d := range res.Dates {
		labels[i] = d.Format("01-02")
	}

	yMin, yMax := res.Actual[0], res.Actual[0]
	for _, series := range [][]float64{res.Actual, res.Predicted} {
		for _, v := range series {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	yMin -= pad
	yMax += pad

	painter, err := charts.LineRender(
		[][]float64{res.Actual, res.Predicted},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s forecast | MSE %.4f | R² %.4f", res.Symbol, res.MSE, res.R2)),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"actual", "predicted"}}),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag()}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return painter.Bytes()
}

// WritePNG renders the forecast and writes it under dir, returning the path.
func WritePNG(dir string, res *model.ForecastResult) (string, error) {
	img, err := RenderForecast(res)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	// Nanosecond suffix keeps back-to-back runs from overwriting each other.
	name := fmt.Sprintf("%s_%s_%d.png", res.Symbol, time.Now().Format("20060102"), time.Now().UnixNano())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, img, 0644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}
