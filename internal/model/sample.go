package model

import "time"

// WindowedSample is one sliding-window training example: a fixed-length
// normalized slice of the series paired with the value that immediately
// follows it. RawTarget keeps the same target in original units so that
// forecast errors can be reported on the real price scale.
type WindowedSample struct {
	Window    [][]float64 // window_length x FieldCount, normalized
	Target    float64     // normalized target-field value at the step after the window
	RawTarget float64     // the same target in original units
	Date      time.Time   // date of the target record
}

// TrainTestSplit is a chronological partition of samples and their paired
// indicators. Train covers indices before the split point, test the rest;
// order is preserved on both sides.
type TrainTestSplit struct {
	TrainSamples    []WindowedSample
	TestSamples     []WindowedSample
	TrainIndicators []float64
	TestIndicators  []float64
}

// TrainingSet is what gets handed to a sequence-learning engine for fitting:
// the windowed numeric branch, the indicator branch, and the regression
// targets, all index-aligned.
type TrainingSet struct {
	Windows    [][][]float64
	Indicators []float64
	Targets    []float64
}

// InputBatch is a prediction request: windows and indicators index-aligned.
type InputBatch struct {
	Windows    [][][]float64
	Indicators []float64
}

// ForecastResult holds the denormalized predictions for the test partition
// alongside the actual values, plus summary error metrics.
type ForecastResult struct {
	Symbol    string
	Dates     []time.Time
	Actual    []float64
	Predicted []float64
	MSE       float64
	R2        float64
}
