package calculator

import (
	"math"
	"testing"
)

func TestWindowMean(t *testing.T) {
	window := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	got, err := WindowMean(window, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("expected 20, got %v", got)
	}

	if _, err := WindowMean(nil, 0); err == nil {
		t.Error("expected error for empty window")
	}
	if _, err := WindowMean(window, 5); err == nil {
		t.Error("expected error for out-of-range field")
	}
}

func TestMeanSquaredError(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		want      float64
	}{
		{"perfect", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"constant offset", []float64{1, 2, 3}, []float64{2, 3, 4}, 1},
		{"mixed", []float64{0, 0}, []float64{3, 1}, 5},
	}
	for _, tt := range tests {
		got, err := MeanSquaredError(tt.actual, tt.predicted)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	if _, err := MeanSquaredError([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := MeanSquaredError(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestRSquared(t *testing.T) {
	actual := []float64{1, 2, 3, 4}

	perfect, err := RSquared(actual, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perfect != 1 {
		t.Errorf("perfect forecast should give R2=1, got %v", perfect)
	}

	// Predicting the mean of actual gives R2 = 0.
	meanPred := []float64{2.5, 2.5, 2.5, 2.5}
	zero, err := RSquared(actual, meanPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(zero) > 1e-12 {
		t.Errorf("mean forecast should give R2=0, got %v", zero)
	}

	if _, err := RSquared([]float64{5, 5, 5}, []float64{5, 5, 5}); err == nil {
		t.Error("expected error for zero-variance actual")
	}
}
