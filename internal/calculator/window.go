package calculator

import "errors"

// Mean computes the arithmetic mean of the given values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// WindowMean computes the mean of one field's column within a window of
// rows. This is the derived indicator paired with each windowed sample.
func WindowMean(window [][]float64, field int) (float64, error) {
	if len(window) == 0 {
		return 0, errors.New("empty window")
	}
	if field < 0 || field >= len(window[0]) {
		return 0, errors.New("field index out of range")
	}
	sum := 0.0
	for _, row := range window {
		sum += row[field]
	}
	return sum / float64(len(window)), nil
}
