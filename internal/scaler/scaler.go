package scaler

import "errors"

// MinMax rescales values linearly so the observed range maps onto [0,1].
// A degenerate range (max == min) transforms every value to 0.
type MinMax struct {
	Min    float64
	Max    float64
	fitted bool
}

// Fit records the observed minimum and maximum of the given values.
func (s *MinMax) Fit(values []float64) error {
	if len(values) == 0 {
		return errors.New("cannot fit scaler on empty values")
	}
	s.Min, s.Max = values[0], values[0]
	for _, v := range values[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.fitted = true
	return nil
}

// Fitted reports whether Fit has been called.
func (s *MinMax) Fitted() bool { return s.fitted }

// Transform maps a value from the fitted range onto [0,1].
func (s *MinMax) Transform(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return (v - s.Min) / (s.Max - s.Min)
}

// TransformAll transforms a slice, returning a new slice.
func (s *MinMax) TransformAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Transform(v)
	}
	return out
}

// Inverse maps a normalized value back to original units.
func (s *MinMax) Inverse(v float64) float64 {
	return v*(s.Max-s.Min) + s.Min
}

// InverseAll inverse-transforms a slice, returning a new slice.
func (s *MinMax) InverseAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Inverse(v)
	}
	return out
}

// FitColumns fits one MinMax per column of a rows-by-columns matrix.
func FitColumns(rows [][]float64, cols int) ([]*MinMax, error) {
	if len(rows) == 0 {
		return nil, errors.New("cannot fit scalers on empty matrix")
	}
	scalers := make([]*MinMax, cols)
	col := make([]float64, len(rows))
	for c := 0; c < cols; c++ {
		for r := range rows {
			col[r] = rows[r][c]
		}
		scalers[c] = &MinMax{}
		if err := scalers[c].Fit(col); err != nil {
			return nil, err
		}
	}
	return scalers, nil
}

// TransformRows applies per-column scalers to a matrix, returning a new matrix.
func TransformRows(rows [][]float64, scalers []*MinMax) [][]float64 {
	out := make([][]float64, len(rows))
	for r := range rows {
		out[r] = make([]float64, len(scalers))
		for c, s := range scalers {
			out[r][c] = s.Transform(rows[r][c])
		}
	}
	return out
}
