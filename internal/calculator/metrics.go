package calculator

import "errors"

// MeanSquaredError computes the mean of squared differences between actual
// and predicted values.
func MeanSquaredError(actual, predicted []float64) (float64, error) {
	if len(actual) == 0 {
		return 0, errors.New("no values provided")
	}
	if len(actual) != len(predicted) {
		return 0, errors.New("actual and predicted lengths differ")
	}
	sum := 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(len(actual)), nil
}

// RSquared computes the coefficient of determination: the fraction of
// variance in actual explained by predicted, 1.0 being a perfect forecast.
// A constant actual series has no variance to explain and is rejected.
func RSquared(actual, predicted []float64) (float64, error) {
	if len(actual) == 0 {
		return 0, errors.New("no values provided")
	}
	if len(actual) != len(predicted) {
		return 0, errors.New("actual and predicted lengths differ")
	}
	mean, err := Mean(actual)
	if err != nil {
		return 0, err
	}
	var ssRes, ssTot float64
	for i := range actual {
		r := actual[i] - predicted[i]
		ssRes += r * r
		d := actual[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, errors.New("actual series has zero variance")
	}
	return 1 - ssRes/ssTot, nil
}
