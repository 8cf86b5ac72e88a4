package model

import "time"

// Record represents a single daily bar of an instrument.
type Record struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Field indexes into a Record's numeric columns.
const (
	FieldOpen = iota
	FieldHigh
	FieldLow
	FieldClose
	FieldVolume
	FieldCount
)

// TargetField is the column forecasts are made against.
const TargetField = FieldClose

// FieldNames lists the numeric columns in Record order.
var FieldNames = [FieldCount]string{"open", "high", "low", "close", "volume"}

// Values returns the numeric columns of a record in field order.
func (r Record) Values() [FieldCount]float64 {
	return [FieldCount]float64{r.Open, r.High, r.Low, r.Close, r.Volume}
}

// RawSeries holds one instrument's chronologically ordered daily records.
// It is read once at load time and never mutated afterwards.
type RawSeries struct {
	Symbol   string
	Records  []Record
	LoadedAt time.Time
}

// Len returns the number of records in the series.
func (s *RawSeries) Len() int { return len(s.Records) }

// Matrix returns the series as a rows-by-fields float matrix.
func (s *RawSeries) Matrix() [][]float64 {
	m := make([][]float64, len(s.Records))
	for i, r := range s.Records {
		v := r.Values()
		m[i] = v[:]
	}
	return m
}
