package recorder

import "StockSeer/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunRecord) (int64, error)               { return 0, nil }
func (n *NoopRecorder) RecordPoints(_ int64, _ *model.ForecastResult) error { return nil }
func (n *NoopRecorder) Close() error                                        { return nil }
