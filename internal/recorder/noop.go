package recorder

import "OvernightExchange/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTick(_ *TickEvent) error       { return nil }
func (n *NoopRecorder) RecordSession(_ *SessionEvent) error { return nil }
func (n *NoopRecorder) RecentTicks(_ string, _ int) ([]model.Sample, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
