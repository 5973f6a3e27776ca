package recorder

import "OvernightExchange/internal/model"

// TickEvent is one scheduled advance of the price series.
type TickEvent struct {
	Session string
	Symbol  string
	Sample  model.Sample
}

// SessionEvent records a feed being activated or deactivated.
type SessionEvent struct {
	Session   string
	Symbol    string
	EventType string // "ACTIVATE" or "DEACTIVATE"
	Length    int
	LastPrice float64
}

const (
	SessionActivate   = "ACTIVATE"
	SessionDeactivate = "DEACTIVATE"
)

// Recorder journals ticks and view sessions for later inspection.
type Recorder interface {
	RecordTick(evt *TickEvent) error
	RecordSession(evt *SessionEvent) error
	// RecentTicks returns up to limit recorded samples for symbol, oldest first.
	RecentTicks(symbol string, limit int) ([]model.Sample, error)
	Close() error
}
