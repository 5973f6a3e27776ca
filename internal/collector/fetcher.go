package collector

import "OvernightExchange/internal/series"

// Source exposes the current price series.
type Source interface {
	Snapshot() series.Series
}

// StaticSource returns a fixed series, for development and testing.
type StaticSource struct {
	Series series.Series
}

func (s *StaticSource) Snapshot() series.Series { return s.Series }
