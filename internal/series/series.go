package series

import "OvernightExchange/internal/model"

// Series is an ordered, fixed-length window of samples, oldest first.
// A Series is never mutated after construction; Advance returns a new one.
type Series struct {
	samples []model.Sample
}

// New builds a Series from a copy of samples.
func New(samples []model.Sample) Series {
	cp := make([]model.Sample, len(samples))
	copy(cp, samples)
	return Series{samples: cp}
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.samples) }

// Empty reports whether the series holds no samples.
func (s Series) Empty() bool { return len(s.samples) == 0 }

// At returns the i-th sample, oldest first.
func (s Series) At(i int) model.Sample { return s.samples[i] }

// Samples returns a copy of the samples, oldest first.
func (s Series) Samples() []model.Sample {
	cp := make([]model.Sample, len(s.samples))
	copy(cp, s.samples)
	return cp
}

// Prices returns the sample prices in order.
func (s Series) Prices() []float64 {
	prices := make([]float64, len(s.samples))
	for i, p := range s.samples {
		prices[i] = p.Price
	}
	return prices
}

// Latest returns the newest sample.
func (s Series) Latest() (model.Sample, bool) {
	if len(s.samples) == 0 {
		return model.Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Oldest returns the oldest sample.
func (s Series) Oldest() (model.Sample, bool) {
	if len(s.samples) == 0 {
		return model.Sample{}, false
	}
	return s.samples[0], true
}
