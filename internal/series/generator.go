package series

import (
	"math"
	"math/rand/v2"
	"time"

	"OvernightExchange/internal/model"
)

const (
	// DefaultLength is the number of samples kept in the window.
	DefaultLength = 50
	// DefaultSpacing is the synthetic distance between seeded samples.
	DefaultSpacing = time.Minute

	waveAmplitude = 500.0
	wavePeriod    = 5.0
	seedNoise     = 200.0
	stepSpread    = 50.0
)

// Random is a uniform source in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Generator seeds and advances synthetic price series.
// It is not safe for concurrent use; callers serialise access.
type Generator struct {
	Now     func() time.Time
	Rand    Random
	Spacing time.Duration
}

// NewGenerator creates a Generator. Nil arguments fall back to the wall clock
// and a time-seeded PCG source.
func NewGenerator(now func() time.Time, rnd Random) *Generator {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return &Generator{Now: now, Rand: rnd, Spacing: DefaultSpacing}
}

// Initialize builds n samples ending one spacing before now:
// price = basePrice + sin(i/5)*500 + uniform(0, 200).
func (g *Generator) Initialize(basePrice float64, n int) Series {
	if n <= 0 {
		return Series{}
	}
	now := g.Now().UnixMilli()
	step := g.Spacing.Milliseconds()

	samples := make([]model.Sample, n)
	for i := 0; i < n; i++ {
		samples[i] = model.Sample{
			Time:  now - int64(n-i)*step,
			Price: basePrice + math.Sin(float64(i)/wavePeriod)*waveAmplitude + g.Rand.Float64()*seedNoise,
		}
	}
	return Series{samples: samples}
}

// Advance drops the oldest sample and appends a new one priced within ±25 of
// the previous last price. No floor is applied to the new price. An empty
// series is returned unchanged.
func (g *Generator) Advance(s Series) Series {
	last, ok := s.Latest()
	if !ok {
		return s
	}

	now := g.Now().UnixMilli()
	if now < last.Time {
		now = last.Time
	}
	next := model.Sample{
		Time:  now,
		Price: last.Price + (g.Rand.Float64()-0.5)*stepSpread,
	}

	samples := make([]model.Sample, len(s.samples))
	copy(samples, s.samples[1:])
	samples[len(samples)-1] = next
	return Series{samples: samples}
}
