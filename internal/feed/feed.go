// Package feed holds the live trading view: the current price series, the
// generator that advances it and the subscribers watching it.
package feed

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"OvernightExchange/internal/model"
	"OvernightExchange/internal/series"
)

// ErrDeactivated is returned when activating a feed that was already torn down.
var ErrDeactivated = errors.New("feed has been deactivated")

// Feed owns one price series for the lifetime of a view. Once deactivated it
// never advances again.
type Feed struct {
	mu        sync.RWMutex
	symbol    string
	basePrice float64
	length    int
	gen       *series.Generator
	current   series.Series
	session   uuid.UUID
	active    bool
	done      bool
	subs      map[int]chan series.Series
	nextSub   int
}

// New creates an inactive feed. Activate seeds the series.
func New(symbol string, gen *series.Generator, basePrice float64, length int) *Feed {
	return &Feed{
		symbol:    symbol,
		basePrice: basePrice,
		length:    length,
		gen:       gen,
		subs:      make(map[int]chan series.Series),
	}
}

// Symbol returns the traded pair, e.g. "BTC/USDT".
func (f *Feed) Symbol() string { return f.symbol }

// Activate seeds the series and starts a new session. Activating an active
// feed is a no-op that returns the current session.
func (f *Feed) Activate() (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return uuid.Nil, ErrDeactivated
	}
	if f.active {
		return f.session, nil
	}
	f.current = f.gen.Initialize(f.basePrice, f.length)
	f.session = uuid.New()
	f.active = true
	log.Printf("[INFO] feed %s activated: session=%s samples=%d", f.symbol, f.session, f.current.Len())
	f.broadcastLocked()
	return f.session, nil
}

// Session returns the id of the current activation.
func (f *Feed) Session() uuid.UUID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.session
}

// Active reports whether ticks are currently accepted.
func (f *Feed) Active() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.active
}

// Tick advances the series by one sample and returns it. It reports false,
// without touching the series, when the feed is not active.
func (f *Feed) Tick() (model.Sample, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return model.Sample{}, false
	}
	f.current = f.gen.Advance(f.current)
	f.broadcastLocked()
	return f.current.Latest()
}

// Snapshot returns the current series.
func (f *Feed) Snapshot() series.Series {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Latest returns the newest sample, used for the headline price.
func (f *Feed) Latest() (model.Sample, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current.Latest()
}

// Subscribe registers for a snapshot after every change. Updates are dropped
// for a subscriber whose buffer is full. The channel is closed by the returned
// cancel func or by Deactivate.
func (f *Feed) Subscribe(buffer int) (<-chan series.Series, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan series.Series, buffer)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		close(ch)
		return ch, func() {}
	}
	id := f.nextSub
	f.nextSub++
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if c, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(c)
			}
		})
	}
}

// Subscribers returns the number of registered subscribers.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

// Deactivate permanently stops the feed and closes every subscription.
// It is safe to call more than once.
func (f *Feed) Deactivate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return
	}
	f.active = false
	f.done = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
	log.Printf("[INFO] feed %s deactivated: session=%s", f.symbol, f.session)
}

func (f *Feed) broadcastLocked() {
	for _, ch := range f.subs {
		select {
		case ch <- f.current:
		default:
		}
	}
}
