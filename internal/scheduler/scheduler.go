package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"OvernightExchange/internal/feed"
	"OvernightExchange/internal/metrics"
	"OvernightExchange/internal/recorder"
)

// DefaultTickSpec advances the series every three seconds.
const DefaultTickSpec = "@every 3s"

// Parser accepts six-field (with seconds) specs and descriptors like "@every 3s".
var Parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Scheduler owns the single repeating tick that advances the feed.
type Scheduler struct {
	Cron     *cron.Cron
	Feed     *feed.Feed
	Recorder recorder.Recorder
	Metrics  *metrics.Metrics
	Ctx      context.Context

	stopOnce sync.Once
	entry    cron.EntryID
}

// NewScheduler creates a new Scheduler. Overlapping ticks are skipped so the
// series only ever has one writer.
func NewScheduler(ctx context.Context, f *feed.Feed, rec recorder.Recorder, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithParser(Parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Feed:     f,
		Recorder: rec,
		Metrics:  m,
		Ctx:      ctx,
	}
}

// Register adds the tick job.
func (s *Scheduler) Register(tickSpec string) error {
	id, err := s.Cron.AddFunc(tickSpec, s.tick)
	if err != nil {
		return fmt.Errorf("register tick task: %w", err)
	}
	s.entry = id
	return nil
}

// Start activates the feed and starts the cron scheduler. When the context is
// cancelled the scheduler stops itself.
func (s *Scheduler) Start() error {
	session, err := s.Feed.Activate()
	if err != nil {
		return fmt.Errorf("activate feed: %w", err)
	}
	s.recordSession(session.String(), recorder.SessionActivate)
	s.Metrics.SeriesLength.Set(float64(s.Feed.Snapshot().Len()))
	if last, ok := s.Feed.Latest(); ok {
		s.Metrics.LastPrice.Set(last.Price)
	}

	s.Cron.Start()
	log.Printf("[INFO] scheduler started: entry=%d", s.entry)

	go func() {
		<-s.Ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the cron scheduler, waits for an in-flight tick to finish and
// deactivates the feed. No tick runs after Stop returns.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		done := s.Cron.Stop()
		<-done.Done()
		s.Feed.Deactivate()
		s.recordSession(s.Feed.Session().String(), recorder.SessionDeactivate)
		log.Println("[INFO] scheduler stopped")
	})
}

// RunTickNow advances the feed immediately, outside the schedule.
func (s *Scheduler) RunTickNow() {
	s.tick()
}

// NextTick returns when the tick job fires next, zero if not scheduled.
func (s *Scheduler) NextTick() time.Time {
	return s.Cron.Entry(s.entry).Next
}

func (s *Scheduler) tick() {
	start := time.Now()
	defer func() {
		s.Metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	sample, ok := s.Feed.Tick()
	if !ok {
		s.Metrics.TicksSkipped.Inc()
		return
	}
	s.Metrics.TicksTotal.Inc()
	s.Metrics.LastPrice.Set(sample.Price)
	s.Metrics.SeriesLength.Set(float64(s.Feed.Snapshot().Len()))

	if err := s.Recorder.RecordTick(&recorder.TickEvent{
		Session: s.Feed.Session().String(),
		Symbol:  s.Feed.Symbol(),
		Sample:  sample,
	}); err != nil {
		s.Metrics.RecordErrors.WithLabelValues("tick").Inc()
		log.Printf("[ERROR] record tick: %v", err)
	}
}

func (s *Scheduler) recordSession(session, eventType string) {
	snap := s.Feed.Snapshot()
	evt := &recorder.SessionEvent{
		Session:   session,
		Symbol:    s.Feed.Symbol(),
		EventType: eventType,
		Length:    snap.Len(),
	}
	if last, ok := snap.Latest(); ok {
		evt.LastPrice = last.Price
	}
	if err := s.Recorder.RecordSession(evt); err != nil {
		s.Metrics.RecordErrors.WithLabelValues("session").Inc()
		log.Printf("[ERROR] record session: %v", err)
	}
}
