package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/metrics"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

// Scheduler runs one weather sync cycle per interval until stopped.
type Scheduler struct {
	scheduler *gocron.Scheduler
	station   weather.Station
	reporter  weather.Reporter
	interval  time.Duration
	maxRuns   int
	logger    *slog.Logger
	cancel    context.CancelFunc
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithMaxRuns stops scheduling after n cycles (0 = unlimited).
func WithMaxRuns(n int) Option {
	return func(s *Scheduler) { s.maxRuns = n }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// New creates a new Scheduler.
func New(station weather.Station, reporter weather.Reporter, interval time.Duration, opts ...Option) *Scheduler {
	gs := gocron.NewScheduler(time.UTC)
	// One cycle at a time; ticks that fire while a cycle is running are dropped.
	gs.SetMaxConcurrentJobs(1, gocron.RescheduleMode)

	s := &Scheduler{
		scheduler: gs,
		station:   station,
		reporter:  reporter,
		interval:  interval,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the first cycle immediately and then one every interval.
// A cycle never overlaps the previous one and missed ticks are not replayed.
// Cancelling ctx stops the cycles as does Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("scheduler: interval must be greater than zero, got %s", s.interval)
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	sched := s.scheduler.Every(s.interval)
	if s.maxRuns > 0 {
		sched = sched.LimitRunsTo(s.maxRuns)
	}

	_, err := sched.Do(func() {
		if ctx.Err() != nil {
			return
		}
		s.RunCycle(ctx)
	})
	if err != nil {
		cancel()
		return err
	}

	s.logger.Info("scheduler started", "interval", s.interval)
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()
	return nil
}

// Stop stops the scheduler and cancels any future cycles.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// RunCycle performs one sync and logs its outcome.
func (s *Scheduler) RunCycle(ctx context.Context) option.Option[string] {
	log := s.logger.With("cycle", uuid.NewString())

	result := weather.SyncOnce(ctx, s.station, s.reporter)
	if report, ok := result.Get(); ok {
		metrics.Cycles.WithLabelValues(metrics.OutcomeReport).Inc()
		log.Info("weather report received", "report", report)
	} else {
		metrics.Cycles.WithLabelValues(metrics.OutcomeNone).Inc()
		log.Info("no weather report available at this time")
	}
	return result
}
