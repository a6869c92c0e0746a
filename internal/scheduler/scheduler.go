package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go

const (
	// DefaultInterval is default time between checks for due feed sources.
	DefaultInterval = time.Minute
	// DefaultLease is default time for which claimed feed source isn't claimed again.
	DefaultLease = time.Hour
)

// Storage is feed sources storage.
type Storage interface {
	// ClaimDueFeedSources returns active feed sources due for update and moves their next update by lease.
	ClaimDueFeedSources(ctx context.Context, now time.Time, lease time.Duration) ([]models.FeedSource, error)
}

// Commander sends process feed commands.
type Commander interface {
	SendProcessFeedCommand(ctx context.Context, feedSourceID int64) error
}

// Option is custom configuration of Scheduler.
type Option func(s *Scheduler)

// Scheduler periodically dispatches ingestion of due feed sources.
type Scheduler struct {
	storage   Storage
	commander Commander
	interval  time.Duration
	lease     time.Duration
	now       func() time.Time
	logger    *zerolog.Logger
}

// NewScheduler returns new Scheduler.
func NewScheduler(storage Storage, commander Commander, logger *zerolog.Logger, ops ...Option) *Scheduler {
	s := &Scheduler{
		storage:   storage,
		commander: commander,
		interval:  DefaultInterval,
		lease:     DefaultLease,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// WithInterval sets time between checks for due feed sources.
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithLease sets time for which claimed feed source isn't claimed again.
func WithLease(lease time.Duration) Option {
	return func(s *Scheduler) {
		if lease > 0 {
			s.lease = lease
		}
	}
}

// WithNow sets function returning current time.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Run dispatches due feed sources immediately and then every interval, until context is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Tick(ctx); err != nil {
			s.logger.Error().
				Err(err).
				Msg("can't dispatch due feed sources")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick claims due feed sources and sends process command for each of them.
// Failed commands are logged and skipped, claimed source is retried after lease expires.
// It returns number of dispatched feed sources.
func (s *Scheduler) Tick(ctx context.Context) (int, error) {
	sources, err := s.storage.ClaimDueFeedSources(ctx, s.now(), s.lease)
	if err != nil {
		return 0, fmt.Errorf("can't claim due feed sources: %w", err)
	}

	dispatched := 0
	for ix := range sources {
		if err := s.commander.SendProcessFeedCommand(ctx, sources[ix].ID); err != nil {
			s.logger.Error().
				Err(err).
				Int64("feedSourceId", sources[ix].ID).
				Msg("can't dispatch feed source")
			continue
		}
		dispatched++
	}

	if len(sources) > 0 {
		s.logger.Info().
			Int("due", len(sources)).
			Int("dispatched", dispatched).
			Msg("due feed sources dispatched")
	}

	return dispatched, nil
}
