package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-importer/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go
//go:generate mockery --name Ingester --filename ingester.go
//go:generate mockery --name Synchronizer --filename synchronizer.go
//go:generate mockery --name Retrier --filename retrier.go

// DefaultMaxAttempts is default number of attempts of single feed ingestion.
const DefaultMaxAttempts = 3

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// Ingester ingests feed of feed source.
type Ingester interface {
	Ingest(ctx context.Context, feedSourceID int64) (*models.Report, error)
}

// Synchronizer synchronizes product images.
type Synchronizer interface {
	Sync(ctx context.Context, productID int64, urls []string) (bool, error)
}

// Retrier re-publishes failed process feed command.
type Retrier interface {
	RetryProcessFeedCommand(ctx context.Context, cmd commander.ProcessFeedCommand) error
}

// SleepFunc blocks for provided duration or until context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option is custom configuration of RMQHandler.
type Option func(h *RMQHandler)

// WithMaxAttempts sets max number of attempts of single feed ingestion.
func WithMaxAttempts(attempts int) Option {
	return func(h *RMQHandler) {
		h.maxAttempts = attempts
	}
}

// WithSleep sets function used to wait before retry.
func WithSleep(sleep SleepFunc) Option {
	return func(h *RMQHandler) {
		h.sleep = sleep
	}
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	consumer     Consumer
	ingester     Ingester
	synchronizer Synchronizer
	retrier      Retrier
	maxAttempts  int
	sleep        SleepFunc
	logger       *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	consumer Consumer,
	ingester Ingester,
	synchronizer Synchronizer,
	retrier Retrier,
	logger *zerolog.Logger,
	ops ...Option,
) *RMQHandler {
	h := &RMQHandler{
		consumer:     consumer,
		ingester:     ingester,
		synchronizer: synchronizer,
		retrier:      retrier,
		maxAttempts:  DefaultMaxAttempts,
		sleep:        sleepContext,
		logger:       logger,
	}

	for _, op := range ops {
		op(h)
	}

	return h
}

// Start starts consuming and handling process feed and sync images commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, feedQueue, imagesQueue string) error {
	feedErrors, err := h.consumer.Consume(ctx, feedQueue, h.HandleProcessFeed)
	if err != nil {
		return fmt.Errorf("can't consume %q: %w", feedQueue, err)
	}
	go h.logErrors(feedErrors, feedQueue)

	imagesErrors, err := h.consumer.Consume(ctx, imagesQueue, h.HandleSyncImages)
	if err != nil {
		return fmt.Errorf("can't consume %q: %w", imagesQueue, err)
	}
	go h.logErrors(imagesErrors, imagesQueue)

	return nil
}

// HandleProcessFeed ingests feed of feed source from process feed command.
// Failed ingestion is retried with exponential backoff until attempts are exhausted.
func (h *RMQHandler) HandleProcessFeed(ctx context.Context, message []byte) error {
	var cmd commander.ProcessFeedCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		return fmt.Errorf("can't decode process feed command: %w", err)
	}

	logger := h.logger.With().
		Int64("feedSourceId", cmd.FeedSourceID).
		Int("attempt", cmd.Attempt).
		Logger()

	logger.Debug().Msg("ingestion started")

	_, err := h.ingester.Ingest(ctx, cmd.FeedSourceID)
	switch {
	case err == nil:
		logger.Debug().Msg("ingestion finished")
		return nil
	case errors.Is(err, platform.ErrAlreadyRunning):
		logger.Info().Msg("ingestion already running, command skipped")
		return nil
	case errors.Is(err, platform.ErrFeedSourceNotFound):
		return fmt.Errorf("ingestion failed: %w", err)
	}

	// consumer is shutting down, command goes back to queue without delay
	if ctx.Err() != nil {
		logger.Warn().
			Err(err).
			Msg("ingestion interrupted, requeueing command")

		if err := h.retrier.RetryProcessFeedCommand(context.WithoutCancel(ctx), cmd); err != nil {
			return fmt.Errorf("can't requeue interrupted ingestion: %w", err)
		}
		return nil
	}

	if cmd.Attempt+1 >= h.maxAttempts {
		return fmt.Errorf("ingestion failed after %d attempts: %w", cmd.Attempt+1, err)
	}

	delay := time.Duration(1<<cmd.Attempt) * time.Second
	logger.Warn().
		Err(err).
		Dur("delay", delay).
		Msg("ingestion failed, retrying")

	if err := h.sleep(ctx, delay); err != nil {
		return fmt.Errorf("can't wait for retry: %w", err)
	}

	if err := h.retrier.RetryProcessFeedCommand(ctx, cmd); err != nil {
		return fmt.Errorf("can't retry ingestion: %w", err)
	}

	return nil
}

// HandleSyncImages synchronizes product images from sync images command.
func (h *RMQHandler) HandleSyncImages(ctx context.Context, message []byte) error {
	var cmd commander.SyncImagesCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		return fmt.Errorf("can't decode sync images command: %w", err)
	}

	changed, err := h.synchronizer.Sync(ctx, cmd.ProductID, cmd.ImageURLs)
	if err != nil {
		return fmt.Errorf("can't sync images of product %d: %w", cmd.ProductID, err)
	}

	h.logger.Debug().
		Int64("productId", cmd.ProductID).
		Bool("changed", changed).
		Msg("images synchronized")

	return nil
}

func (h *RMQHandler) logErrors(errorsChan <-chan error, queue string) {
	for err := range errorsChan {
		h.logger.Error().
			Err(err).
			Str("queue", queue).
			Msg("can't handle message")
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
