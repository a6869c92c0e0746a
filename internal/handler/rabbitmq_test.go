package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/handler"
	"github.com/MichalMitros/catalog-feed-importer/internal/handler/mocks"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitHandleProcessFeed(t *testing.T) {
	t.Parallel()

	type ingestion struct {
		report *models.Report
		err    error
	}

	tests := map[string]struct {
		message     string
		ingestion   *ingestion
		sleepErr    error
		retry       *commander.ProcessFeedCommand
		retryErr    error
		wantDelays  []time.Duration
		wantErr     error
		wantErrText string
	}{
		"ok": {
			message:   `{"feedSourceId":7}`,
			ingestion: &ingestion{report: &models.Report{FeedSourceID: 7, Status: models.ReportStatusSuccess}},
		},
		"already running": {
			message:   `{"feedSourceId":7}`,
			ingestion: &ingestion{err: platform.ErrAlreadyRunning},
		},
		"feed source not found": {
			message:   `{"feedSourceId":7}`,
			ingestion: &ingestion{err: platform.ErrFeedSourceNotFound},
			wantErr:   platform.ErrFeedSourceNotFound,
		},
		"first failure is retried": {
			message:    `{"feedSourceId":7}`,
			ingestion:  &ingestion{err: assert.AnError},
			retry:      &commander.ProcessFeedCommand{FeedSourceID: 7},
			wantDelays: []time.Duration{time.Second},
		},
		"second failure is retried with longer delay": {
			message:    `{"feedSourceId":7,"attempt":1}`,
			ingestion:  &ingestion{err: assert.AnError},
			retry:      &commander.ProcessFeedCommand{FeedSourceID: 7, Attempt: 1},
			wantDelays: []time.Duration{2 * time.Second},
		},
		"last failure": {
			message:     `{"feedSourceId":7,"attempt":2}`,
			ingestion:   &ingestion{err: assert.AnError},
			wantErr:     assert.AnError,
			wantErrText: "ingestion failed after 3 attempts",
		},
		"retry error": {
			message:     `{"feedSourceId":7}`,
			ingestion:   &ingestion{err: assert.AnError},
			retry:       &commander.ProcessFeedCommand{FeedSourceID: 7},
			retryErr:    assert.AnError,
			wantDelays:  []time.Duration{time.Second},
			wantErr:     assert.AnError,
			wantErrText: "can't retry ingestion",
		},
		"sleep interrupted": {
			message:     `{"feedSourceId":7}`,
			ingestion:   &ingestion{err: assert.AnError},
			sleepErr:    context.Canceled,
			wantDelays:  []time.Duration{time.Second},
			wantErr:     context.Canceled,
			wantErrText: "can't wait for retry",
		},
		"invalid message": {
			message:     `{"feedSourceId":"seven"}`,
			wantErrText: "can't decode process feed command",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.TODO()
			ingesterMock := mocks.NewIngester(t)
			retrierMock := mocks.NewRetrier(t)

			if tt.ingestion != nil {
				ingesterMock.On("Ingest", ctx, int64(7)).
					Return(tt.ingestion.report, tt.ingestion.err).
					Once()
			}

			if tt.retry != nil {
				retrierMock.On("RetryProcessFeedCommand", ctx, *tt.retry).
					Return(tt.retryErr).
					Once()
			}

			var delays []time.Duration
			h := newHandler(t, nil, ingesterMock, nil, retrierMock,
				handler.WithSleep(func(_ context.Context, d time.Duration) error {
					delays = append(delays, d)
					return tt.sleepErr
				}),
			)

			err := h.HandleProcessFeed(ctx, []byte(tt.message))

			assert.Equal(t, tt.wantDelays, delays)
			if tt.wantErr == nil && tt.wantErrText == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.ErrorContains(t, err, tt.wantErrText)
		})
	}
}

func TestUnitHandleProcessFeedMaxAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.TODO()
	ingesterMock := mocks.NewIngester(t)
	ingesterMock.On("Ingest", ctx, int64(3)).Return(nil, assert.AnError).Once()

	h := newHandler(t, nil, ingesterMock, nil, mocks.NewRetrier(t), handler.WithMaxAttempts(1))

	err := h.HandleProcessFeed(ctx, []byte(`{"feedSourceId":3}`))

	require.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "ingestion failed after 1 attempts")
}

func TestUnitHandleProcessFeedInterrupted(t *testing.T) {
	t.Parallel()

	liveContext := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	tests := map[string]struct {
		retryErr    error
		wantErrText string
	}{
		"requeued": {},
		"requeue error": {
			retryErr:    assert.AnError,
			wantErrText: "can't requeue interrupted ingestion",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.TODO())
			cancel()

			ingesterMock := mocks.NewIngester(t)
			ingesterMock.On("Ingest", ctx, int64(7)).
				Return(&models.Report{Status: models.ReportStatusError}, context.Canceled).
				Once()

			// last attempt is requeued as well
			retrierMock := mocks.NewRetrier(t)
			retrierMock.On("RetryProcessFeedCommand", liveContext, commander.ProcessFeedCommand{FeedSourceID: 7, Attempt: 2}).
				Return(tt.retryErr).
				Once()

			var delays []time.Duration
			h := newHandler(t, nil, ingesterMock, nil, retrierMock,
				handler.WithSleep(func(_ context.Context, d time.Duration) error {
					delays = append(delays, d)
					return nil
				}),
			)

			err := h.HandleProcessFeed(ctx, []byte(`{"feedSourceId":7,"attempt":2}`))

			assert.Empty(t, delays, "shouldn't wait before requeue")
			if tt.wantErrText == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.retryErr)
			assert.ErrorContains(t, err, tt.wantErrText)
		})
	}
}

func TestUnitHandleSyncImages(t *testing.T) {
	t.Parallel()

	urls := []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}

	tests := map[string]struct {
		message string
		syncErr error
		wantErr string
	}{
		"ok": {
			message: `{"productId":11,"imageUrls":["https://cdn.example.com/1.jpg","https://cdn.example.com/2.jpg"]}`,
		},
		"sync error": {
			message: `{"productId":11,"imageUrls":["https://cdn.example.com/1.jpg","https://cdn.example.com/2.jpg"]}`,
			syncErr: assert.AnError,
			wantErr: "can't sync images of product 11",
		},
		"invalid message": {
			message: `[]`,
			wantErr: "can't decode sync images command",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.TODO()
			synchronizerMock := mocks.NewSynchronizer(t)
			if tt.wantErr == "" || tt.syncErr != nil {
				synchronizerMock.On("Sync", ctx, int64(11), urls).
					Return(tt.syncErr == nil, tt.syncErr).
					Once()
			}

			h := newHandler(t, nil, nil, synchronizerMock, nil)

			err := h.HandleSyncImages(ctx, []byte(tt.message))

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestUnitStart(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		feedErr   error
		imagesErr error
		wantErr   string
	}{
		"ok": {},
		"feed queue error": {
			feedErr: assert.AnError,
			wantErr: `can't consume "feeds"`,
		},
		"images queue error": {
			imagesErr: assert.AnError,
			wantErr:   `can't consume "images"`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.TODO()
			consumerMock := mocks.NewConsumer(t)
			consumerMock.On("Consume", ctx, "feeds", mock.Anything).
				Return(closedErrors(), tt.feedErr).
				Once()
			if tt.feedErr == nil {
				consumerMock.On("Consume", ctx, "images", mock.Anything).
					Return(closedErrors(), tt.imagesErr).
					Once()
			}

			h := newHandler(t, consumerMock, nil, nil, nil)

			err := h.Start(ctx, "feeds", "images")

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func newHandler(
	t *testing.T,
	consumer handler.Consumer,
	ingester handler.Ingester,
	synchronizer handler.Synchronizer,
	retrier handler.Retrier,
	ops ...handler.Option,
) *handler.RMQHandler {
	t.Helper()

	logger := zerolog.Nop()
	return handler.NewHandler(consumer, ingester, synchronizer, retrier, &logger, ops...)
}

func closedErrors() <-chan error {
	errs := make(chan error)
	close(errs)
	return errs
}
