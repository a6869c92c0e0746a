package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/kafka"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topic = "catalog.reports"

func TestUnitPublishReport(t *testing.T) {
	startedAt := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	report := &models.Report{
		ID:                  10,
		FeedSourceID:        3,
		Status:              models.ReportStatusError,
		StartedAt:           startedAt,
		FinishedAt:          lo.ToPtr(startedAt.Add(time.Minute)),
		TotalProducts:       5,
		ProductsAdded:       2,
		ProductsUpdated:     1,
		ProductsFailed:      1,
		ProductsUnpublished: 1,
		CategoriesCreated:   1,
		DownloadError:       lo.ToPtr("can't download feed"),
	}

	producer := mocks.NewSyncProducer(t, nil)
	t.Cleanup(func() {
		require.NoError(t, producer.Close())
	})

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event kafka.ReportEvent
		require.NoError(t, json.Unmarshal(val, &event), "should publish json event")

		assert.Equal(t, int64(10), event.ReportID, "should publish report id")
		assert.Equal(t, int64(3), event.FeedSourceID, "should publish feed source id")
		assert.Equal(t, "error", event.Status, "should publish status")
		assert.Equal(t, int32(2), event.ProductsAdded, "should publish counters")
		assert.Equal(t, int32(1), event.CategoriesCreated, "should publish auto-creation counters")
		assert.Equal(t, report.DownloadError, event.DownloadError, "should publish download error")
		assert.Nil(t, event.ParsingError, "shouldn't publish empty parsing error")
		return nil
	})

	pub := kafka.NewReportPublisher(producer, topic)
	err := pub.PublishReport(context.TODO(), report)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitPublishReportError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	t.Cleanup(func() {
		require.NoError(t, producer.Close())
	})

	producer.ExpectSendMessageAndFail(assert.AnError)

	pub := kafka.NewReportPublisher(producer, topic)
	err := pub.PublishReport(context.TODO(), &models.Report{ID: 1, Status: models.ReportStatusSuccess})

	require.ErrorIs(t, err, assert.AnError, "should return producer error")
}
